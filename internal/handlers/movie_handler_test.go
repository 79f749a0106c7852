package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"movieweb/internal/config"
	"movieweb/internal/database"
	"movieweb/internal/repository"
	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	entries map[string]*services.MovieMetadata
}

func (s *stubCatalog) FetchMovieDetails(_ context.Context, title string) (*services.MovieMetadata, error) {
	meta, ok := s.entries[title]
	if !ok {
		return nil, fmt.Errorf("%w: Movie not found!", services.ErrMovieNotFound)
	}
	return meta, nil
}

type stubRecommender struct {
	result string
}

func (s *stubRecommender) Recommend(_ context.Context, favoriteTitles []string) (string, error) {
	if len(favoriteTitles) == 0 {
		return "", fmt.Errorf("%w: user has no favorite movies", services.ErrValidation)
	}
	return s.result, nil
}

func newTestApp(t *testing.T, catalog services.MetadataService) *fiber.App {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	userService := services.NewUserService(userRepo, movieRepo, favoriteRepo, reviewRepo, &stubRecommender{result: "Watch Blade Runner next."}, log)
	movieService := services.NewMovieService(movieRepo, genreRepo, userRepo, favoriteRepo, catalog, nil, log)
	reviewService := services.NewReviewService(reviewRepo, userRepo, movieRepo)

	userHandler := NewUserHandler(userService, log)
	movieHandler := NewMovieHandler(movieService, userService, log)
	genreHandler := NewGenreHandler(movieService, log)
	reviewHandler := NewReviewHandler(reviewService, log)

	app := fiber.New()
	v1 := app.Group("/api/v1")

	v1.Get("/users", userHandler.ListUsers)
	v1.Post("/users", userHandler.CreateUser)
	v1.Get("/users/:id/favorites", userHandler.ListFavorites)
	v1.Post("/users/:id/favorites", userHandler.AddFavorite)
	v1.Get("/users/:id/recommendations", userHandler.GetRecommendations)
	v1.Post("/users/:id/movies", movieHandler.AddMovieForUser)

	v1.Get("/movies", movieHandler.ListMovies)
	v1.Post("/movies", movieHandler.CreateMovie)
	v1.Get("/movies/search", movieHandler.SearchMovies)
	v1.Get("/movies/:id", movieHandler.GetMovie)
	v1.Put("/movies/:id", movieHandler.UpdateMovie)
	v1.Delete("/movies/:id", movieHandler.DeleteMovie)
	v1.Post("/movies/:id/genres/:genreId", movieHandler.AttachGenre)
	v1.Delete("/movies/:id/genres/:genreId", movieHandler.DetachGenre)
	v1.Post("/movies/:id/reviews", reviewHandler.CreateReview)
	v1.Get("/movies/:id/reviews", reviewHandler.ListMovieReviews)

	v1.Get("/genres", genreHandler.ListGenres)
	v1.Post("/genres", genreHandler.CreateGenre)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, utils.StandardResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope utils.StandardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestMovieEndpoints_CRUD(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	rating := 8.8
	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/movies", CreateMovieRequest{
		Title:  "Inception",
		Rating: &rating,
		Genres: []string{"Sci-Fi"},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", envelope.Status)

	movie := envelope.Data.(map[string]interface{})
	movieID := int(movie["id"].(float64))

	resp, envelope = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/movies/%d", movieID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	movie = envelope.Data.(map[string]interface{})
	assert.Equal(t, "Inception", movie["title"])

	newRating := 9.0
	resp, envelope = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/v1/movies/%d", movieID), UpdateMovieRequest{
		Rating: &newRating,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	movie = envelope.Data.(map[string]interface{})
	assert.Equal(t, 9.0, movie["rating"])
	assert.Equal(t, "Inception", movie["title"])

	resp, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/movies/%d", movieID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/movies/%d", movieID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMovieEndpoints_NotFoundAndBadID(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/movies/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/v1/movies/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/movies/notanumber", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMovieEndpoints_CreateValidation(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/movies", CreateMovieRequest{Title: "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", envelope.Status)
}

func TestMovieEndpoints_Search(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	for _, title := range []string{"The Matrix", "The Matrix Reloaded", "Heat"} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/movies", CreateMovieRequest{Title: title})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, envelope := doJSON(t, app, fiber.MethodGet, "/api/v1/movies/search?q=matrix", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, envelope.Data, 2)

	// Empty query matches nothing.
	resp, envelope = doJSON(t, app, fiber.MethodGet, "/api/v1/movies/search?q=", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, envelope.Data)
}

func TestUserEndpoints_FavoritesAndEnrichment(t *testing.T) {
	year := 1999
	catalog := &stubCatalog{entries: map[string]*services.MovieMetadata{
		"The Matrix": {Title: "The Matrix", Year: &year, Genres: []string{"Action"}},
	}}
	app := newTestApp(t, catalog)

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/users", CreateUserRequest{Name: "Ava"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	userID := int(envelope.Data.(map[string]interface{})["id"].(float64))

	resp, envelope = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/users/%d/movies", userID), EnrichedMovieRequest{
		Title: "The Matrix",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	movie := envelope.Data.(map[string]interface{})
	assert.Equal(t, "The Matrix", movie["title"])

	resp, envelope = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/users/%d/favorites", userID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, envelope.Data, 1)

	// Unknown catalog title maps to 400, not 500.
	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/users/%d/movies", userID), EnrichedMovieRequest{
		Title: "Nonexistentmovietitle",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, envelope = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/users/%d/recommendations", userID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, fmt.Sprint(envelope.Data), "Blade Runner")
}

func TestReviewEndpoints(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/users", CreateUserRequest{Name: "Ava"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	userID := uint(envelope.Data.(map[string]interface{})["id"].(float64))

	resp, envelope = doJSON(t, app, fiber.MethodPost, "/api/v1/movies", CreateMovieRequest{Title: "Arrival"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	movieID := int(envelope.Data.(map[string]interface{})["id"].(float64))

	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/movies/%d/reviews", movieID), CreateReviewRequest{
		Text:   "Quiet and devastating.",
		Rating: 9,
		UserID: userID,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, envelope = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/movies/%d/reviews", movieID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, envelope.Data, 1)

	// Reviews of a missing movie map to 404.
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/movies/9999/reviews", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMovieEndpoints_AttachDetachGenre(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/movies", CreateMovieRequest{Title: "Alien"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	movieID := int(envelope.Data.(map[string]interface{})["id"].(float64))

	resp, envelope = doJSON(t, app, fiber.MethodPost, "/api/v1/genres", CreateGenreRequest{Name: "Horror"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	genreID := int(envelope.Data.(map[string]interface{})["id"].(float64))

	resp, envelope = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/movies/%d/genres/%d", movieID, genreID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	movie := envelope.Data.(map[string]interface{})
	assert.Len(t, movie["genres"], 1)

	resp, envelope = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/movies/%d/genres/%d", movieID, genreID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	movie = envelope.Data.(map[string]interface{})
	assert.Empty(t, movie["genres"])

	// Unknown genre maps to 404.
	resp, _ = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/v1/movies/%d/genres/9999", movieID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGenreEndpoints_LookupOrCreate(t *testing.T) {
	app := newTestApp(t, &stubCatalog{})

	resp, envelope := doJSON(t, app, fiber.MethodPost, "/api/v1/genres", CreateGenreRequest{Name: "Drama"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	first := envelope.Data.(map[string]interface{})["id"]

	resp, envelope = doJSON(t, app, fiber.MethodPost, "/api/v1/genres", CreateGenreRequest{Name: "Drama"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, first, envelope.Data.(map[string]interface{})["id"])

	resp, envelope = doJSON(t, app, fiber.MethodGet, "/api/v1/genres", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, envelope.Data, 1)
}
