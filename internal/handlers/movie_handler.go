package handlers

import (
	"strconv"

	"movieweb/internal/models"
	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service     services.MovieService
	userService services.UserService
	logger      *logrus.Logger
}

func NewMovieHandler(service services.MovieService, userService services.UserService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service:     service,
		userService: userService,
		logger:      logger,
	}
}

// ListMovies godoc
// @Summary List all movies
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovie godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ServiceErrorResponse(c, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Creates the movie and links the named genres, creating missing genres on the fly
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body CreateMovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req CreateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.CreateMovie(c.Context(), services.NewMovieInput{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Rating:   req.Rating,
		Poster:   req.Poster,
		Genres:   req.Genres,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Partial update: only the provided fields change
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body UpdateMovieRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req UpdateMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(c.Context(), id, models.MovieUpdate{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Rating:   req.Rating,
		Poster:   req.Poster,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ServiceErrorResponse(c, err)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Removes the movie together with its reviews and favorite links
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	deleted, err := h.service.DeleteMovie(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ServiceErrorResponse(c, err)
	}
	if !deleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// SearchMovies godoc
// @Summary Search movies
// @Description Case-insensitive substring match on title or director; an empty query matches nothing
// @Tags movies
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} utils.StandardResponse "Matching movies"
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("q", "")

	movies, err := h.service.SearchMovies(c.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to search movies")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed successfully", movies)
}

// RecentlyAdded godoc
// @Summary List recently added movies
// @Tags movies
// @Produce json
// @Param limit query int false "Maximum number of movies" default(5)
// @Success 200 {object} utils.StandardResponse "Recently added movies"
// @Router /movies/recent [get]
func (h *MovieHandler) RecentlyAdded(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	movies, err := h.service.RecentlyAdded(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list recently added movies")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recently added movies retrieved successfully", movies)
}

// TopRated godoc
// @Summary List top-rated movies
// @Description Ordered by rating descending; unrated movies sort last
// @Tags movies
// @Produce json
// @Param limit query int false "Maximum number of movies" default(5)
// @Success 200 {object} utils.StandardResponse "Top-rated movies"
// @Router /movies/top-rated [get]
func (h *MovieHandler) TopRated(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "5"))

	movies, err := h.service.TopRated(c.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list top-rated movies")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Top-rated movies retrieved successfully", movies)
}

// AttachGenre godoc
// @Summary Attach a genre to a movie
// @Description Idempotent: attaching a genre the movie already has changes nothing
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Param genreId path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 404 {object} utils.StandardResponse "Movie or genre not found"
// @Router /movies/{id}/genres/{genreId} [post]
func (h *MovieHandler) AttachGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	genreID, err := parseID(c, "genreId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	movie, err := h.service.AttachGenre(c.Context(), id, genreID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_id": id,
			"genre_id": genreID,
		}).Error("Failed to attach genre")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre attached successfully", movie)
}

// DetachGenre godoc
// @Summary Detach a genre from a movie
// @Description No-op when the movie does not carry the genre
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Param genreId path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Updated movie"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/genres/{genreId} [delete]
func (h *MovieHandler) DetachGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	genreID, err := parseID(c, "genreId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	movie, err := h.service.DetachGenre(c.Context(), id, genreID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_id": id,
			"genre_id": genreID,
		}).Error("Failed to detach genre")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre detached successfully", movie)
}

// ListFans godoc
// @Summary List users who favorited a movie
// @Tags favorites
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Users"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/fans [get]
func (h *MovieHandler) ListFans(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	users, err := h.userService.FansOfMovie(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", id).Error("Failed to list fans")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// AddMovieForUser godoc
// @Summary Add a catalog movie to a user's favorites
// @Description Resolves the title against the OMDb catalog, stores the enriched movie and links it as a favorite
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param movie body EnrichedMovieRequest true "Title plus optional genres"
// @Success 201 {object} utils.StandardResponse "Movie added"
// @Failure 400 {object} utils.StandardResponse "Title unknown to the catalog"
// @Failure 503 {object} utils.StandardResponse "Catalog unavailable"
// @Router /users/{id}/movies [post]
func (h *MovieHandler) AddMovieForUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req EnrichedMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.AddMovieForUser(c.Context(), userID, req.Title, req.Genres)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"title":   req.Title,
		}).Error("Failed to add movie from catalog")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added successfully", movie)
}

// Home godoc
// @Summary Home page data
// @Description Recently added and top-rated movies
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "Home data"
// @Router /home [get]
func (h *MovieHandler) Home(c *fiber.Ctx) error {
	recentlyAdded, err := h.service.RecentlyAdded(c.Context(), 5)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load home data")
		return utils.ServiceErrorResponse(c, err)
	}

	topRated, err := h.service.TopRated(c.Context(), 5)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load home data")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Home data retrieved successfully", fiber.Map{
		"recently_added": recentlyAdded,
		"top_rated":      topRated,
	})
}
