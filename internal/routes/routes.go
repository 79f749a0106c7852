package routes

import (
	"movieweb/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	movieHandler *handlers.MovieHandler,
	genreHandler *handlers.GenreHandler,
	reviewHandler *handlers.ReviewHandler,
	uploadHandler *handlers.UploadHandler,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/home", movieHandler.Home)

	// User routes - accounts, favorites, recommendations
	users := v1.Group("/users")
	{
		users.Get("/", userHandler.ListUsers)
		users.Post("/", userHandler.CreateUser)
		users.Get("/:id", userHandler.GetUser)
		users.Get("/:id/favorites", userHandler.ListFavorites)
		users.Post("/:id/favorites", userHandler.AddFavorite)
		users.Delete("/:id/favorites/:movieId", userHandler.RemoveFavorite)
		users.Get("/:id/reviews", userHandler.ListUserReviews)
		users.Get("/:id/recommendations", userHandler.GetRecommendations)
		users.Post("/:id/movies", movieHandler.AddMovieForUser)
	}

	// Movie routes - CRUD plus queries
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.ListMovies)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/search", movieHandler.SearchMovies)
		movies.Get("/recent", movieHandler.RecentlyAdded)
		movies.Get("/top-rated", movieHandler.TopRated)
		movies.Get("/:id", movieHandler.GetMovie)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
		movies.Post("/:id/genres/:genreId", movieHandler.AttachGenre)
		movies.Delete("/:id/genres/:genreId", movieHandler.DetachGenre)
		movies.Get("/:id/fans", movieHandler.ListFans)
		movies.Get("/:id/reviews", reviewHandler.ListMovieReviews)
		movies.Post("/:id/reviews", reviewHandler.CreateReview)
	}

	// Genre routes
	genres := v1.Group("/genres")
	{
		genres.Get("/", genreHandler.ListGenres)
		genres.Post("/", genreHandler.CreateGenre)
		genres.Get("/:id", genreHandler.GetGenre)
		genres.Put("/:id", genreHandler.UpdateGenre)
		genres.Delete("/:id", genreHandler.DeleteGenre)
		genres.Get("/:id/movies", genreHandler.ListGenreMovies)
	}

	// Review routes - updates and deletion by review id
	reviews := v1.Group("/reviews")
	{
		reviews.Put("/:id", reviewHandler.UpdateReview)
		reviews.Delete("/:id", reviewHandler.DeleteReview)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPosterUploadURL)
	}
}
