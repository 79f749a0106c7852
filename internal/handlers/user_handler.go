package handlers

import (
	"strconv"

	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// ListUsers godoc
// @Summary List all users
// @Description Get all registered users
// @Tags users
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of users"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "User details"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get user")
		return utils.ServiceErrorResponse(c, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", user)
}

// CreateUser godoc
// @Summary Create a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User request object"
// @Success 201 {object} utils.StandardResponse "User created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.AddUser(c.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully", user)
}

// ListFavorites godoc
// @Summary List a user's favorite movies
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "Favorite movies"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/favorites [get]
func (h *UserHandler) ListFavorites(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	movies, err := h.service.FavoriteMovies(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to list favorites")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Favorite movies retrieved successfully", movies)
}

// AddFavorite godoc
// @Summary Mark a movie as a user's favorite
// @Description Idempotent: re-adding an existing favorite returns the existing link
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param favorite body AddFavoriteRequest true "Favorite request object"
// @Success 201 {object} utils.StandardResponse "Favorite added"
// @Failure 404 {object} utils.StandardResponse "User or movie not found"
// @Router /users/{id}/favorites [post]
func (h *UserHandler) AddFavorite(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	link, err := h.service.AddFavorite(c.Context(), id, req.MovieID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  id,
			"movie_id": req.MovieID,
		}).Error("Failed to add favorite")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Favorite added successfully", link)
}

// RemoveFavorite godoc
// @Summary Remove a movie from a user's favorites
// @Description No-op when the favorite does not exist
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Favorite removed"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/favorites/{movieId} [delete]
func (h *UserHandler) RemoveFavorite(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.RemoveFavorite(c.Context(), id, movieID); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  id,
			"movie_id": movieID,
		}).Error("Failed to remove favorite")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Favorite removed successfully", nil)
}

// ListUserReviews godoc
// @Summary List reviews written by a user
// @Tags reviews
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "Reviews"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/reviews [get]
func (h *UserHandler) ListUserReviews(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	reviews, err := h.service.ReviewsByUser(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", id).Error("Failed to list user reviews")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// GetRecommendations godoc
// @Summary Get AI movie recommendations for a user
// @Description Builds a prompt from the user's favorites and queries the recommendation endpoint
// @Tags recommendations
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "Recommendations"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 503 {object} utils.StandardResponse "Recommendations unavailable"
// @Router /users/{id}/recommendations [get]
func (h *UserHandler) GetRecommendations(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	result, err := h.service.RecommendForUser(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", id).Warn("Recommendations not available")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations retrieved successfully", fiber.Map{
		"recommendations": result,
	})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
