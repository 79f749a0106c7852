package handlers

import (
	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.MovieService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// ListGenres godoc
// @Summary List all genres
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of genres"
// @Router /genres [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// GetGenre godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre details"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.GetGenre(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get genre")
		return utils.ServiceErrorResponse(c, err)
	}
	if genre == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre retrieved successfully", genre)
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Lookup-or-create: posting an existing name returns the existing genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body CreateGenreRequest true "Genre request object"
// @Success 201 {object} utils.StandardResponse "Genre created"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.AddGenre(c.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body CreateGenreRequest true "New genre name"
// @Success 200 {object} utils.StandardResponse "Genre updated"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req CreateGenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.RenameGenre(c.Context(), id, req.Name)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to rename genre")
		return utils.ServiceErrorResponse(c, err)
	}
	if genre == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Genre not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Detaches the genre from its movies; movies themselves are kept
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre deleted"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete genre")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}

// ListGenreMovies godoc
// @Summary List movies in a genre
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Movies"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id}/movies [get]
func (h *GenreHandler) ListGenreMovies(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	movies, err := h.service.MoviesByGenre(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("genre_id", id).Error("Failed to list genre movies")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}
