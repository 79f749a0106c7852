package handlers

import (
	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Post a review for a movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param review body CreateReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse "Review created"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "User or movie not found"
// @Router /movies/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.AddReview(c.Context(), req.Text, req.Rating, req.UserID, movieID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  req.UserID,
			"movie_id": movieID,
		}).Error("Failed to create review")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review)
}

// ListMovieReviews godoc
// @Summary List reviews of a movie
// @Tags reviews
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Reviews"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/reviews [get]
func (h *ReviewHandler) ListMovieReviews(c *fiber.Ctx) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	reviews, err := h.service.ReviewsByMovie(c.Context(), movieID)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", movieID).Error("Failed to list reviews")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// UpdateReview godoc
// @Summary Update a review
// @Description Partial update: only the provided fields change
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body UpdateReviewRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Review updated"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review, err := h.service.UpdateReview(c.Context(), id, req.Text, req.Rating)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update review")
		return utils.ServiceErrorResponse(c, err)
	}
	if review == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse "Review deleted"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.DeleteReview(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete review")
		return utils.ServiceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}
