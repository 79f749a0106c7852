package handlers

import (
	"movieweb/internal/services"
	"movieweb/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// GetPosterUploadURL godoc
// @Summary Get presigned URL for a poster upload
// @Description Generate a presigned URL for uploading a poster image; the returned public URL can be stored on the movie
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPosterUploadURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.minioService.GeneratePosterUploadURL(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
