package services

import "errors"

// Sentinel errors shared by the service layer. Handlers map ErrValidation to
// a 400 and ErrNotFound to a 404; everything else is a server error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")

	// Metadata client outcomes: the title is unknown to the catalog vs the
	// catalog being unreachable or answering with an unexpected shape.
	ErrMovieNotFound          = errors.New("movie not found in catalog")
	ErrMetadataUnavailable    = errors.New("metadata service unavailable")
	ErrRecommendationsMissing = errors.New("no recommendations available")
)
