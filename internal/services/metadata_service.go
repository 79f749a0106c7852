package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movieweb/internal/config"

	"github.com/sirupsen/logrus"
)

// MovieMetadata is the normalized record returned by the catalog lookup.
type MovieMetadata struct {
	Title    string
	Year     *int
	Director *string
	Rating   *float64
	Plot     string
	Poster   *string
	Genres   []string
}

// MetadataService maps a free-text title to a canonical metadata record using
// the OMDb catalog. Lookups never raise past this boundary: an unknown title
// is ErrMovieNotFound, everything else is ErrMetadataUnavailable.
type MetadataService interface {
	FetchMovieDetails(ctx context.Context, title string) (*MovieMetadata, error)
}

type metadataService struct {
	config     config.OMDBConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewMetadataService(cfg config.OMDBConfig, logger *logrus.Logger) MetadataService {
	return &metadataService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

type omdbResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	IMDBRating string `json:"imdbRating"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	Genre      string `json:"Genre"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

func (s *metadataService) FetchMovieDetails(ctx context.Context, title string) (*MovieMetadata, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	lookupURL := fmt.Sprintf("%s/?apikey=%s&t=%s",
		s.config.BaseURL,
		s.config.APIKey,
		url.QueryEscape(title),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).WithField("title", title).Error("OMDb request failed")
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithFields(logrus.Fields{
			"title":  title,
			"status": resp.StatusCode,
		}).Error("OMDb returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", ErrMetadataUnavailable, resp.StatusCode)
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	if payload.Response != "True" {
		s.logger.WithFields(logrus.Fields{
			"title": title,
			"error": payload.Error,
		}).Warn("OMDb lookup miss")
		return nil, fmt.Errorf("%w: %s", ErrMovieNotFound, payload.Error)
	}

	return normalizeMetadata(payload), nil
}

func normalizeMetadata(payload omdbResponse) *MovieMetadata {
	meta := &MovieMetadata{
		Title: payload.Title,
		Plot:  payload.Plot,
	}

	if year := parseYear(payload.Year); year != nil {
		meta.Year = year
	}
	if payload.Director != "" && payload.Director != "N/A" {
		director := payload.Director
		meta.Director = &director
	}
	if rating, err := strconv.ParseFloat(payload.IMDBRating, 64); err == nil {
		meta.Rating = &rating
	}
	if payload.Poster != "" && payload.Poster != "N/A" {
		poster := payload.Poster
		meta.Poster = &poster
	}
	for _, name := range strings.Split(payload.Genre, ",") {
		name = strings.TrimSpace(name)
		if name != "" && name != "N/A" {
			meta.Genres = append(meta.Genres, name)
		}
	}

	return meta
}

// parseYear accepts plain years and series ranges like "2008-2013".
func parseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if len(raw) < 4 {
		return nil
	}
	year, err := strconv.Atoi(raw[:4])
	if err != nil {
		return nil
	}
	return &year
}
