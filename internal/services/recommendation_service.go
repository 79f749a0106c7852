package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"movieweb/internal/config"

	"github.com/sirupsen/logrus"
)

// RecommendationService asks a chat-style AI endpoint for movie suggestions.
// A transport failure or a response without a result field is reported as
// ErrRecommendationsMissing, never surfaced raw.
type RecommendationService interface {
	Recommend(ctx context.Context, favoriteTitles []string) (string, error)
}

type recommendationService struct {
	config     config.RecommenderConfig
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewRecommendationService(cfg config.RecommenderConfig, logger *logrus.Logger) RecommendationService {
	return &recommendationService{
		config: cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Result string `json:"result"`
}

func (s *recommendationService) Recommend(ctx context.Context, favoriteTitles []string) (string, error) {
	if len(favoriteTitles) == 0 {
		return "", fmt.Errorf("%w: user has no favorite movies", ErrValidation)
	}

	prompt := fmt.Sprintf(
		"Suggest five movies for someone whose favorite movies are: %s. Answer with a short list and one sentence per movie.",
		strings.Join(favoriteTitles, ", "),
	)

	body, err := json.Marshal(chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecommendationsMissing, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecommendationsMissing, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("Recommendation request failed")
		return "", fmt.Errorf("%w: %v", ErrRecommendationsMissing, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WithField("status", resp.StatusCode).Error("Recommendation endpoint returned non-OK status")
		return "", fmt.Errorf("%w: status %d", ErrRecommendationsMissing, resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecommendationsMissing, err)
	}
	if payload.Result == "" {
		return "", ErrRecommendationsMissing
	}

	return payload.Result, nil
}
