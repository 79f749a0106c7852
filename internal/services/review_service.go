package services

import (
	"context"
	"fmt"
	"strings"

	"movieweb/internal/models"
	"movieweb/internal/repository"
)

type ReviewService interface {
	AddReview(ctx context.Context, text string, rating float64, userID, movieID uint) (*models.Review, error)
	ReviewsByMovie(ctx context.Context, movieID uint) ([]models.Review, error)
	UpdateReview(ctx context.Context, id uint, text *string, rating *float64) (*models.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		movieRepo:  movieRepo,
	}
}

func (s *reviewService) AddReview(ctx context.Context, text string, rating float64, userID, movieID uint) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: review text is required", ErrValidation)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	review := &models.Review{
		Text:    text,
		Rating:  rating,
		UserID:  userID,
		MovieID: movieID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ReviewsByMovie(ctx context.Context, movieID uint) ([]models.Review, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}
	return s.reviewRepo.FindByMovie(ctx, movieID)
}

func (s *reviewService) UpdateReview(ctx context.Context, id uint, text *string, rating *float64) (*models.Review, error) {
	if text != nil && strings.TrimSpace(*text) == "" {
		return nil, fmt.Errorf("%w: review text cannot be empty", ErrValidation)
	}
	return s.reviewRepo.ApplyUpdate(ctx, id, text, rating)
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	return s.reviewRepo.Delete(ctx, id)
}
