package services

import (
	"context"
	"fmt"
	"strings"

	"movieweb/internal/models"
	"movieweb/internal/repository"

	"github.com/sirupsen/logrus"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	AddUser(ctx context.Context, name string) (*models.User, error)

	AddFavorite(ctx context.Context, userID, movieID uint) (*models.UserMovie, error)
	RemoveFavorite(ctx context.Context, userID, movieID uint) error
	FavoriteMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	FansOfMovie(ctx context.Context, movieID uint) ([]models.User, error)

	ReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error)
	RecommendForUser(ctx context.Context, userID uint) (string, error)
}

type userService struct {
	userRepo     repository.UserRepository
	movieRepo    repository.MovieRepository
	favoriteRepo repository.FavoriteRepository
	reviewRepo   repository.ReviewRepository
	recommender  RecommendationService
	logger       *logrus.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
	favoriteRepo repository.FavoriteRepository,
	reviewRepo repository.ReviewRepository,
	recommender RecommendationService,
	logger *logrus.Logger,
) UserService {
	return &userService{
		userRepo:     userRepo,
		movieRepo:    movieRepo,
		favoriteRepo: favoriteRepo,
		reviewRepo:   reviewRepo,
		recommender:  recommender,
		logger:       logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) AddUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	user := &models.User{Name: name}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddFavorite links an existing movie to an existing user. The link is
// idempotent: re-adding the pair returns the existing row.
func (s *userService) AddFavorite(ctx context.Context, userID, movieID uint) (*models.UserMovie, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	return s.favoriteRepo.Add(ctx, userID, movieID)
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, movieID uint) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	return s.favoriteRepo.Remove(ctx, userID, movieID)
}

func (s *userService) FavoriteMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.favoriteRepo.MoviesByUser(ctx, userID)
}

func (s *userService) FansOfMovie(ctx context.Context, movieID uint) ([]models.User, error) {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}
	return s.favoriteRepo.UsersByMovie(ctx, movieID)
}

func (s *userService) ReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.reviewRepo.FindByUser(ctx, userID)
}

// RecommendForUser builds a prompt from the user's favorites and queries the
// recommendation endpoint.
func (s *userService) RecommendForUser(ctx context.Context, userID uint) (string, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return "", err
	}

	movies, err := s.favoriteRepo.MoviesByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	titles := make([]string, 0, len(movies))
	for _, movie := range movies {
		titles = append(titles, movie.Title)
	}

	return s.recommender.Recommend(ctx, titles)
}

func (s *userService) requireUser(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return nil
}
