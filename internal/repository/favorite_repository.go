package repository

import (
	"context"
	"errors"
	"time"

	"movieweb/internal/database"
	"movieweb/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, movieID uint) (*models.UserMovie, error)
	Remove(ctx context.Context, userID, movieID uint) error
	Exists(ctx context.Context, userID, movieID uint) (bool, error)
	MoviesByUser(ctx context.Context, userID uint) ([]models.Movie, error)
	UsersByMovie(ctx context.Context, movieID uint) ([]models.User, error)
}

type favoriteRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFavoriteRepository(db *database.Database) FavoriteRepository {
	return &favoriteRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *favoriteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Add links the movie to the user's favorites. Adding an existing pair is a
// no-op that returns the existing link.
func (r *favoriteRepository) Add(ctx context.Context, userID, movieID uint) (*models.UserMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var link models.UserMovie
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&link).Error
	if err == nil {
		return &link, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	link = models.UserMovie{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Remove deletes the favorite link; removing a missing link is a no-op.
func (r *favoriteRepository) Remove(ctx context.Context, userID, movieID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.UserMovie{}).Error
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, movieID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserMovie{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) MoviesByUser(ctx context.Context, userID uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Joins("JOIN user_movies ON user_movies.movie_id = movies.id").
		Where("user_movies.user_id = ?", userID).
		Order("user_movies.created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

func (r *favoriteRepository) UsersByMovie(ctx context.Context, movieID uint) ([]models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_movies ON user_movies.user_id = users.id").
		Where("user_movies.movie_id = ?", movieID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
