package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movieweb/internal/database"
	"movieweb/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	ApplyUpdate(ctx context.Context, id uint, update models.MovieUpdate) (*models.Movie, error)
	Delete(ctx context.Context, id uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)

	// Genre links on an existing movie
	AttachGenre(ctx context.Context, movieID, genreID uint) error
	DetachGenre(ctx context.Context, movieID, genreID uint) error

	// Query operations
	Search(ctx context.Context, query string) ([]models.Movie, error)
	RecentlyAdded(ctx context.Context, limit int) ([]models.Movie, error)
	TopRated(ctx context.Context, limit int) ([]models.Movie, error)
	FindByGenre(ctx context.Context, genreID uint) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create stores the movie together with its genre links. Attached genres must
// already exist; they are linked, never created here.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

// ApplyUpdate changes only the fields set in update. Returns (nil, nil) when
// the movie does not exist.
func (r *movieRepository) ApplyUpdate(ctx context.Context, id uint, update models.MovieUpdate) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	fields := update.Fields()
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&movie).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.findWithGenres(ctx, id)
}

// Delete removes the movie plus its favorite links, reviews and genre links
// in one transaction. Returns false when the movie does not exist or the
// cascade fails; a failed cascade leaves the store untouched.
func (r *movieRepository) Delete(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movie models.Movie
		if err := tx.First(&movie, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Where("movie_id = ?", id).Delete(&models.UserMovie{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Movie{}, id).Error; err != nil {
			return err
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// AttachGenre links the genre to the movie. Attaching an existing pair is a
// no-op, so a movie never carries the same genre twice.
func (r *movieRepository) AttachGenre(ctx context.Context, movieID, genreID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var link models.MovieGenre
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND genre_id = ?", movieID, genreID).
		First(&link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(&models.MovieGenre{
		MovieID: movieID,
		GenreID: genreID,
	}).Error
}

// DetachGenre removes the genre link; detaching an absent link is a no-op.
func (r *movieRepository) DetachGenre(ctx context.Context, movieID, genreID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("movie_id = ? AND genre_id = ?", movieID, genreID).
		Delete(&models.MovieGenre{}).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.findWithGenres(ctx, id)
}

func (r *movieRepository) findWithGenres(ctx context.Context, id uint) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").Order("id").Find(&movies).Error
	return movies, err
}

// Search matches the query as a case-insensitive substring of the title or
// director. An empty query yields no results.
func (r *movieRepository) Search(ctx context.Context, query string) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if strings.TrimSpace(query) == "" {
		return []models.Movie{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(director) LIKE ?", pattern, pattern).
		Order("id").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

func (r *movieRepository) RecentlyAdded(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// TopRated orders by rating descending; movies without a rating sort last.
func (r *movieRepository) TopRated(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Order("rating IS NULL, rating DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByGenre(ctx context.Context, genreID uint) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
		Where("movie_genres.genre_id = ?", genreID).
		Order("movies.id").
		Find(&movies).Error
	return movies, err
}
