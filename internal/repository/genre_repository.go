package repository

import (
	"context"
	"errors"
	"time"

	"movieweb/internal/database"
	"movieweb/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	FindOrCreate(ctx context.Context, name string) (*models.Genre, error)
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindByName(ctx context.Context, name string) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
	Rename(ctx context.Context, id uint, newName string) (*models.Genre, error)
	Delete(ctx context.Context, id uint) error
}

type genreRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *genreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(genre).Error
}

// FindOrCreate resolves a name to its genre, creating it only when absent.
// Resolving the same name twice yields the same row.
func (r *genreRepository) FindOrCreate(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&genre, models.Genre{
		Name: name,
	}).Error
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindByName(ctx context.Context, name string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("name").Find(&genres).Error
	return genres, err
}

// Rename returns (nil, nil) when the genre does not exist.
func (r *genreRepository) Rename(ctx context.Context, id uint, newName string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&genre).Update("name", newName).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

// Delete removes the genre and detaches it from movies. Movies themselves are
// never removed.
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&models.MovieGenre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Genre{}, id).Error
	})
}
