package repository

import (
	"context"
	"errors"
	"time"

	"movieweb/internal/database"
	"movieweb/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Review, error)
	ApplyUpdate(ctx context.Context, id uint, text *string, rating *float64) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *reviewRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByMovie(ctx context.Context, movieID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (r *reviewRepository) FindByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// ApplyUpdate changes only the provided fields. Returns (nil, nil) when the
// review does not exist.
func (r *reviewRepository) ApplyUpdate(ctx context.Context, id uint, text *string, rating *float64) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	fields := make(map[string]interface{})
	if text != nil {
		fields["text"] = *text
	}
	if rating != nil {
		fields["rating"] = *rating
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&review).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &review, nil
}

// Delete removes the review; deleting a missing review is a no-op.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}
