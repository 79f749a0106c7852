package repository

import (
	"context"
	"testing"

	"movieweb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReviewFixtures(t *testing.T, userRepo UserRepository, movieRepo MovieRepository) (*models.User, *models.Movie) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Name: "Ava"}
	require.NoError(t, userRepo.Create(ctx, user))
	movie := &models.Movie{Title: "Arrival"}
	require.NoError(t, movieRepo.Create(ctx, movie))
	return user, movie
}

func TestReviewRepository_CreateAndFindByMovie(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	user, movie := seedReviewFixtures(t, userRepo, movieRepo)

	review := &models.Review{
		Text:    "Quiet and devastating.",
		Rating:  9,
		UserID:  user.ID,
		MovieID: movie.ID,
	}
	require.NoError(t, reviewRepo.Create(ctx, review))
	require.NotZero(t, review.ID)

	reviews, err := reviewRepo.FindByMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Quiet and devastating.", reviews[0].Text)
	assert.Equal(t, user.ID, reviews[0].UserID)
}

func TestReviewRepository_FindByUser(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	user, movie := seedReviewFixtures(t, userRepo, movieRepo)

	require.NoError(t, reviewRepo.Create(ctx, &models.Review{
		Text: "First take", Rating: 7, UserID: user.ID, MovieID: movie.ID,
	}))
	require.NoError(t, reviewRepo.Create(ctx, &models.Review{
		Text: "Second take", Rating: 8, UserID: user.ID, MovieID: movie.ID,
	}))

	reviews, err := reviewRepo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	none, err := reviewRepo.FindByUser(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReviewRepository_ApplyUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	user, movie := seedReviewFixtures(t, userRepo, movieRepo)

	review := &models.Review{Text: "Fine.", Rating: 6, UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, reviewRepo.Create(ctx, review))

	// Only the rating changes; the text stays.
	updated, err := reviewRepo.ApplyUpdate(ctx, review.ID, nil, floatPtr(8))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Fine.", updated.Text)
	assert.Equal(t, 8.0, updated.Rating)

	missing, err := reviewRepo.ApplyUpdate(ctx, 9999, strPtr("nope"), nil)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReviewRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	user, movie := seedReviewFixtures(t, userRepo, movieRepo)

	review := &models.Review{Text: "Gone soon", Rating: 5, UserID: user.ID, MovieID: movie.ID}
	require.NoError(t, reviewRepo.Create(ctx, review))

	require.NoError(t, reviewRepo.Delete(ctx, review.ID))

	reviews, err := reviewRepo.FindByMovie(ctx, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// Deleting again is a no-op.
	require.NoError(t, reviewRepo.Delete(ctx, review.ID))
}
