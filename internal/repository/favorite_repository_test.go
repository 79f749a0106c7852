package repository

import (
	"context"
	"testing"

	"movieweb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ava"}
	require.NoError(t, userRepo.Create(ctx, user))
	movie := &models.Movie{Title: "The Matrix"}
	require.NoError(t, movieRepo.Create(ctx, movie))

	first, err := favoriteRepo.Add(ctx, user.ID, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Adding the same pair again returns the existing link, no duplicate.
	second, err := favoriteRepo.Add(ctx, user.ID, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.MovieID, second.MovieID)

	movies, err := favoriteRepo.MoviesByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
}

func TestFavoriteRepository_RemoveAndExists(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ben"}
	require.NoError(t, userRepo.Create(ctx, user))
	movie := &models.Movie{Title: "Heat"}
	require.NoError(t, movieRepo.Create(ctx, movie))

	_, err := favoriteRepo.Add(ctx, user.ID, movie.ID)
	require.NoError(t, err)

	exists, err := favoriteRepo.Exists(ctx, user.ID, movie.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, favoriteRepo.Remove(ctx, user.ID, movie.ID))

	exists, err = favoriteRepo.Exists(ctx, user.ID, movie.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing an absent link is a no-op.
	require.NoError(t, favoriteRepo.Remove(ctx, user.ID, movie.ID))
}

func TestFavoriteRepository_ScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)
	ctx := context.Background()

	ava := &models.User{Name: "Ava"}
	ben := &models.User{Name: "Ben"}
	require.NoError(t, userRepo.Create(ctx, ava))
	require.NoError(t, userRepo.Create(ctx, ben))

	matrix := &models.Movie{Title: "The Matrix"}
	heat := &models.Movie{Title: "Heat"}
	require.NoError(t, movieRepo.Create(ctx, matrix))
	require.NoError(t, movieRepo.Create(ctx, heat))

	_, err := favoriteRepo.Add(ctx, ava.ID, matrix.ID)
	require.NoError(t, err)
	_, err = favoriteRepo.Add(ctx, ben.ID, heat.ID)
	require.NoError(t, err)

	avaMovies, err := favoriteRepo.MoviesByUser(ctx, ava.ID)
	require.NoError(t, err)
	require.Len(t, avaMovies, 1)
	assert.Equal(t, "The Matrix", avaMovies[0].Title)

	benMovies, err := favoriteRepo.MoviesByUser(ctx, ben.ID)
	require.NoError(t, err)
	require.Len(t, benMovies, 1)
	assert.Equal(t, "Heat", benMovies[0].Title)
}

func TestFavoriteRepository_UsersByMovie(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	movieRepo := NewMovieRepository(db)
	favoriteRepo := NewFavoriteRepository(db)
	ctx := context.Background()

	ava := &models.User{Name: "Ava"}
	ben := &models.User{Name: "Ben"}
	require.NoError(t, userRepo.Create(ctx, ava))
	require.NoError(t, userRepo.Create(ctx, ben))

	movie := &models.Movie{Title: "Alien"}
	require.NoError(t, movieRepo.Create(ctx, movie))

	_, err := favoriteRepo.Add(ctx, ava.ID, movie.ID)
	require.NoError(t, err)
	_, err = favoriteRepo.Add(ctx, ben.ID, movie.ID)
	require.NoError(t, err)

	fans, err := favoriteRepo.UsersByMovie(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, fans, 2)
	assert.Equal(t, "Ava", fans[0].Name)
	assert.Equal(t, "Ben", fans[1].Name)
}

func TestFavoriteRepository_EmptyResultIsSlice(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	favoriteRepo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Loner"}
	require.NoError(t, userRepo.Create(ctx, user))

	movies, err := favoriteRepo.MoviesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}
