package repository

import (
	"context"
	"testing"

	"movieweb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreRepository_FindOrCreateReusesRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "Drama")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.FindOrCreate(ctx, "Drama")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGenreRepository_NamesAreCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	lower, err := repo.FindOrCreate(ctx, "drama")
	require.NoError(t, err)
	upper, err := repo.FindOrCreate(ctx, "Drama")
	require.NoError(t, err)

	assert.NotEqual(t, lower.ID, upper.ID)
}

func TestGenreRepository_FindByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	_, err := repo.FindOrCreate(ctx, "Horror")
	require.NoError(t, err)

	found, err := repo.FindByName(ctx, "Horror")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Horror", found.Name)

	missing, err := repo.FindByName(ctx, "Noir")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGenreRepository_FindAllSortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Western", "Action", "Comedy"} {
		_, err := repo.FindOrCreate(ctx, name)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Action", all[0].Name)
	assert.Equal(t, "Comedy", all[1].Name)
	assert.Equal(t, "Western", all[2].Name)
}

func TestGenreRepository_Rename(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	genre, err := repo.FindOrCreate(ctx, "SciFi")
	require.NoError(t, err)

	renamed, err := repo.Rename(ctx, genre.ID, "Sci-Fi")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, "Sci-Fi", renamed.Name)

	missing, err := repo.Rename(ctx, 9999, "Nothing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGenreRepository_DeleteDetachesMovies(t *testing.T) {
	db := newTestDB(t)
	genreRepo := NewGenreRepository(db)
	movieRepo := NewMovieRepository(db)
	ctx := context.Background()

	genre, err := genreRepo.FindOrCreate(ctx, "Thriller")
	require.NoError(t, err)

	movie := &models.Movie{Title: "Se7en", Genres: []models.Genre{*genre}}
	require.NoError(t, movieRepo.Create(ctx, movie))

	require.NoError(t, genreRepo.Delete(ctx, genre.ID))

	gone, err := genreRepo.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The movie survives, just without the genre.
	found, err := movieRepo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Empty(t, found.Genres)
}
