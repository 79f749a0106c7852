package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movieweb/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newMetadataService(baseURL string) MetadataService {
	return NewMetadataService(config.OMDBConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		HTTPTimeout: 2 * time.Second,
	}, testLogger())
}

func TestMetadataService_FetchMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "The Matrix", r.URL.Query().Get("t"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Title": "The Matrix",
			"Year": "1999",
			"Director": "Lana Wachowski, Lilly Wachowski",
			"imdbRating": "8.7",
			"Plot": "A computer hacker learns the truth.",
			"Poster": "https://example.com/matrix.jpg",
			"Genre": "Action, Sci-Fi",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	meta, err := newMetadataService(server.URL).FetchMovieDetails(context.Background(), "The Matrix")
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", meta.Title)
	require.NotNil(t, meta.Year)
	assert.Equal(t, 1999, *meta.Year)
	require.NotNil(t, meta.Rating)
	assert.Equal(t, 8.7, *meta.Rating)
	require.NotNil(t, meta.Director)
	assert.Equal(t, "Lana Wachowski, Lilly Wachowski", *meta.Director)
	require.NotNil(t, meta.Poster)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, meta.Genres)
}

func TestMetadataService_UnknownTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	_, err := newMetadataService(server.URL).FetchMovieDetails(context.Background(), "Nonexistentmovietitle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMetadataService_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newMetadataService(server.URL).FetchMovieDetails(context.Background(), "Anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
}

func TestMetadataService_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := newMetadataService(server.URL).FetchMovieDetails(context.Background(), "Anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMetadataUnavailable)
}

func TestMetadataService_EmptyTitle(t *testing.T) {
	_, err := newMetadataService("http://localhost:0").FetchMovieDetails(context.Background(), "  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMetadataService_NormalizesMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Title": "Obscure Film",
			"Year": "N/A",
			"Director": "N/A",
			"imdbRating": "N/A",
			"Poster": "N/A",
			"Genre": "N/A",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	meta, err := newMetadataService(server.URL).FetchMovieDetails(context.Background(), "Obscure Film")
	require.NoError(t, err)

	assert.Nil(t, meta.Year)
	assert.Nil(t, meta.Director)
	assert.Nil(t, meta.Rating)
	assert.Nil(t, meta.Poster)
	assert.Empty(t, meta.Genres)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"1999", intOf(1999)},
		{"2008-2013", intOf(2008)},
		{"2021-", intOf(2021)},
		{"N/A", nil},
		{"", nil},
		{"abc", nil},
	}

	for _, tt := range tests {
		got := parseYear(tt.raw)
		if tt.want == nil {
			assert.Nil(t, got, "raw=%q", tt.raw)
		} else {
			require.NotNil(t, got, "raw=%q", tt.raw)
			assert.Equal(t, *tt.want, *got, "raw=%q", tt.raw)
		}
	}
}

func intOf(i int) *int { return &i }
