package services

import (
	"context"
	"fmt"
	"strings"

	"movieweb/internal/models"
	"movieweb/internal/repository"

	"github.com/sirupsen/logrus"
)

const defaultHighlightLimit = 5

// NewMovieInput describes a movie to create. Genres are resolved by name
// through the lookup-or-create path before the movie is stored.
type NewMovieInput struct {
	Title    string
	Director *string
	Year     *int
	Rating   *float64
	Poster   *string
	Genres   []string
}

type MovieService interface {
	// CRUD operations
	CreateMovie(ctx context.Context, input NewMovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, update models.MovieUpdate) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) (bool, error)
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// Query operations
	SearchMovies(ctx context.Context, query string) ([]models.Movie, error)
	RecentlyAdded(ctx context.Context, limit int) ([]models.Movie, error)
	TopRated(ctx context.Context, limit int) ([]models.Movie, error)

	// Enrichment: resolve a title against the catalog, store the result and
	// link it as the user's favorite in one flow.
	AddMovieForUser(ctx context.Context, userID uint, title string, genreNames []string) (*models.Movie, error)

	// Genre links on an existing movie
	AttachGenre(ctx context.Context, movieID, genreID uint) (*models.Movie, error)
	DetachGenre(ctx context.Context, movieID, genreID uint) (*models.Movie, error)

	// Genre operations
	ListGenres(ctx context.Context) ([]models.Genre, error)
	AddGenre(ctx context.Context, name string) (*models.Genre, error)
	GetGenre(ctx context.Context, id uint) (*models.Genre, error)
	GetGenreByName(ctx context.Context, name string) (*models.Genre, error)
	RenameGenre(ctx context.Context, id uint, newName string) (*models.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
	MoviesByGenre(ctx context.Context, genreID uint) ([]models.Movie, error)
}

// PosterStore is the slice of the object store the movie service needs to
// clean up stored poster images. Satisfied by MinIOService; may be nil when
// no object store is configured.
type PosterStore interface {
	OwnsPoster(url string) bool
	DeletePoster(objectPath string) error
}

type movieService struct {
	repo         repository.MovieRepository
	genreRepo    repository.GenreRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	metadata     MetadataService
	posterStore  PosterStore
	logger       *logrus.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	metadata MetadataService,
	posterStore PosterStore,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		repo:         repo,
		genreRepo:    genreRepo,
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		metadata:     metadata,
		posterStore:  posterStore,
		logger:       logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, input NewMovieInput) (*models.Movie, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	genres, err := s.resolveGenres(ctx, input.Genres)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:    input.Title,
		Director: input.Director,
		Year:     input.Year,
		Rating:   input.Rating,
		Poster:   input.Poster,
		Genres:   genres,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, update models.MovieUpdate) (*models.Movie, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}

	var oldPoster *string
	if update.Poster != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, nil
		}
		oldPoster = existing.Poster
	}

	movie, err := s.repo.ApplyUpdate(ctx, id, update)
	if err != nil || movie == nil {
		return movie, err
	}

	if update.Poster != nil && oldPoster != nil && *oldPoster != *update.Poster {
		s.cleanupPoster(*oldPoster)
	}
	return movie, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) (bool, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if movie == nil {
		return false, nil
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if movie.Poster != nil {
		s.cleanupPoster(*movie.Poster)
	}
	return true, nil
}

// cleanupPoster removes a stale poster object from the store. Posters hosted
// elsewhere (catalog image URLs) are left alone, and a failed cleanup never
// fails the surrounding operation.
func (s *movieService) cleanupPoster(url string) {
	if s.posterStore == nil || !s.posterStore.OwnsPoster(url) {
		return
	}
	if err := s.posterStore.DeletePoster(url); err != nil {
		s.logger.WithError(err).WithField("poster", url).Warn("Failed to delete stale poster object")
	}
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) SearchMovies(ctx context.Context, query string) ([]models.Movie, error) {
	return s.repo.Search(ctx, query)
}

func (s *movieService) RecentlyAdded(ctx context.Context, limit int) ([]models.Movie, error) {
	if limit < 1 {
		limit = defaultHighlightLimit
	}
	return s.repo.RecentlyAdded(ctx, limit)
}

func (s *movieService) TopRated(ctx context.Context, limit int) ([]models.Movie, error) {
	if limit < 1 {
		limit = defaultHighlightLimit
	}
	return s.repo.TopRated(ctx, limit)
}

// AddMovieForUser fetches catalog metadata for the title, creates the movie
// with the requested plus catalog genres, and marks it as the user's
// favorite. Metadata failures surface as validation-style outcomes, not
// server faults.
func (s *movieService) AddMovieForUser(ctx context.Context, userID uint, title string, genreNames []string) (*models.Movie, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	meta, err := s.metadata.FetchMovieDetails(ctx, title)
	if err != nil {
		return nil, err
	}

	names := append([]string{}, genreNames...)
	names = append(names, meta.Genres...)

	movie, err := s.CreateMovie(ctx, NewMovieInput{
		Title:    meta.Title,
		Director: meta.Director,
		Year:     meta.Year,
		Rating:   meta.Rating,
		Poster:   meta.Poster,
		Genres:   names,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.favoriteRepo.Add(ctx, userID, movie.ID); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movie.ID,
		"title":    movie.Title,
	}).Info("Movie added from catalog")

	return movie, nil
}

// AttachGenre links an existing genre to an existing movie. Attaching a genre
// the movie already has is a no-op; the returned movie reflects the links.
func (s *movieService) AttachGenre(ctx context.Context, movieID, genreID uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	genre, err := s.genreRepo.FindByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %d", ErrNotFound, genreID)
	}

	if err := s.repo.AttachGenre(ctx, movieID, genreID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, movieID)
}

// DetachGenre removes the genre link from the movie; a link that does not
// exist is a no-op.
func (s *movieService) DetachGenre(ctx context.Context, movieID, genreID uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, movieID)
	}

	if err := s.repo.DetachGenre(ctx, movieID, genreID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, movieID)
}

func (s *movieService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}

// AddGenre is lookup-or-create: resolving an existing name returns the
// existing genre instead of a duplicate.
func (s *movieService) AddGenre(ctx context.Context, name string) (*models.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: genre name is required", ErrValidation)
	}
	return s.genreRepo.FindOrCreate(ctx, name)
}

func (s *movieService) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	return s.genreRepo.FindByID(ctx, id)
}

func (s *movieService) GetGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	return s.genreRepo.FindByName(ctx, name)
}

// RenameGenre rejects a name already taken by another genre instead of
// letting the unique index violation surface as a server fault.
func (s *movieService) RenameGenre(ctx context.Context, id uint, newName string) (*models.Genre, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("%w: genre name is required", ErrValidation)
	}

	existing, err := s.genreRepo.FindByName(ctx, newName)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, fmt.Errorf("%w: genre %q already exists", ErrValidation, newName)
	}

	return s.genreRepo.Rename(ctx, id, newName)
}

func (s *movieService) DeleteGenre(ctx context.Context, id uint) error {
	return s.genreRepo.Delete(ctx, id)
}

func (s *movieService) MoviesByGenre(ctx context.Context, genreID uint) ([]models.Movie, error) {
	genre, err := s.genreRepo.FindByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %d", ErrNotFound, genreID)
	}
	return s.repo.FindByGenre(ctx, genreID)
}

// resolveGenres maps names to genre rows, deduplicating and creating missing
// ones. The movie's genre list never holds the same genre twice.
func (s *movieService) resolveGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	var genres []models.Genre
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		genre, err := s.genreRepo.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}
