package handlers

type CreateUserRequest struct {
	Name string `json:"name" example:"Ava"`
}

type CreateMovieRequest struct {
	Title    string   `json:"title" example:"The Matrix"`
	Director *string  `json:"director,omitempty" example:"Lana Wachowski"`
	Year     *int     `json:"year,omitempty" example:"1999"`
	Rating   *float64 `json:"rating,omitempty" example:"8.7"`
	Poster   *string  `json:"poster,omitempty"`
	Genres   []string `json:"genres,omitempty" example:"Action,Science Fiction"`
}

// UpdateMovieRequest is a partial update: absent fields stay unchanged.
type UpdateMovieRequest struct {
	Title    *string  `json:"title,omitempty"`
	Director *string  `json:"director,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Poster   *string  `json:"poster,omitempty"`
}

type AddFavoriteRequest struct {
	MovieID uint `json:"movie_id" example:"1"`
}

// EnrichedMovieRequest adds a movie by catalog lookup: only a title plus
// optional extra genre names.
type EnrichedMovieRequest struct {
	Title  string   `json:"title" example:"Inception"`
	Genres []string `json:"genres,omitempty"`
}

type CreateGenreRequest struct {
	Name string `json:"name" example:"Drama"`
}

type CreateReviewRequest struct {
	Text   string  `json:"text" example:"Loved the pacing."`
	Rating float64 `json:"rating" example:"9"`
	UserID uint    `json:"user_id" example:"1"`
}

type UpdateReviewRequest struct {
	Text   *string  `json:"text,omitempty"`
	Rating *float64 `json:"rating,omitempty"`
}
