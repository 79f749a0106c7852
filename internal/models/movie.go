package models

import (
	"time"
)

// Movie is the central catalog entity. Director, year, rating and poster are
// optional and stay NULL when unknown; rating uses the external 0-10 scale.
type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title     string    `gorm:"not null;index;size:100" json:"title" example:"The Matrix"`
	Director  *string   `gorm:"size:50" json:"director,omitempty" example:"Lana Wachowski"`
	Year      *int      `json:"year,omitempty" example:"1999"`
	Rating    *float64  `gorm:"index" json:"rating,omitempty" example:"8.7"`
	Poster    *string   `gorm:"size:255" json:"poster,omitempty" example:"https://m.media-amazon.com/images/matrix.jpg"`
	Genres    []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieUpdate carries a partial update: nil fields are left untouched.
type MovieUpdate struct {
	Title    *string
	Director *string
	Year     *int
	Rating   *float64
	Poster   *string
}

// Fields returns the column map for the set fields only.
func (u MovieUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Director != nil {
		fields["director"] = *u.Director
	}
	if u.Year != nil {
		fields["year"] = *u.Year
	}
	if u.Rating != nil {
		fields["rating"] = *u.Rating
	}
	if u.Poster != nil {
		fields["poster"] = *u.Poster
	}
	return fields
}
