package models

import "time"

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;size:30" json:"name" example:"Drama"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}

type MovieGenre struct {
	MovieID uint `gorm:"primaryKey" json:"movie_id"`
	GenreID uint `gorm:"primaryKey" json:"genre_id"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
