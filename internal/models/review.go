package models

import "time"

// Review belongs to exactly one user and one movie. Reviews are removed
// together with their movie.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Rating    float64   `gorm:"not null" json:"rating" example:"9.0"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	MovieID   uint      `gorm:"index;not null" json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
