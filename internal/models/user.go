package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name      string    `gorm:"not null;size:50" json:"name" example:"Ava"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserMovie is the favorite link between a user and a movie. The pair is the
// identity: one row per (user, movie).
type UserMovie struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	MovieID   uint      `gorm:"primaryKey" json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserMovie) TableName() string {
	return "user_movies"
}
