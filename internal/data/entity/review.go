package entity

import (
	"github.com/google/uuid"
)

type MovieType string

const (
	MovieTypeMovie MovieType = "movie"
	MovieTypeShow  MovieType = "show"
)

type Review struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	MovieID    int64     `db:"movie_id"`
	MovieType  MovieType `db:"movie_type"`
	MovieTitle string    `db:"movie_title"`
	Rating     int       `db:"rating"` // 1-5
	Content    string    `db:"content"`
}
