package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds one Agent to one game for the lifetime of that game.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Agent     *Agent    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
