package models

import (
	"time"
)

// Tag is a content label. Collection content references tags by name, not id;
// name uniqueness is a backend convention, not enforced here.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
