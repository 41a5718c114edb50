package models

import (
	"time"
)

// ContactInquiry is a customer inquiry. Read-only from the admin's
// perspective apart from deletion.
type ContactInquiry struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Destination string    `json:"destination,omitempty"`
	TravelFrom  string    `json:"travel_from,omitempty"`
	TravelTo    string    `json:"travel_to,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message,omitempty"`
	Source      string    `json:"source,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
