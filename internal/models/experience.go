package models

import (
	"time"
)

// Experience represents a bookable travel experience
type Experience struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	FeaturedImage  string           `json:"featured_image,omitempty"`
	Taglines       []string         `json:"taglines,omitempty"`
	Region         string           `json:"region,omitempty"`
	Country        string           `json:"country,omitempty"`
	City           string           `json:"city,omitempty"`
	BestTimes      []BestTime       `json:"best_time,omitempty"`
	CarouselImages []string         `json:"carousel_images,omitempty"`
	Brief          string           `json:"brief_description,omitempty"`
	Sections       []ContentSection `json:"content,omitempty"`
	Gallery        []GalleryItem    `json:"gallery,omitempty"`
	Story          string           `json:"story,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	DurationDays   int              `json:"duration_days,omitempty"`
	Price          float64          `json:"price,omitempty"`
	Active         bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// BestTime is a recommended visiting window
type BestTime struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GalleryItem is a captioned gallery image
type GalleryItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
