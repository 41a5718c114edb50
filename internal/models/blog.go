package models

import (
	"time"
)

// Blog represents a travel blog post
type Blog struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Slug          string           `json:"slug,omitempty"`
	HeroImage     string           `json:"hero_image,omitempty"`
	FeaturedImage string           `json:"featured_image,omitempty"`
	Taglines      []string         `json:"taglines,omitempty"`
	Excerpt       string           `json:"excerpt,omitempty"`
	Sections      []ContentSection `json:"content,omitempty"`
	Region        string           `json:"region,omitempty"`
	Country       string           `json:"country,omitempty"`
	City          string           `json:"city,omitempty"`
	AuthorName    string           `json:"author_name,omitempty"`
	AuthorAvatar  string           `json:"author_avatar,omitempty"`
	ReadTime      string           `json:"read_time,omitempty"`
	Active        bool             `json:"is_active"`
	PublishedAt   *time.Time       `json:"published_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ContentSection is one titled block of long-form content, shared by blogs
// and experiences
type ContentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
