package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Collection represents a curated collection owning content records
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionContent represents a content record belonging to a collection.
// collection_id is set once at creation and never included in updates.
type CollectionContent struct {
	ID               string            `json:"id"`
	CollectionID     string            `json:"collection_id"`
	PropertyName     string            `json:"property_name,omitempty"`
	FeaturedImage    string            `json:"featured_image,omitempty"`
	HeroImage        string            `json:"hero_image,omitempty"`
	AboutCollection  string            `json:"about_collection,omitempty"`
	Features         []Feature         `json:"features,omitempty"`
	AboutDestination *AboutDestination `json:"about_destination,omitempty"`
	Region           string            `json:"region,omitempty"`
	Country          string            `json:"country,omitempty"`
	City             string            `json:"city,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	Active           bool              `json:"is_active"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Collection       *Collection       `json:"collection,omitempty"` // embedded parent for display
}

// Feature is one highlight block of a collection content record
type Feature struct {
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Images  FeatureImages `json:"images"`
}

// FeatureImages is the wire form of a feature's image list. The backend has
// shipped two shapes over time: a bare JSON array of URL strings, and an
// object wrapping that array in a "media" field. Both decode to a plain
// ordered slice; anything else decodes to nil rather than failing.
type FeatureImages []string

// UnmarshalJSON accepts both historical wire shapes
func (f *FeatureImages) UnmarshalJSON(data []byte) error {
	var urls []string
	if err := json.Unmarshal(data, &urls); err == nil {
		*f = urls
		return nil
	}

	var wrapped struct {
		Media []string `json:"media"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*f = wrapped.Media
		return nil
	}

	*f = nil
	return nil
}

// AboutDestination is the polymorphic destination-description field. Current
// records carry a single {"description": ...} object; legacy records carry an
// ordered array of titled sections. The union exists only at the wire
// boundary — Text collapses it to one editable string.
type AboutDestination struct {
	Description string
	Sections    []DestinationSection
}

// DestinationSection is one block of the legacy array shape
type DestinationSection struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// UnmarshalJSON sniffs the wire shape: array of sections (legacy) or a single
// object exposing a description field (current). Unexpected shapes decode to
// the zero value instead of returning an error.
func (a *AboutDestination) UnmarshalJSON(data []byte) error {
	*a = AboutDestination{}

	var sections []DestinationSection
	if err := json.Unmarshal(data, &sections); err == nil {
		a.Sections = sections
		return nil
	}

	var single struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &single); err == nil {
		a.Description = single.Description
		return nil
	}

	return nil
}

// MarshalJSON always emits the current single-object shape
func (a AboutDestination) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string `json:"description"`
	}{Description: a.Text()})
}

// Text returns the single descriptive string for editing. Legacy sections are
// joined by a blank line, taking each section's description when present and
// falling back to its content, skipping sections with neither.
func (a AboutDestination) Text() string {
	if a.Sections == nil {
		return a.Description
	}

	var parts []string
	for _, s := range a.Sections {
		text := s.Description
		if text == "" {
			text = s.Content
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}
