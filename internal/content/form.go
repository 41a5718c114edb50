// Package content owns the two-way mapping between a collection content
// record as the backend persists it and the editable form model the admin
// works on. Load-side normalization flattens the polymorphic wire shapes
// into one canonical form; save-side payload construction emits a minimal
// partial update containing only changed, non-empty fields. The package
// degrades on malformed input, it never fails on it.
package content

import (
	"fmt"
	"strings"

	"github.com/travel-content-admin/internal/location"
	"github.com/travel-content-admin/internal/models"
)

// MaxFeatureImages caps the image list of a single feature
const MaxFeatureImages = 5

// FeatureForm is the editable shape of one feature. Images always holds at
// least one entry; a blank placeholder stands in when the feature has none.
type FeatureForm struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// FormModel is the editable representation of a collection content record
type FormModel struct {
	ID               string             `json:"id,omitempty"`
	CollectionID     string             `json:"collection_id,omitempty"`
	PropertyName     string             `json:"property_name"`
	FeaturedImage    string             `json:"featured_image"`
	HeroImage        string             `json:"hero_image"`
	AboutCollection  string             `json:"about_collection"`
	Features         []FeatureForm      `json:"features"`
	AboutDestination string             `json:"about_destination"`
	Region           string             `json:"region"`
	Country          string             `json:"country"`
	City             string             `json:"city"`
	Tags             []string           `json:"tags"`
	Active           bool               `json:"is_active"`
	CountryOptions   []location.Country `json:"country_options"`
	CityOptions      []string           `json:"city_options"`

	// LocationWarnings records loaded Region/Country/City values that are
	// inconsistent with the derived option lists. The stale value is kept
	// and surfaced, never silently dropped.
	LocationWarnings []string `json:"location_warnings,omitempty"`
}

// NewForm returns a blank editable form for the create flow. The collection
// id is fixed here and never re-enters an update payload.
func NewForm(collectionID string) *FormModel {
	f := &FormModel{
		CollectionID: collectionID,
		Features:     []FeatureForm{},
		Tags:         []string{},
	}
	f.seedPlaceholders()
	f.deriveLocationOptions()
	return f
}

// FromRecord normalizes a backend record into the editable form shape
func FromRecord(rec *models.CollectionContent) *FormModel {
	f := &FormModel{
		PropertyName:    rec.PropertyName,
		FeaturedImage:   rec.FeaturedImage,
		HeroImage:       rec.HeroImage,
		AboutCollection: rec.AboutCollection,
		Region:          rec.Region,
		Country:         rec.Country,
		City:            rec.City,
		Active:          rec.Active,
		ID:              rec.ID,
		CollectionID:    rec.CollectionID,
	}

	for _, feat := range rec.Features {
		f.Features = append(f.Features, FeatureForm{
			Title:   feat.Title,
			Content: feat.Content,
			Images:  append([]string(nil), feat.Images...),
		})
	}

	if rec.AboutDestination != nil {
		f.AboutDestination = rec.AboutDestination.Text()
	}

	f.Tags = append([]string(nil), rec.Tags...)
	if f.Tags == nil {
		f.Tags = []string{}
	}

	f.seedPlaceholders()
	f.deriveLocationOptions()
	return f
}

// Normalize re-establishes the form invariants after bulk assignment:
// placeholder seeding and the derived location option chain. Normalizing an
// already-normalized form is a no-op.
func (f *FormModel) Normalize() {
	f.seedPlaceholders()
	f.deriveLocationOptions()
}

// seedPlaceholders enforces the minimum-one invariants: at least one feature,
// and at least one image slot per feature. Idempotent.
func (f *FormModel) seedPlaceholders() {
	if len(f.Features) == 0 {
		f.Features = []FeatureForm{{Title: "", Content: "", Images: []string{""}}}
		return
	}
	for i := range f.Features {
		if len(f.Features[i].Images) == 0 {
			f.Features[i].Images = []string{""}
		}
	}
}

// deriveLocationOptions recomputes the Region→Country→City option chain and
// records, without repairing, any loaded value missing from its options
func (f *FormModel) deriveLocationOptions() {
	f.LocationWarnings = nil

	f.CountryOptions = []location.Country{}
	f.CityOptions = []string{}
	if f.Region == "" {
		if f.Country != "" {
			f.LocationWarnings = append(f.LocationWarnings,
				fmt.Sprintf("country %q is set but no region is selected", f.Country))
		}
		return
	}

	f.CountryOptions = location.CountriesForContinent(f.Region)
	if f.Country == "" {
		return
	}

	found := false
	for _, c := range f.CountryOptions {
		if strings.EqualFold(c.Name, f.Country) {
			found = true
			break
		}
	}
	if !found {
		f.LocationWarnings = append(f.LocationWarnings,
			fmt.Sprintf("country %q is not an option for region %q", f.Country, f.Region))
	}

	if code, ok := location.ResolveCountryCode(f.Country); ok {
		f.CityOptions = location.CitiesForCountry(code)
	}
	if f.City == "" {
		return
	}

	cityFound := false
	for _, city := range f.CityOptions {
		if strings.EqualFold(city, f.City) {
			cityFound = true
			break
		}
	}
	if !cityFound {
		f.LocationWarnings = append(f.LocationWarnings,
			fmt.Sprintf("city %q is not an option for country %q", f.City, f.Country))
	}
}
