package form

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

// ExperienceModel is the editable representation of an experience. Taglines
// and Sections keep at least one entry; best-time ranges, gallery items and
// carousel images may be empty.
type ExperienceModel struct {
	ID             string                  `json:"id,omitempty"`
	Title          string                  `json:"title"`
	FeaturedImage  string                  `json:"featured_image"`
	Taglines       []string                `json:"taglines"`
	Region         string                  `json:"region"`
	Country        string                  `json:"country"`
	City           string                  `json:"city"`
	BestTimes      []models.BestTime       `json:"best_time"`
	CarouselImages []string                `json:"carousel_images"`
	Brief          string                  `json:"brief_description"`
	Sections       []models.ContentSection `json:"content"`
	Gallery        []models.GalleryItem    `json:"gallery"`
	Story          string                  `json:"story"`
	Tags           []string                `json:"tags"`
	DurationDays   int                     `json:"duration_days"`
	Price          float64                 `json:"price"`
	Active         bool                    `json:"is_active"`
}

// Normalize enforces the minimum-one invariants. Idempotent.
func (m *ExperienceModel) Normalize() {
	if len(m.Taglines) == 0 {
		m.Taglines = []string{""}
	}
	if len(m.Sections) == 0 {
		m.Sections = []models.ContentSection{{}}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
}

// SetTagline replaces one tagline
func (m *ExperienceModel) SetTagline(i int, value string) error {
	if i < 0 || i >= len(m.Taglines) {
		return content.ErrIndexOutOfRange
	}
	m.Taglines[i] = value
	return nil
}

// AppendTagline adds a blank tagline
func (m *ExperienceModel) AppendTagline() {
	m.Taglines = append(m.Taglines, "")
}

// RemoveTagline removes a tagline, re-seeding a blank placeholder when the
// list would become empty
func (m *ExperienceModel) RemoveTagline(i int) error {
	if i < 0 || i >= len(m.Taglines) {
		return content.ErrIndexOutOfRange
	}
	m.Taglines = append(m.Taglines[:i], m.Taglines[i+1:]...)
	if len(m.Taglines) == 0 {
		m.Taglines = []string{""}
	}
	return nil
}

// SetBestTimeFrom replaces the start of one best-time range
func (m *ExperienceModel) SetBestTimeFrom(i int, from string) error {
	if i < 0 || i >= len(m.BestTimes) {
		return content.ErrIndexOutOfRange
	}
	m.BestTimes[i].From = from
	return nil
}

// SetBestTimeTo replaces the end of one best-time range
func (m *ExperienceModel) SetBestTimeTo(i int, to string) error {
	if i < 0 || i >= len(m.BestTimes) {
		return content.ErrIndexOutOfRange
	}
	m.BestTimes[i].To = to
	return nil
}

// AppendBestTime adds a blank best-time range
func (m *ExperienceModel) AppendBestTime() {
	m.BestTimes = append(m.BestTimes, models.BestTime{})
}

// RemoveBestTime removes one best-time range; the list may become empty
func (m *ExperienceModel) RemoveBestTime(i int) error {
	if i < 0 || i >= len(m.BestTimes) {
		return content.ErrIndexOutOfRange
	}
	m.BestTimes = append(m.BestTimes[:i], m.BestTimes[i+1:]...)
	return nil
}

// SetSectionTitle replaces one section's title
func (m *ExperienceModel) SetSectionTitle(i int, title string) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections[i].Title = title
	return nil
}

// SetSectionContent replaces one section's content
func (m *ExperienceModel) SetSectionContent(i int, text string) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections[i].Content = text
	return nil
}

// AppendSection adds a blank section
func (m *ExperienceModel) AppendSection() {
	m.Sections = append(m.Sections, models.ContentSection{})
}

// RemoveSection removes a section, re-seeding a blank placeholder when the
// list would become empty
func (m *ExperienceModel) RemoveSection(i int) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections = append(m.Sections[:i], m.Sections[i+1:]...)
	if len(m.Sections) == 0 {
		m.Sections = []models.ContentSection{{}}
	}
	return nil
}

// SetGalleryName replaces one gallery item's caption
func (m *ExperienceModel) SetGalleryName(i int, name string) error {
	if i < 0 || i >= len(m.Gallery) {
		return content.ErrIndexOutOfRange
	}
	m.Gallery[i].Name = name
	return nil
}

// SetGalleryImage replaces one gallery item's image URL
func (m *ExperienceModel) SetGalleryImage(i int, image string) error {
	if i < 0 || i >= len(m.Gallery) {
		return content.ErrIndexOutOfRange
	}
	m.Gallery[i].Image = image
	return nil
}

// AppendGalleryItem adds a blank gallery item
func (m *ExperienceModel) AppendGalleryItem() {
	m.Gallery = append(m.Gallery, models.GalleryItem{})
}

// RemoveGalleryItem removes one gallery item; the list may become empty
func (m *ExperienceModel) RemoveGalleryItem(i int) error {
	if i < 0 || i >= len(m.Gallery) {
		return content.ErrIndexOutOfRange
	}
	m.Gallery = append(m.Gallery[:i], m.Gallery[i+1:]...)
	return nil
}

// SetCarouselImage replaces one carousel image URL
func (m *ExperienceModel) SetCarouselImage(i int, url string) error {
	if i < 0 || i >= len(m.CarouselImages) {
		return content.ErrIndexOutOfRange
	}
	m.CarouselImages[i] = url
	return nil
}

// AppendCarouselImage adds a blank carousel slot
func (m *ExperienceModel) AppendCarouselImage() {
	m.CarouselImages = append(m.CarouselImages, "")
}

// RemoveCarouselImage removes one carousel image; the list may become empty
func (m *ExperienceModel) RemoveCarouselImage(i int) error {
	if i < 0 || i >= len(m.CarouselImages) {
		return content.ErrIndexOutOfRange
	}
	m.CarouselImages = append(m.CarouselImages[:i], m.CarouselImages[i+1:]...)
	return nil
}

// AddTag appends a tag name, ignoring duplicates
func (m *ExperienceModel) AddTag(name string) {
	for _, t := range m.Tags {
		if t == name {
			return
		}
	}
	m.Tags = append(m.Tags, name)
}

// RemoveTag removes a tag by name
func (m *ExperienceModel) RemoveTag(name string) {
	for i, t := range m.Tags {
		if t == name {
			m.Tags = append(m.Tags[:i], m.Tags[i+1:]...)
			return
		}
	}
}

// SetRegion changes the region and clears country and city in one transition
func (m *ExperienceModel) SetRegion(region string) {
	if region == m.Region {
		return
	}
	m.Region = region
	m.Country = ""
	m.City = ""
}

// SetCountry changes the country and clears the city in one transition
func (m *ExperienceModel) SetCountry(country string) {
	if country == m.Country {
		return
	}
	m.Country = country
	m.City = ""
}

// Validate reports the required-field errors, title being the only one
func (m *ExperienceModel) Validate() []content.FieldError {
	var errs []content.FieldError
	if e := content.Required("title", m.Title); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// Payload builds the partial create/update body under the same minimality
// rules as collection content: trimmed non-empty strings, non-empty arrays,
// blank entries filtered, both-blank struct entries dropped
func (m *ExperienceModel) Payload() map[string]interface{} {
	payload := map[string]interface{}{}

	for key, value := range map[string]string{
		"title":             m.Title,
		"featured_image":    m.FeaturedImage,
		"region":            m.Region,
		"country":           m.Country,
		"city":              m.City,
		"brief_description": m.Brief,
		"story":             m.Story,
	} {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			payload[key] = trimmed
		}
	}

	var taglines []string
	for _, t := range m.Taglines {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			taglines = append(taglines, trimmed)
		}
	}
	if len(taglines) > 0 {
		payload["taglines"] = taglines
	}

	var bestTimes []map[string]interface{}
	for _, bt := range m.BestTimes {
		from := strings.TrimSpace(bt.From)
		to := strings.TrimSpace(bt.To)
		if from == "" && to == "" {
			continue
		}
		bestTimes = append(bestTimes, map[string]interface{}{"from": from, "to": to})
	}
	if len(bestTimes) > 0 {
		payload["best_time"] = bestTimes
	}

	var carousel []string
	for _, url := range m.CarouselImages {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			carousel = append(carousel, trimmed)
		}
	}
	if len(carousel) > 0 {
		payload["carousel_images"] = carousel
	}

	var sections []map[string]interface{}
	for _, s := range m.Sections {
		title := strings.TrimSpace(s.Title)
		text := strings.TrimSpace(s.Content)
		if title == "" && text == "" {
			continue
		}
		sections = append(sections, map[string]interface{}{"title": title, "content": text})
	}
	if len(sections) > 0 {
		payload["content"] = sections
	}

	var gallery []map[string]interface{}
	for _, g := range m.Gallery {
		name := strings.TrimSpace(g.Name)
		image := strings.TrimSpace(g.Image)
		if name == "" && image == "" {
			continue
		}
		gallery = append(gallery, map[string]interface{}{"name": name, "image": image})
	}
	if len(gallery) > 0 {
		payload["gallery"] = gallery
	}

	if len(m.Tags) > 0 {
		payload["tags"] = append([]string(nil), m.Tags...)
	}
	if m.DurationDays > 0 {
		payload["duration_days"] = m.DurationDays
	}
	if m.Price > 0 {
		payload["price"] = m.Price
	}

	payload["is_active"] = m.Active

	return payload
}

// ExperienceForm drives the create/edit flow for an experience
type ExperienceForm struct {
	machine

	experiences upstream.ExperienceAPI
	log         zerolog.Logger

	id    string
	model *ExperienceModel

	Saved *models.Experience
}

// NewExperienceCreate returns a create-flow controller with a blank form
func NewExperienceCreate(experiences upstream.ExperienceAPI, log zerolog.Logger, onSuccess func()) *ExperienceForm {
	model := &ExperienceModel{}
	model.Normalize()

	f := &ExperienceForm{
		experiences: experiences,
		log:         log.With().Str("form", "experience").Logger(),
		model:       model,
	}
	f.onSuccess = onSuccess
	f.state = StateReady
	return f
}

// NewExperienceEdit returns an edit-flow controller; call Load before editing
func NewExperienceEdit(experiences upstream.ExperienceAPI, id string, log zerolog.Logger, onSuccess func()) *ExperienceForm {
	f := &ExperienceForm{
		experiences: experiences,
		log:         log.With().Str("form", "experience").Logger(),
		id:          id,
	}
	f.onSuccess = onSuccess
	f.state = StateIdle
	return f
}

// Load fetches the experience and seeds the editable state
func (f *ExperienceForm) Load(ctx context.Context) error {
	if f.id == "" {
		return nil
	}
	if f.state != StateIdle {
		return ErrNotReady
	}

	f.state = StateLoading
	exp, err := f.experiences.Get(ctx, f.id)
	if err != nil {
		return f.failAt(err, StateIdle)
	}

	model := &ExperienceModel{
		ID:             exp.ID,
		Title:          exp.Title,
		FeaturedImage:  exp.FeaturedImage,
		Taglines:       append([]string(nil), exp.Taglines...),
		Region:         exp.Region,
		Country:        exp.Country,
		City:           exp.City,
		BestTimes:      append([]models.BestTime(nil), exp.BestTimes...),
		CarouselImages: append([]string(nil), exp.CarouselImages...),
		Brief:          exp.Brief,
		Sections:       append([]models.ContentSection(nil), exp.Sections...),
		Gallery:        append([]models.GalleryItem(nil), exp.Gallery...),
		Story:          exp.Story,
		Tags:           append([]string(nil), exp.Tags...),
		DurationDays:   exp.DurationDays,
		Price:          exp.Price,
		Active:         exp.Active,
	}
	model.Normalize()

	f.model = model
	f.state = StateReady
	return nil
}

// Model exposes the editable experience state
func (f *ExperienceForm) Model() *ExperienceModel {
	return f.model
}

// Submit validates and sends the experience
func (f *ExperienceForm) Submit(ctx context.Context) error {
	if f.state != StateReady {
		return ErrNotReady
	}
	f.clearErrors()

	if errs := f.model.Validate(); len(errs) > 0 {
		return f.blockValidation(errs)
	}

	f.state = StateSubmitting

	var (
		saved *models.Experience
		err   error
	)
	if f.id == "" {
		saved, err = f.experiences.Create(ctx, f.model.Payload())
	} else {
		saved, err = f.experiences.Update(ctx, f.id, f.model.Payload())
	}
	if err != nil {
		f.log.Warn().Err(err).Str("id", f.id).Msg("Experience submit failed")
		return f.fail(err)
	}

	f.Saved = saved
	f.log.Info().Str("id", saved.ID).Msg("Experience saved")
	f.succeed()
	return nil
}
