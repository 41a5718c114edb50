package form

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

// BlogModel is the editable representation of a blog post. Taglines and
// Sections keep at least one entry at all times; removal of the last element
// re-seeds a blank placeholder.
type BlogModel struct {
	ID            string                  `json:"id,omitempty"`
	Title         string                  `json:"title"`
	Slug          string                  `json:"slug"`
	HeroImage     string                  `json:"hero_image"`
	FeaturedImage string                  `json:"featured_image"`
	Taglines      []string                `json:"taglines"`
	Excerpt       string                  `json:"excerpt"`
	Sections      []models.ContentSection `json:"content"`
	Region        string                  `json:"region"`
	Country       string                  `json:"country"`
	City          string                  `json:"city"`
	AuthorName    string                  `json:"author_name"`
	AuthorAvatar  string                  `json:"author_avatar"`
	ReadTime      string                  `json:"read_time"`
	Active        bool                    `json:"is_active"`
}

// Normalize enforces the minimum-one invariants. Idempotent.
func (m *BlogModel) Normalize() {
	if len(m.Taglines) == 0 {
		m.Taglines = []string{""}
	}
	if len(m.Sections) == 0 {
		m.Sections = []models.ContentSection{{}}
	}
}

// SetTagline replaces one tagline
func (m *BlogModel) SetTagline(i int, value string) error {
	if i < 0 || i >= len(m.Taglines) {
		return content.ErrIndexOutOfRange
	}
	m.Taglines[i] = value
	return nil
}

// AppendTagline adds a blank tagline at the end
func (m *BlogModel) AppendTagline() {
	m.Taglines = append(m.Taglines, "")
}

// RemoveTagline removes the tagline at i, re-seeding a blank placeholder
// when the list would become empty
func (m *BlogModel) RemoveTagline(i int) error {
	if i < 0 || i >= len(m.Taglines) {
		return content.ErrIndexOutOfRange
	}
	m.Taglines = append(m.Taglines[:i], m.Taglines[i+1:]...)
	if len(m.Taglines) == 0 {
		m.Taglines = []string{""}
	}
	return nil
}

// SetSectionTitle replaces one section's title
func (m *BlogModel) SetSectionTitle(i int, title string) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections[i].Title = title
	return nil
}

// SetSectionContent replaces one section's content
func (m *BlogModel) SetSectionContent(i int, text string) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections[i].Content = text
	return nil
}

// AppendSection adds a blank section at the end
func (m *BlogModel) AppendSection() {
	m.Sections = append(m.Sections, models.ContentSection{})
}

// RemoveSection removes the section at i, re-seeding a blank placeholder
// when the list would become empty
func (m *BlogModel) RemoveSection(i int) error {
	if i < 0 || i >= len(m.Sections) {
		return content.ErrIndexOutOfRange
	}
	m.Sections = append(m.Sections[:i], m.Sections[i+1:]...)
	if len(m.Sections) == 0 {
		m.Sections = []models.ContentSection{{}}
	}
	return nil
}

// SetRegion changes the region and clears country and city in one transition
func (m *BlogModel) SetRegion(region string) {
	if region == m.Region {
		return
	}
	m.Region = region
	m.Country = ""
	m.City = ""
}

// SetCountry changes the country and clears the city in one transition
func (m *BlogModel) SetCountry(country string) {
	if country == m.Country {
		return
	}
	m.Country = country
	m.City = ""
}

// Validate reports the required-field errors, title being the only one
func (m *BlogModel) Validate() []content.FieldError {
	var errs []content.FieldError
	if e := content.Required("title", m.Title); e != nil {
		errs = append(errs, *e)
	}
	return errs
}

// Payload builds the partial create/update body: trimmed non-empty fields
// only, blank taglines filtered, sections with neither title nor content
// dropped
func (m *BlogModel) Payload() map[string]interface{} {
	payload := map[string]interface{}{}

	for key, value := range map[string]string{
		"title":          m.Title,
		"slug":           m.Slug,
		"hero_image":     m.HeroImage,
		"featured_image": m.FeaturedImage,
		"excerpt":        m.Excerpt,
		"region":         m.Region,
		"country":        m.Country,
		"city":           m.City,
		"author_name":    m.AuthorName,
		"author_avatar":  m.AuthorAvatar,
		"read_time":      m.ReadTime,
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

	var sections []map[string]interface{}
	for _, s := range m.Sections {
		title := strings.TrimSpace(s.Title)
		text := strings.TrimSpace(s.Content)
		if title == "" && text == "" {
			continue
		}
		sections = append(sections, map[string]interface{}{
			"title":   title,
			"content": text,
		})
	}
	if len(sections) > 0 {
		payload["content"] = sections
	}

	payload["is_active"] = m.Active

	return payload
}

// BlogForm drives the create/edit flow for a blog post
type BlogForm struct {
	machine

	blogs upstream.BlogAPI
	log   zerolog.Logger

	id    string
	model *BlogModel

	Saved *models.Blog
}

// NewBlogCreate returns a create-flow controller with a blank form
func NewBlogCreate(blogs upstream.BlogAPI, log zerolog.Logger, onSuccess func()) *BlogForm {
	model := &BlogModel{}
	model.Normalize()

	f := &BlogForm{
		blogs: blogs,
		log:   log.With().Str("form", "blog").Logger(),
		model: model,
	}
	f.onSuccess = onSuccess
	f.state = StateReady
	return f
}

// NewBlogEdit returns an edit-flow controller; call Load before editing
func NewBlogEdit(blogs upstream.BlogAPI, id string, log zerolog.Logger, onSuccess func()) *BlogForm {
	f := &BlogForm{
		blogs: blogs,
		log:   log.With().Str("form", "blog").Logger(),
		id:    id,
	}
	f.onSuccess = onSuccess
	f.state = StateIdle
	return f
}

// Load fetches the blog and seeds the editable state
func (f *BlogForm) Load(ctx context.Context) error {
	if f.id == "" {
		return nil
	}
	if f.state != StateIdle {
		return ErrNotReady
	}

	f.state = StateLoading
	blog, err := f.blogs.Get(ctx, f.id)
	if err != nil {
		return f.failAt(err, StateIdle)
	}

	model := &BlogModel{
		ID:            blog.ID,
		Title:         blog.Title,
		Slug:          blog.Slug,
		HeroImage:     blog.HeroImage,
		FeaturedImage: blog.FeaturedImage,
		Taglines:      append([]string(nil), blog.Taglines...),
		Excerpt:       blog.Excerpt,
		Sections:      append([]models.ContentSection(nil), blog.Sections...),
		Region:        blog.Region,
		Country:       blog.Country,
		City:          blog.City,
		AuthorName:    blog.AuthorName,
		AuthorAvatar:  blog.AuthorAvatar,
		ReadTime:      blog.ReadTime,
		Active:        blog.Active,
	}
	model.Normalize()

	f.model = model
	f.state = StateReady
	return nil
}

// Model exposes the editable blog state
func (f *BlogForm) Model() *BlogModel {
	return f.model
}

// Submit validates and sends the blog
func (f *BlogForm) Submit(ctx context.Context) error {
	if f.state != StateReady {
		return ErrNotReady
	}
	f.clearErrors()

	if errs := f.model.Validate(); len(errs) > 0 {
		return f.blockValidation(errs)
	}

	f.state = StateSubmitting

	var (
		saved *models.Blog
		err   error
	)
	if f.id == "" {
		saved, err = f.blogs.Create(ctx, f.model.Payload())
	} else {
		saved, err = f.blogs.Update(ctx, f.id, f.model.Payload())
	}
	if err != nil {
		f.log.Warn().Err(err).Str("id", f.id).Msg("Blog submit failed")
		return f.fail(err)
	}

	f.Saved = saved
	f.log.Info().Str("id", saved.ID).Msg("Blog saved")
	f.succeed()
	return nil
}
