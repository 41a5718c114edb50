package form

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

// CollectionContentForm drives the create/edit flow for a collection content
// record. All reshaping between backend and form state goes through the
// content package.
type CollectionContentForm struct {
	machine

	contents upstream.CollectionContentAPI
	log      zerolog.Logger

	id    string // empty in the create flow
	model *content.FormModel

	// Saved is the backend's view of the record after a successful submit
	Saved *models.CollectionContent
}

// NewCollectionContentCreate returns a create-flow controller seeded with a
// blank form bound to the given collection
func NewCollectionContentCreate(contents upstream.CollectionContentAPI, collectionID string, log zerolog.Logger, onSuccess func()) *CollectionContentForm {
	f := &CollectionContentForm{
		contents: contents,
		log:      log.With().Str("form", "collection_content").Logger(),
		model:    content.NewForm(collectionID),
	}
	f.onSuccess = onSuccess
	f.state = StateReady
	return f
}

// NewCollectionContentEdit returns an edit-flow controller. The record is
// not fetched until Load is called.
func NewCollectionContentEdit(contents upstream.CollectionContentAPI, id string, log zerolog.Logger, onSuccess func()) *CollectionContentForm {
	f := &CollectionContentForm{
		contents: contents,
		log:      log.With().Str("form", "collection_content").Logger(),
		id:       id,
	}
	f.onSuccess = onSuccess
	f.state = StateIdle
	return f
}

// Load fetches the record and seeds the editable form state
func (f *CollectionContentForm) Load(ctx context.Context) error {
	if f.id == "" {
		// Create flow is Ready from construction
		return nil
	}
	if f.state != StateIdle {
		return ErrNotReady
	}

	f.state = StateLoading
	rec, err := f.contents.Get(ctx, f.id)
	if err != nil {
		return f.failAt(err, StateIdle)
	}

	f.model = content.FromRecord(rec)
	f.state = StateReady

	for _, warning := range f.model.LocationWarnings {
		f.log.Warn().Str("id", f.id).Msg("Inconsistent stored location: " + warning)
	}
	return nil
}

// Model exposes the editable form state for mutation between Load and Submit
func (f *CollectionContentForm) Model() *content.FormModel {
	return f.model
}

// Submit validates and sends the record. Validation failures block the
// submit with per-field messages and no network call; backend failures
// return the form to Ready with values preserved.
func (f *CollectionContentForm) Submit(ctx context.Context) error {
	if f.state != StateReady {
		return ErrNotReady
	}
	f.clearErrors()

	if errs := f.model.Validate(); len(errs) > 0 {
		return f.blockValidation(errs)
	}

	f.state = StateSubmitting

	var (
		saved *models.CollectionContent
		err   error
	)
	if f.id == "" {
		saved, err = f.contents.Create(ctx, f.model.CreatePayload())
	} else {
		saved, err = f.contents.Update(ctx, f.id, f.model.UpdatePayload())
	}
	if err != nil {
		f.log.Warn().Err(err).Str("id", f.id).Msg("Collection content submit failed")
		return f.fail(err)
	}

	f.Saved = saved
	f.log.Info().Str("id", saved.ID).Msg("Collection content saved")
	f.succeed()
	return nil
}

// Describe returns a short label for logging and UI headers
func (f *CollectionContentForm) Describe() string {
	if f.id == "" {
		return "new collection content"
	}
	return fmt.Sprintf("collection content %s", f.id)
}
