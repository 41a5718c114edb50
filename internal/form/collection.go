package form

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

// CollectionForm drives the create/edit flow for a collection. The entity is
// a single name field, so the model is inlined.
type CollectionForm struct {
	machine

	collections upstream.CollectionAPI
	log         zerolog.Logger

	id   string
	Name string

	Saved *models.Collection
}

// NewCollectionCreate returns a create-flow controller
func NewCollectionCreate(collections upstream.CollectionAPI, log zerolog.Logger, onSuccess func()) *CollectionForm {
	f := &CollectionForm{
		collections: collections,
		log:         log.With().Str("form", "collection").Logger(),
	}
	f.onSuccess = onSuccess
	f.state = StateReady
	return f
}

// NewCollectionEdit returns an edit-flow controller; call Load before editing
func NewCollectionEdit(collections upstream.CollectionAPI, id string, log zerolog.Logger, onSuccess func()) *CollectionForm {
	f := &CollectionForm{
		collections: collections,
		log:         log.With().Str("form", "collection").Logger(),
		id:          id,
	}
	f.onSuccess = onSuccess
	f.state = StateIdle
	return f
}

// Load fetches the collection and seeds the name field
func (f *CollectionForm) Load(ctx context.Context) error {
	if f.id == "" {
		return nil
	}
	if f.state != StateIdle {
		return ErrNotReady
	}

	f.state = StateLoading
	col, err := f.collections.Get(ctx, f.id)
	if err != nil {
		return f.failAt(err, StateIdle)
	}

	f.Name = col.Name
	f.state = StateReady
	return nil
}

// Submit validates and sends the collection
func (f *CollectionForm) Submit(ctx context.Context) error {
	if f.state != StateReady {
		return ErrNotReady
	}
	f.clearErrors()

	if e := content.Required("name", f.Name); e != nil {
		return f.blockValidation([]content.FieldError{*e})
	}

	f.state = StateSubmitting

	payload := map[string]interface{}{"name": strings.TrimSpace(f.Name)}

	var (
		saved *models.Collection
		err   error
	)
	if f.id == "" {
		saved, err = f.collections.Create(ctx, payload)
	} else {
		saved, err = f.collections.Update(ctx, f.id, payload)
	}
	if err != nil {
		f.log.Warn().Err(err).Str("id", f.id).Msg("Collection submit failed")
		return f.fail(err)
	}

	f.Saved = saved
	f.log.Info().Str("id", saved.ID).Msg("Collection saved")
	f.succeed()
	return nil
}
