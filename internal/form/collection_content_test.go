package form_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/mocks"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

func TestContentCreate_StartsReady(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	f := form.NewCollectionContentCreate(api, "col1", zerolog.Nop(), nil)

	assert.Equal(t, form.StateReady, f.State())
	assert.Equal(t, "col1", f.Model().CollectionID)
	assert.Equal(t, "new collection content", f.Describe())
}

func TestContentCreate_ValidationBlocksWithoutNetworkCall(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	f := form.NewCollectionContentCreate(api, "col1", zerolog.Nop(), nil)
	f.Model().PropertyName = "Lodge"

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, form.ErrValidation)
	assert.Equal(t, form.StateReady, f.State())
	assert.Equal(t, 0, api.CreateCalls, "a blocked submit must not reach the backend")
	assert.Equal(t, "region is required", f.FieldErrors()["region"])
	assert.Equal(t, "country is required", f.FieldErrors()["country"])
	assert.Equal(t, "Lodge", f.Model().PropertyName, "entered values survive a blocked submit")
}

func TestContentCreate_Succeeds(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	var completed bool
	f := form.NewCollectionContentCreate(api, "col1", zerolog.Nop(), func() { completed = true })

	f.Model().SetRegion("Europe")
	f.Model().SetCountry("Switzerland")
	f.Model().SetCity("Zermatt")
	f.Model().PropertyName = "Alpine Lodge"

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, form.StateSucceeded, f.State())
	assert.True(t, completed)
	require.NotNil(t, f.Saved)
	assert.Equal(t, 1, api.CreateCalls)
	assert.Equal(t, "col1", api.LastPayload["collection_id"])
	assert.Equal(t, "Alpine Lodge", api.LastPayload["property_name"])
}

func TestContentCreate_BackendFailureReturnsToReady(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	api.Err = &upstream.Error{Message: "property name is taken", Status: 422}
	f := form.NewCollectionContentCreate(api, "col1", zerolog.Nop(), nil)

	f.Model().SetRegion("Europe")
	f.Model().SetCountry("France")
	f.Model().PropertyName = "Lodge"

	err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, form.StateReady, f.State())
	assert.Equal(t, "property name is taken", f.SubmitError())
	assert.Equal(t, "Lodge", f.Model().PropertyName, "values survive a failed submit")

	// clearing the fault lets the same instance retry
	api.Err = nil
	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, "", f.SubmitError())
}

func TestContentEdit_LoadSeedsFromRecord(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	rec := &models.CollectionContent{
		ID:           "cc1",
		CollectionID: "col1",
		PropertyName: "Lodge",
		Region:       "Europe",
		Country:      "Switzerland",
		City:         "Zermatt",
		Tags:         []string{"luxury"},
		Active:       true,
	}
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"Spa","content":"x","images":{"media":["u1"]}}]`), &rec.Features))
	api.Contents["cc1"] = rec

	f := form.NewCollectionContentEdit(api, "cc1", zerolog.Nop(), nil)
	assert.Equal(t, form.StateIdle, f.State())

	require.NoError(t, f.Load(context.Background()))

	assert.Equal(t, form.StateReady, f.State())
	model := f.Model()
	assert.Equal(t, "Lodge", model.PropertyName)
	require.Len(t, model.Features, 1)
	assert.Equal(t, []string{"u1"}, model.Features[0].Images)
	assert.Empty(t, model.LocationWarnings)
}

func TestContentEdit_LoadFailureReturnsToIdle(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	f := form.NewCollectionContentEdit(api, "missing", zerolog.Nop(), nil)

	err := f.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, form.StateIdle, f.State())
	assert.Equal(t, "collection content not found", f.SubmitError())

	// the failed load can be retried
	api.Contents["missing"] = &models.CollectionContent{ID: "missing", CollectionID: "col1"}
	require.NoError(t, f.Load(context.Background()))
	assert.Equal(t, form.StateReady, f.State())
}

func TestContentEdit_UpdateOmitsCollectionID(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	api.Contents["cc1"] = &models.CollectionContent{
		ID:           "cc1",
		CollectionID: "col1",
		Region:       "Europe",
		Country:      "France",
	}

	f := form.NewCollectionContentEdit(api, "cc1", zerolog.Nop(), nil)
	require.NoError(t, f.Load(context.Background()))
	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, 1, api.UpdateCalls)
	assert.Equal(t, 0, api.CreateCalls)
	assert.NotContains(t, api.LastPayload, "collection_id")
}

func TestContent_SubmitInWrongStateIsRejected(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()

	// edit flow before Load
	f := form.NewCollectionContentEdit(api, "cc1", zerolog.Nop(), nil)
	assert.ErrorIs(t, f.Submit(context.Background()), form.ErrNotReady)

	// succeeded form is terminal
	api.Contents["cc1"] = &models.CollectionContent{ID: "cc1", Region: "Europe", Country: "France"}
	g := form.NewCollectionContentEdit(api, "cc1", zerolog.Nop(), nil)
	require.NoError(t, g.Load(context.Background()))
	require.NoError(t, g.Submit(context.Background()))
	assert.ErrorIs(t, g.Submit(context.Background()), form.ErrNotReady)
}

func TestContent_NonUpstreamErrorUsesErrorString(t *testing.T) {
	api := mocks.NewMockCollectionContentAPI()
	api.Err = errors.New("connection refused")
	f := form.NewCollectionContentCreate(api, "col1", zerolog.Nop(), nil)
	f.Model().SetRegion("Europe")
	f.Model().SetCountry("France")

	require.Error(t, f.Submit(context.Background()))
	assert.Equal(t, "connection refused", f.SubmitError())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", form.StateIdle.String())
	assert.Equal(t, "loading", form.StateLoading.String())
	assert.Equal(t, "ready", form.StateReady.String())
	assert.Equal(t, "submitting", form.StateSubmitting.String())
	assert.Equal(t, "succeeded", form.StateSucceeded.String())
	assert.Equal(t, "unknown", form.State(42).String())
}
