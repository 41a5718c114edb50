package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-content-admin/internal/models"
)

func TestFeatureImages_UnmarshalBareArray(t *testing.T) {
	var f models.FeatureImages
	require.NoError(t, json.Unmarshal([]byte(`["u1","u2"]`), &f))
	assert.Equal(t, models.FeatureImages{"u1", "u2"}, f)
}

func TestFeatureImages_UnmarshalMediaObject(t *testing.T) {
	var f models.FeatureImages
	require.NoError(t, json.Unmarshal([]byte(`{"media":["u1","u2"]}`), &f))
	assert.Equal(t, models.FeatureImages{"u1", "u2"}, f)
}

func TestFeatureImages_UnmarshalUnexpectedShape(t *testing.T) {
	var f models.FeatureImages
	require.NoError(t, json.Unmarshal([]byte(`42`), &f))
	assert.Empty(t, f)

	require.NoError(t, json.Unmarshal([]byte(`{"other":true}`), &f))
	assert.Empty(t, f)
}

func TestFeature_UnmarshalCurrentWireFormat(t *testing.T) {
	var feat models.Feature
	raw := `{"title":"Spa","content":"desc","images":{"media":["u1","u2"]}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &feat))

	assert.Equal(t, "Spa", feat.Title)
	assert.Equal(t, []string{"u1", "u2"}, []string(feat.Images))
}

func TestAboutDestination_UnmarshalSingleObject(t *testing.T) {
	var a models.AboutDestination
	require.NoError(t, json.Unmarshal([]byte(`{"description":"lovely place"}`), &a))

	assert.Equal(t, "lovely place", a.Text())
	assert.Nil(t, a.Sections)
}

func TestAboutDestination_UnmarshalLegacySections(t *testing.T) {
	var a models.AboutDestination
	raw := `[{"title":"A","content":"X"},{"title":"B","description":"Y"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	// description wins over content per section; blanks are skipped
	assert.Equal(t, "X\n\nY", a.Text())
}

func TestAboutDestination_LegacySectionsSkipEmpty(t *testing.T) {
	var a models.AboutDestination
	raw := `[{"title":"A"},{"title":"B","description":"Y"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, "Y", a.Text())
}

func TestAboutDestination_UnmarshalUnexpectedShape(t *testing.T) {
	var a models.AboutDestination
	require.NoError(t, json.Unmarshal([]byte(`"just a string"`), &a))
	assert.Equal(t, "", a.Text())
}

func TestAboutDestination_MarshalAlwaysSingleObject(t *testing.T) {
	var a models.AboutDestination
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"A","content":"X"}]`), &a))

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"X"}`, string(out))
}

func TestCollectionContent_UnmarshalFullRecord(t *testing.T) {
	raw := `{
		"id": "cc1",
		"collection_id": "col1",
		"property_name": "Alpine Lodge",
		"features": [{"title":"Spa","content":"desc","images":["u1"]}],
		"about_destination": {"description":"great"},
		"region": "Europe",
		"country": "Switzerland",
		"city": "Zermatt",
		"tags": ["luxury"],
		"is_active": true,
		"created_at": "2024-03-01T10:00:00Z",
		"updated_at": "2024-03-02T10:00:00Z"
	}`

	var rec models.CollectionContent
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "col1", rec.CollectionID)
	require.Len(t, rec.Features, 1)
	assert.Equal(t, []string{"u1"}, []string(rec.Features[0].Images))
	require.NotNil(t, rec.AboutDestination)
	assert.Equal(t, "great", rec.AboutDestination.Text())
	assert.True(t, rec.Active)
}

func TestCollectionContent_UnmarshalWithoutAboutDestination(t *testing.T) {
	var rec models.CollectionContent
	require.NoError(t, json.Unmarshal([]byte(`{"id":"cc1","collection_id":"col1","is_active":false,"created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-01T10:00:00Z"}`), &rec))
	assert.Nil(t, rec.AboutDestination)
}
