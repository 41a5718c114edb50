package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-content-admin/internal/content"
)

func TestValidate_RequiresRegionAndCountry(t *testing.T) {
	f := content.NewForm("col1")

	errs := f.Validate()

	require.Len(t, errs, 2)
	assert.Equal(t, "region", errs[0].Field)
	assert.Equal(t, "country", errs[1].Field)
}

func TestValidate_WhitespaceCountsAsMissing(t *testing.T) {
	f := content.NewForm("col1")
	f.Region = "  "
	f.Country = "\t"

	assert.Len(t, f.Validate(), 2)
}

func TestValidate_PassesWithRegionAndCountry(t *testing.T) {
	f := content.NewForm("col1")
	f.SetRegion("Europe")
	f.SetCountry("France")

	assert.Empty(t, f.Validate())
}

func TestRequired(t *testing.T) {
	if e := content.Required("title", " "); assert.NotNil(t, e) {
		assert.Equal(t, "title", e.Field)
		assert.Equal(t, "title is required", e.Message)
	}
	assert.Nil(t, content.Required("title", "set"))
}
