package content

import (
	"strings"
)

// UpdatePayload builds the minimal partial-update body for an existing
// record. Only non-empty, trimmed fields are included; collection_id is
// always excluded; about_destination is always emitted in the current
// single-object shape regardless of what was loaded.
func (f *FormModel) UpdatePayload() map[string]interface{} {
	payload := map[string]interface{}{}

	putString(payload, "property_name", f.PropertyName)
	putString(payload, "featured_image", f.FeaturedImage)
	putString(payload, "hero_image", f.HeroImage)
	putString(payload, "about_collection", f.AboutCollection)
	putString(payload, "region", f.Region)
	putString(payload, "country", f.Country)
	putString(payload, "city", f.City)

	if desc := strings.TrimSpace(f.AboutDestination); desc != "" {
		payload["about_destination"] = map[string]interface{}{"description": desc}
	}

	if features := f.payloadFeatures(); len(features) > 0 {
		payload["features"] = features
	}

	if len(f.Tags) > 0 {
		payload["tags"] = append([]string(nil), f.Tags...)
	}

	payload["is_active"] = f.Active

	return payload
}

// CreatePayload is the update payload plus the immutable collection id
func (f *FormModel) CreatePayload() map[string]interface{} {
	payload := f.UpdatePayload()
	payload["collection_id"] = f.CollectionID
	return payload
}

// payloadFeatures filters the editable features down to the transmittable
// set: blank image slots dropped, features with neither title nor content
// dropped entirely
func (f *FormModel) payloadFeatures() []map[string]interface{} {
	var out []map[string]interface{}
	for _, feat := range f.Features {
		title := strings.TrimSpace(feat.Title)
		text := strings.TrimSpace(feat.Content)
		if title == "" && text == "" {
			continue
		}

		images := make([]string, 0, len(feat.Images))
		for _, img := range feat.Images {
			if trimmed := strings.TrimSpace(img); trimmed != "" {
				images = append(images, trimmed)
			}
		}

		out = append(out, map[string]interface{}{
			"title":   title,
			"content": text,
			"images":  images,
		})
	}
	return out
}

// putString adds a trimmed string field, skipping blank values
func putString(payload map[string]interface{}, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		payload[key] = trimmed
	}
}
