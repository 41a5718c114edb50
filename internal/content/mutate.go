package content

import (
	"errors"
)

// ErrIndexOutOfRange is returned by positional mutations with a bad index
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrImageLimit is returned when a feature already holds the maximum number
// of images
var ErrImageLimit = errors.New("feature image limit reached")

// SetFeatureTitle replaces one feature's title, preserving everything else
func (f *FormModel) SetFeatureTitle(i int, title string) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	f.Features[i].Title = title
	return nil
}

// SetFeatureContent replaces one feature's content
func (f *FormModel) SetFeatureContent(i int, content string) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	f.Features[i].Content = content
	return nil
}

// SetFeatureImage replaces one image URL of one feature
func (f *FormModel) SetFeatureImage(i, j int, url string) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	if j < 0 || j >= len(f.Features[i].Images) {
		return ErrIndexOutOfRange
	}
	f.Features[i].Images[j] = url
	return nil
}

// AppendFeature adds a blank feature at the end
func (f *FormModel) AppendFeature() {
	f.Features = append(f.Features, FeatureForm{Title: "", Content: "", Images: []string{""}})
}

// RemoveFeature removes the feature at i, preserving relative order. Removing
// the last remaining feature re-seeds a single blank placeholder so the form
// never holds an empty feature list.
func (f *FormModel) RemoveFeature(i int) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	f.Features = append(f.Features[:i], f.Features[i+1:]...)
	f.seedPlaceholders()
	return nil
}

// AppendFeatureImage adds a blank image slot to feature i, refusing beyond
// the cap of five
func (f *FormModel) AppendFeatureImage(i int) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	if len(f.Features[i].Images) >= MaxFeatureImages {
		return ErrImageLimit
	}
	f.Features[i].Images = append(f.Features[i].Images, "")
	return nil
}

// RemoveFeatureImage removes image j from feature i. Removing the last image
// re-seeds a single blank slot.
func (f *FormModel) RemoveFeatureImage(i, j int) error {
	if i < 0 || i >= len(f.Features) {
		return ErrIndexOutOfRange
	}
	imgs := f.Features[i].Images
	if j < 0 || j >= len(imgs) {
		return ErrIndexOutOfRange
	}
	f.Features[i].Images = append(imgs[:j], imgs[j+1:]...)
	if len(f.Features[i].Images) == 0 {
		f.Features[i].Images = []string{""}
	}
	return nil
}

// AddTag appends a tag name, ignoring duplicates
func (f *FormModel) AddTag(name string) {
	for _, t := range f.Tags {
		if t == name {
			return
		}
	}
	f.Tags = append(f.Tags, name)
}

// RemoveTag removes a tag by name, preserving order of the rest
func (f *FormModel) RemoveTag(name string) {
	for i, t := range f.Tags {
		if t == name {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			return
		}
	}
}

// SetRegion changes the region and clears the dependent country and city in
// the same state transition, so a transient invalid combination can never be
// observed or submitted
func (f *FormModel) SetRegion(region string) {
	if region == f.Region {
		return
	}
	f.Region = region
	f.Country = ""
	f.City = ""
	f.deriveLocationOptions()
}

// SetCountry changes the country and clears the dependent city atomically
func (f *FormModel) SetCountry(country string) {
	if country == f.Country {
		return
	}
	f.Country = country
	f.City = ""
	f.deriveLocationOptions()
}

// SetCity changes the city selection
func (f *FormModel) SetCity(city string) {
	f.City = city
	f.deriveLocationOptions()
}
