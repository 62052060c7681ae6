package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMalformedCatalog indicates the raw dataset is structurally invalid.
// Use errors.Is() to check for it.
var ErrMalformedCatalog = errors.New("malformed catalog")

// RawTag is one tag entry as it appears in the scraped dataset. Link,
// SampleCode, and HTMLOutputImage are nullable in the source document.
type RawTag struct {
	Tag             string  `json:"tag"`
	Description     string  `json:"description"`
	Link            *string `json:"link"`
	SampleCode      *string `json:"sample_code"`
	HTMLOutputImage *string `json:"html_output_image"`
}

// TagGroup pairs a sub-category name with its ordered tag entries. Groups
// keep the key order of the source "tags" object.
type TagGroup struct {
	Name string
	Tags []RawTag
}

// RawCategory is one category page of the reference: its name, source link,
// and tag groups. A nil Groups slice means the page had no "tags" mapping
// at all, which is a structural error; an empty slice is a page with no tags.
type RawCategory struct {
	Name   string
	Link   string
	Groups []TagGroup
}

// Record is the flattened unit of indexing: one tag occurring under one
// category and sub-category. Nullable source fields keep their pointer shape
// so absence survives the flattening. Records are never mutated after load.
type Record struct {
	TagName            string
	CategoryName       string
	CategorySubName    string
	TagDescription     string
	CategoryLink       string
	TagLink            *string
	TagSampleCode      *string
	TagHTMLOutputImage *string
}

// Loader flattens the raw category tree into Records once at construction.
type Loader struct {
	records []Record
}

// NewLoader validates and flattens the raw categories. It returns
// ErrMalformedCatalog if a required field is missing; the caller should
// treat that as fatal rather than serve partial data.
func NewLoader(cats []RawCategory) (*Loader, error) {
	records, err := Flatten(cats)
	if err != nil {
		return nil, err
	}
	return &Loader{records: records}, nil
}

// Load returns the flat record list in source order. Every call returns a
// fresh copy so callers cannot corrupt shared state.
func (l *Loader) Load() []Record {
	return slices.Clone(l.records)
}

// Len returns the number of flattened records.
func (l *Loader) Len() int {
	return len(l.records)
}

// Flatten emits one Record per (category, sub-category, tag) triple,
// preserving category order, group key order, and tag list order. No
// deduplication is applied: a tag name recurring under several categories
// produces one Record per occurrence.
func Flatten(cats []RawCategory) ([]Record, error) {
	var out []Record
	for i, cat := range cats {
		if cat.Name == "" {
			return nil, fmt.Errorf("%w: category %d has no name", ErrMalformedCatalog, i)
		}
		if cat.Groups == nil {
			return nil, fmt.Errorf("%w: category %q has no tags mapping", ErrMalformedCatalog, cat.Name)
		}
		for _, group := range cat.Groups {
			if group.Name == "" {
				return nil, fmt.Errorf("%w: category %q has an unnamed sub category", ErrMalformedCatalog, cat.Name)
			}
			for _, tag := range group.Tags {
				if tag.Tag == "" {
					return nil, fmt.Errorf("%w: sub category %q of %q has a tag with no name", ErrMalformedCatalog, group.Name, cat.Name)
				}
				out = append(out, Record{
					TagName:            tag.Tag,
					CategoryName:       cat.Name,
					CategorySubName:    group.Name,
					TagDescription:     tag.Description,
					CategoryLink:       cat.Link,
					TagLink:            tag.Link,
					TagSampleCode:      tag.SampleCode,
					TagHTMLOutputImage: tag.HTMLOutputImage,
				})
			}
		}
	}
	return out, nil
}
