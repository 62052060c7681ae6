package index

import (
	"slices"
	"strings"

	"github.com/jonwraymond/tagreference/catalog"
)

// Index answers queries over an immutable flat record list. All derived
// structures are built once by New; methods only read.
type Index struct {
	records    []catalog.Record
	categories []string
	byCategory map[string][]catalog.Record
	subNames   map[string][]string
	bySub      map[string]map[string][]catalog.Record

	fingerprint string
}

// New builds an Index from the flat record list produced by catalog.Loader.
// The input slice is copied; later mutation by the caller has no effect.
func New(records []catalog.Record) *Index {
	idx := &Index{
		records:    slices.Clone(records),
		byCategory: make(map[string][]catalog.Record),
		subNames:   make(map[string][]string),
		bySub:      make(map[string]map[string][]catalog.Record),
	}

	for _, rec := range idx.records {
		if _, seen := idx.byCategory[rec.CategoryName]; !seen {
			idx.categories = append(idx.categories, rec.CategoryName)
		}
		idx.byCategory[rec.CategoryName] = append(idx.byCategory[rec.CategoryName], rec)

		subs, ok := idx.bySub[rec.CategoryName]
		if !ok {
			subs = make(map[string][]catalog.Record)
			idx.bySub[rec.CategoryName] = subs
		}
		if _, seen := subs[rec.CategorySubName]; !seen {
			idx.subNames[rec.CategoryName] = append(idx.subNames[rec.CategoryName], rec.CategorySubName)
		}
		subs[rec.CategorySubName] = append(subs[rec.CategorySubName], rec)
	}

	idx.fingerprint = computeFingerprint(idx.records)
	return idx
}

// Categories returns the distinct category names in first-occurrence order.
func (idx *Index) Categories() []string {
	return slices.Clone(idx.categories)
}

// SubCategories returns the ordered sub-category names under category.
// An unknown category yields an empty result, not an error.
func (idx *Index) SubCategories(category string) []string {
	return slices.Clone(idx.subNames[category])
}

// SearchByCategory returns the records under category in load order.
func (idx *Index) SearchByCategory(category string) []catalog.Record {
	return slices.Clone(idx.byCategory[category])
}

// SearchBySubCategory returns the records under both keys. A missing
// category degrades to an empty result exactly like a missing sub-category;
// the two miss cases are deliberately indistinguishable.
func (idx *Index) SearchBySubCategory(category, subCategory string) []catalog.Record {
	return slices.Clone(idx.bySub[category][subCategory])
}

// SearchByTagName returns every record whose tag name matches exactly.
// Matching is case-sensitive; a tag recurring under several categories
// yields one record per occurrence, in load order.
func (idx *Index) SearchByTagName(name string) []catalog.Record {
	var out []catalog.Record
	for _, rec := range idx.records {
		if rec.TagName == name {
			out = append(out, rec)
		}
	}
	return out
}

// SearchByTagDescription returns records whose description contains keyword,
// or whose HTML output image (when present) contains it. Both checks are
// case-sensitive, unanchored substring matches combined with OR.
func (idx *Index) SearchByTagDescription(keyword string) []catalog.Record {
	var out []catalog.Record
	for _, rec := range idx.records {
		if strings.Contains(rec.TagDescription, keyword) {
			out = append(out, rec)
			continue
		}
		if rec.TagHTMLOutputImage != nil && strings.Contains(*rec.TagHTMLOutputImage, keyword) {
			out = append(out, rec)
		}
	}
	return out
}

// Records returns a copy of the flat record list in load order.
func (idx *Index) Records() []catalog.Record {
	return slices.Clone(idx.records)
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Fingerprint returns the stable content hash computed at construction.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// Stats describes the indexed dataset.
type Stats struct {
	Records       int
	Categories    int
	SubCategories int
	Fingerprint   string
}

// Stats returns dataset statistics for logging and health reporting.
func (idx *Index) Stats() Stats {
	subs := 0
	for _, names := range idx.subNames {
		subs += len(names)
	}
	return Stats{
		Records:       len(idx.records),
		Categories:    len(idx.categories),
		SubCategories: subs,
		Fingerprint:   idx.fingerprint,
	}
}
