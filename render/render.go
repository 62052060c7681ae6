package render

import (
	"strings"

	"github.com/jonwraymond/tagreference/catalog"
)

// Sentinel texts returned in place of rendered content when a result set is
// empty. Callers pass these through verbatim.
const (
	NoCategoriesFound    = "Error: No categories found"
	NoSubCategoriesFound = "Error: No sub categories found"
	NoTagsFound          = "Error: No tags found"
)

const (
	noExampleFallback   = "No example provided"
	noTagSourceFallback = "No tag source provided"
)

// Tags named ".list[i]..." are loop-member tags of $item.group: their
// heading spells the loop variable out and they carry no output example.
const (
	listItemPrefix  = ".list[i]"
	listItemHeading = "$item.group"
)

// Categories renders a category name list.
func Categories(names []string) string {
	return nameList("## Categories", NoCategoriesFound, names)
}

// SubCategories renders a sub-category name list.
func SubCategories(names []string) string {
	return nameList("## Sub categories", NoSubCategoriesFound, names)
}

func nameList(heading, sentinel string, names []string) string {
	if len(names) == 0 {
		return sentinel
	}
	var b strings.Builder
	b.WriteString(heading)
	for _, name := range names {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	return b.String()
}

// TagInfo renders each record as a detail block: heading, description,
// placement, and code/output examples. Blocks are separated by a blank
// line, record order preserved.
func TagInfo(records []catalog.Record) string {
	if len(records) == 0 {
		return NoTagsFound
	}
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = tagInfoBlock(rec)
	}
	return strings.Join(blocks, "\n\n")
}

func tagInfoBlock(rec catalog.Record) string {
	listItem := strings.HasPrefix(rec.TagName, listItemPrefix)
	heading := rec.TagName
	if listItem {
		heading = listItemHeading + rec.TagName
	}

	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(rec.TagDescription)
	b.WriteString("\n\n### Category\n")
	b.WriteString(rec.CategoryName)
	b.WriteString("\n### Sub Category\n")
	b.WriteString(rec.CategorySubName)
	b.WriteString("\n### Code Example\n")
	b.WriteString(orFallback(rec.TagSampleCode, noExampleFallback))
	if !listItem {
		b.WriteString("\n### Output Example\n")
		b.WriteString(orFallback(rec.TagHTMLOutputImage, noExampleFallback))
	}
	return b.String()
}

// SourceInfo renders each record with its reference links. Headings use the
// tag name unmodified.
func SourceInfo(records []catalog.Record) string {
	if len(records) == 0 {
		return NoTagsFound
	}
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = sourceInfoBlock(rec)
	}
	return strings.Join(blocks, "\n\n")
}

func sourceInfoBlock(rec catalog.Record) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(rec.TagName)
	b.WriteString("\n")
	b.WriteString(rec.TagDescription)
	b.WriteString("\n\n### Category\n")
	b.WriteString(rec.CategoryName)
	b.WriteString("\n### Sub Category\n")
	b.WriteString(rec.CategorySubName)
	b.WriteString("\n### Category source link\n")
	b.WriteString(rec.CategoryLink)
	b.WriteString("\n### Tag source link\n")
	b.WriteString(orFallback(rec.TagLink, noTagSourceFallback))
	return b.String()
}

func orFallback(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
