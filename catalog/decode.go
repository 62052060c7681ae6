package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads the scraped dataset from r. The top level is a JSON array
// of category objects; each object's "tags" value is decoded with its key
// order preserved, since that order drives sub-category output ordering.
// Structural validation beyond JSON well-formedness is left to NewLoader.
func DecodeJSON(r io.Reader) ([]RawCategory, error) {
	var raw []rawCategoryJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cats := make([]RawCategory, len(raw))
	for i, rc := range raw {
		cats[i] = RawCategory{
			Name: rc.Name,
			Link: rc.Link,
		}
		if rc.Tags != nil {
			cats[i].Groups = rc.Tags.groups
		}
	}
	return cats, nil
}

type rawCategoryJSON struct {
	Name string       `json:"name"`
	Link string       `json:"link"`
	Tags *orderedTags `json:"tags"`
}

// orderedTags decodes a JSON object into TagGroups in document key order.
// encoding/json's map decoding would lose that order, so the object is
// walked token by token instead.
type orderedTags struct {
	groups []TagGroup
}

func (o *orderedTags) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tags: expected object, got %v", tok)
	}

	// Non-nil even for an empty object: presence of the mapping matters.
	o.groups = []TagGroup{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tags: expected object key, got %v", keyTok)
		}

		var tags []RawTag
		if err := dec.Decode(&tags); err != nil {
			return fmt.Errorf("tags[%q]: %w", key, err)
		}
		o.groups = append(o.groups, TagGroup{Name: key, Tags: tags})
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
