package index

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/jonwraymond/tagreference/catalog"
)

// computeFingerprint generates a stable hash of the record slice. The
// fingerprint changes when record content changes, letting hosting layers
// tell datasets apart across restarts without comparing the records
// themselves.
func computeFingerprint(records []catalog.Record) string {
	h := sha256.New()

	for _, rec := range records {
		writeField(h, rec.TagName)
		writeField(h, rec.CategoryName)
		writeField(h, rec.CategorySubName)
		writeField(h, rec.TagDescription)
		writeField(h, rec.CategoryLink)
		writeNullable(h, rec.TagLink)
		writeNullable(h, rec.TagSampleCode)
		writeNullable(h, rec.TagHTMLOutputImage)
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h hash.Hash, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0}) // separator
}

// writeNullable distinguishes nil from the empty string with a presence byte.
func writeNullable(h hash.Hash, s *string) {
	if s == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	writeField(h, *s)
}
