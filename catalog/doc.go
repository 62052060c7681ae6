// Package catalog defines the raw tag reference model and flattens it into
// the immutable Record list the index package consumes.
//
// The raw dataset is the JSON document produced by the reference scraper:
// an ordered list of category pages, each carrying a "tags" object that maps
// sub-category names to tag entries. Object key order in the document is
// meaningful (it fixes output ordering), so decoding preserves it.
//
// # Usage
//
// Decode the dataset and flatten it once at startup:
//
//	f, _ := os.Open("output.json")
//	defer f.Close()
//
//	cats, err := catalog.DecodeJSON(f)
//	if err != nil {
//	    // structurally invalid dataset: refuse to start
//	}
//	loader, err := catalog.NewLoader(cats)
//	if err != nil {
//	    // missing required fields: refuse to start
//	}
//	records := loader.Load()
//
// Load is idempotent and returns a fresh copy on every call; the flattening
// itself happens once at construction. A malformed raw structure is a fatal
// initialization error — there is no partial or degraded mode.
//
// # Thread Safety
//
// Loader and Record are immutable after construction and safe for
// concurrent use.
package catalog
