// Package index builds fast lookup structures over the flattened tag
// catalog and answers category, sub-category, name, and keyword queries.
//
// # Construction
//
// New derives three structures from the flat record list in one pass:
//
//   - the distinct category names in first-occurrence order
//   - a category -> records mapping (relative order preserved)
//   - a category -> sub-category -> records mapping, with per-category
//     sub-category names in first-occurrence order
//
// Nothing is mutated after construction; there is no update or delete path.
//
// # Queries
//
//	idx := index.New(loader.Load())
//
//	idx.Categories()                          // ordered category names
//	idx.SubCategories("Item list page")       // ordered sub-category names
//	idx.SearchByCategory("Item list page")    // records under a category
//	idx.SearchBySubCategory("Item list page", "$item.group")
//	idx.SearchByTagName("$page.title")        // exact, case-sensitive
//	idx.SearchByTagDescription("price")       // case-sensitive substring
//
// Every lookup miss returns an empty result, never an error — including a
// SearchBySubCategory call whose category does not exist at all. "Not found"
// is a normal, renderable outcome; the render package turns it into a
// sentinel message.
//
// Name and keyword searches are linear scans over the flat list. The
// dataset is a few hundred records loaded once per process, so derived
// search structures would cost more than they save.
//
// # Thread Safety
//
// The index is immutable after New returns, so concurrent reads need no
// locking. Returned slices are caller-owned copies; mutating them does not
// affect the index.
package index
