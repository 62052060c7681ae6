// Package render turns query results into deterministic text blocks for the
// calling agent.
//
// All functions are pure and never fail: an empty result set renders as a
// fixed sentinel string ("Error: No categories found", "Error: No sub
// categories found", "Error: No tags found") instead of an error value,
// which keeps the whole query path exception-free.
//
// Tag detail blocks carry one special case: tags whose name starts with
// ".list[i]" are loop-member tags of $item.group, so their heading is
// rendered as "$item.group" + name and their Output Example section is
// omitted. SourceInfo never rewrites names.
package render
