// Package registry exposes the tag catalog index as an MCP server.
//
// It wires the index and render packages into a fixed set of seven tools:
//
//   - list_categories
//   - list_sub_categories
//   - search_tags_by_category
//   - search_tags_by_sub_category
//   - search_tags_by_keyword
//   - get_tag_detail
//   - get_tag_source
//
// Every tool executes locally against the immutable index and returns a
// single text payload. Empty query results come back as the render
// package's sentinel texts, not as protocol errors; the only error paths
// are unknown tools, unknown methods, and missing or empty required
// arguments. Required-parameter validation lives here so the index never
// sees blank strings.
//
// Example usage:
//
//	idx := index.New(loader.Load())
//	reg := registry.New(idx, registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "tagreference",
//	        Version: "0.1.0",
//	    },
//	})
//
//	ctx := context.Background()
//	registry.ServeStdio(ctx, reg)
//
// Transports: stdio (line-delimited JSON-RPC), streamable HTTP, and SSE.
package registry
