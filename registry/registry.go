package registry

import (
	"context"
	"fmt"

	"github.com/jonwraymond/toolfoundation/model"

	"github.com/jonwraymond/tagreference/index"
	"github.com/jonwraymond/tagreference/render"
)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry serves the fixed set of catalog query tools against an index.
// The tool table is built once by New and never changes, and the index is
// read-only, so a Registry is safe for concurrent use.
type Registry struct {
	idx    *index.Index
	config Config

	tools    []model.Tool
	handlers map[string]ToolHandler
}

// New creates a Registry answering queries against idx.
func New(idx *index.Index, cfg Config) *Registry {
	r := &Registry{
		idx:      idx,
		config:   cfg,
		handlers: make(map[string]ToolHandler),
	}
	r.registerCatalogTools()
	return r
}

func (r *Registry) register(tool model.Tool, handler ToolHandler) {
	r.tools = append(r.tools, tool)
	r.handlers[tool.Name] = handler
}

func (r *Registry) registerCatalogTools() {
	r.register(buildTool(
		"list_categories",
		"List every tag category (page context) in the reference.",
		stringSchema(nil, nil),
	), func(ctx context.Context, args map[string]any) (string, error) {
		return render.Categories(r.idx.Categories()), nil
	})

	r.register(buildTool(
		"list_sub_categories",
		"List the sub categories under a category.",
		stringSchema([]string{"category"}, map[string]string{
			"category": "Category name as returned by list_categories",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		category, err := stringArg(args, "category")
		if err != nil {
			return "", err
		}
		return render.SubCategories(r.idx.SubCategories(category)), nil
	})

	r.register(buildTool(
		"search_tags_by_category",
		"Return detail blocks for every tag under a category.",
		stringSchema([]string{"category"}, map[string]string{
			"category": "Category name as returned by list_categories",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		category, err := stringArg(args, "category")
		if err != nil {
			return "", err
		}
		return render.TagInfo(r.idx.SearchByCategory(category)), nil
	})

	r.register(buildTool(
		"search_tags_by_sub_category",
		"Return detail blocks for every tag under a category and sub category.",
		stringSchema([]string{"category", "sub_category"}, map[string]string{
			"category":     "Category name as returned by list_categories",
			"sub_category": "Sub category name as returned by list_sub_categories",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		category, err := stringArg(args, "category")
		if err != nil {
			return "", err
		}
		subCategory, err := stringArg(args, "sub_category")
		if err != nil {
			return "", err
		}
		return render.TagInfo(r.idx.SearchBySubCategory(category, subCategory)), nil
	})

	r.register(buildTool(
		"search_tags_by_keyword",
		"Search tag descriptions and HTML output samples for a keyword (case-sensitive substring).",
		stringSchema([]string{"keyword"}, map[string]string{
			"keyword": "Keyword to look for in descriptions and output samples",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		keyword, err := stringArg(args, "keyword")
		if err != nil {
			return "", err
		}
		return render.TagInfo(r.idx.SearchByTagDescription(keyword)), nil
	})

	r.register(buildTool(
		"get_tag_detail",
		"Return the detail block for a tag by its exact name.",
		stringSchema([]string{"tag_name"}, map[string]string{
			"tag_name": "Exact tag name, case-sensitive",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		tagName, err := stringArg(args, "tag_name")
		if err != nil {
			return "", err
		}
		return render.TagInfo(r.idx.SearchByTagName(tagName)), nil
	})

	r.register(buildTool(
		"get_tag_source",
		"Return the reference source links for a tag by its exact name.",
		stringSchema([]string{"tag_name"}, map[string]string{
			"tag_name": "Exact tag name, case-sensitive",
		}),
	), func(ctx context.Context, args map[string]any) (string, error) {
		tagName, err := stringArg(args, "tag_name")
		if err != nil {
			return "", err
		}
		return render.SourceInfo(r.idx.SearchByTagName(tagName)), nil
	})
}

// Tools returns the tool definitions in registration order.
func (r *Registry) Tools() []model.Tool {
	out := make([]model.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Execute runs a tool by name with the given arguments and returns its
// rendered text payload.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return handler(ctx, args)
}

// Stats returns statistics for the underlying index.
func (r *Registry) Stats() index.Stats {
	return r.idx.Stats()
}
