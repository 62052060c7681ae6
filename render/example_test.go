package render_test

import (
	"fmt"

	"github.com/jonwraymond/tagreference/catalog"
	"github.com/jonwraymond/tagreference/render"
)

func ExampleCategories() {
	fmt.Println(render.Categories([]string{"Top page", "Item detail page"}))
	fmt.Println(render.Categories(nil))
	// Output:
	// ## Categories
	// - Top page
	// - Item detail page
	// Error: No categories found
}

func ExampleTagInfo() {
	code := "<{$shop.name}>"
	fmt.Println(render.TagInfo([]catalog.Record{{
		TagName:         "$shop.name",
		CategoryName:    "Top page",
		CategorySubName: "$shop",
		TagDescription:  "Shop name",
		TagSampleCode:   &code,
	}}))
	// Output:
	// ## $shop.name
	// Shop name
	//
	// ### Category
	// Top page
	// ### Sub Category
	// $shop
	// ### Code Example
	// <{$shop.name}>
	// ### Output Example
	// No example provided
}
