package index_test

import (
	"fmt"

	"github.com/jonwraymond/tagreference/catalog"
	"github.com/jonwraymond/tagreference/index"
)

func ExampleNew() {
	records := []catalog.Record{
		{TagName: "$shop.name", CategoryName: "Top page", CategorySubName: "$shop", TagDescription: "Shop name"},
		{TagName: "$shop.tel", CategoryName: "Top page", CategorySubName: "$shop", TagDescription: "Shop phone number"},
		{TagName: "$item.name", CategoryName: "Item detail page", CategorySubName: "$item", TagDescription: "Item name"},
	}

	idx := index.New(records)
	fmt.Println("Categories:", idx.Categories())
	fmt.Println("Records:", idx.Len())
	// Output:
	// Categories: [Top page Item detail page]
	// Records: 3
}

func ExampleIndex_SearchByTagDescription() {
	records := []catalog.Record{
		{TagName: "$shop.name", CategoryName: "Top page", CategorySubName: "$shop", TagDescription: "Shop name"},
		{TagName: "$shop.tel", CategoryName: "Top page", CategorySubName: "$shop", TagDescription: "Shop phone number"},
	}

	idx := index.New(records)
	for _, rec := range idx.SearchByTagDescription("phone") {
		fmt.Println(rec.TagName)
	}
	// Output:
	// $shop.tel
}

func ExampleIndex_SearchBySubCategory() {
	records := []catalog.Record{
		{TagName: "$shop.name", CategoryName: "Top page", CategorySubName: "$shop", TagDescription: "Shop name"},
		{TagName: "$cart.total", CategoryName: "Top page", CategorySubName: "$cart", TagDescription: "Cart total"},
	}

	idx := index.New(records)
	fmt.Println(len(idx.SearchBySubCategory("Top page", "$cart")))
	fmt.Println(len(idx.SearchBySubCategory("Missing page", "$cart")))
	// Output:
	// 1
	// 0
}
