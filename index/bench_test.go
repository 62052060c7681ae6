package index

import (
	"fmt"
	"testing"

	"github.com/jonwraymond/tagreference/catalog"
)

func benchRecords(n int) []catalog.Record {
	records := make([]catalog.Record, n)
	for i := range records {
		records[i] = catalog.Record{
			TagName:         fmt.Sprintf("$item.field%d", i),
			CategoryName:    fmt.Sprintf("Page %d", i%10),
			CategorySubName: fmt.Sprintf("$group%d", i%5),
			TagDescription:  fmt.Sprintf("Description for field %d in the reference", i),
		}
	}
	return records
}

func BenchmarkNew(b *testing.B) {
	records := benchRecords(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(records)
	}
}

func BenchmarkSearchByTagName(b *testing.B) {
	idx := New(benchRecords(500))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.SearchByTagName("$item.field250")
	}
}

func BenchmarkSearchByTagDescription(b *testing.B) {
	idx := New(benchRecords(500))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.SearchByTagDescription("field 250")
	}
}
