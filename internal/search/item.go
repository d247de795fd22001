package search

import (
	"github.com/llehouerou/trackersearch/internal/provider"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

// Item is one displayed result.
type Item struct {
	Result tracker.Result
	Meta   provider.ResultMeta
}

// Path returns the file-system path of the result.
func (i Item) Path() string {
	return i.Result.Path
}

func newItems(p Provider, results []tracker.Result) []Item {
	items := make([]Item, len(results))
	for i, r := range results {
		items[i] = Item{Result: r, Meta: p.DescribeResult(r)}
	}
	return items
}
