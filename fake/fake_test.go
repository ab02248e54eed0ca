package fake

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestFilters(t *testing.T) {
	is := is.New(t)
	filters := Filters(40)
	is.Equal(len(filters), 40)

	seen := map[string]bool{}
	for _, f := range filters {
		is.True(!seen[f]) // filters are distinct
		is.True(strings.Contains(f, ":"))
		seen[f] = true
	}
}

func TestProductIDs(t *testing.T) {
	is := is.New(t)
	ids := ProductIDs(10)
	is.Equal(len(ids), 10)
	for _, id := range ids {
		is.True(strings.HasPrefix(id, "product_"))
	}
}
