package fake

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

var sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

func Color() string {
	return gofakeit.SafeColor()
}

func Size() string {
	return gofakeit.RandomString(sizes)
}

func Brand() string {
	return gofakeit.Company()
}

// Filter returns a search filter such as "color:red" or "discount:30%".
func Filter() string {
	switch gofakeit.Number(0, 3) {
	case 0:
		return "color:" + Color()
	case 1:
		return "size:" + Size()
	case 2:
		return "brand:" + Brand()
	default:
		return fmt.Sprintf("discount:%d%%", gofakeit.Number(5, 70))
	}
}

func ProductID() string {
	return fmt.Sprintf("product_%03d", gofakeit.Number(1, 999))
}

// Filters returns n distinct filters.
func Filters(n int) []string {
	return distinct(n, Filter)
}

// ProductIDs returns n distinct product ids, n must not exceed 999.
func ProductIDs(n int) []string {
	return distinct(n, ProductID)
}

func distinct(n int, gen func() string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, n)
	for len(out) < n {
		v := gen()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
