package set

// Intersection returns a new Linked holding the members of a that are also
// in b. A Linked result can never overflow, whatever the inputs are.
func Intersection[T comparable](a, b Set[T]) Set[T] {
	result := NewLinked[T]()
	_ = IntersectInto(result, a, b)
	return result
}

// IntersectInto empties dst and fills it with the members of a that are
// also in b. dst may be a or b itself. Errors from dst, such as
// CapacityExceededError, are returned.
func IntersectInto[T comparable](dst, a, b Set[T]) error {
	items := a.Elements()
	other := make(map[T]struct{}, b.Len())
	for _, e := range b.Elements() {
		other[e] = struct{}{}
	}
	if err := dst.Replace(); err != nil {
		return err
	}
	for _, e := range items {
		if _, ok := other[e]; !ok {
			continue
		}
		if err := dst.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// IntersectAll narrows the first set by every following one, as in a search
// combining several filters. No sets yields an empty result.
func IntersectAll[T comparable](sets ...Set[T]) Set[T] {
	if len(sets) == 0 {
		return NewLinked[T]()
	}
	result := sets[0]
	if len(sets) == 1 {
		return NewLinked(result.Elements()...)
	}
	for _, s := range sets[1:] {
		result = Intersection(result, s)
	}
	return result
}

func Union[T comparable](a, b Set[T]) Set[T] {
	result := NewLinked(a.Elements()...)
	for _, e := range b.Elements() {
		_ = result.Add(e)
	}
	return result
}

// Difference returns the members of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	result := NewLinked[T]()
	for _, e := range a.Elements() {
		if !b.Contains(e) {
			_ = result.Add(e)
		}
	}
	return result
}

// Equal reports whether a and b have the same members, in any order.
func Equal[T comparable](a, b Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, e := range a.Elements() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}
