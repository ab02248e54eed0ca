package set

type node[T comparable] struct {
	value T
	next  *node[T]
}

// Linked is an unbounded set backed by a singly linked list. New members
// are pushed at the head, so Elements lists the most recent first.
type Linked[T comparable] struct {
	head *node[T]
}

func NewLinked[T comparable](values ...T) *Linked[T] {
	l := &Linked[T]{}
	_ = l.Replace(values...)
	return l
}

func (l *Linked[T]) Add(v T) error {
	if l.Contains(v) {
		return nil
	}
	l.head = &node[T]{value: v, next: l.head}
	return nil
}

func (l *Linked[T]) Remove(v T) (bool, error) {
	var prev *node[T]
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value != v {
			prev = curr
			continue
		}
		if prev == nil {
			l.head = curr.next
		} else {
			prev.next = curr.next
		}
		curr.next = nil
		return true, nil
	}
	return false, nil
}

func (l *Linked[T]) Contains(v T) bool {
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.value == v {
			return true
		}
	}
	return false
}

func (l *Linked[T]) Elements() []T {
	items := []T{}
	for curr := l.head; curr != nil; curr = curr.next {
		items = append(items, curr.value)
	}
	return items
}

func (l *Linked[T]) Replace(values ...T) error {
	l.head = nil
	for _, v := range values {
		_ = l.Add(v)
	}
	return nil
}

func (l *Linked[T]) Len() int {
	n := 0
	for curr := l.head; curr != nil; curr = curr.next {
		n++
	}
	return n
}

func (l *Linked[T]) String() string {
	return format(l.Elements())
}
