package container

import "iter"

// List is the default slice-backed container. Different edges may carry
// different payload shapes; List covers the common case of a plain batch of
// records.
type List[R any] []R

// Len reports the number of records in the list.
func (l List[R]) Len() int { return len(l) }

// Records yields each record in batch order.
func (l List[R]) Records() iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, r := range l {
			if !yield(r) {
				return
			}
		}
	}
}

// ListBuilder builds List containers with a fixed capacity hint.
type ListBuilder[R any] struct {
	capacity int
	records  List[R]
}

// NewListBuilder returns a builder producing List batches of at most
// capacity records. A capacity below 1 is treated as 1.
func NewListBuilder[R any](capacity int) *ListBuilder[R] {
	if capacity < 1 {
		capacity = 1
	}
	return &ListBuilder[R]{capacity: capacity}
}

// Push appends one record to the batch under construction.
func (b *ListBuilder[R]) Push(record R) {
	if b.records == nil {
		b.records = make(List[R], 0, b.capacity)
	}
	b.records = append(b.records, record)
}

// Len reports the number of records currently staged.
func (b *ListBuilder[R]) Len() int { return len(b.records) }

// Full reports whether the staged batch has reached the capacity hint.
func (b *ListBuilder[R]) Full() bool { return len(b.records) >= b.capacity }

// Extract returns the staged batch and resets the builder.
func (b *ListBuilder[R]) Extract() List[R] {
	out := b.records
	b.records = nil
	if out == nil {
		out = List[R]{}
	}
	return out
}
