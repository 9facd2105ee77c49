// Package container defines the batch abstraction carried by dataflow
// channels. A container is an opaque batch of records with a known length;
// the exchange machinery additionally needs to iterate records and to build
// per-destination batches incrementally.
package container

import "iter"

// Container is a batch of records with a known length.
type Container interface {
	// Len reports the number of records in the batch.
	Len() int
}

// Records is a container whose records can be iterated. The exchange
// fan-out requires this capability to partition a batch by key.
type Records[R any] interface {
	Container
	// Records yields each record in batch order.
	Records() iter.Seq[R]
}

// Builder accumulates records into a container of type C. Builders are the
// per-destination staging area of the exchange fan-out: records are pushed
// one at a time and extracted as a full batch.
//
// A builder must preserve length: every pushed record appears in exactly one
// extracted container. The progress-tracking machinery of a surrounding
// runtime relies on this.
type Builder[R, C any] interface {
	// Push appends one record to the batch under construction.
	Push(record R)
	// Len reports the number of records currently staged.
	Len() int
	// Full reports whether the staged batch has reached its target size
	// and should be extracted before more records are pushed.
	Full() bool
	// Extract returns the staged batch and resets the builder. Extracting
	// an empty builder returns an empty container.
	Extract() C
}
