package pact

import (
	"github.com/cespare/xxhash/v2"

	"github.com/shardflow/shardflow/container"
)

// HashBytes returns a deterministic 64-bit key for a byte-slice record.
func HashBytes(record []byte) uint64 { return xxhash.Sum64(record) }

// HashString returns a deterministic 64-bit key for a string record.
func HashString(record string) uint64 { return xxhash.Sum64String(record) }

// NewBytesExchange is an exchange contract for byte-slice records, keyed by
// content hash.
func NewBytesExchange[T comparable]() ExchangeCore[T, []byte, container.List[[]byte]] {
	return NewExchange[T](HashBytes)
}

// NewStringExchange is an exchange contract for string records, keyed by
// content hash.
func NewStringExchange[T comparable]() ExchangeCore[T, string, container.List[string]] {
	return NewExchange[T](HashString)
}
