// Package ids mints the message identifiers used by the bridge transport.
package ids

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// MessageID returns a time-sortable identifier for one bridge message.
// Identifiers minted by a single process are strictly increasing, so the
// backing transport's logs sort in publish order.
func MessageID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
