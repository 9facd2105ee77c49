package ids

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestMessageID(t *testing.T) {
	const total = 100
	generated := make([]string, total)
	for i := range generated {
		generated[i] = MessageID()
	}

	for _, id := range generated {
		if len(id) != 26 {
			t.Fatalf("expected ULID length 26, got %d", len(id))
		}
		if _, err := ulid.Parse(id); err != nil {
			t.Fatalf("expected valid ULID, got %v", err)
		}
	}

	for i := 1; i < total; i++ {
		if generated[i-1] >= generated[i] {
			t.Fatalf("expected ULIDs to be strictly increasing, %s >= %s", generated[i-1], generated[i])
		}
	}
}
