package system

import (
	"testing"
	"time"
)

func TestClockNowIsUTC(t *testing.T) {
	t.Parallel()

	c := New()
	now := c.Now()
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", now.Location())
	}
	if time.Since(now) > time.Minute {
		t.Fatalf("clock drifted: %v", now)
	}
}
