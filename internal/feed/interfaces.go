package feed

import (
	"context"
	"time"
)

// Fetcher retrieves the raw body of a source URL.
type Fetcher interface {
	FetchBody(ctx context.Context, url string, accept string) ([]byte, error)
}

// Parser maps a raw payload from one source into partial Job records.
// Implementations are selected per Source.Kind and know nothing about
// other sources.
type Parser interface {
	Parse(payload []byte, source string) ([]Job, error)
}

// Hasher computes digests for content fingerprinting.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces run identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// WriteStatus reports what the sink did with a document.
type WriteStatus string

// Sink write outcomes.
const (
	StatusWritten   WriteStatus = "written"
	StatusUnchanged WriteStatus = "unchanged"
)

// Sink durably emits the final document.
type Sink interface {
	Write(ctx context.Context, doc Document) (WriteStatus, error)
}
