// Package feed defines the core types shared across the aggregation pipeline.
package feed

import "time"

// SourceKind identifies the wire shape of an external feed.
type SourceKind string

// Supported feed shapes.
const (
	KindRSS  SourceKind = "rss"
	KindJSON SourceKind = "json"
)

// RemoteLocation is the location marker applied to every posting; the
// pipeline only aggregates remote-work feeds.
const RemoteLocation = "Remote"

// Source describes one external feed or API. Sources are loaded from
// configuration at startup and never mutated afterwards; Name doubles as
// the provenance label stamped on every record the source yields.
type Source struct {
	Name string
	URL  string
	Kind SourceKind
}

// Job is the canonical normalized unit representing one job posting.
type Job struct {
	Title     string    `json:"title"`
	Company   string    `json:"company,omitempty"`
	Source    string    `json:"source"`
	SourceURL string    `json:"source_url"`
	PostedAt  time.Time `json:"posted_at"`
	Location  string    `json:"location"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`

	// Description carries the full (possibly marked-up) description text
	// between the parse and inference steps. It is never serialized.
	Description string `json:"-"`
}

// Document is the single artifact produced by one pipeline run. It is
// built once, then emitted; TotalJobs always equals len(Jobs) and Sources
// lists every source attempted regardless of success.
type Document struct {
	UpdatedAt time.Time `json:"updated_at"`
	TotalJobs int       `json:"total_jobs"`
	Sources   []string  `json:"sources"`
	Jobs      []Job     `json:"jobs"`
}
