// Package sink persists the result document.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/remotestarter/jobfeed/internal/feed"
)

// FileSink writes the document to a fixed path, skipping the write when
// the content has not changed since the previous run.
type FileSink struct {
	path   string
	logger *zap.Logger
}

// NewFile returns a sink targeting path.
func NewFile(path string, logger *zap.Logger) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSink{path: path, logger: logger}, nil
}

// Write serializes doc as indented JSON and replaces the file at the
// sink path. When the existing document matches (ignoring the generation
// timestamp) the write is skipped and StatusUnchanged is returned.
func (s *FileSink) Write(ctx context.Context, doc feed.Document) (feed.WriteStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context canceled: %w", err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	if existing, readErr := os.ReadFile(s.path); readErr == nil && unchanged(existing, doc) {
		s.logger.Info("output unchanged, skipping write", zap.String("path", s.path))
		return feed.StatusUnchanged, nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write output %s: %w", s.path, err)
	}
	s.logger.Info("output written",
		zap.String("path", s.path),
		zap.Int("jobs", doc.TotalJobs),
	)
	return feed.StatusWritten, nil
}

// unchanged reports whether the existing file holds the same document,
// ignoring surrounding whitespace and the updated_at timestamp (two runs
// over identical source data differ only in generation time).
func unchanged(existing []byte, doc feed.Document) bool {
	var prev feed.Document
	if err := json.Unmarshal(bytes.TrimSpace(existing), &prev); err != nil {
		return false
	}
	prev.UpdatedAt = time.Time{}
	doc.UpdatedAt = time.Time{}

	a, errA := json.Marshal(prev)
	b, errB := json.Marshal(doc)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}
