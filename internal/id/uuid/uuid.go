// Package uuid generates run identifiers.
package uuid

import "github.com/google/uuid"

// Generator implements feed.IDGenerator using random UUIDs.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// NewID returns a fresh UUIDv4 string, one per pipeline run.
func (Generator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
