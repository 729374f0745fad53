package parse

import (
	"encoding/json"
	"time"

	"github.com/remotestarter/jobfeed/internal/feed"
	"github.com/remotestarter/jobfeed/internal/sanitize"
)

// maxSourceTags caps the tag list a JSON source may contribute per job.
const maxSourceTags = 5

// APIParser handles JSON listing payloads shaped like
// {"jobs": [ ... ]}. Field values are assumed to be plain text already.
type APIParser struct {
	clock      feed.Clock
	excerptLen int
}

// NewAPIParser builds an APIParser.
func NewAPIParser(clock feed.Clock, excerptLen int) *APIParser {
	return &APIParser{clock: clock, excerptLen: excerptLen}
}

type apiListing struct {
	Jobs json.RawMessage `json:"jobs"`
}

type apiJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"publication_date"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Parse deserializes the payload. A root that is not valid JSON is a
// ParseError; a missing or malformed "jobs" field degrades to an empty
// result instead.
func (p *APIParser) Parse(payload []byte, source string) ([]feed.Job, error) {
	var listing apiListing
	if err := json.Unmarshal(payload, &listing); err != nil {
		return nil, &ParseError{Source: source, Reason: "malformed-json", Err: err}
	}
	if len(listing.Jobs) == 0 {
		return nil, nil
	}

	var raw []apiJob
	if err := json.Unmarshal(listing.Jobs, &raw); err != nil {
		return nil, nil
	}

	jobs := make([]feed.Job, 0, len(raw))
	for _, item := range raw {
		title := sanitize.Clean(item.Title)
		link := canonicalLink(item.URL)
		if title == "" || link == "" {
			continue
		}

		tags := item.Tags
		if len(tags) > maxSourceTags {
			tags = tags[:maxSourceTags]
		}

		jobs = append(jobs, feed.Job{
			Title:       title,
			Company:     item.CompanyName,
			Source:      source,
			SourceURL:   link,
			PostedAt:    p.parseDate(item.PublishedAt),
			Location:    feed.RemoteLocation,
			Excerpt:     sanitize.Excerpt(sanitize.Clean(item.Description), p.excerptLen),
			Category:    item.Category,
			Tags:        tags,
			Description: item.Description,
		})
	}
	return jobs, nil
}

var apiDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (p *APIParser) parseDate(raw string) time.Time {
	for _, layout := range apiDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return p.clock.Now()
}
