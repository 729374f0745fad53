package parse

import (
	"bytes"

	"github.com/mmcdole/gofeed"

	"github.com/remotestarter/jobfeed/internal/feed"
	"github.com/remotestarter/jobfeed/internal/sanitize"
)

// FeedParser handles RSS and Atom payloads via gofeed. Date extraction
// falls back from the published field to the updated field, then to the
// ingestion time.
type FeedParser struct {
	clock      feed.Clock
	excerptLen int
}

// NewFeedParser builds a FeedParser. excerptLen bounds the sanitized
// description stored on each record.
func NewFeedParser(clock feed.Clock, excerptLen int) *FeedParser {
	return &FeedParser{clock: clock, excerptLen: excerptLen}
}

// Parse extracts one Job per feed item. Items without a usable title or
// absolute link are dropped silently; callers compare the returned count
// against the payload for observability.
func (p *FeedParser) Parse(payload []byte, source string) ([]feed.Job, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, &ParseError{Source: source, Reason: "malformed-feed", Err: err}
	}

	jobs := make([]feed.Job, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := sanitize.Clean(item.Title)
		link := canonicalLink(item.Link)
		if link == "" {
			link = canonicalLink(item.GUID)
		}
		if title == "" || link == "" {
			continue
		}

		posted := p.clock.Now()
		switch {
		case item.PublishedParsed != nil:
			posted = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			posted = *item.UpdatedParsed
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}

		jobs = append(jobs, feed.Job{
			Title:       title,
			Source:      source,
			SourceURL:   link,
			PostedAt:    posted,
			Location:    feed.RemoteLocation,
			Excerpt:     sanitize.Excerpt(sanitize.Clean(description), p.excerptLen),
			Description: description,
		})
	}
	return jobs, nil
}
