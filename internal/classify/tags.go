package classify

import "strings"

// DefaultMaxTags bounds the tag list on every record.
const DefaultMaxTags = 6

var noExperiencePhrases = []string{
	"no experience",
	"no prior experience",
	"no experience required",
	"will train",
}

// Tags builds an ordered, deduplicated tag list for a posting. Generated
// tags come first (experience level, employment type, the remote marker,
// category), followed by any source-provided seed tags. The result is
// capped at max entries, earliest kept.
func Tags(text, category string, seed []string, max int) []string {
	if max <= 0 {
		max = DefaultMaxTags
	}
	folded := strings.ToLower(text)
	tags := make([]string, 0, max)
	seen := make(map[string]struct{}, max)
	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			return
		}
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	switch {
	case containsAny(folded, "entry level", "entry-level", "graduate", "intern"):
		add("entry-level")
	case strings.Contains(folded, "junior"):
		add("junior")
	case strings.Contains(folded, "senior"):
		add("senior")
	}

	// Employment type is mutually exclusive, full-time being the default.
	switch {
	case containsAny(folded, "part-time", "part time"):
		add("part-time")
	case strings.Contains(folded, "contract"):
		add("contract")
	case strings.Contains(folded, "internship"):
		add("internship")
	default:
		add("full-time")
	}

	add("remote")

	if category != "" && category != CategoryOther {
		add(category)
	}
	if containsAny(folded, noExperiencePhrases...) {
		add("no-experience")
	}
	for _, tag := range seed {
		add(tag)
	}

	if len(tags) > max {
		tags = tags[:max]
	}
	return tags
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
