// Package classify derives company, category, and tag metadata from the
// free text of a job posting. Everything here is a pure function of its
// inputs; matching is case-folded and order-sensitive.
package classify

import (
	"regexp"
	"strings"
)

// maxCompanyLength rejects pattern captures that swallowed half the title.
const maxCompanyLength = 50

var (
	// Tried in order; the first capture shorter than maxCompanyLength wins.
	companyTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\s+at\s+(.+)$`),
		regexp.MustCompile(`\|\s*([^|]+?)\s*$`),
		regexp.MustCompile(`\s-\s*([^-]+?)\s*$`),
	}
	dashLeftPattern = regexp.MustCompile(`^\s*([^\x{2013}\x{2014}]+?)\s*[\x{2013}\x{2014}]`)
	emphasisPattern = regexp.MustCompile(`(?i)<(?:strong|b)\b[^>]*>([^<]+)</(?:strong|b)>`)
)

// Company extracts an employer name from the posting title, falling back
// to the first emphasized span of the raw description. Returns "" when no
// heuristic produces a plausible name.
func Company(title, description string) string {
	for _, pattern := range companyTitlePatterns {
		if name := capture(pattern, title); name != "" {
			return name
		}
	}
	// Alternate title shape: "Acme Corp – Junior Designer".
	if name := capture(dashLeftPattern, title); name != "" {
		return name
	}
	return capture(emphasisPattern, description)
}

func capture(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	name := strings.TrimSpace(m[1])
	if name == "" || len(name) >= maxCompanyLength {
		return ""
	}
	return name
}
