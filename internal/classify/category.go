package classify

import (
	"regexp"
	"strings"
)

// CategoryOther is returned when no classification rule matches.
const CategoryOther = "other"

// categoryRule binds one category to the pattern that detects it.
type categoryRule struct {
	category string
	pattern  *regexp.Regexp
}

// categoryRules is evaluated top to bottom, first match wins. The order is
// deliberate: reordering shifts postings between categories, so new rules
// go at the bottom.
var categoryRules = []categoryRule{
	{"customer-service", regexp.MustCompile(`customer (?:service|support|success|care)|support (?:rep|agent|specialist|engineer)|help ?desk|call center`)},
	{"marketing", regexp.MustCompile(`marketing|\bseo\b|social media|growth|brand|community manager`)},
	{"sales", regexp.MustCompile(`\bsales\b|account (?:executive|manager)|business development|\bsdr\b|\bbdr\b`)},
	{"writing", regexp.MustCompile(`\bwrit(?:er|ing)\b|copywrit|\beditor\b|proofread|journalis|blogger`)},
	{"design", regexp.MustCompile(`design|\bux\b|\bui\b|graphic|illustrat|figma|creative`)},
	{"development", regexp.MustCompile(`developer|engineer|programmer|software|front.?end|back.?end|full.?stack|devops|\bqa\b`)},
	{"data", regexp.MustCompile(`\bdata\b|analyst|analytics|machine learning|\bsql\b|statistic`)},
	{"virtual-assistant", regexp.MustCompile(`virtual assistant|executive assistant|admin(?:istrative)? assistant|\bva\b`)},
	{"project-management", regexp.MustCompile(`project manage|program manage|product (?:owner|manager)|scrum`)},
}

// Category classifies combined posting text into the first matching
// category, or CategoryOther when nothing applies.
func Category(text string) string {
	folded := strings.ToLower(text)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(folded) {
			return rule.category
		}
	}
	return CategoryOther
}
