package classify

import "strings"

var beginnerKeywords = []string{
	"entry",
	"junior",
	"intern",
	"graduate",
	"trainee",
	"assistant",
	"coordinator",
	"associate",
	"no experience",
}

var seniorKeywords = []string{
	"senior",
	"sr.",
	"lead",
	"principal",
	"staff ",
	"director",
	"head of",
	"architect",
	"3+ years",
	"4+ years",
	"5+ years",
	"6+ years",
	"7+ years",
	"8+ years",
	"10+ years",
}

// BeginnerFriendly reports whether a posting should be kept by the
// entry-level filter. The policy is inclusive by default: any beginner
// keyword passes outright, and a posting with no seniority signal at all
// also passes.
func BeginnerFriendly(text string) bool {
	folded := strings.ToLower(text)
	for _, kw := range beginnerKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	for _, kw := range seniorKeywords {
		if strings.Contains(folded, kw) {
			return false
		}
	}
	return true
}
