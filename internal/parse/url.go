package parse

import (
	"net/url"
	"strings"
)

// canonicalLink validates that raw is an absolute http(s) URL and strips
// the query string and fragment so the same posting fetched twice compares
// equal. Returns "" when the link is unusable.
func canonicalLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
