package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompany(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"at pattern", "Junior Developer at Acme Corp", "", "Acme Corp"},
		{"pipe pattern", "Customer Support Rep | Globex", "", "Globex"},
		{"dash pattern", "Marketing Assistant - Initech", "", "Initech"},
		{"en dash left segment", "Hooli – Entry Level Designer", "", "Hooli"},
		{"emphasis fallback", "Virtual Assistant", "<p>Join <strong>Umbrella Inc</strong> today</p>", "Umbrella Inc"},
		{"no match", "Virtual Assistant", "plain description", ""},
		{"overlong capture rejected", "Role at " + strings.Repeat("long ", 12), "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Company(tc.title, tc.description))
		})
	}
}

func TestBeginnerFriendly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"beginner keyword", "Entry level support role", true},
		{"beginner outranks senior", "Junior role reporting to a senior manager", true},
		{"senior keyword", "Senior Platform Engineer, 5+ years required", false},
		{"director", "Director of Operations", false},
		{"no signals pass", "Customer Support Rep, remote worldwide", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BeginnerFriendly(tc.text))
		})
	}
}

func TestCategoryFirstMatchWins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"Customer Support Rep", "customer-service"},
		{"SEO Marketing Coordinator", "marketing"},
		{"Sales Development Representative", "sales"},
		{"Content Writer for tech blog", "writing"},
		{"Product Designer (Figma)", "design"},
		{"Backend Developer, Go", "development"},
		{"Data Analyst", "data"},
		{"Virtual Assistant", "virtual-assistant"},
		{"Project Management Office intern", "project-management"},
		{"Forklift Operator", CategoryOther},
		// customer-service precedes development in the rule order, so a
		// support engineer stays in customer-service.
		{"Customer Support Engineer", "customer-service"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, Category(tc.text))
		})
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	t.Run("entry level remote", func(t *testing.T) {
		tags := Tags("Customer Support Rep. Entry level support role.", "customer-service", nil, DefaultMaxTags)
		assert.Equal(t, []string{"entry-level", "full-time", "remote", "customer-service"}, tags)
	})

	t.Run("employment type is exclusive", func(t *testing.T) {
		tags := Tags("part-time contract gig", CategoryOther, nil, DefaultMaxTags)
		assert.Contains(t, tags, "part-time")
		assert.NotContains(t, tags, "contract")
		assert.NotContains(t, tags, "full-time")
	})

	t.Run("no experience marker", func(t *testing.T) {
		tags := Tags("No experience required, we will train", CategoryOther, nil, DefaultMaxTags)
		assert.Contains(t, tags, "no-experience")
	})

	t.Run("seed tags deduplicated and capped", func(t *testing.T) {
		seed := []string{"Remote", "python", "django", "flask", "sql"}
		tags := Tags("Junior Data Engineer", "data", seed, DefaultMaxTags)
		assert.Len(t, tags, DefaultMaxTags)
		unique := make(map[string]struct{})
		for _, tag := range tags {
			if _, dup := unique[tag]; dup {
				t.Fatalf("duplicate tag %q in %v", tag, tags)
			}
			unique[tag] = struct{}{}
		}
		// Earliest-generated tags win over late seed entries.
		assert.Equal(t, "junior", tags[0])
	})
}
