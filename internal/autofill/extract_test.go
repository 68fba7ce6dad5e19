package autofill

import "testing"

func TestParseJobURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		company string
		matched bool
	}{
		{"jobs subdomain short", "https://jobs.rbc.com/ca/en/openings/123", "RBC", true},
		{"careers subdomain long", "https://careers.google.com/jobs/results/456", "Google", true},
		{"linkedin company short", "https://www.linkedin.com/company/ibm/", "IBM", true},
		{"linkedin company hyphenated", "https://www.linkedin.com/company/acme-widgets/about", "Acme Widgets", true},
		{"linkedin job posting", "https://www.linkedin.com/jobs/view/backend-engineer-at-stripe?refId=9", "Stripe", true},
		{"unrecognized", "https://example.com/jobs/789", "Unknown Company", false},
		{"empty", "", "Unknown Company", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseJobURL(tc.url)
			if got.CompanyName != tc.company {
				t.Fatalf("company = %q, want %q", got.CompanyName, tc.company)
			}
			if got.Matched != tc.matched {
				t.Fatalf("matched = %v, want %v", got.Matched, tc.matched)
			}
			if got.RoleTitle != defaultRoleTitle {
				t.Fatalf("role = %q, want placeholder", got.RoleTitle)
			}
		})
	}
}

func TestCompanyFromSlug(t *testing.T) {
	cases := []struct {
		slug string
		want string
	}{
		{"rbc", "RBC"},
		{"google", "Google"},
		{"x-ai", "X Ai"},
		{"acme-widgets-inc", "Acme Widgets Inc"},
	}
	for _, tc := range cases {
		if got := companyFromSlug(tc.slug); got != tc.want {
			t.Fatalf("companyFromSlug(%q) = %q, want %q", tc.slug, got, tc.want)
		}
	}
}
