package autofill

import (
	"regexp"
	"strings"
)

const (
	unknownCompany   = "Unknown Company"
	defaultRoleTitle = "Software Engineer"
)

// URL shapes recognized, in order: company job boards on a jobs. or
// careers. subdomain, LinkedIn company pages, LinkedIn job postings.
var (
	jobsDomainRe      = regexp.MustCompile(`(?:jobs|careers)\.([^./]+)\.com`)
	linkedinCompanyRe = regexp.MustCompile(`linkedin\.com/company/([^/?]+)`)
	linkedinJobRe     = regexp.MustCompile(`linkedin\.com/jobs/view/.*?-at-(.*?)(?:-|$|\?)`)
)

// ParseResult is what the URL extractor managed to pull out of a posting.
type ParseResult struct {
	CompanyName string
	RoleTitle   string
	Matched     bool
	Message     string
}

// ParseJobURL extracts a company name from common job posting URLs. The role
// title is a placeholder for the user to correct; a URL matching none of the
// known shapes still yields a usable result with Matched false.
func ParseJobURL(rawURL string) ParseResult {
	url := strings.ToLower(strings.TrimSpace(rawURL))
	if url == "" {
		return ParseResult{
			CompanyName: unknownCompany,
			RoleTitle:   defaultRoleTitle,
			Message:     "no URL provided",
		}
	}

	if m := jobsDomainRe.FindStringSubmatch(url); m != nil {
		return matchedResult(companyFromSlug(m[1]))
	}
	if m := linkedinCompanyRe.FindStringSubmatch(url); m != nil {
		return matchedResult(companyFromSlug(m[1]))
	}
	if m := linkedinJobRe.FindStringSubmatch(url); m != nil {
		return matchedResult(titleSlug(m[1]))
	}

	return ParseResult{
		CompanyName: unknownCompany,
		RoleTitle:   defaultRoleTitle,
		Message:     "no recognizable job URL pattern",
	}
}

func matchedResult(company string) ParseResult {
	return ParseResult{
		CompanyName: company,
		RoleTitle:   defaultRoleTitle,
		Matched:     true,
		Message:     "extracted company from URL",
	}
}

// companyFromSlug turns a URL slug into a display name. Short slugs without
// hyphens read as initialisms (rbc, ibm); everything else is title-cased.
func companyFromSlug(slug string) string {
	if len(slug) <= 5 && !strings.Contains(slug, "-") {
		return strings.ToUpper(slug)
	}
	return titleSlug(slug)
}

func titleSlug(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
