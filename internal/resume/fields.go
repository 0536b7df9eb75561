package resume

import (
	"regexp"
	"strings"
)

// Contact and link extraction is best-effort: every function returns an empty
// value when nothing matches and never fails the pipeline.

var (
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern     = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern  = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern    = regexp.MustCompile(`(?i)(https?://)?(www\.)?github\.com/[A-Za-z0-9_-]+`)
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	portfolioIgnored = []string{"linkedin.com", "github.com"}
)

var educationKeywords = []string{
	"bachelor", "master", "phd", "mba", "b.tech", "m.tech",
	"b.sc", "m.sc", "university", "college", "degree",
}

// Email returns the first email address in the text.
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Phone returns the first phone-looking number. The pattern is deliberately
// loose: optional country code, optional separators.
func Phone(text string) string {
	return phonePattern.FindString(text)
}

// LinkedIn returns the candidate's LinkedIn profile as an absolute https URL.
func LinkedIn(text string) string {
	match := linkedinPattern.FindString(text)
	if match == "" {
		return ""
	}
	return "https://" + match
}

// GitHub returns the candidate's GitHub profile as an absolute https URL.
func GitHub(text string) string {
	match := githubPattern.FindString(text)
	if match == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(match), "http") {
		return match
	}
	return "https://" + match
}

// Portfolio returns the first URL that belongs to neither LinkedIn nor GitHub.
func Portfolio(text string) string {
	for _, url := range urlPattern.FindAllString(text, -1) {
		lower := strings.ToLower(url)
		ignored := false
		for _, domain := range portfolioIgnored {
			if strings.Contains(lower, domain) {
				ignored = true
				break
			}
		}
		if !ignored {
			return url
		}
	}
	return ""
}

// Name returns the first non-blank line of the document. A structural
// heuristic only; there is no check that it looks like a person's name.
func Name(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Education returns every line mentioning a degree or institution keyword,
// in document order. Duplicate lines are retained.
func Education(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, keyword := range educationKeywords {
			if strings.Contains(lower, keyword) {
				lines = append(lines, strings.TrimSpace(line))
				break
			}
		}
	}
	return lines
}
