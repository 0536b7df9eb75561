package resume

import (
	"reflect"
	"testing"
)

const sampleResume = `Jane Doe
Senior Backend Engineer

Email: jane.doe@example.com
Phone: +1 415-555-0199
linkedin.com/in/jane-doe
github.com/janedoe
Portfolio: https://janedoe.dev/projects

EDUCATION
Bachelor of Science, Computer Science - Stanford University
Master of Science - MIT
`

func TestEmail(t *testing.T) {
	if got := Email(sampleResume); got != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", got)
	}
	if got := Email("no contact details here"); got != "" {
		t.Fatalf("expected empty email, got %q", got)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "international with separators", in: "call +1 415-555-0199 now", want: "+1 415-555-0199"},
		{name: "plain local", in: "phone: 4155550199", want: "4155550199"},
		{name: "parenthesized area code", in: "(415) 555-0199", want: "(415) 555-0199"},
		{name: "absent", in: "no numbers", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Phone(tc.in); got != tc.want {
				t.Fatalf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLinkedIn(t *testing.T) {
	if got := LinkedIn(sampleResume); got != "https://linkedin.com/in/jane-doe" {
		t.Fatalf("unexpected linkedin url: %q", got)
	}
	if got := LinkedIn("see LINKEDIN.COM/IN/UPPER for details"); got != "https://LINKEDIN.COM/IN/UPPER" {
		t.Fatalf("expected case-insensitive match, got %q", got)
	}
	if got := LinkedIn("nothing"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestGitHub(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare domain", in: "github.com/janedoe", want: "https://github.com/janedoe"},
		{name: "with scheme", in: "https://github.com/janedoe", want: "https://github.com/janedoe"},
		{name: "with www", in: "www.github.com/janedoe", want: "https://www.github.com/janedoe"},
		{name: "absent", in: "gitlab.com/janedoe", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GitHub(tc.in); got != tc.want {
				t.Fatalf("GitHub(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPortfolio(t *testing.T) {
	if got := Portfolio(sampleResume); got != "https://janedoe.dev/projects" {
		t.Fatalf("unexpected portfolio url: %q", got)
	}

	onlyKnown := "https://linkedin.com/in/jane https://github.com/jane"
	if got := Portfolio(onlyKnown); got != "" {
		t.Fatalf("expected denylisted urls to be skipped, got %q", got)
	}
}

func TestName(t *testing.T) {
	if got := Name(sampleResume); got != "Jane Doe" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := Name("\n\n  John Smith \nEngineer"); got != "John Smith" {
		t.Fatalf("expected first non-blank line, got %q", got)
	}
	if got := Name("   \n\t\n"); got != "" {
		t.Fatalf("expected empty for blank document, got %q", got)
	}
}

func TestEducation(t *testing.T) {
	got := Education(sampleResume)
	want := []string{
		"Bachelor of Science, Computer Science - Stanford University",
		"Master of Science - MIT",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected education lines: %v", got)
	}
}

func TestEducationKeepsDuplicatesInOrder(t *testing.T) {
	text := "Bachelor of Arts\nwork stuff\nBachelor of Arts\n"
	got := Education(text)
	if len(got) != 2 || got[0] != "Bachelor of Arts" || got[1] != "Bachelor of Arts" {
		t.Fatalf("expected duplicates retained in order, got %v", got)
	}
}
