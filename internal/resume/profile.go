// Package resume turns an unstructured resume document into a structured
// candidate profile.
package resume

// Profile is the structured candidate record derived from one document.
// It is built once per run and read-only afterwards.
type Profile struct {
	RawText      string   `json:"raw_text"`
	Name         string   `json:"name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	LinkedinURL  string   `json:"linkedin_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	PortfolioURL string   `json:"portfolio_url,omitempty"`
	JobRole      string   `json:"job_role,omitempty"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Education    []string `json:"education"`

	// ExperienceMonths is the estimate behind the rendered Experience string.
	// Difficulty banding works on this value, not on the string.
	ExperienceMonths int `json:"-"`
}

// ExperienceYears returns whole years of estimated experience.
func (p *Profile) ExperienceYears() int {
	if p == nil {
		return 0
	}
	return p.ExperienceMonths / 12
}
