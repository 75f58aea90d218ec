package model

import (
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

// Verdict classifies the truth status of a single claim.
type Verdict string

const (
	VerdictTrue       Verdict = "True"
	VerdictFalse      Verdict = "False"
	VerdictMisleading Verdict = "Misleading"
	VerdictUnverified Verdict = "Unverified"
)

// Valid reports whether v is one of the closed verdict set.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictMisleading, VerdictUnverified:
		return true
	}
	return false
}

// Source is a cited reference backing a claim's verdict.
type Source struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
}

// Validate checks that all source fields are present and the URL is well-formed.
func (s Source) Validate() error {
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return eris.Errorf("source url is not a valid URL: %q", s.URL)
	}
	if s.Title == "" {
		return eris.New("source title is required")
	}
	if s.Publisher == "" {
		return eris.New("source publisher is required")
	}
	if s.Date == "" {
		return eris.New("source date is required")
	}
	return nil
}

// Claim is a single fact-checked assertion with its verdict and evidence.
type Claim struct {
	Claim       string   `json:"claim"`
	Verdict     Verdict  `json:"verdict"`
	Explanation string   `json:"explanation"`
	Sources     []Source `json:"sources"`
}

// Validate checks required claim fields and every attached source.
func (c Claim) Validate() error {
	if c.Claim == "" {
		return eris.New("claim text is required")
	}
	if !c.Verdict.Valid() {
		return eris.Errorf("verdict %q is not one of True, False, Misleading, Unverified", c.Verdict)
	}
	if c.Explanation == "" {
		return eris.New("claim explanation is required")
	}
	for i, s := range c.Sources {
		if err := s.Validate(); err != nil {
			return eris.Wrapf(err, "source %d", i)
		}
	}
	return nil
}

// Metadata describes what was analyzed and how credible it was judged.
// AnalyzedURL holds the original input verbatim; for raw-text submissions it
// is the literal text, not a URL.
type Metadata struct {
	AnalyzedURL      string    `json:"analyzed_url"`
	AnalysisDate     time.Time `json:"analysis_date"`
	CredibilityScore int       `json:"credibility_score"`
}

// Validate rejects credibility scores outside [0,100]. Out-of-range scores
// are a hard failure, never clamped.
func (m Metadata) Validate() error {
	if m.CredibilityScore < 0 || m.CredibilityScore > 100 {
		return eris.Errorf("credibility_score %d outside [0,100]", m.CredibilityScore)
	}
	return nil
}

// FactCheckResponse is the unit returned to the caller for one analysis.
// It is never partially valid: either every field passes validation or the
// whole request fails.
type FactCheckResponse struct {
	Claims   []Claim  `json:"claims"`
	Summary  string   `json:"summary"`
	Metadata Metadata `json:"metadata"`
}

// Validate checks every claim and the metadata block.
func (r FactCheckResponse) Validate() error {
	for i, c := range r.Claims {
		if err := c.Validate(); err != nil {
			return eris.Wrapf(err, "claim %d", i)
		}
	}
	if err := r.Metadata.Validate(); err != nil {
		return eris.Wrap(err, "metadata")
	}
	return nil
}
