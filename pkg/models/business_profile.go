package models

import "fmt"

// BusinessProfile is the structured summary of a company extracted from its
// website text. It is produced once per analysis call and never mutated
// afterwards.
type BusinessProfile struct {
	Name              string   `json:"name"`
	Industry          string   `json:"industry"`
	CoreOfferings     []string `json:"core_offerings"`
	ValuePropositions []string `json:"value_propositions"`
	TargetAudience    []string `json:"target_audience"`
	BrandTone         string   `json:"brand_tone"`
}

// Validate enforces the profile schema the analyzer prompt asks the model
// for. A profile failing validation counts as a parse failure and is
// retryable upstream.
func (p *BusinessProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("business profile: missing name")
	}
	if p.Industry == "" {
		return fmt.Errorf("business profile: missing industry")
	}
	if len(p.CoreOfferings) == 0 {
		return fmt.Errorf("business profile: missing core_offerings")
	}
	if len(p.ValuePropositions) == 0 {
		return fmt.Errorf("business profile: missing value_propositions")
	}
	if len(p.TargetAudience) == 0 {
		return fmt.Errorf("business profile: missing target_audience")
	}
	if p.BrandTone == "" {
		return fmt.Errorf("business profile: missing brand_tone")
	}
	return nil
}
