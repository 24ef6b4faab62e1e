package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessProfileValidate(t *testing.T) {
	profile := BusinessProfile{
		Name:              "Acme",
		Industry:          "Automation",
		CoreOfferings:     []string{"robots"},
		ValuePropositions: []string{"fast"},
		TargetAudience:    []string{"plants"},
		BrandTone:         "direct",
	}
	assert.NoError(t, profile.Validate())

	incomplete := profile
	incomplete.BrandTone = ""
	assert.Error(t, incomplete.Validate())

	incomplete = profile
	incomplete.CoreOfferings = nil
	assert.Error(t, incomplete.Validate())
}

func TestBusinessProfileJSONFieldNames(t *testing.T) {
	var profile BusinessProfile
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Acme",
		"industry": "Automation",
		"core_offerings": ["robots"],
		"value_propositions": ["fast"],
		"target_audience": ["plants"],
		"brand_tone": "direct"
	}`), &profile))
	assert.NoError(t, profile.Validate())
}

func TestMemeConceptValidate(t *testing.T) {
	concept := MemeConcept{
		TemplateName:      "drake",
		Texts:             []string{"top"},
		VisualDescription: "desc",
	}
	assert.NoError(t, concept.Validate())

	bad := concept
	bad.Texts = nil
	assert.Error(t, bad.Validate())

	bad = concept
	bad.TemplateName = ""
	assert.Error(t, bad.Validate())
}

func TestMemeCampaignValidate(t *testing.T) {
	empty := MemeCampaign{}
	assert.Error(t, empty.Validate())

	campaign := MemeCampaign{Memes: []MemeConcept{
		{TemplateName: "drake", Texts: []string{"a"}, VisualDescription: "d"},
		{TemplateName: "", Texts: []string{"a"}, VisualDescription: "d"},
	}}
	err := campaign.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}
