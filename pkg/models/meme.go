package models

import "fmt"

// MemeConcept describes one marketing meme before rendering: the template
// the model chose, the caption texts in template slot order, hashtags
// (without the leading '#') and a visual description for generative
// rendering.
type MemeConcept struct {
	TemplateName      string   `json:"template_name"`
	Texts             []string `json:"texts"`
	Hashtags          []string `json:"hashtags"`
	VisualDescription string   `json:"visual_description"`
}

// Validate checks the concept schema. Slot-count mismatches against the
// chosen template are tolerated (the renderer substitutes placeholders);
// an empty template name or no texts at all are not.
func (m *MemeConcept) Validate() error {
	if m.TemplateName == "" {
		return fmt.Errorf("meme concept: missing template_name")
	}
	if len(m.Texts) == 0 {
		return fmt.Errorf("meme concept: missing texts")
	}
	if m.VisualDescription == "" {
		return fmt.Errorf("meme concept: missing visual_description")
	}
	return nil
}

// MemeCampaign is the transport wrapper the campaign generator asks the LLM
// for: a single "memes" key mapping to the ordered concept list. It is never
// persisted.
type MemeCampaign struct {
	Memes []MemeConcept `json:"memes"`
}

// Validate checks every concept in the campaign, in order.
func (c *MemeCampaign) Validate() error {
	if len(c.Memes) == 0 {
		return fmt.Errorf("meme campaign: empty memes array")
	}
	for i := range c.Memes {
		if err := c.Memes[i].Validate(); err != nil {
			return fmt.Errorf("meme campaign: entry %d: %w", i, err)
		}
	}
	return nil
}

// TemplateMatch is the top-ranked template returned by nearest-neighbor
// retrieval. Absence of a match is a valid outcome, not an error.
type TemplateMatch struct {
	ID   string
	Name string
}
