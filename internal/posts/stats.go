package posts

import "github.com/joestump/rental-agent/internal/listing"

// Stats summarises the generator's configuration for statistics screens.
type Stats struct {
	Themes            []Theme               `json:"themes"`
	Campuses          []CampusWeight        `json:"campuses"`
	Features          int                   `json:"features"`
	Amenities         int                   `json:"amenities"`
	MainTemplates     int                   `json:"main_templates"`
	FallbackTemplates int                   `json:"fallback_templates"`
	Pricing           *listing.PricingCheck `json:"pricing,omitempty"`
	PricingError      string                `json:"pricing_error,omitempty"`
}

// Stats reports counts over the listing and template bank.
func (g *Generator) Stats() Stats {
	s := Stats{
		Themes:            append([]Theme(nil), Themes...),
		Campuses:          append([]CampusWeight(nil), g.campuses...),
		Features:          len(g.facts.Features),
		Amenities:         len(g.facts.Amenities),
		MainTemplates:     g.bank.Count(PoolMain),
		FallbackTemplates: g.bank.Count(PoolFallback),
	}
	check, err := g.facts.Pricing.Check()
	if err != nil {
		s.PricingError = err.Error()
	} else {
		s.Pricing = &check
	}
	return s
}
