package ollama

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/joestump/rental-agent/internal/listing"
	"github.com/joestump/rental-agent/internal/posts"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// PromptData holds the variables available in the prompt template.
type PromptData struct {
	Address           string
	Bedrooms          int
	Bathrooms         int
	Rent              string
	TotalDueAtSigning string
	Campus            string
	Theme             string
	Tone              string
	Features          []string
}

// NewPromptData fills PromptData from the listing for a theme and campus.
func NewPromptData(f *listing.Facts, theme posts.Theme, campus string) PromptData {
	return PromptData{
		Address:           f.Address,
		Bedrooms:          f.Bedrooms,
		Bathrooms:         f.Bathrooms,
		Rent:              f.Pricing.Rent,
		TotalDueAtSigning: f.Pricing.TotalDueAtSigning,
		Campus:            campus,
		Theme:             theme.Label(),
		Tone:              f.Tone,
		Features:          f.Features,
	}
}

// RenderPrompt executes the configured prompt template with data.
func (c *Client) RenderPrompt(data PromptData) (string, error) {
	return renderPrompt(c.promptCustom, data)
}

// renderPrompt executes the prompt template with the given data.
// If customTemplate is non-empty it is used instead of the embedded default.
func renderPrompt(customTemplate string, data PromptData) (string, error) {
	src := defaultPromptTemplate
	if customTemplate != "" {
		src = customTemplate
	}

	tmpl, err := template.New("prompt").Parse(src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
