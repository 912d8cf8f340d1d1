package posts

import (
	"fmt"
	"strings"
)

// CampusMode controls how GenerateWith picks the target campus.
type CampusMode string

const (
	// CampusWeighted uses the default 70/30 distribution.
	CampusWeighted CampusMode = ""
	CampusUCSBOnly CampusMode = "ucsb"
	CampusSBCCOnly CampusMode = "sbcc"
	// CampusUniform picks each campus with equal probability.
	CampusUniform CampusMode = "random"
)

// CampusModes lists the modes with their dashboard labels.
var CampusModes = []struct {
	Mode  CampusMode
	Label string
}{
	{CampusWeighted, "UCSB (70%) + SBCC (30%)"},
	{CampusUCSBOnly, "UCSB Only"},
	{CampusSBCCOnly, "SBCC Only"},
	{CampusUniform, "Random"},
}

// ParseCampusMode accepts "", "weighted", "ucsb", "sbcc" or "random".
func ParseCampusMode(s string) (CampusMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weighted", "default":
		return CampusWeighted, nil
	case "ucsb":
		return CampusUCSBOnly, nil
	case "sbcc":
		return CampusSBCCOnly, nil
	case "random", "uniform":
		return CampusUniform, nil
	}
	return "", fmt.Errorf("unknown campus mode %q", s)
}

// Selection narrows what GenerateWith may pick. The zero value reproduces
// Generate.
type Selection struct {
	Theme  Theme
	Campus CampusMode
}

// ParseSelection builds a Selection from user-facing strings. An empty or
// "random" theme leaves the theme random.
func ParseSelection(theme, campus string) (Selection, error) {
	var sel Selection
	if t := strings.TrimSpace(theme); t != "" && !strings.EqualFold(t, "random") {
		parsed, err := ParseTheme(t)
		if err != nil {
			return Selection{}, err
		}
		sel.Theme = parsed
	}
	mode, err := ParseCampusMode(campus)
	if err != nil {
		return Selection{}, err
	}
	sel.Campus = mode
	return sel, nil
}
