package posts

import (
	"fmt"
	"strings"
)

// Theme is the content angle of a post.
type Theme string

const (
	CampusProximity        Theme = "campus_proximity"
	BeachLifestyle         Theme = "beach_lifestyle"
	StudentCommunity       Theme = "student_community"
	Affordability          Theme = "affordability"
	Convenience            Theme = "convenience"
	MoveInReady            Theme = "move_in_ready"
	NeighborhoodHighlights Theme = "neighborhood_highlights"
)

// Themes lists every theme in display order.
var Themes = []Theme{
	CampusProximity,
	BeachLifestyle,
	StudentCommunity,
	Affordability,
	Convenience,
	MoveInReady,
	NeighborhoodHighlights,
}

// Label returns the human form, e.g. "Move In Ready".
func (t Theme) Label() string { return Title(string(t)) }

// Title turns a snake_case tag into title case words.
func Title(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Valid reports whether t is one of Themes.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTheme accepts either the snake_case name or the label form
// ("Beach Lifestyle"), case-insensitively.
func ParseTheme(s string) (Theme, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, " ", "_")
	norm = strings.ReplaceAll(norm, "-", "_")
	t := Theme(norm)
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Pool selects which template table a post draws from.
type Pool string

const (
	PoolMain     Pool = "main"
	PoolFallback Pool = "fallback"
)

// ModelTag is the value recorded in Post.ModelUsed for the pool.
func (p Pool) ModelTag() string {
	if p == PoolMain {
		return "template"
	}
	return "fallback"
}
