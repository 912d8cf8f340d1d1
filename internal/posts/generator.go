// Package posts generates marketing posts for the listing from themed
// template tables.
package posts

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/joestump/rental-agent/internal/listing"
)

// CreativeStyle is the style tag every post carries.
const CreativeStyle = "clean"

// DateLayout is the calendar date format used in Post.Date.
const DateLayout = "2006-01-02"

// Post is one generated post. It is never mutated after being returned.
type Post struct {
	Date           string `json:"date"`
	Theme          Theme  `json:"theme"`
	TargetCampus   string `json:"target_campus"`
	Content        string `json:"content"`
	CharacterCount int    `json:"character_count"`
	ModelUsed      string `json:"model_used"`
	CreativeStyle  string `json:"creative_style"`
}

// Source is the randomness the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// globalSource uses the auto-seeded top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// CampusWeight is one entry of the audience distribution.
type CampusWeight struct {
	Campus string  `json:"campus"`
	Weight float64 `json:"weight"`
}

// DefaultCampusWeights favours UCSB 70/30 over SBCC.
var DefaultCampusWeights = []CampusWeight{
	{Campus: listing.CampusUCSB, Weight: 0.7},
	{Campus: listing.CampusSBCC, Weight: 0.3},
}

// Generator produces posts. It is safe for concurrent use.
type Generator struct {
	facts    *listing.Facts
	bank     *Bank
	campuses []CampusWeight
	now      func() time.Time
	observe  func(Post)

	mu  sync.Mutex
	rnd Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the randomness source, e.g. with a seeded *rand.Rand.
func WithSource(src Source) Option {
	return func(g *Generator) { g.rnd = src }
}

// WithClock replaces time.Now for post dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithBank replaces the built-in template tables.
func WithBank(b *Bank) Option {
	return func(g *Generator) { g.bank = b }
}

// WithObserver registers a callback invoked with every generated post.
func WithObserver(fn func(Post)) Option {
	return func(g *Generator) { g.observe = fn }
}

// New builds a generator for facts. Every template is rendered once against
// both campuses so a malformed template fails here with a *FormatError.
func New(facts *listing.Facts, opts ...Option) (*Generator, error) {
	if facts == nil {
		return nil, fmt.Errorf("listing facts are required")
	}
	g := &Generator{
		facts:    facts,
		campuses: DefaultCampusWeights,
		now:      time.Now,
		rnd:      globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.bank == nil {
		bank, err := DefaultBank()
		if err != nil {
			return nil, err
		}
		g.bank = bank
	}

	for _, cw := range g.campuses {
		if err := g.bank.Validate(facts.Vars(cw.Campus)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Facts returns the listing the generator writes about.
func (g *Generator) Facts() *listing.Facts { return g.facts }

// Bank returns the template tables in use.
func (g *Generator) Bank() *Bank { return g.bank }

// Generate produces one post with a random theme, a weighted campus and a
// coin flip between the main and fallback pools. It panics with a
// *FormatError only if a template is malformed, which New rules out.
func (g *Generator) Generate() Post {
	return g.GenerateWith(Selection{})
}

// GenerateWith is Generate with an optional forced theme and campus mode.
func (g *Generator) GenerateWith(sel Selection) Post {
	g.mu.Lock()
	theme := sel.Theme
	if theme == "" {
		theme = Themes[g.rnd.IntN(len(Themes))]
	}
	campus := g.pickCampus(sel.Campus)
	pool := PoolFallback
	if g.rnd.IntN(2) == 0 {
		pool = PoolMain
	}
	index := g.rnd.IntN(g.bank.Len(theme, pool))
	g.mu.Unlock()

	content, err := g.bank.Render(theme, pool, index, g.facts.Vars(campus))
	if err != nil {
		panic(err)
	}

	p := Post{
		Date:           g.now().Format(DateLayout),
		Theme:          theme,
		TargetCampus:   campus,
		Content:        content,
		CharacterCount: utf8.RuneCountInString(content),
		ModelUsed:      pool.ModelTag(),
		CreativeStyle:  CreativeStyle,
	}
	if g.observe != nil {
		g.observe(p)
	}
	return p
}

// GenerateN produces n posts with the same selection.
func (g *Generator) GenerateN(n int, sel Selection) []Post {
	out := make([]Post, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.GenerateWith(sel))
	}
	return out
}

// GenerateWeek produces seven posts dated today through today+6.
func (g *Generator) GenerateWeek() []Post {
	start := g.now()
	week := make([]Post, 7)
	for i := range week {
		p := g.Generate()
		p.Date = start.AddDate(0, 0, i).Format(DateLayout)
		week[i] = p
	}
	return week
}

// pickCampus must be called with g.mu held.
func (g *Generator) pickCampus(mode CampusMode) string {
	switch mode {
	case CampusUCSBOnly:
		return listing.CampusUCSB
	case CampusSBCCOnly:
		return listing.CampusSBCC
	case CampusUniform:
		return g.campuses[g.rnd.IntN(len(g.campuses))].Campus
	}

	total := 0.0
	for _, cw := range g.campuses {
		total += cw.Weight
	}
	r := g.rnd.Float64() * total
	for _, cw := range g.campuses {
		if r < cw.Weight {
			return cw.Campus
		}
		r -= cw.Weight
	}
	return g.campuses[len(g.campuses)-1].Campus
}
