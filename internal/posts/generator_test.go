package posts

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/joestump/rental-agent/internal/listing"
)

// scriptedSource replays fixed draws so tests can pin every choice.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := New(listing.Default(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestAllTemplatesRender(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}
	facts := listing.Default()

	for _, pool := range []Pool{PoolMain, PoolFallback} {
		want := 5
		if pool == PoolFallback {
			want = 3
		}
		for _, theme := range Themes {
			if n := bank.Len(theme, pool); n != want {
				t.Errorf("%s/%s has %d templates, want %d", theme, pool, n, want)
			}
			for i := 0; i < bank.Len(theme, pool); i++ {
				for _, campus := range facts.TargetAudiences {
					out, err := bank.Render(theme, pool, i, facts.Vars(campus))
					if err != nil {
						t.Fatalf("Render(%s, %s, %d): %v", theme, pool, i, err)
					}
					if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
						t.Errorf("%s/%s#%d left placeholder syntax: %q", theme, pool, i, out)
					}
					if !strings.Contains(out, "Rent: $1,500/month") {
						t.Errorf("%s/%s#%d missing rent line", theme, pool, i)
					}
				}
			}
		}
	}
}

func TestCampusProximityFirstTemplate(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}
	out, err := bank.Render(CampusProximity, PoolMain, 0, listing.Default().Vars(listing.CampusUCSB))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out, "6777 Del Playa Dr, Isla Vista, CA 93117 – UCSB Students Welcome!") {
		t.Errorf("unexpected prefix: %q", out)
	}
	found := false
	for _, line := range strings.Split(out, "\n") {
		if line == "Rent: $1,500/month" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing exact rent line in %q", out)
	}
}

func TestNewBankMissingPlaceholder(t *testing.T) {
	main := make(map[Theme][]string)
	fallback := make(map[Theme][]string)
	for _, theme := range Themes {
		main[theme] = []string{"{{.address}}"}
		fallback[theme] = []string{"{{.address}}"}
	}
	fallback[Affordability] = []string{"ok {{.address}}", "{{.parking_spots}} spots"}

	bank, err := NewBank(main, fallback)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	_, err = New(listing.Default(), WithBank(bank))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("New error = %v, want *FormatError", err)
	}
	if fe.Theme != Affordability || fe.Pool != PoolFallback || fe.Index != 1 {
		t.Errorf("FormatError = %+v", fe)
	}
}

func TestNewBankRejectsEmptyTheme(t *testing.T) {
	main := map[Theme][]string{CampusProximity: {"x"}}
	if _, err := NewBank(main, main); err == nil {
		t.Fatal("expected error for themes without templates")
	}
}

func TestNewBankParseError(t *testing.T) {
	main := make(map[Theme][]string)
	for _, theme := range Themes {
		main[theme] = []string{"{{.address}}"}
	}
	broken := make(map[Theme][]string)
	for k, v := range main {
		broken[k] = v
	}
	broken[Convenience] = []string{"{{.address"}

	_, err := NewBank(main, broken)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FormatError", err)
	}
	if fe.Theme != Convenience || fe.Pool != PoolFallback {
		t.Errorf("FormatError = %+v", fe)
	}
}

func TestGenerateScripted(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	// theme index 0, coin 0 (main), template 0; campus draw below 0.7.
	src := &scriptedSource{ints: []int{0, 0, 0}, floats: []float64{0.2}}
	g := newTestGenerator(t, WithSource(src), WithClock(fixedClock(day)))

	p := g.Generate()

	if p.Theme != CampusProximity {
		t.Errorf("Theme = %q", p.Theme)
	}
	if p.TargetCampus != listing.CampusUCSB {
		t.Errorf("TargetCampus = %q", p.TargetCampus)
	}
	if p.ModelUsed != "template" {
		t.Errorf("ModelUsed = %q, want template", p.ModelUsed)
	}
	if p.CreativeStyle != "clean" {
		t.Errorf("CreativeStyle = %q", p.CreativeStyle)
	}
	if p.Date != "2025-03-14" {
		t.Errorf("Date = %q", p.Date)
	}
	if !strings.HasPrefix(p.Content, "6777 Del Playa Dr, Isla Vista, CA 93117 – UCSB Students Welcome!") {
		t.Errorf("Content = %q", p.Content)
	}
}

func TestGenerateFallbackAndSBCC(t *testing.T) {
	src := &scriptedSource{ints: []int{3, 1, 2}, floats: []float64{0.85}}
	g := newTestGenerator(t, WithSource(src))

	p := g.Generate()

	if p.Theme != Affordability {
		t.Errorf("Theme = %q, want affordability", p.Theme)
	}
	if p.TargetCampus != listing.CampusSBCC {
		t.Errorf("TargetCampus = %q, want SBCC", p.TargetCampus)
	}
	if p.ModelUsed != "fallback" {
		t.Errorf("ModelUsed = %q, want fallback", p.ModelUsed)
	}
	want, err := g.Bank().Render(Affordability, PoolFallback, 2, listing.Default().Vars(listing.CampusSBCC))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if p.Content != want {
		t.Errorf("Content = %q, want %q", p.Content, want)
	}
}

func TestGenerateInvariants(t *testing.T) {
	g := newTestGenerator(t, WithSource(rand.New(rand.NewPCG(1, 2))))

	for i := 0; i < 500; i++ {
		p := g.Generate()
		if !p.Theme.Valid() {
			t.Fatalf("invalid theme %q", p.Theme)
		}
		if p.TargetCampus != listing.CampusUCSB && p.TargetCampus != listing.CampusSBCC {
			t.Fatalf("invalid campus %q", p.TargetCampus)
		}
		if p.CharacterCount != utf8.RuneCountInString(p.Content) {
			t.Fatalf("CharacterCount = %d, rune count = %d", p.CharacterCount, utf8.RuneCountInString(p.Content))
		}
		if p.ModelUsed != "template" && p.ModelUsed != "fallback" {
			t.Fatalf("ModelUsed = %q", p.ModelUsed)
		}
		if strings.Contains(p.Content, "{{") {
			t.Fatalf("placeholder left in %q", p.Content)
		}
	}
}

func TestCampusDistribution(t *testing.T) {
	const trials = 10000
	g := newTestGenerator(t, WithSource(rand.New(rand.NewPCG(42, 7))))

	ucsb, main := 0, 0
	for i := 0; i < trials; i++ {
		p := g.Generate()
		if p.TargetCampus == listing.CampusUCSB {
			ucsb++
		}
		if p.ModelUsed == "template" {
			main++
		}
	}

	if frac := float64(ucsb) / trials; frac < 0.67 || frac > 0.73 {
		t.Errorf("UCSB fraction = %.3f, want about 0.70", frac)
	}
	if frac := float64(main) / trials; frac < 0.47 || frac > 0.53 {
		t.Errorf("main pool fraction = %.3f, want about 0.50", frac)
	}
}

func TestGenerateWithSelection(t *testing.T) {
	g := newTestGenerator(t, WithSource(rand.New(rand.NewPCG(3, 4))))

	tests := []struct {
		name   string
		sel    Selection
		theme  Theme
		campus string
	}{
		{"forced theme", Selection{Theme: BeachLifestyle}, BeachLifestyle, ""},
		{"ucsb only", Selection{Campus: CampusUCSBOnly}, "", listing.CampusUCSB},
		{"sbcc only", Selection{Campus: CampusSBCCOnly}, "", listing.CampusSBCC},
		{"both", Selection{Theme: MoveInReady, Campus: CampusSBCCOnly}, MoveInReady, listing.CampusSBCC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range g.GenerateN(20, tt.sel) {
				if tt.theme != "" && p.Theme != tt.theme {
					t.Errorf("Theme = %q, want %q", p.Theme, tt.theme)
				}
				if tt.campus != "" && p.TargetCampus != tt.campus {
					t.Errorf("TargetCampus = %q, want %q", p.TargetCampus, tt.campus)
				}
			}
		})
	}
}

func TestUniformCampusMode(t *testing.T) {
	const trials = 4000
	g := newTestGenerator(t, WithSource(rand.New(rand.NewPCG(9, 9))))

	ucsb := 0
	for _, p := range g.GenerateN(trials, Selection{Campus: CampusUniform}) {
		if p.TargetCampus == listing.CampusUCSB {
			ucsb++
		}
	}
	if frac := float64(ucsb) / trials; frac < 0.45 || frac > 0.55 {
		t.Errorf("UCSB fraction = %.3f, want about 0.50", frac)
	}
}

func TestGenerateWeek(t *testing.T) {
	day := time.Date(2024, 12, 29, 23, 0, 0, 0, time.Local)
	g := newTestGenerator(t, WithClock(fixedClock(day)))

	week := g.GenerateWeek()
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	want := []string{
		"2024-12-29", "2024-12-30", "2024-12-31",
		"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04",
	}
	for i, p := range week {
		if p.Date != want[i] {
			t.Errorf("week[%d].Date = %q, want %q", i, p.Date, want[i])
		}
	}
}

func TestObserverSeesEveryPost(t *testing.T) {
	var mu sync.Mutex
	seen := 0
	g := newTestGenerator(t, WithObserver(func(Post) {
		mu.Lock()
		seen++
		mu.Unlock()
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.GenerateN(10, Selection{})
		}()
	}
	wg.Wait()

	if seen != 80 {
		t.Errorf("observer saw %d posts, want 80", seen)
	}
}

func TestNewRequiresFacts(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil facts")
	}
}

func TestStats(t *testing.T) {
	s := newTestGenerator(t).Stats()

	if len(s.Themes) != 7 {
		t.Errorf("Themes = %d, want 7", len(s.Themes))
	}
	if s.MainTemplates != 35 || s.FallbackTemplates != 21 {
		t.Errorf("templates = %d/%d, want 35/21", s.MainTemplates, s.FallbackTemplates)
	}
	if s.Features != 11 || s.Amenities != 8 {
		t.Errorf("features/amenities = %d/%d", s.Features, s.Amenities)
	}
	total := 0.0
	for _, c := range s.Campuses {
		total += c.Weight
	}
	if total < 0.999 || total > 1.001 {
		t.Errorf("campus weights sum to %f", total)
	}
	if s.Pricing == nil || !s.Pricing.Consistent {
		t.Errorf("Pricing = %+v, err %q", s.Pricing, s.PricingError)
	}
}
