// Package menu runs the interactive terminal front end.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/joestump/rental-agent/internal/export"
	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
)

// Prober is the subset of the Ollama client the menu needs.
type Prober interface {
	Reachable(ctx context.Context) bool
	ListModels(ctx context.Context) []string
	BaseURL() string
	Model() string
}

// Archive records saved posts. A nil Archive disables archiving.
type Archive interface {
	Save(ctx context.Context, p posts.Post, source, filePath string) (*store.SavedPost, error)
	SaveAll(ctx context.Context, ps []posts.Post, source, filePath string) error
}

// Menu is one interactive session.
type Menu struct {
	Generator *posts.Generator
	Prober    Prober
	Archive   Archive
	OutputDir string
	Now       func() time.Time

	in  *bufio.Scanner
	out io.Writer
}

// New creates a menu reading choices from in and writing to out.
func New(gen *posts.Generator, prober Prober, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		Generator: gen,
		Prober:    prober,
		OutputDir: ".",
		Now:       time.Now,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run shows the banner, probes Ollama and loops until the user exits or
// input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.println("🏠 Facebook Rental Agent for Isla Vista")
	m.println(heavyRule)
	m.probe(ctx)

	for {
		m.printMenu()
		choice, err := m.prompt("\nSelect an option (1-6): ")
		if err != nil {
			return m.eof(err)
		}

		switch choice {
		case "1":
			err = m.todaysPost(ctx)
		case "2":
			err = m.testPosts()
		case "3":
			err = m.weeklyPosts(ctx)
		case "4":
			err = m.randomThemePost()
		case "5":
			m.statistics()
		case "6":
			m.println("\n👋 Thanks for using the Facebook Rental Agent!")
			return nil
		default:
			m.println("❌ Invalid option. Please select 1-6.")
		}
		if err != nil {
			return m.eof(err)
		}

		switch choice {
		case "1", "2", "3", "4":
			if _, err := m.prompt("\n⏸️  Press Enter to continue..."); err != nil {
				return m.eof(err)
			}
		}
	}
}

// eof turns the end of input into a clean exit.
func (m *Menu) eof(err error) error {
	if errors.Is(err, io.EOF) {
		m.println("")
		return nil
	}
	return err
}

func (m *Menu) probe(ctx context.Context) {
	if m.Prober == nil {
		return
	}
	if !m.Prober.Reachable(ctx) {
		m.println("⚠️  Ollama is not running or not accessible at " + m.Prober.BaseURL())
		m.println("💡 Posts are generated from templates, so the menu works without it. To enable Ollama:")
		m.println("   1. Install Ollama: https://ollama.ai/")
		m.println("   2. Start Ollama: ollama serve")
		m.println("   3. Pull a model: ollama pull " + m.Prober.Model())
		return
	}
	if models := m.Prober.ListModels(ctx); len(models) > 0 {
		m.println("✅ Ollama connected! Available models: " + strings.Join(models, ", "))
	} else {
		m.println("⚠️  Ollama connected but no models found. Pull a model with: ollama pull " + m.Prober.Model())
	}
}

func (m *Menu) printMenu() {
	m.println("\n" + heavyRule)
	m.println("🎯 MAIN MENU")
	m.println(heavyRule)
	m.println("1. 📝 Generate today's post")
	m.println("2. 🧪 Test multiple posts")
	m.println("3. 📅 Generate weekly posts")
	m.println("4. 🎲 Generate random theme post")
	m.println("5. 📊 Show post statistics")
	m.println("6. 🚪 Exit")
	m.println(heavyRule)
}

func (m *Menu) todaysPost(ctx context.Context) error {
	m.println("\n📝 Generating today's post...")
	p := m.Generator.Generate()
	WritePreview(m.out, p)

	answer, err := m.prompt("\n💾 Save this post to file? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		path, err := export.WritePost(m.OutputDir, p, m.Now())
		if err != nil {
			m.saveFailed(err)
			return nil
		}
		metrics.PostsSavedTotal.WithLabelValues(store.SourceMenu).Inc()
		m.archive(ctx, []posts.Post{p}, path)
		m.println("✅ Post saved to " + path)
	}
	return nil
}

func (m *Menu) testPosts() error {
	answer, err := m.prompt("How many test posts to generate? (1-10): ")
	if err != nil {
		return err
	}
	n := ParseCount(answer)

	m.println(fmt.Sprintf("\n🧪 TESTING POST GENERATION (%d posts)", n))
	m.println(heavyRule)
	for i := 0; i < n; i++ {
		m.println(fmt.Sprintf("\n🔄 Generating test post %d/%d...", i+1, n))
		WritePreview(m.out, m.Generator.Generate())
		if i < n-1 {
			if _, err := m.prompt("\n⏸️  Press Enter to generate next post..."); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Menu) weeklyPosts(ctx context.Context) error {
	m.println("\n📅 Generating weekly posts...")
	week := m.Generator.GenerateWeek()
	for i, p := range week {
		m.println(fmt.Sprintf("\n--- Day %d (%s) ---", i+1, p.Date))
		WritePreview(m.out, p)
		if i < len(week)-1 {
			if _, err := m.prompt("\n⏸️  Press Enter for next post..."); err != nil {
				return err
			}
		}
	}

	answer, err := m.prompt("\n💾 Save all weekly posts to file? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		path, err := export.WriteWeek(m.OutputDir, week, m.Now())
		if err != nil {
			m.saveFailed(err)
			return nil
		}
		metrics.PostsSavedTotal.WithLabelValues(store.SourceMenu).Add(float64(len(week)))
		m.archive(ctx, week, path)
		m.println("✅ Weekly posts saved to " + path)
	}
	return nil
}

// randomThemePost announces a random theme and generates a post with it.
func (m *Menu) randomThemePost() error {
	theme := posts.Themes[rand.IntN(len(posts.Themes))]
	m.println("\n🎲 Generating post with theme: " + theme.Label())
	WritePreview(m.out, m.Generator.GenerateWith(posts.Selection{Theme: theme}))
	return nil
}

func (m *Menu) statistics() {
	s := m.Generator.Stats()
	m.println("\n📊 POST GENERATION STATISTICS")
	m.println(strings.Repeat("=", 40))
	m.println(fmt.Sprintf("Available themes: %d", len(s.Themes)))
	m.println(fmt.Sprintf("Target campuses: %d", len(s.Campuses)))
	m.println(fmt.Sprintf("Apartment features: %d", s.Features))
	m.println(fmt.Sprintf("Templates: %d main, %d fallback", s.MainTemplates, s.FallbackTemplates))
	if m.Prober != nil {
		m.println("Model being used: " + m.Prober.Model())
		m.println("Ollama URL: " + m.Prober.BaseURL())
	}
	switch {
	case s.Pricing != nil && s.Pricing.Consistent:
		m.println("Pricing: due at signing adds up")
	case s.Pricing != nil:
		m.println(fmt.Sprintf("Pricing: ⚠️  deposit + first + last = %s, listed total is %s",
			s.Pricing.Computed, s.Pricing.Authored))
	default:
		m.println("Pricing: could not check (" + s.PricingError + ")")
	}
}

func (m *Menu) archive(ctx context.Context, ps []posts.Post, path string) {
	if m.Archive == nil {
		return
	}
	var err error
	if len(ps) == 1 {
		_, err = m.Archive.Save(ctx, ps[0], store.SourceMenu, path)
	} else {
		err = m.Archive.SaveAll(ctx, ps, store.SourceMenu, path)
	}
	if err != nil {
		metrics.PostSaveErrorsTotal.Inc()
		slog.Warn("archive saved posts", "file", path, "error", err)
	}
}

func (m *Menu) saveFailed(err error) {
	metrics.PostSaveErrorsTotal.Inc()
	slog.Error("save posts", "error", err)
	m.println("❌ Could not save: " + err.Error())
}

// ParseCount reads the test-post count: numbers are clamped to 1..10 and
// anything non-numeric means 3.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 3
	}
	return max(1, min(10, n))
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
