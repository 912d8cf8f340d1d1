package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/joestump/rental-agent/internal/posts"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
	feedRule  = strings.Repeat("─", 40)
)

// WritePreview prints the post metadata, its content and a mock feed card.
func WritePreview(w io.Writer, p posts.Post) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "📱 FACEBOOK POST PREVIEW")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintf(w, "📅 Date: %s\n", p.Date)
	fmt.Fprintf(w, "🎯 Target Audience: %s students\n", p.TargetCampus)
	fmt.Fprintf(w, "📌 Theme: %s\n", p.Theme.Label())
	fmt.Fprintf(w, "🤖 Generated by: %s\n", p.ModelUsed)
	fmt.Fprintf(w, "🎨 Creative Style: %s\n", posts.Title(p.CreativeStyle))
	fmt.Fprintf(w, "📊 Character count: %d\n", p.CharacterCount)

	fmt.Fprintln(w)
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, "📝 POST CONTENT:")
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, p.Content)
	fmt.Fprintln(w, lightRule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "📱 HOW IT WOULD LOOK ON FACEBOOK:")
	fmt.Fprintln(w, feedRule)
	fmt.Fprintf(w, "🏠 Your Name • %s\n", p.Date)
	fmt.Fprintln(w, feedRule)
	fmt.Fprintln(w, p.Content)
	fmt.Fprintln(w, feedRule)
	fmt.Fprintln(w, "👍 Like • 💬 Comment • 🔄 Share")
	fmt.Fprintln(w, heavyRule)
}
