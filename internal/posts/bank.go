package posts

import (
	"bytes"
	"fmt"
	"text/template"
)

// FormatError reports a template that cannot be rendered against the listing
// facts, usually a placeholder with no matching fact. It signals a template
// authoring bug, not bad input.
type FormatError struct {
	Theme Theme
	Pool  Pool
	Index int
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("template %s/%s#%d: %v", e.Theme, e.Pool, e.Index, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

type bankKey struct {
	theme Theme
	pool  Pool
}

// Bank holds the parsed templates keyed by (theme, pool).
type Bank struct {
	sources map[bankKey][]string
	parsed  map[bankKey][]*template.Template
}

// DefaultBank parses the built-in template tables.
func DefaultBank() (*Bank, error) {
	return NewBank(mainTemplates, fallbackTemplates)
}

// NewBank parses main and fallback tables. Every theme must have at least one
// template in each pool.
func NewBank(main, fallback map[Theme][]string) (*Bank, error) {
	b := &Bank{
		sources: make(map[bankKey][]string),
		parsed:  make(map[bankKey][]*template.Template),
	}
	for _, pool := range []Pool{PoolMain, PoolFallback} {
		table := main
		if pool == PoolFallback {
			table = fallback
		}
		for _, theme := range Themes {
			srcs := table[theme]
			if len(srcs) == 0 {
				return nil, fmt.Errorf("theme %s has no %s templates", theme, pool)
			}
			key := bankKey{theme, pool}
			for i, src := range srcs {
				name := fmt.Sprintf("%s/%s#%d", theme, pool, i)
				t, err := template.New(name).Option("missingkey=error").Parse(src)
				if err != nil {
					return nil, &FormatError{Theme: theme, Pool: pool, Index: i, Err: err}
				}
				b.parsed[key] = append(b.parsed[key], t)
			}
			b.sources[key] = srcs
		}
	}
	return b, nil
}

// Len returns the number of templates in the (theme, pool) table.
func (b *Bank) Len(theme Theme, pool Pool) int {
	return len(b.parsed[bankKey{theme, pool}])
}

// Count returns the total number of templates in a pool across all themes.
func (b *Bank) Count(pool Pool) int {
	n := 0
	for _, theme := range Themes {
		n += b.Len(theme, pool)
	}
	return n
}

// Source returns the raw template text.
func (b *Bank) Source(theme Theme, pool Pool, index int) string {
	return b.sources[bankKey{theme, pool}][index]
}

// Render substitutes vars into one template.
func (b *Bank) Render(theme Theme, pool Pool, index int, vars map[string]string) (string, error) {
	tmpls := b.parsed[bankKey{theme, pool}]
	if index < 0 || index >= len(tmpls) {
		return "", &FormatError{Theme: theme, Pool: pool, Index: index,
			Err: fmt.Errorf("index out of range [0,%d)", len(tmpls))}
	}

	var buf bytes.Buffer
	if err := tmpls[index].Execute(&buf, vars); err != nil {
		return "", &FormatError{Theme: theme, Pool: pool, Index: index, Err: err}
	}
	return buf.String(), nil
}

// Validate renders every template with vars and returns the first failure.
func (b *Bank) Validate(vars map[string]string) error {
	for _, pool := range []Pool{PoolMain, PoolFallback} {
		for _, theme := range Themes {
			for i := 0; i < b.Len(theme, pool); i++ {
				if _, err := b.Render(theme, pool, i, vars); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
