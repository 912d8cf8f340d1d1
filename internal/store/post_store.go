package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/rental-agent/internal/metrics"
	"github.com/joestump/rental-agent/internal/posts"
)

// Sources identify which caller saved a post.
const (
	SourceMenu      = "menu"
	SourceDashboard = "dashboard"
	SourceCLI       = "cli"
	SourceAPI       = "api"
)

// SavedPost is a row in the saved_posts table.
type SavedPost struct {
	ID             string    `db:"id" json:"id"`
	Date           string    `db:"post_date" json:"date"`
	Theme          string    `db:"theme" json:"theme"`
	TargetCampus   string    `db:"target_campus" json:"target_campus"`
	Content        string    `db:"content" json:"content"`
	CharacterCount int       `db:"character_count" json:"character_count"`
	ModelUsed      string    `db:"model_used" json:"model_used"`
	CreativeStyle  string    `db:"creative_style" json:"creative_style"`
	Source         string    `db:"source" json:"source"`
	FilePath       string    `db:"file_path" json:"file_path"`
	SavedAt        time.Time `db:"saved_at" json:"saved_at"`
}

// Post returns the archived post in its generated form.
func (s *SavedPost) Post() posts.Post {
	return posts.Post{
		Date:           s.Date,
		Theme:          posts.Theme(s.Theme),
		TargetCampus:   s.TargetCampus,
		Content:        s.Content,
		CharacterCount: s.CharacterCount,
		ModelUsed:      s.ModelUsed,
		CreativeStyle:  s.CreativeStyle,
	}
}

// Counts aggregates the archive.
type Counts struct {
	Total    int            `json:"total"`
	ByTheme  map[string]int `json:"by_theme"`
	ByCampus map[string]int `json:"by_campus"`
	ByModel  map[string]int `json:"by_model"`
}

// PostStore is the sqlx-backed archive of saved posts.
type PostStore struct {
	db *sqlx.DB
}

// NewPostStore creates a new PostStore.
func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

// q rebinds ? placeholders to the driver's native format.
func (s *PostStore) q(query string) string { return s.db.Rebind(query) }

// Save records p as saved by source. filePath is the JSON dump it was written
// to, if any.
func (s *PostStore) Save(ctx context.Context, p posts.Post, source, filePath string) (*SavedPost, error) {
	sp := &SavedPost{
		ID:             uuid.New().String(),
		Date:           p.Date,
		Theme:          string(p.Theme),
		TargetCampus:   p.TargetCampus,
		Content:        p.Content,
		CharacterCount: p.CharacterCount,
		ModelUsed:      p.ModelUsed,
		CreativeStyle:  p.CreativeStyle,
		Source:         source,
		FilePath:       filePath,
		SavedAt:        time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO saved_posts (id, post_date, theme, target_campus, content, character_count,
			model_used, creative_style, source, file_path, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), sp.ID, sp.Date, sp.Theme, sp.TargetCampus, sp.Content, sp.CharacterCount,
		sp.ModelUsed, sp.CreativeStyle, sp.Source, sp.FilePath, sp.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("insert saved post: %w", err)
	}
	metrics.SavedPostsTotal.Inc()
	return sp, nil
}

// SaveAll records several posts in one transaction.
func (s *PostStore) SaveAll(ctx context.Context, ps []posts.Post, source, filePath string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, p := range ps {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO saved_posts (id, post_date, theme, target_campus, content, character_count,
				model_used, creative_style, source, file_path, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`), uuid.New().String(), p.Date, string(p.Theme), p.TargetCampus, p.Content, p.CharacterCount,
			p.ModelUsed, p.CreativeStyle, source, filePath, now)
		if err != nil {
			return fmt.Errorf("insert saved post: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	metrics.SavedPostsTotal.Add(float64(len(ps)))
	return nil
}

// GetByID returns one archived post or ErrNotFound.
func (s *PostStore) GetByID(ctx context.Context, id string) (*SavedPost, error) {
	var sp SavedPost
	err := s.db.GetContext(ctx, &sp, s.q(`SELECT * FROM saved_posts WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// List returns the most recently saved posts, newest first. limit <= 0 means 50.
func (s *PostStore) List(ctx context.Context, limit int) ([]*SavedPost, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []*SavedPost
	err := s.db.SelectContext(ctx, &out,
		s.q(`SELECT * FROM saved_posts ORDER BY saved_at DESC, id LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Counts aggregates the archive by theme, campus and model tag.
func (s *PostStore) Counts(ctx context.Context) (Counts, error) {
	c := Counts{
		ByTheme:  map[string]int{},
		ByCampus: map[string]int{},
		ByModel:  map[string]int{},
	}
	if err := s.db.GetContext(ctx, &c.Total, `SELECT COUNT(*) FROM saved_posts`); err != nil {
		return c, err
	}

	groups := []struct {
		column string
		into   map[string]int
	}{
		{"theme", c.ByTheme},
		{"target_campus", c.ByCampus},
		{"model_used", c.ByModel},
	}
	for _, g := range groups {
		var rows []struct {
			Key string `db:"k"`
			N   int    `db:"n"`
		}
		query := `SELECT ` + g.column + ` AS k, COUNT(*) AS n FROM saved_posts GROUP BY ` + g.column
		if err := s.db.SelectContext(ctx, &rows, query); err != nil {
			return c, fmt.Errorf("count by %s: %w", g.column, err)
		}
		for _, r := range rows {
			g.into[r.Key] = r.N
		}
	}
	metrics.SavedPostsTotal.Set(float64(c.Total))
	return c, nil
}
