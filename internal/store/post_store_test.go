package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joestump/rental-agent/internal/posts"
	"github.com/joestump/rental-agent/internal/store"
	"github.com/joestump/rental-agent/internal/testutil"
)

func newPost(theme posts.Theme, campus, model string) posts.Post {
	content := "Rent: $1,500/month"
	return posts.Post{
		Date:           "2025-03-14",
		Theme:          theme,
		TargetCampus:   campus,
		Content:        content,
		CharacterCount: len(content),
		ModelUsed:      model,
		CreativeStyle:  "clean",
	}
}

func TestSaveAndGetByID(t *testing.T) {
	ps := store.NewPostStore(testutil.NewTestDB(t))
	ctx := context.Background()

	p := newPost(posts.Affordability, "UCSB", "template")
	saved, err := ps.Save(ctx, p, store.SourceMenu, "facebook_post_20250314.json")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := ps.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Post() != p {
		t.Errorf("round trip = %+v, want %+v", got.Post(), p)
	}
	if got.Source != store.SourceMenu || got.FilePath != "facebook_post_20250314.json" {
		t.Errorf("source/file = %q/%q", got.Source, got.FilePath)
	}
	if time.Since(got.SavedAt) > time.Minute {
		t.Errorf("SavedAt = %v", got.SavedAt)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ps := store.NewPostStore(testutil.NewTestDB(t))

	_, err := ps.GetByID(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	ps := store.NewPostStore(testutil.NewTestDB(t))
	ctx := context.Background()

	var ids []string
	for _, theme := range []posts.Theme{posts.BeachLifestyle, posts.Convenience, posts.MoveInReady} {
		sp, err := ps.Save(ctx, newPost(theme, "SBCC", "fallback"), store.SourceDashboard, "")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		ids = append(ids, sp.ID)
		time.Sleep(5 * time.Millisecond)
	}

	all, err := ps.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Errorf("order = %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}

	limited, err := ps.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len = %d, want 2", len(limited))
	}
}

func TestSaveAllAndCounts(t *testing.T) {
	ps := store.NewPostStore(testutil.NewTestDB(t))
	ctx := context.Background()

	week := []posts.Post{
		newPost(posts.Affordability, "UCSB", "template"),
		newPost(posts.Affordability, "SBCC", "fallback"),
		newPost(posts.Convenience, "UCSB", "template"),
	}
	if err := ps.SaveAll(ctx, week, store.SourceCLI, "weekly_posts_20250314.json"); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	c, err := ps.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Total != 3 {
		t.Errorf("Total = %d", c.Total)
	}
	if c.ByTheme["affordability"] != 2 || c.ByTheme["convenience"] != 1 {
		t.Errorf("ByTheme = %v", c.ByTheme)
	}
	if c.ByCampus["UCSB"] != 2 || c.ByCampus["SBCC"] != 1 {
		t.Errorf("ByCampus = %v", c.ByCampus)
	}
	if c.ByModel["template"] != 2 || c.ByModel["fallback"] != 1 {
		t.Errorf("ByModel = %v", c.ByModel)
	}
}

func TestCountsEmpty(t *testing.T) {
	ps := store.NewPostStore(testutil.NewTestDB(t))

	c, err := ps.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if c.Total != 0 || len(c.ByTheme) != 0 {
		t.Errorf("Counts = %+v", c)
	}
}
