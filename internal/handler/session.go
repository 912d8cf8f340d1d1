package handler

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/rental-agent/internal/posts"
)

const (
	sessionBatchKey     = "batch"
	sessionSelectionKey = "selection"
	sessionFlashKey     = "flash"
)

func init() {
	gob.Register([]posts.Post{})
	gob.Register(posts.Selection{})
	gob.Register(Flash{})
}

// NewSessionManager creates an SCS session manager backed by the archive DB.
// driver selects the store: "mysql", "postgres", or "sqlite3" (default).
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default:
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "rental_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// batch is the operator's current set of generated posts.
type batch struct {
	sm *scs.SessionManager
}

func (b batch) posts(ctx context.Context) []posts.Post {
	ps, _ := b.sm.Get(ctx, sessionBatchKey).([]posts.Post)
	return ps
}

func (b batch) selection(ctx context.Context) posts.Selection {
	sel, _ := b.sm.Get(ctx, sessionSelectionKey).(posts.Selection)
	return sel
}

func (b batch) put(ctx context.Context, ps []posts.Post, sel posts.Selection) {
	b.sm.Put(ctx, sessionBatchKey, ps)
	b.sm.Put(ctx, sessionSelectionKey, sel)
}

func (b batch) flash(ctx context.Context, f Flash) {
	b.sm.Put(ctx, sessionFlashKey, f)
}

func (b batch) popFlash(ctx context.Context) *Flash {
	f, ok := b.sm.Pop(ctx, sessionFlashKey).(Flash)
	if !ok {
		return nil
	}
	return &f
}
