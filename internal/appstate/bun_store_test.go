package appstate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestBunStore_GetSetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewBunStore(db)
	ctx := context.Background()

	if _, err := store.Get(ctx, sidebarKey); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := store.Set(ctx, sidebarKey, "false"); err != nil {
		t.Fatalf("Set() create error = %v", err)
	}
	got, err := store.Get(ctx, sidebarKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "false" {
		t.Fatalf("Get() returned %q", got)
	}

	if err := store.Set(ctx, sidebarKey, "true"); err != nil {
		t.Fatalf("Set() update error = %v", err)
	}
	got, err = store.Get(ctx, sidebarKey)
	if err != nil {
		t.Fatalf("Get() after update error = %v", err)
	}
	if got != "true" {
		t.Fatalf("Get() after update returned %q", got)
	}
}

func TestBunStoreWithCache_ServesReads(t *testing.T) {
	db := newTestDB(t)
	cacheService, err := repocache.NewCacheService(repocache.DefaultConfig())
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	store := NewBunStoreWithCache(db, cacheService, repocache.NewDefaultKeySerializer())
	ctx := context.Background()

	if err := store.Set(ctx, categoryKey, "BANNER"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := store.Get(ctx, categoryKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "BANNER" {
		t.Fatalf("Get() returned %q", got)
	}
}

func TestStateOverBunStore(t *testing.T) {
	db := newTestDB(t)
	store := NewBunStore(db)
	ctx := context.Background()

	state := New(store)
	if err := state.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := state.SetSidebarOpen(ctx, false); err != nil {
		t.Fatalf("set sidebar: %v", err)
	}

	reloaded := New(store)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.SidebarOpen() {
		t.Fatal("expected persisted sidebar flag to survive reload")
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:appstate_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Setting)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}
