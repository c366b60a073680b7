package appstate

import (
	"context"
	"testing"

	"github.com/prakan/go-content-admin/internal/domain"
)

func TestLoadAppliesDefaultsOnEmptyStore(t *testing.T) {
	t.Parallel()

	state := New(NewMemoryStore())
	if err := state.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !state.SidebarOpen() {
		t.Fatal("expected sidebar open by default")
	}
	if state.Category() != domain.CategoryAll {
		t.Fatalf("expected ALL filter by default, got %s", state.Category())
	}
}

func TestLoadAppliesDefaultsOnCorruptValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Set(ctx, sidebarKey, "maybe"); err != nil {
		t.Fatalf("seed sidebar: %v", err)
	}
	if err := store.Set(ctx, categoryKey, "NOT_A_CATEGORY"); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	state := New(store)
	if err := state.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !state.SidebarOpen() || state.Category() != domain.CategoryAll {
		t.Fatalf("expected defaults for corrupt values, got sidebar=%v category=%s",
			state.SidebarOpen(), state.Category())
	}
}

func TestMutationsWriteThroughAndSurviveReload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	state := New(store)
	if err := state.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := state.ToggleSidebar(ctx); err != nil {
		t.Fatalf("toggle sidebar: %v", err)
	}
	if err := state.SetCategory(ctx, domain.CategoryPromotion); err != nil {
		t.Fatalf("set category: %v", err)
	}

	reloaded := New(store)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.SidebarOpen() {
		t.Fatal("expected sidebar closed after reload")
	}
	if reloaded.Category() != domain.CategoryPromotion {
		t.Fatalf("expected PROMOTION after reload, got %s", reloaded.Category())
	}
}

func TestSetCategoryRejectsInvalidFilter(t *testing.T) {
	t.Parallel()

	state := New(NewMemoryStore())
	if err := state.SetCategory(context.Background(), domain.Category("BOGUS")); err == nil {
		t.Fatal("expected invalid filter error")
	}
}
