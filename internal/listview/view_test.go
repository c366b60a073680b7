package listview_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/adapters/memory"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
	"github.com/prakan/go-content-admin/internal/listview"
)

// fakeBackend serves pages out of a fixed summary list, mimicking the
// backend's paging block.
type fakeBackend struct {
	summaries []content.Summary
	listCalls int
	deleted   []string
	deleteErr error
	onList    func()
}

func (f *fakeBackend) ListContents(_ context.Context, category domain.Category, page, pageSize int) (gateway.ContentPage, error) {
	if f.onList != nil {
		f.onList()
	}
	f.listCalls++
	var filtered []content.Summary
	for _, s := range f.summaries {
		if category == domain.CategoryAll || s.Category == category {
			filtered = append(filtered, s)
		}
	}
	total := len(filtered)
	totalPage := (total + pageSize - 1) / pageSize
	start := page * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return gateway.ContentPage{
		Items: filtered[start:end],
		Meta: gateway.PageMeta{
			Page:            page,
			PageSize:        pageSize,
			PageSizeOptions: []int{10, 20, 50},
			TotalPage:       totalPage,
			TotalRow:        total,
		},
	}, nil
}

func (f *fakeBackend) DeleteContent(_ context.Context, category domain.Category, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i, s := range f.summaries {
		if s.CategoryRecordID == id {
			f.summaries = append(f.summaries[:i], f.summaries[i+1:]...)
			break
		}
	}
	return nil
}

func summaries(n int) []content.Summary {
	out := make([]content.Summary, n)
	for i := range out {
		out[i] = content.Summary{
			ID:               fmt.Sprintf("c-%d", i+1),
			Title:            fmt.Sprintf("Content %d", i+1),
			Status:           domain.StatusActive,
			Category:         domain.CategoryBanner,
			CategoryRecordID: fmt.Sprintf("b-%d", i+1),
		}
	}
	return out
}

func loadedView(t *testing.T, backend *fakeBackend, opts ...listview.ServiceOption) *listview.View {
	t.Helper()
	view := listview.NewView(listview.NewService(backend, opts...))
	if err := view.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return view
}

func TestRangeLabel(t *testing.T) {
	t.Parallel()

	view := loadedView(t, &fakeBackend{summaries: summaries(25)})
	if got := view.RangeLabel(); got != "1-10 of 25" {
		t.Fatalf("expected %q, got %q", "1-10 of 25", got)
	}

	if err := view.SetPage(context.Background(), 2); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if got := view.RangeLabel(); got != "21-25 of 25" {
		t.Fatalf("expected %q, got %q", "21-25 of 25", got)
	}
}

func TestRowNumberingIsContinuousAcrossPages(t *testing.T) {
	t.Parallel()

	view := loadedView(t, &fakeBackend{summaries: summaries(25)})
	if err := view.SetPage(context.Background(), 1); err != nil {
		t.Fatalf("set page: %v", err)
	}
	rows := view.Rows()
	if rows[0].Number != 11 {
		t.Fatalf("expected first row on page 1 numbered 11, got %d", rows[0].Number)
	}
}

func TestPaginationBounds(t *testing.T) {
	t.Parallel()

	view := loadedView(t, &fakeBackend{summaries: summaries(25)})
	if view.CanPrev() || view.CanFirst() {
		t.Fatal("expected prev/first disabled on page 0")
	}
	if !view.CanNext() || !view.CanLast() {
		t.Fatal("expected next/last enabled on page 0")
	}

	if err := view.Last(context.Background()); err != nil {
		t.Fatalf("last: %v", err)
	}
	if view.Page() != 2 {
		t.Fatalf("expected last page 2, got %d", view.Page())
	}
	if view.CanNext() || view.CanLast() {
		t.Fatal("expected next/last disabled on last page")
	}
	if view.Padding() != 5 {
		t.Fatalf("expected 5 blank padding rows, got %d", view.Padding())
	}
}

func TestPageSizeChangeResetsToFirstPage(t *testing.T) {
	t.Parallel()

	view := loadedView(t, &fakeBackend{summaries: summaries(25)})
	if err := view.SetPage(context.Background(), 2); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if err := view.SetPageSize(context.Background(), 20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if view.Page() != 0 || view.PageSize() != 20 {
		t.Fatalf("expected reset to page 0 at size 20, got page %d size %d", view.Page(), view.PageSize())
	}
}

func TestCategoryChangeResetsToFirstPage(t *testing.T) {
	t.Parallel()

	view := loadedView(t, &fakeBackend{summaries: summaries(25)})
	if err := view.SetPage(context.Background(), 2); err != nil {
		t.Fatalf("set page: %v", err)
	}
	if err := view.SetCategory(context.Background(), domain.CategoryBanner); err != nil {
		t.Fatalf("set category: %v", err)
	}
	if view.Page() != 0 {
		t.Fatalf("expected page reset on filter change, got %d", view.Page())
	}
	if err := view.SetCategory(context.Background(), domain.Category("BOGUS")); !errors.Is(err, content.ErrUnknownCategory) {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestReorderIsClientLocalSplice(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10)}
	view := loadedView(t, backend)
	calls := backend.listCalls

	if err := view.Reorder(3, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	rows := view.Rows()
	if rows[0].Summary.ID != "c-4" {
		t.Fatalf("expected c-4 moved to front, got %s", rows[0].Summary.ID)
	}
	for i, want := range []string{"c-4", "c-1", "c-2", "c-3"} {
		if rows[i].Summary.ID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, rows[i].Summary.ID)
		}
	}
	if rows[0].Number != 1 || rows[3].Number != 4 {
		t.Fatal("expected row numbers to follow display position")
	}
	if backend.listCalls != calls {
		t.Fatal("reorder must not trigger a network call")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10)}
	view := loadedView(t, backend)

	if err := view.RequestDelete(0); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if len(backend.deleted) != 0 || len(view.Rows()) != 10 {
		t.Fatal("request alone must not remove anything")
	}

	view.CancelDelete()
	if _, pending := view.PendingDelete(); pending {
		t.Fatal("expected no pending delete after cancel")
	}
	if len(backend.deleted) != 0 {
		t.Fatal("cancel must not issue a network call")
	}
	if err := view.ConfirmDelete(context.Background()); !errors.Is(err, listview.ErrNoPendingDelete) {
		t.Fatalf("expected ErrNoPendingDelete, got %v", err)
	}

	if err := view.RequestDelete(0); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := view.ConfirmDelete(context.Background()); err != nil {
		t.Fatalf("confirm delete: %v", err)
	}
	if len(backend.deleted) != 1 || backend.deleted[0] != "b-1" {
		t.Fatalf("expected delete keyed by category record id, got %v", backend.deleted)
	}
	if got := len(view.Rows()); got != 9 {
		t.Fatalf("expected refetched page without deleted row, got %d rows", got)
	}
}

func TestFailedDeleteLeavesListUnchanged(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10), deleteErr: errors.New("409")}
	view := loadedView(t, backend)

	if err := view.RequestDelete(0); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := view.ConfirmDelete(context.Background()); err == nil {
		t.Fatal("expected delete error")
	}
	if len(view.Rows()) != 10 {
		t.Fatal("failed delete must leave the list unchanged")
	}
}

func TestDeleteInvalidatesCategoryAndAllCaches(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10)}
	svc := listview.NewService(backend, listview.WithCacheProvider(memory.NewCache()))
	ctx := context.Background()

	// Warm both the BANNER and ALL filters.
	if _, err := svc.Fetch(ctx, domain.CategoryBanner, 0, 10); err != nil {
		t.Fatalf("fetch banner: %v", err)
	}
	if _, err := svc.Fetch(ctx, domain.CategoryAll, 0, 10); err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	warm := backend.listCalls
	if _, err := svc.Fetch(ctx, domain.CategoryBanner, 0, 10); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if backend.listCalls != warm {
		t.Fatal("expected cache hit before invalidation")
	}

	if err := svc.Delete(ctx, domain.CategoryBanner, "b-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Fetch(ctx, domain.CategoryBanner, 0, 10); err != nil {
		t.Fatalf("fetch banner after delete: %v", err)
	}
	if _, err := svc.Fetch(ctx, domain.CategoryAll, 0, 10); err != nil {
		t.Fatalf("fetch all after delete: %v", err)
	}
	if backend.listCalls != warm+2 {
		t.Fatalf("expected both filters refetched after delete, got %d calls", backend.listCalls)
	}
}

func TestDeleteCommandValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10)}
	svc := listview.NewService(backend)
	ctx := context.Background()

	err := svc.Delete(ctx, domain.CategoryBanner, "")
	if err == nil {
		t.Fatal("expected delete without a record id to fail")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if err := svc.Delete(ctx, domain.CategoryAll, "b-1"); err == nil {
		t.Fatal("expected delete against the ALL filter to fail")
	}
	if backend.listCalls != 0 || len(backend.deleted) != 0 {
		t.Fatal("rejected deletes must not reach the backend")
	}
}

func TestDeleteErrorsCarryCommandCategory(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10), deleteErr: errors.New("409")}
	svc := listview.NewService(backend)

	err := svc.Delete(context.Background(), domain.CategoryBanner, "b-1")
	if err == nil {
		t.Fatal("expected delete error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category on delete error, got %v", err)
	}
}

func TestStaleLoadDiscardedAfterNewerFilter(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{summaries: summaries(10)}
	view := listview.NewView(listview.NewService(backend))
	ctx := context.Background()

	// Switch the filter from inside the ALL fetch, so the ALL response
	// arrives after a newer request has already applied its rows.
	armed := true
	backend.onList = func() {
		if !armed {
			return
		}
		armed = false
		if err := view.SetCategory(ctx, domain.CategoryPromotion); err != nil {
			t.Fatalf("nested set category: %v", err)
		}
	}
	if err := view.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := view.Category(); got != domain.CategoryPromotion {
		t.Fatalf("expected PROMOTION filter to win, got %s", got)
	}
	if got := len(view.Rows()); got != 0 {
		t.Fatalf("expected the stale ALL page discarded, got %d rows", got)
	}
}
