package listview

import (
	"context"
	"errors"
	"fmt"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/gateway"
)

var (
	// ErrRowOutOfRange flags a row index outside the current page.
	ErrRowOutOfRange = errors.New("listview: row index out of range")
	// ErrNoPendingDelete flags a confirm without a prior delete request.
	ErrNoPendingDelete = errors.New("listview: no delete pending confirmation")
)

// Row is one display row: the summary plus its continuous 1-based number.
type Row struct {
	Number  int
	Summary content.Summary
}

// View is the stateful paginated table model. It owns the client-local row
// order (drag reordering never reaches the backend) and the delete
// confirmation flow. Like the form controller it assumes a single event-loop
// goroutine; the generation counter only guards against a stale fetch applying
// over a newer one.
type View struct {
	svc      *Service
	category domain.Category
	page     int
	pageSize int
	meta     gateway.PageMeta
	rows     []Row
	gen      uint64
	pending  *Row
}

// ViewOption customizes a new view.
type ViewOption func(*View)

// WithPageSize sets the initial rows-per-page. Non-positive values are
// ignored.
func WithPageSize(pageSize int) ViewOption {
	return func(v *View) {
		if pageSize > 0 {
			v.pageSize = pageSize
		}
	}
}

// NewView builds a view over the list service with the ALL filter and the
// first page-size option.
func NewView(svc *Service, opts ...ViewOption) *View {
	v := &View{
		svc:      svc,
		category: domain.CategoryAll,
		pageSize: DefaultPageSizeOptions[0],
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches the current key's page. Stale responses (a newer key was
// requested while this one was in flight) are discarded.
func (v *View) Load(ctx context.Context) error {
	v.gen++
	gen := v.gen
	fetched, err := v.svc.Fetch(ctx, v.category, v.page, v.pageSize)
	if err != nil {
		return err
	}
	if v.gen != gen {
		return nil
	}
	v.apply(fetched)
	return nil
}

// SetCategory switches the filter and resets to the first page.
func (v *View) SetCategory(ctx context.Context, category domain.Category) error {
	if !category.ValidFilter() {
		return &content.UnknownCategoryError{Category: string(category)}
	}
	v.category = category
	v.page = 0
	return v.Load(ctx)
}

// SetPage jumps to a zero-based page, clamped to the valid range.
func (v *View) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if last := v.lastPage(); page > last {
		page = last
	}
	v.page = page
	return v.Load(ctx)
}

// SetPageSize changes the page size and resets to the first page.
func (v *View) SetPageSize(ctx context.Context, pageSize int) error {
	if pageSize > 0 {
		v.pageSize = pageSize
	}
	v.page = 0
	return v.Load(ctx)
}

// First jumps to the first page.
func (v *View) First(ctx context.Context) error { return v.SetPage(ctx, 0) }

// Prev steps one page back.
func (v *View) Prev(ctx context.Context) error { return v.SetPage(ctx, v.page-1) }

// Next steps one page forward.
func (v *View) Next(ctx context.Context) error { return v.SetPage(ctx, v.page+1) }

// Last jumps to the final page.
func (v *View) Last(ctx context.Context) error { return v.SetPage(ctx, v.lastPage()) }

// Category returns the active filter.
func (v *View) Category() domain.Category { return v.category }

// Page returns the zero-based page number.
func (v *View) Page() int { return v.page }

// PageSize returns the rows-per-page setting.
func (v *View) PageSize() int { return v.pageSize }

// PageSizeOptions returns the selectable page sizes.
func (v *View) PageSizeOptions() []int {
	if len(v.meta.PageSizeOptions) == 0 {
		return append([]int(nil), DefaultPageSizeOptions...)
	}
	return append([]int(nil), v.meta.PageSizeOptions...)
}

// TotalRows returns the backend's total row count.
func (v *View) TotalRows() int { return v.meta.TotalRow }

// TotalPages returns the backend's total page count.
func (v *View) TotalPages() int { return v.meta.TotalPage }

// Rows returns the current page's rows in display order.
func (v *View) Rows() []Row {
	return append([]Row(nil), v.rows...)
}

// Padding returns how many blank rows the table needs to keep a constant
// height when the page is short.
func (v *View) Padding() int {
	if missing := v.pageSize - len(v.rows); missing > 0 {
		return missing
	}
	return 0
}

// RangeLabel renders the "first-last of total" pagination text.
func (v *View) RangeLabel() string {
	if v.meta.TotalRow == 0 || len(v.rows) == 0 {
		return fmt.Sprintf("0 of %d", v.meta.TotalRow)
	}
	first := v.page*v.pageSize + 1
	last := first + len(v.rows) - 1
	return fmt.Sprintf("%d-%d of %d", first, last, v.meta.TotalRow)
}

// CanFirst reports whether jumping to the first page changes anything.
func (v *View) CanFirst() bool { return v.page > 0 }

// CanPrev reports whether a previous page exists.
func (v *View) CanPrev() bool { return v.page > 0 }

// CanNext reports whether a following page exists.
func (v *View) CanNext() bool { return v.page < v.lastPage() }

// CanLast reports whether jumping to the last page changes anything.
func (v *View) CanLast() bool { return v.page < v.lastPage() }

// Reorder relocates the row at from to position to, shifting rows between
// them. Purely visual: no network call, and the next fetch discards the
// manual order. Row numbers follow position.
func (v *View) Reorder(from, to int) error {
	if from < 0 || from >= len(v.rows) || to < 0 || to >= len(v.rows) {
		return ErrRowOutOfRange
	}
	if from == to {
		return nil
	}
	moved := v.rows[from]
	rest := append(v.rows[:from:from], v.rows[from+1:]...)
	v.rows = append(rest[:to:to], append([]Row{moved}, rest[to:]...)...)
	v.renumber()
	return nil
}

// RequestDelete marks a row for deletion pending confirmation. Nothing is
// removed and no network call happens until ConfirmDelete.
func (v *View) RequestDelete(index int) error {
	if index < 0 || index >= len(v.rows) {
		return ErrRowOutOfRange
	}
	row := v.rows[index]
	v.pending = &row
	return nil
}

// PendingDelete returns the row awaiting confirmation, if any.
func (v *View) PendingDelete() (Row, bool) {
	if v.pending == nil {
		return Row{}, false
	}
	return *v.pending, true
}

// CancelDelete abandons the pending delete. The list is untouched.
func (v *View) CancelDelete() {
	v.pending = nil
}

// ConfirmDelete deletes the pending row by its category-specific record id,
// then refetches the page. The row stays visible until the backend confirms.
func (v *View) ConfirmDelete(ctx context.Context) error {
	if v.pending == nil {
		return ErrNoPendingDelete
	}
	row := *v.pending
	if err := v.svc.Delete(ctx, row.Summary.Category, row.Summary.CategoryRecordID); err != nil {
		return err
	}
	v.pending = nil
	return v.Load(ctx)
}

func (v *View) apply(fetched gateway.ContentPage) {
	v.meta = fetched.Meta
	v.rows = make([]Row, len(fetched.Items))
	for i, summary := range fetched.Items {
		v.rows[i] = Row{Summary: summary}
	}
	v.renumber()
}

func (v *View) renumber() {
	for i := range v.rows {
		v.rows[i].Number = v.page*v.pageSize + i + 1
	}
}

func (v *View) lastPage() int {
	if v.meta.TotalPage <= 0 {
		return 0
	}
	return v.meta.TotalPage - 1
}
