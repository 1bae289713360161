// Package table is the generic data-table engine shared by every back-office
// module: client-side sort, column filters, global search, column visibility,
// row selection and local pagination over an already-fetched page of rows.
// All state is instance-local, so several tables on one screen never
// interfere.
package table

import "sort"

type Direction int

const (
	DirNone Direction = iota
	DirAsc
	DirDesc
)

type EmptyState int

const (
	// EmptyNone: there are rows to show.
	EmptyNone EmptyState = iota
	// EmptyNoData: the dataset itself is empty.
	EmptyNoData
	// EmptyNoMatch: rows exist but active filters hide them all; offer a
	// clear-filters action.
	EmptyNoMatch
)

type sortEntry struct {
	col string
	dir Direction
}

type Table[T any] struct {
	rows []T
	idOf func(T) int64

	comparators   map[string]func(a, b T) int
	sorts         []sortEntry
	columnFilters map[string]func(T) bool
	globalTerm    string
	predicate     func(T, string) bool

	hidden   map[string]bool
	selected map[int64]bool

	pageSize int
	page     int
}

// New builds an engine over rows identified by idOf. predicate is the global
// search; a nil predicate disables global filtering.
func New[T any](idOf func(T) int64, predicate func(T, string) bool) *Table[T] {
	return &Table[T]{
		idOf:          idOf,
		predicate:     predicate,
		comparators:   map[string]func(a, b T) int{},
		columnFilters: map[string]func(T) bool{},
		hidden:        map[string]bool{},
		selected:      map[int64]bool{},
		pageSize:      10,
		page:          1,
	}
}

// SetRows replaces the backing rows. Selection survives a re-fetch; only an
// explicit ClearSelection drops it.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.clampPage()
}

// RegisterComparator makes a column sortable.
func (t *Table[T]) RegisterComparator(col string, cmp func(a, b T) int) {
	t.comparators[col] = cmp
}

// ToggleSort cycles a column asc -> desc -> none. Non-additive toggles drop
// every other sort column first; additive toggles append for multi-sort.
func (t *Table[T]) ToggleSort(col string, additive bool) {
	if _, ok := t.comparators[col]; !ok {
		return
	}

	idx := -1
	for i, s := range t.sorts {
		if s.col == col {
			idx = i
			break
		}
	}

	var next Direction
	switch {
	case idx < 0:
		next = DirAsc
	case t.sorts[idx].dir == DirAsc:
		next = DirDesc
	default:
		next = DirNone
	}

	if !additive {
		t.sorts = nil
		idx = -1
	}

	switch {
	case next == DirNone && idx >= 0:
		t.sorts = append(t.sorts[:idx], t.sorts[idx+1:]...)
	case idx >= 0:
		t.sorts[idx].dir = next
	case next != DirNone:
		t.sorts = append(t.sorts, sortEntry{col: col, dir: next})
	}
}

// SortDirection reports the active direction for a column header.
func (t *Table[T]) SortDirection(col string) Direction {
	for _, s := range t.sorts {
		if s.col == col {
			return s.dir
		}
	}
	return DirNone
}

// SetColumnFilter installs a per-column predicate, independent of the global
// filter.
func (t *Table[T]) SetColumnFilter(col string, pred func(T) bool) {
	t.columnFilters[col] = pred
	t.page = 1
}

func (t *Table[T]) ClearColumnFilter(col string) {
	delete(t.columnFilters, col)
	t.page = 1
}

// SetGlobalFilter applies the free-text search term. It only sees rows this
// table was handed, not the full remote dataset.
func (t *Table[T]) SetGlobalFilter(term string) {
	t.globalTerm = term
	t.page = 1
}

func (t *Table[T]) SetColumnVisible(col string, visible bool) {
	if visible {
		delete(t.hidden, col)
		return
	}
	t.hidden[col] = true
}

// ColumnVisible defaults to true for unknown columns.
func (t *Table[T]) ColumnVisible(col string) bool {
	return !t.hidden[col]
}

// View returns the filtered, sorted rows. With no sort active the fetch order
// is preserved.
func (t *Table[T]) View() []T {
	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		if t.visible(r) {
			out = append(out, r)
		}
	}

	if len(t.sorts) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, s := range t.sorts {
			cmp := t.comparators[s.col]
			if cmp == nil {
				continue
			}
			c := cmp(out[i], out[j])
			if c == 0 {
				continue
			}
			if s.dir == DirDesc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return out
}

func (t *Table[T]) visible(r T) bool {
	for _, pred := range t.columnFilters {
		if !pred(r) {
			return false
		}
	}
	if t.globalTerm != "" && t.predicate != nil && !t.predicate(r, t.globalTerm) {
		return false
	}
	return true
}

// Page slices the current view locally; this page is layered on top of the
// server-side page the rows came from.
func (t *Table[T]) Page() []T {
	view := t.View()
	if t.pageSize <= 0 {
		return view
	}
	start := (t.page - 1) * t.pageSize
	if start >= len(view) {
		return []T{}
	}
	end := start + t.pageSize
	if end > len(view) {
		end = len(view)
	}
	return view[start:end]
}

func (t *Table[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	t.page = page
	t.clampPage()
}

func (t *Table[T]) CurrentPage() int { return t.page }

func (t *Table[T]) SetPageSize(size int) {
	if size < 1 {
		return
	}
	t.pageSize = size
	t.clampPage()
}

func (t *Table[T]) PageCount() int {
	n := len(t.View())
	if n == 0 || t.pageSize <= 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

func (t *Table[T]) clampPage() {
	if max := t.PageCount(); t.page > max {
		t.page = max
	}
	if t.page < 1 {
		t.page = 1
	}
}

func (t *Table[T]) Select(id int64)   { t.selected[id] = true }
func (t *Table[T]) Deselect(id int64) { delete(t.selected, id) }

func (t *Table[T]) ToggleSelect(id int64) {
	if t.selected[id] {
		delete(t.selected, id)
		return
	}
	t.selected[id] = true
}

// SelectAllVisible selects only the rows the current filters leave visible,
// never the full unfiltered set.
func (t *Table[T]) SelectAllVisible() {
	for _, r := range t.View() {
		t.selected[t.idOf(r)] = true
	}
}

func (t *Table[T]) ClearSelection() {
	t.selected = map[int64]bool{}
}

func (t *Table[T]) Selected(id int64) bool { return t.selected[id] }

func (t *Table[T]) SelectedCount() int { return len(t.selected) }

// SelectedRows snapshots the selected subset in current view order. Exports
// operate on this snapshot; later edits do not reach into a generated file.
func (t *Table[T]) SelectedRows() []T {
	out := []T{}
	for _, r := range t.View() {
		if t.selected[t.idOf(r)] {
			out = append(out, r)
		}
	}
	return out
}

// HasFilters reports whether any column or global filter is active.
func (t *Table[T]) HasFilters() bool {
	return len(t.columnFilters) > 0 || t.globalTerm != ""
}

func (t *Table[T]) ClearFilters() {
	t.columnFilters = map[string]func(T) bool{}
	t.globalTerm = ""
	t.page = 1
}

// Empty distinguishes "no data at all" from "filters hide everything".
func (t *Table[T]) Empty() EmptyState {
	if len(t.rows) == 0 {
		return EmptyNoData
	}
	if len(t.View()) == 0 {
		return EmptyNoMatch
	}
	return EmptyNone
}

// Equals builds an exact-match column filter over a string accessor.
func Equals[T any](get func(T) string, want string) func(T) bool {
	return func(r T) bool { return get(r) == want }
}

// In builds a set-membership column filter for multi-select facets.
func In[T any](get func(T) string, allowed ...string) func(T) bool {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(r T) bool { return set[get(r)] }
}
