package session

import (
	"context"
	"sync"

	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/queries"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ViewConfig wires one entity table into the generic view state machine.
// R is the row read model, X the row-expansion payload.
type ViewConfig[R any, X any] struct {
	PageSize          int
	DefaultSortColumn string
	DefaultSortDesc   bool

	FetchPage      func(ctx context.Context, params queries.ListParams) ([]R, int64, error)
	FetchExpansion func(ctx context.Context, r R) (X, error)
	Delete         func(ctx context.Context, id string) error
	RecordID       func(r R) string
}

// Snapshot is an immutable copy of the view handed to the presentation layer.
type Snapshot[R any, X any] struct {
	Records    []R
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int

	Filter        string
	Search        string
	SortColumn    string
	SortDirection string

	Loading   bool
	LoadError string

	ExpandedID       string
	Expansion        X
	ExpansionLoading bool
	ExpansionError   string

	ModalOpen       bool
	EditingID       string
	Prefill         *R
	PendingDeleteID string
}

// View holds the query state of one table within a session. All mutations go
// through the mutex; fetches run outside it and apply their result only if no
// newer mutation has superseded them, so overlapping requests settle on the
// most recent parameters.
type View[R any, X any] struct {
	cfg ViewConfig[R, X]

	mu sync.Mutex

	records    []R
	totalCount int64
	page       int

	filter        string
	search        string
	sortColumn    string
	sortDirection string

	loading   bool
	loadErr   string
	fetchGen  uint64
	expandGen uint64

	expandedID       string
	expansion        X
	expansionLoading bool
	expansionErr     string

	modalOpen       bool
	editingID       string
	prefill         *R
	pendingDeleteID string
}

func NewView[R any, X any](cfg ViewConfig[R, X]) *View[R, X] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = queries.DefaultPageSize
	}
	direction := SortAsc
	if cfg.DefaultSortDesc {
		direction = SortDesc
	}
	return &View[R, X]{
		cfg:           cfg,
		page:          1,
		sortColumn:    cfg.DefaultSortColumn,
		sortDirection: direction,
	}
}

// Load refreshes the current page without touching any parameter.
func (v *View[R, X]) Load(ctx context.Context) error {
	v.mu.Lock()
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// SetFilter changes the filter and jumps back to the first page.
func (v *View[R, X]) SetFilter(ctx context.Context, filter string) error {
	v.mu.Lock()
	v.filter = filter
	v.page = 1
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// SetSearch changes the search term and jumps back to the first page.
func (v *View[R, X]) SetSearch(ctx context.Context, search string) error {
	v.mu.Lock()
	v.search = search
	v.page = 1
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// ToggleSort selects a sort column. Re-selecting the active column flips the
// direction; a new column starts ascending. Either way the view goes back to
// the first page.
func (v *View[R, X]) ToggleSort(ctx context.Context, column string) error {
	v.mu.Lock()
	if column == v.sortColumn {
		if v.sortDirection == SortAsc {
			v.sortDirection = SortDesc
		} else {
			v.sortDirection = SortAsc
		}
	} else {
		v.sortColumn = column
		v.sortDirection = SortAsc
	}
	v.page = 1
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// SetPage navigates to an explicit page. Unlike filter and search changes
// this keeps every other parameter as it is. An unloaded or empty view has
// exactly one page, so anything past it is out of range.
func (v *View[R, X]) SetPage(ctx context.Context, page int) error {
	v.mu.Lock()
	if page < 1 || page > v.totalPagesLocked() {
		v.mu.Unlock()
		return errs.ErrPageOutOfRange
	}
	v.page = page
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// NextPage and PrevPage clamp at the edges instead of failing.
func (v *View[R, X]) NextPage(ctx context.Context) error {
	v.mu.Lock()
	if v.page >= v.totalPagesLocked() {
		v.mu.Unlock()
		return nil
	}
	v.page++
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

func (v *View[R, X]) PrevPage(ctx context.Context) error {
	v.mu.Lock()
	if v.page <= 1 {
		v.mu.Unlock()
		return nil
	}
	v.page--
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	return v.fetch(ctx, gen, params)
}

// ToggleExpand expands one row on the current page or collapses the
// currently expanded one. Collapsing never hits storage. Expanding a
// different row supersedes any in-flight expansion fetch for the previous
// one.
func (v *View[R, X]) ToggleExpand(ctx context.Context, id string) error {
	v.mu.Lock()
	if v.expandedID == id {
		v.collapseLocked()
		v.mu.Unlock()
		return nil
	}
	var record R
	found := false
	for i := range v.records {
		if v.cfg.RecordID(v.records[i]) == id {
			record = v.records[i]
			found = true
			break
		}
	}
	if !found {
		v.mu.Unlock()
		return errs.ErrRecordNotOnPage
	}
	v.expandedID = id
	v.expansionLoading = true
	v.expansionErr = ""
	var zero X
	v.expansion = zero
	v.expandGen++
	gen := v.expandGen
	v.mu.Unlock()

	payload, err := v.cfg.FetchExpansion(ctx, record)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.expandGen || v.expandedID != id {
		// a newer toggle superseded this fetch
		return nil
	}
	v.expansionLoading = false
	if err != nil {
		v.expansionErr = "failed to load related records"
		return err
	}
	v.expansion = payload
	return nil
}

// OpenCreate opens the modal in create mode.
func (v *View[R, X]) OpenCreate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modalOpen = true
	v.editingID = ""
	v.prefill = nil
}

// OpenEdit opens the modal prefilled from a row on the current page.
func (v *View[R, X]) OpenEdit(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.records {
		if v.cfg.RecordID(v.records[i]) == id {
			r := v.records[i]
			v.modalOpen = true
			v.editingID = id
			v.prefill = &r
			return nil
		}
	}
	return errs.ErrRecordNotOnPage
}

func (v *View[R, X]) CloseModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modalOpen = false
	v.editingID = ""
	v.prefill = nil
}

// Submit runs the create or update carried by do while the modal is open.
// On failure the modal stays open so the operator can correct the form; on
// success it closes and the current page is refetched. A refetch failure
// after the write applied comes back joined with errs.ErrRefetchFailed so
// callers do not report the write itself as failed.
func (v *View[R, X]) Submit(ctx context.Context, do func(ctx context.Context, editingID string) error) error {
	v.mu.Lock()
	if !v.modalOpen {
		v.mu.Unlock()
		return errs.ErrModalClosed
	}
	editingID := v.editingID
	v.mu.Unlock()

	if err := do(ctx, editingID); err != nil {
		return err
	}

	v.mu.Lock()
	v.modalOpen = false
	v.editingID = ""
	v.prefill = nil
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	if err := v.fetch(ctx, gen, params); err != nil {
		return errs.Join(errs.ErrRefetchFailed, err)
	}
	return nil
}

// PromptDelete arms the confirmation step for one row. A second prompt
// replaces the first.
func (v *View[R, X]) PromptDelete(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDeleteID = id
}

func (v *View[R, X]) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDeleteID = ""
}

// ConfirmDelete deletes the armed row. Failure keeps the confirmation armed;
// success disarms it, collapses the row if it was expanded, and refetches.
// As with Submit, a refetch failure after the delete applied comes back
// joined with errs.ErrRefetchFailed.
func (v *View[R, X]) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	id := v.pendingDeleteID
	v.mu.Unlock()
	if id == "" {
		return errs.ErrNoDeletePending
	}

	if err := v.cfg.Delete(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	v.pendingDeleteID = ""
	if v.expandedID == id {
		v.collapseLocked()
	}
	gen, params := v.beginFetchLocked()
	v.mu.Unlock()
	if err := v.fetch(ctx, gen, params); err != nil {
		return errs.Join(errs.ErrRefetchFailed, err)
	}
	return nil
}

func (v *View[R, X]) Snapshot() Snapshot[R, X] {
	v.mu.Lock()
	defer v.mu.Unlock()

	records := make([]R, len(v.records))
	copy(records, v.records)

	var prefill *R
	if v.prefill != nil {
		r := *v.prefill
		prefill = &r
	}

	return Snapshot[R, X]{
		Records:          records,
		TotalCount:       v.totalCount,
		Page:             v.page,
		PageSize:         v.cfg.PageSize,
		TotalPages:       v.totalPagesLocked(),
		Filter:           v.filter,
		Search:           v.search,
		SortColumn:       v.sortColumn,
		SortDirection:    v.sortDirection,
		Loading:          v.loading,
		LoadError:        v.loadErr,
		ExpandedID:       v.expandedID,
		Expansion:        v.expansion,
		ExpansionLoading: v.expansionLoading,
		ExpansionError:   v.expansionErr,
		ModalOpen:        v.modalOpen,
		EditingID:        v.editingID,
		Prefill:          prefill,
		PendingDeleteID:  v.pendingDeleteID,
	}
}

func (v *View[R, X]) totalPagesLocked() int {
	if v.totalCount == 0 {
		return 1
	}
	pages := int((v.totalCount + int64(v.cfg.PageSize) - 1) / int64(v.cfg.PageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

func (v *View[R, X]) collapseLocked() {
	v.expandGen++
	v.expandedID = ""
	v.expansionLoading = false
	v.expansionErr = ""
	var zero X
	v.expansion = zero
}

// beginFetchLocked marks a new fetch generation and captures the parameters
// it will run with. Callers must hold the mutex.
func (v *View[R, X]) beginFetchLocked() (uint64, queries.ListParams) {
	v.fetchGen++
	v.loading = true
	return v.fetchGen, queries.ListParams{
		Filter:        v.filter,
		Search:        v.search,
		SortColumn:    v.sortColumn,
		SortDirection: v.sortDirection,
		Page:          v.page,
		PageSize:      v.cfg.PageSize,
	}
}

// fetch resolves one page outside the lock and applies the result only if it
// is still the latest generation. A fetch that lands past the final page
// (a delete can shrink the result set underneath it) retries once on the
// last page that still exists.
func (v *View[R, X]) fetch(ctx context.Context, gen uint64, params queries.ListParams) error {
	records, total, err := v.cfg.FetchPage(ctx, params)
	if err == nil && len(records) == 0 && total > 0 && params.Page > 1 {
		lastPage := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
		if lastPage < params.Page {
			params.Page = lastPage
			records, total, err = v.cfg.FetchPage(ctx, params)
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.fetchGen {
		// superseded: a newer mutation owns the view now
		return nil
	}
	v.loading = false
	if err != nil {
		// keep the previous page on screen rather than flashing it away
		v.loadErr = "failed to load records"
		return err
	}
	v.loadErr = ""
	v.records = records
	v.totalCount = total
	v.page = params.Page
	return nil
}
