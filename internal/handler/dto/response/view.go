package response

import (
	"support-console/internal/usecase/session"
)

// ViewResponse is the full projection of one table's session state. The
// record and expansion payloads carry their own json tags, so the generic
// shell stays shape-agnostic.
type ViewResponse[R any, X any] struct {
	Records    []R   `json:"records"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`

	Filter        string `json:"filter"`
	Search        string `json:"search"`
	SortColumn    string `json:"sort_column"`
	SortDirection string `json:"sort_direction"`

	Loading   bool   `json:"loading"`
	LoadError string `json:"load_error,omitempty"`

	Expansion *ExpansionResponse[X] `json:"expansion,omitempty"`
	Modal     *ModalResponse[R]     `json:"modal,omitempty"`

	PendingDeleteID string `json:"pending_delete_id,omitempty"`
}

type ExpansionResponse[X any] struct {
	RecordID string `json:"record_id"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	Payload  X      `json:"payload"`
}

type ModalResponse[R any] struct {
	EditingID string `json:"editing_id,omitempty"` // empty in create mode
	Prefill   *R     `json:"prefill,omitempty"`
}

func FromSnapshot[R any, X any](s session.Snapshot[R, X]) ViewResponse[R, X] {
	resp := ViewResponse[R, X]{
		Records:         s.Records,
		TotalCount:      s.TotalCount,
		Page:            s.Page,
		PageSize:        s.PageSize,
		TotalPages:      s.TotalPages,
		Filter:          s.Filter,
		Search:          s.Search,
		SortColumn:      s.SortColumn,
		SortDirection:   s.SortDirection,
		Loading:         s.Loading,
		LoadError:       s.LoadError,
		PendingDeleteID: s.PendingDeleteID,
	}
	if s.ExpandedID != "" {
		resp.Expansion = &ExpansionResponse[X]{
			RecordID: s.ExpandedID,
			Loading:  s.ExpansionLoading,
			Error:    s.ExpansionError,
			Payload:  s.Expansion,
		}
	}
	if s.ModalOpen {
		resp.Modal = &ModalResponse[R]{
			EditingID: s.EditingID,
			Prefill:   s.Prefill,
		}
	}
	return resp
}
