package request

// Shared table-view operation payloads, one per endpoint.

type FilterRequest struct {
	Filter string `json:"filter"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SortRequest struct {
	Column string `json:"column" binding:"required"`
}

// PageRequest either names an absolute page or a relative move.
type PageRequest struct {
	Page *int   `json:"page" binding:"omitempty,min=1"`
	Move string `json:"move" binding:"omitempty,oneof=next prev"`
}

type ExpandRequest struct {
	ID string `json:"id" binding:"required"`
}

type EditRequest struct {
	ID string `json:"id" binding:"required"`
}

type DeletePromptRequest struct {
	ID string `json:"id" binding:"required"`
}
