package queries

import "context"

// Chat context snapshots: per-entity summary stats plus the ten most recent
// rows, serialized into the assistant's system prompt.
const RecentContextLimit = 10

type RecentTicket struct {
	TicketID   string `json:"id"`
	Subject    string `json:"subject"`
	Status     string `json:"status"`
	CustomerID string `json:"customer"`
}

type RecentRefund struct {
	RefundID    string `json:"id"`
	AmountCents *int64 `json:"amount_cents"` // nil when the payment reference dangles
	SKU         string `json:"sku"`
	Approved    *bool  `json:"approved"`
}

type RecentPayment struct {
	PaymentID   string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	CustomerID  string `json:"customer"`
}

type TicketContext struct {
	StatusCounts map[string]int64
	Recent       []RecentTicket
}

type RefundContext struct {
	ApprovalCounts map[string]int64 // keyed pending/true/false
	Recent         []RecentRefund
}

type PaymentContext struct {
	StatusStats []PaymentStatusStat
	Recent      []RecentPayment
}

type ChatContextReadStore interface {
	TicketContext(ctx context.Context) (*TicketContext, error)
	RefundContext(ctx context.Context) (*RefundContext, error)
	PaymentContext(ctx context.Context) (*PaymentContext, error)
}
