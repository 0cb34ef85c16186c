package queries

import (
	"context"
	"time"
)

const DefaultPageSize = 10

// ListParams is the parameter tuple a view resolves against storage. Filter
// and search travel as bound query parameters; sort column and direction are
// resolved through per-entity allow-lists before they ever reach SQL text.
type ListParams struct {
	Filter        string
	Search        string
	SortColumn    string
	SortDirection string
	Page          int
	PageSize      int
}

func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PageSize
}

// Read models (DTO for read side)
type TicketView struct {
	TicketID   string     `json:"ticket_id"`
	CustomerID string     `json:"customer_id"`
	Subject    string     `json:"subject"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type RefundView struct {
	RefundID     string     `json:"refund_id"`
	TicketID     string     `json:"ticket_id"`
	PaymentID    string     `json:"payment_id"`
	SKU          string     `json:"sku"`
	RequestDate  time.Time  `json:"request_date"`
	Approved     *bool      `json:"approved"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
}

type PaymentView struct {
	PaymentID   string    `json:"payment_id"`
	CustomerID  string    `json:"customer_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	PaymentDate time.Time `json:"payment_date"`
}

// Row-expansion read models. Related rows come from soft string joins, so a
// missing counterpart is represented explicitly instead of being omitted.
type TicketRelatedRefund struct {
	RefundID    string     `json:"refund_id"`
	AmountCents *int64     `json:"amount_cents"` // nil when the payment reference dangles
	Approved    *bool      `json:"approved"`
	RequestDate *time.Time `json:"request_date"`
}

type PaymentRelatedRefund struct {
	RefundID    string     `json:"refund_id"`
	SKU         string     `json:"sku"`
	Approved    *bool      `json:"approved"`
	RequestDate *time.Time `json:"request_date"`
}

type RelatedTicket struct {
	Found      bool   `json:"found"`
	Subject    string `json:"subject,omitempty"`
	Status     string `json:"status,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

type RelatedPayment struct {
	Found       bool       `json:"found"`
	AmountCents int64      `json:"amount_cents,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	Status      string     `json:"status,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// Read-store ports implemented by infra/readstore.
type TicketReadStore interface {
	List(ctx context.Context, params ListParams) ([]TicketView, int64, error)
	RelatedRefunds(ctx context.Context, ticketID string) ([]TicketRelatedRefund, error)
}

type RefundReadStore interface {
	List(ctx context.Context, params ListParams) ([]RefundView, int64, error)
	RelatedTicket(ctx context.Context, ticketID string) (RelatedTicket, error)
	RelatedPayment(ctx context.Context, paymentID string) (RelatedPayment, error)
}

type PaymentReadStore interface {
	List(ctx context.Context, params ListParams) ([]PaymentView, int64, error)
	RelatedRefunds(ctx context.Context, paymentID string) ([]PaymentRelatedRefund, error)
}
