package commands

import (
	"context"
	"time"

	"support-console/internal/domain/payment"
	"support-console/internal/domain/refund"
	"support-console/internal/domain/ticket"
)

// Write-side ports implemented by infra/repository. Updates are full-field
// replaces; the structs carry the exact column image an edit writes.

type TicketUpdate struct {
	CustomerID string
	Subject    string
	Status     string
	ResolvedAt *time.Time // stamped when the edit moves into resolved/closed, never cleared
}

type TicketRepository interface {
	Insert(ctx context.Context, t *ticket.Ticket) error
	Update(ctx context.Context, id string, u TicketUpdate) error
	Delete(ctx context.Context, id string) error
}

type RefundUpdate struct {
	TicketID     string
	PaymentID    string
	SKU          string
	Approved     *bool      // nil = pending
	ApprovalDate *time.Time // always written: stamped on decision, cleared on pending
}

type RefundRepository interface {
	Insert(ctx context.Context, r *refund.Refund) error
	Update(ctx context.Context, id string, u RefundUpdate) error
	Delete(ctx context.Context, id string) error
}

type PaymentUpdate struct {
	CustomerID  string
	AmountCents int64
	Currency    string
	Status      string
}

type PaymentRepository interface {
	Insert(ctx context.Context, p *payment.Payment) error
	Update(ctx context.Context, id string, u PaymentUpdate) error
	Delete(ctx context.Context, id string) error
}
