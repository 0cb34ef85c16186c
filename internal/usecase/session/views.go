package session

import (
	"context"

	"support-console/internal/usecase/queries"
)

// Concrete view instantiations, one per table.

type TicketTableView = View[queries.TicketView, []queries.TicketRelatedRefund]

// RefundExpansion bundles the two soft-joined counterparts of a refund
// request. Either side can be missing when the stored id dangles.
type RefundExpansion struct {
	Ticket  queries.RelatedTicket  `json:"ticket"`
	Payment queries.RelatedPayment `json:"payment"`
}

type RefundTableView = View[queries.RefundView, RefundExpansion]

type PaymentTableView = View[queries.PaymentView, []queries.PaymentRelatedRefund]

func NewTicketTableView(store queries.TicketReadStore, deleteFn func(ctx context.Context, id string) error) *TicketTableView {
	return NewView(ViewConfig[queries.TicketView, []queries.TicketRelatedRefund]{
		PageSize:          queries.DefaultPageSize,
		DefaultSortColumn: "created_at",
		DefaultSortDesc:   true,
		FetchPage:         store.List,
		FetchExpansion: func(ctx context.Context, r queries.TicketView) ([]queries.TicketRelatedRefund, error) {
			return store.RelatedRefunds(ctx, r.TicketID)
		},
		Delete:   deleteFn,
		RecordID: func(r queries.TicketView) string { return r.TicketID },
	})
}

func NewRefundTableView(store queries.RefundReadStore, deleteFn func(ctx context.Context, id string) error) *RefundTableView {
	return NewView(ViewConfig[queries.RefundView, RefundExpansion]{
		PageSize:          queries.DefaultPageSize,
		DefaultSortColumn: "request_date",
		DefaultSortDesc:   true,
		FetchPage:         store.List,
		FetchExpansion: func(ctx context.Context, r queries.RefundView) (RefundExpansion, error) {
			ticket, err := store.RelatedTicket(ctx, r.TicketID)
			if err != nil {
				return RefundExpansion{}, err
			}
			payment, err := store.RelatedPayment(ctx, r.PaymentID)
			if err != nil {
				return RefundExpansion{}, err
			}
			return RefundExpansion{Ticket: ticket, Payment: payment}, nil
		},
		Delete:   deleteFn,
		RecordID: func(r queries.RefundView) string { return r.RefundID },
	})
}

func NewPaymentTableView(store queries.PaymentReadStore, deleteFn func(ctx context.Context, id string) error) *PaymentTableView {
	return NewView(ViewConfig[queries.PaymentView, []queries.PaymentRelatedRefund]{
		PageSize:          queries.DefaultPageSize,
		DefaultSortColumn: "payment_date",
		DefaultSortDesc:   true,
		FetchPage:         store.List,
		FetchExpansion: func(ctx context.Context, r queries.PaymentView) ([]queries.PaymentRelatedRefund, error) {
			return store.RelatedRefunds(ctx, r.PaymentID)
		},
		Delete:   deleteFn,
		RecordID: func(r queries.PaymentView) string { return r.PaymentID },
	})
}
