package queries

import "context"

type TicketStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PaymentStatusStat struct {
	Status      string `json:"status"`
	Count       int64  `json:"count"`
	AmountCents int64  `json:"amount_cents"`
}

type RefundTrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalTickets       int64               `json:"total_tickets"`
	TicketsOpen        int64               `json:"tickets_open"`
	TicketStatusCounts []TicketStatusCount `json:"ticket_status_counts"`

	RefundsPending     int64              `json:"refunds_pending"`
	RefundApprovalRate float64            `json:"refund_approval_rate"` // percent, one decimal
	RefundsOverTime    []RefundTrendPoint `json:"refunds_over_time"`

	PaymentVolumeCents int64               `json:"payment_volume_cents"` // succeeded only
	PaymentSuccessRate float64             `json:"payment_success_rate"` // percent, one decimal
	PaymentStatusStats []PaymentStatusStat `json:"payment_status_stats"`
}

type DashboardReadStore interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
