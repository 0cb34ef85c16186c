package response

import (
	"support-console/internal/usecase/queries"
)

type DashboardResponse struct {
	TotalTickets       int64                       `json:"total_tickets"`
	TicketsOpen        int64                       `json:"tickets_open"`
	TicketStatusCounts []queries.TicketStatusCount `json:"ticket_status_counts"`

	RefundsPending     int64                      `json:"refunds_pending"`
	RefundApprovalRate float64                    `json:"refund_approval_rate"`
	RefundsOverTime    []queries.RefundTrendPoint `json:"refunds_over_time"`

	PaymentVolumeCents int64                       `json:"payment_volume_cents"`
	PaymentSuccessRate float64                     `json:"payment_success_rate"`
	PaymentStatusStats []queries.PaymentStatusStat `json:"payment_status_stats"`
}

func FromDashboardStats(s *queries.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalTickets:       s.TotalTickets,
		TicketsOpen:        s.TicketsOpen,
		TicketStatusCounts: s.TicketStatusCounts,
		RefundsPending:     s.RefundsPending,
		RefundApprovalRate: s.RefundApprovalRate,
		RefundsOverTime:    s.RefundsOverTime,
		PaymentVolumeCents: s.PaymentVolumeCents,
		PaymentSuccessRate: s.PaymentSuccessRate,
		PaymentStatusStats: s.PaymentStatusStats,
	}
}
