package readstore

import (
	"context"
	"math"

	"support-console/internal/domain/payment"
	"support-console/internal/domain/ticket"
	"support-console/internal/infra"
	"support-console/internal/pkg/pgconv"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type DashboardReadStore struct {
	db DBTX
}

func NewDashboardReadStore(db DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: db}
}

func (r *DashboardReadStore) Stats(ctx context.Context) (*queries.DashboardStats, error) {
	stats := &queries.DashboardStats{}

	if err := r.ticketStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.refundStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := r.paymentStats(ctx, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *DashboardReadStore) ticketStats(ctx context.Context, stats *queries.DashboardStats) error {
	const query = `SELECT status, COUNT(*) FROM help_ticket GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return infra.WrapRepoErr("failed to fetch ticket stats", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c queries.TicketStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return infra.WrapRepoErr("failed to scan ticket stats", err)
		}
		stats.TotalTickets += c.Count
		if c.Status == ticket.StatusOpen.String() {
			stats.TicketsOpen = c.Count
		}
		stats.TicketStatusCounts = append(stats.TicketStatusCounts, c)
	}
	return rows.Err()
}

func (r *DashboardReadStore) refundStats(ctx context.Context, stats *queries.DashboardStats) error {
	const metrics = `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN approved IS NULL THEN 1 END),
			COUNT(CASE WHEN approved = TRUE THEN 1 END)
		FROM refund_requests`

	var total, pending, approved int64
	if err := r.db.QueryRow(ctx, metrics).Scan(&total, &pending, &approved); err != nil {
		return infra.WrapRepoErr("failed to fetch refund metrics", err)
	}
	stats.RefundsPending = pending
	if total > 0 {
		stats.RefundApprovalRate = roundRate(float64(approved) / float64(total) * 100)
	}

	const trend = `
		SELECT DATE(request_date), COUNT(*)
		FROM refund_requests
		WHERE request_date IS NOT NULL
		GROUP BY DATE(request_date)
		ORDER BY DATE(request_date) ASC`

	rows, err := r.db.Query(ctx, trend)
	if err != nil {
		return infra.WrapRepoErr("failed to fetch refund trend", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day   pgtype.Date
			count int64
		)
		if err := rows.Scan(&day, &count); err != nil {
			return infra.WrapRepoErr("failed to scan refund trend", err)
		}
		stats.RefundsOverTime = append(stats.RefundsOverTime, queries.RefundTrendPoint{
			Date:  day.Time.Format("2006-01-02"),
			Count: count,
		})
	}
	return rows.Err()
}

func (r *DashboardReadStore) paymentStats(ctx context.Context, stats *queries.DashboardStats) error {
	const query = `SELECT payment_status, COUNT(*), COALESCE(SUM(amount_cents), 0) FROM stripe_payments GROUP BY payment_status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return infra.WrapRepoErr("failed to fetch payment stats", err)
	}
	defer rows.Close()

	var totalCount, succeededCount int64
	for rows.Next() {
		var (
			s      queries.PaymentStatusStat
			amount pgtype.Int8
		)
		if err := rows.Scan(&s.Status, &s.Count, &amount); err != nil {
			return infra.WrapRepoErr("failed to scan payment stats", err)
		}
		s.AmountCents = pgconv.Int64FromPgtype(amount)
		totalCount += s.Count
		if s.Status == payment.StatusSucceeded.String() {
			succeededCount = s.Count
			stats.PaymentVolumeCents += s.AmountCents
		}
		stats.PaymentStatusStats = append(stats.PaymentStatusStats, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if totalCount > 0 {
		stats.PaymentSuccessRate = roundRate(float64(succeededCount) / float64(totalCount) * 100)
	}
	return nil
}

func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}
