package readstore

import (
	"context"

	"support-console/internal/infra"
	"support-console/internal/pkg/pgconv"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// ChatContextReadStore assembles the live data snapshots the assistant sees:
// per-entity summary stats plus the most recent rows.
type ChatContextReadStore struct {
	db DBTX
}

func NewChatContextReadStore(db DBTX) *ChatContextReadStore {
	return &ChatContextReadStore{db: db}
}

func (r *ChatContextReadStore) TicketContext(ctx context.Context) (*queries.TicketContext, error) {
	const statsQuery = `SELECT status, COUNT(*) FROM help_ticket GROUP BY status`

	rows, err := r.db.Query(ctx, statsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch ticket context stats", err)
	}
	defer rows.Close()

	result := &queries.TicketContext{StatusCounts: map[string]int64{}}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket context stats", err)
		}
		result.StatusCounts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket context stats", err)
	}

	const recentQuery = `
		SELECT ticket_id, subject, status, customer_id
		FROM help_ticket
		ORDER BY created_at DESC
		LIMIT $1`

	recent, err := r.db.Query(ctx, recentQuery, queries.RecentContextLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch recent tickets", err)
	}
	defer recent.Close()

	for recent.Next() {
		var t queries.RecentTicket
		if err := recent.Scan(&t.TicketID, &t.Subject, &t.Status, &t.CustomerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent ticket", err)
		}
		result.Recent = append(result.Recent, t)
	}
	return result, recent.Err()
}

func (r *ChatContextReadStore) RefundContext(ctx context.Context) (*queries.RefundContext, error) {
	const statsQuery = `SELECT approved, COUNT(*) FROM refund_requests GROUP BY approved`

	rows, err := r.db.Query(ctx, statsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch refund context stats", err)
	}
	defer rows.Close()

	result := &queries.RefundContext{ApprovalCounts: map[string]int64{}}
	for rows.Next() {
		var (
			approved pgtype.Bool
			count    int64
		)
		if err := rows.Scan(&approved, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan refund context stats", err)
		}
		key := "pending"
		if approved.Valid {
			if approved.Bool {
				key = "true"
			} else {
				key = "false"
			}
		}
		result.ApprovalCounts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read refund context stats", err)
	}

	const recentQuery = `
		SELECT r.refund_id, p.amount_cents, r.sku, r.approved
		FROM refund_requests r
		LEFT JOIN stripe_payments p ON r.payment_id = p.payment_id
		ORDER BY r.request_date DESC
		LIMIT $1`

	recent, err := r.db.Query(ctx, recentQuery, queries.RecentContextLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch recent refunds", err)
	}
	defer recent.Close()

	for recent.Next() {
		var (
			v        queries.RecentRefund
			amount   pgtype.Int8
			approved pgtype.Bool
		)
		if err := recent.Scan(&v.RefundID, &amount, &v.SKU, &approved); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent refund", err)
		}
		if amount.Valid {
			v.AmountCents = &amount.Int64
		}
		v.Approved = pgconv.BoolPtrFromPgtype(approved)
		result.Recent = append(result.Recent, v)
	}
	return result, recent.Err()
}

func (r *ChatContextReadStore) PaymentContext(ctx context.Context) (*queries.PaymentContext, error) {
	const statsQuery = `SELECT payment_status, COUNT(*), COALESCE(SUM(amount_cents), 0) FROM stripe_payments GROUP BY payment_status`

	rows, err := r.db.Query(ctx, statsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch payment context stats", err)
	}
	defer rows.Close()

	result := &queries.PaymentContext{}
	for rows.Next() {
		var (
			s      queries.PaymentStatusStat
			amount pgtype.Int8
		)
		if err := rows.Scan(&s.Status, &s.Count, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment context stats", err)
		}
		s.AmountCents = pgconv.Int64FromPgtype(amount)
		result.StatusStats = append(result.StatusStats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment context stats", err)
	}

	const recentQuery = `
		SELECT payment_id, amount_cents, payment_status, customer_id
		FROM stripe_payments
		ORDER BY payment_date DESC
		LIMIT $1`

	recent, err := r.db.Query(ctx, recentQuery, queries.RecentContextLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch recent payments", err)
	}
	defer recent.Close()

	for recent.Next() {
		var v queries.RecentPayment
		if err := recent.Scan(&v.PaymentID, &v.AmountCents, &v.Status, &v.CustomerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recent payment", err)
		}
		result.Recent = append(result.Recent, v)
	}
	return result, recent.Err()
}
