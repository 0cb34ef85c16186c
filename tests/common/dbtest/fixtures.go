//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type DBLike interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func CreateTestTicket(t *testing.T, db DBLike, customerID, subject, status string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		`INSERT INTO help_ticket (ticket_id, customer_id, subject, status, created_at, resolved_at)
		 VALUES ($1, $2, $3, $4, $5, NULL)`,
		id, customerID, subject, status, createdAt)
	require.NoError(t, err)
	return id
}

func CreateTestRefund(t *testing.T, db DBLike, ticketID, paymentID, sku string, approved *bool, requestDate time.Time) string {
	t.Helper()

	var approvalDate *time.Time
	if approved != nil {
		approvalDate = &requestDate
	}
	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		`INSERT INTO refund_requests (refund_id, ticket_id, payment_id, sku, request_date, approved, approval_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, ticketID, paymentID, sku, requestDate, approved, approvalDate)
	require.NoError(t, err)
	return id
}

func CreateTestPayment(t *testing.T, db DBLike, customerID string, amountCents int64, currency, status string, paymentDate time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(),
		`INSERT INTO stripe_payments (payment_id, customer_id, amount_cents, currency, payment_status, payment_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, customerID, amountCents, currency, status, paymentDate)
	require.NoError(t, err)
	return id
}

// ResetDB truncates all entity tables between subtests. The tables carry no
// constraints, so order does not matter.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE help_ticket, refund_requests, stripe_payments")
	return err
}
