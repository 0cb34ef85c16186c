package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the three entity tables when they do not exist.
// Deliberately no primary keys, foreign keys or indices: references between
// the tables are soft string joins and the query layer must tolerate
// duplicate ids and dangling references.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS help_ticket (
		ticket_id TEXT,
		customer_id TEXT,
		subject TEXT,
		status TEXT,
		created_at TIMESTAMP,
		resolved_at TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS refund_requests (
		refund_id TEXT,
		ticket_id TEXT,
		payment_id TEXT,
		sku TEXT,
		request_date TIMESTAMP,
		approved BOOLEAN,
		approval_date TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS stripe_payments (
		payment_id TEXT,
		customer_id TEXT,
		amount_cents BIGINT,
		currency TEXT,
		payment_status TEXT,
		payment_date TIMESTAMP
	);`

	_, err := pool.Exec(ctx, ddl)
	return err
}
