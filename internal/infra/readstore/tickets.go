package readstore

import (
	"context"

	"support-console/internal/domain/ticket"
	"support-console/internal/infra"
	"support-console/internal/pkg/pgconv"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const ticketColumns = "ticket_id, customer_id, subject, status, created_at, resolved_at"

var ticketSort = sortSpec{
	columns: map[string]string{
		"ticket_id":   "ticket_id",
		"created_at":  "created_at",
		"status":      "status",
		"customer_id": "customer_id",
		"subject":     "subject",
	},
	defaultColumn: "created_at",
	defaultDesc:   true,
	tieBreak:      "ticket_id",
}

var ticketSearchColumns = []string{"customer_id", "subject", "ticket_id"}

type TicketReadStore struct {
	db DBTX
}

func NewTicketReadStore(db DBTX) *TicketReadStore {
	return &TicketReadStore{db: db}
}

func buildTicketList(p queries.ListParams) (countSQL, pageSQL string, args []any) {
	b := &condBuilder{}
	// Unrecognized filter values (including "all") mean no status filter.
	if st, err := ticket.NewStatus(p.Filter); err == nil {
		b.equal("status", st.String())
	}
	b.search(ticketSearchColumns, p.Search)

	where := b.where()
	countSQL = "SELECT COUNT(*) FROM help_ticket" + where
	pageSQL = "SELECT " + ticketColumns + " FROM help_ticket" + where +
		ticketSort.orderBy(p.SortColumn, p.SortDirection) + limitOffset(p)
	return countSQL, pageSQL, b.args
}

func (r *TicketReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.TicketView, int64, error) {
	countSQL, pageSQL, args := buildTicketList(p)

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count tickets", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to fetch ticket page", err)
	}
	defer rows.Close()

	result := make([]queries.TicketView, 0, p.PageSize)
	for rows.Next() {
		var (
			v          queries.TicketView
			createdAt  pgtype.Timestamp
			resolvedAt pgtype.Timestamp
		)
		if err := rows.Scan(&v.TicketID, &v.CustomerID, &v.Subject, &v.Status, &createdAt, &resolvedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan ticket row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		v.ResolvedAt = pgconv.TimePtrFromPgtype(resolvedAt)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read ticket rows", err)
	}

	return result, total, nil
}

// RelatedRefunds resolves a ticket's refunds with the refunded amount looked
// up from the payment side. A dangling payment reference yields a nil amount.
func (r *TicketReadStore) RelatedRefunds(ctx context.Context, ticketID string) ([]queries.TicketRelatedRefund, error) {
	const query = `
		SELECT r.refund_id, p.amount_cents, r.approved, r.request_date
		FROM refund_requests r
		LEFT JOIN stripe_payments p ON r.payment_id = p.payment_id
		WHERE r.ticket_id = $1
		ORDER BY r.request_date DESC, r.refund_id DESC`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch related refunds", err)
	}
	defer rows.Close()

	var result []queries.TicketRelatedRefund
	for rows.Next() {
		var (
			v           queries.TicketRelatedRefund
			amountCents pgtype.Int8
			approved    pgtype.Bool
			requestDate pgtype.Timestamp
		)
		if err := rows.Scan(&v.RefundID, &amountCents, &approved, &requestDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan related refund", err)
		}
		if amountCents.Valid {
			v.AmountCents = &amountCents.Int64
		}
		v.Approved = pgconv.BoolPtrFromPgtype(approved)
		v.RequestDate = pgconv.TimePtrFromPgtype(requestDate)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read related refunds", err)
	}

	return result, nil
}
