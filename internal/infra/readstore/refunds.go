package readstore

import (
	"context"

	"support-console/internal/infra"
	"support-console/internal/pkg/pgconv"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const refundColumns = "refund_id, ticket_id, payment_id, sku, request_date, approved, approval_date"

var refundSort = sortSpec{
	columns: map[string]string{
		"request_date":  "request_date",
		"approval_date": "approval_date",
		"sku":           "sku",
	},
	defaultColumn: "request_date",
	defaultDesc:   true,
	tieBreak:      "refund_id",
}

var refundSearchColumns = []string{"ticket_id", "payment_id", "refund_id"}

type RefundReadStore struct {
	db DBTX
}

func NewRefundReadStore(db DBTX) *RefundReadStore {
	return &RefundReadStore{db: db}
}

func buildRefundList(p queries.ListParams) (countSQL, pageSQL string, args []any) {
	b := &condBuilder{}
	// The approval filter maps onto the nullable approved column; anything
	// else (including "all") matches every row.
	switch p.Filter {
	case "approved":
		b.raw("approved = TRUE")
	case "denied":
		b.raw("approved = FALSE")
	case "pending":
		b.raw("approved IS NULL")
	}
	b.search(refundSearchColumns, p.Search)

	where := b.where()
	countSQL = "SELECT COUNT(*) FROM refund_requests" + where
	pageSQL = "SELECT " + refundColumns + " FROM refund_requests" + where +
		refundSort.orderBy(p.SortColumn, p.SortDirection) + limitOffset(p)
	return countSQL, pageSQL, b.args
}

func (r *RefundReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.RefundView, int64, error) {
	countSQL, pageSQL, args := buildRefundList(p)

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count refunds", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to fetch refund page", err)
	}
	defer rows.Close()

	result := make([]queries.RefundView, 0, p.PageSize)
	for rows.Next() {
		var (
			v            queries.RefundView
			requestDate  pgtype.Timestamp
			approved     pgtype.Bool
			approvalDate pgtype.Timestamp
		)
		if err := rows.Scan(&v.RefundID, &v.TicketID, &v.PaymentID, &v.SKU, &requestDate, &approved, &approvalDate); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan refund row", err)
		}
		v.RequestDate = pgconv.TimeFromPgtype(requestDate)
		v.Approved = pgconv.BoolPtrFromPgtype(approved)
		v.ApprovalDate = pgconv.TimePtrFromPgtype(approvalDate)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read refund rows", err)
	}

	return result, total, nil
}

// RelatedTicket resolves the refund's soft ticket reference. A dangling id is
// a Found=false view, not an error; duplicate ids collapse to the first row.
func (r *RefundReadStore) RelatedTicket(ctx context.Context, ticketID string) (queries.RelatedTicket, error) {
	const query = `SELECT subject, status, customer_id FROM help_ticket WHERE ticket_id = $1 LIMIT 1`

	var v queries.RelatedTicket
	err := r.db.QueryRow(ctx, query, ticketID).Scan(&v.Subject, &v.Status, &v.CustomerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return queries.RelatedTicket{Found: false}, nil
		}
		return queries.RelatedTicket{}, infra.WrapRepoErr("failed to fetch related ticket", err)
	}
	v.Found = true
	return v, nil
}

func (r *RefundReadStore) RelatedPayment(ctx context.Context, paymentID string) (queries.RelatedPayment, error) {
	const query = `SELECT amount_cents, currency, payment_status, payment_date FROM stripe_payments WHERE payment_id = $1 LIMIT 1`

	var (
		v           queries.RelatedPayment
		paymentDate pgtype.Timestamp
	)
	err := r.db.QueryRow(ctx, query, paymentID).Scan(&v.AmountCents, &v.Currency, &v.Status, &paymentDate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return queries.RelatedPayment{Found: false}, nil
		}
		return queries.RelatedPayment{}, infra.WrapRepoErr("failed to fetch related payment", err)
	}
	v.Found = true
	v.PaymentDate = pgconv.TimePtrFromPgtype(paymentDate)
	return v, nil
}
