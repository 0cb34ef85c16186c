package readstore

import (
	"context"

	"support-console/internal/domain/payment"
	"support-console/internal/infra"
	"support-console/internal/pkg/pgconv"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = "payment_id, customer_id, amount_cents, currency, payment_status, payment_date"

var paymentSort = sortSpec{
	columns: map[string]string{
		"payment_id":     "payment_id",
		"customer_id":    "customer_id",
		"amount_cents":   "amount_cents",
		"payment_date":   "payment_date",
		"status":         "payment_status",
		"payment_status": "payment_status",
	},
	defaultColumn: "payment_date",
	defaultDesc:   true,
	tieBreak:      "payment_id",
}

var paymentSearchColumns = []string{"payment_id", "customer_id"}

type PaymentReadStore struct {
	db DBTX
}

func NewPaymentReadStore(db DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func buildPaymentList(p queries.ListParams) (countSQL, pageSQL string, args []any) {
	b := &condBuilder{}
	if st, err := payment.NewStatus(p.Filter); err == nil {
		b.equal("payment_status", st.String())
	}
	b.search(paymentSearchColumns, p.Search)

	where := b.where()
	countSQL = "SELECT COUNT(*) FROM stripe_payments" + where
	pageSQL = "SELECT " + paymentColumns + " FROM stripe_payments" + where +
		paymentSort.orderBy(p.SortColumn, p.SortDirection) + limitOffset(p)
	return countSQL, pageSQL, b.args
}

func (r *PaymentReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.PaymentView, int64, error) {
	countSQL, pageSQL, args := buildPaymentList(p)

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count payments", err)
	}

	rows, err := r.db.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to fetch payment page", err)
	}
	defer rows.Close()

	result := make([]queries.PaymentView, 0, p.PageSize)
	for rows.Next() {
		var (
			v           queries.PaymentView
			paymentDate pgtype.Timestamp
		)
		if err := rows.Scan(&v.PaymentID, &v.CustomerID, &v.AmountCents, &v.Currency, &v.Status, &paymentDate); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan payment row", err)
		}
		v.PaymentDate = pgconv.TimeFromPgtype(paymentDate)
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read payment rows", err)
	}

	return result, total, nil
}

func (r *PaymentReadStore) RelatedRefunds(ctx context.Context, paymentID string) ([]queries.PaymentRelatedRefund, error) {
	const query = `
		SELECT refund_id, sku, approved, request_date
		FROM refund_requests
		WHERE payment_id = $1
		ORDER BY request_date DESC, refund_id DESC`

	rows, err := r.db.Query(ctx, query, paymentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch related refunds", err)
	}
	defer rows.Close()

	var result []queries.PaymentRelatedRefund
	for rows.Next() {
		var (
			v           queries.PaymentRelatedRefund
			approved    pgtype.Bool
			requestDate pgtype.Timestamp
		)
		if err := rows.Scan(&v.RefundID, &v.SKU, &approved, &requestDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan related refund", err)
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
