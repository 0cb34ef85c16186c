package repository

import (
	"context"

	"support-console/internal/domain/refund"
	"support-console/internal/infra"
	"support-console/internal/infra/readstore"
	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/commands"
)

type RefundRepository struct {
	db readstore.DBTX
}

func NewRefundRepository(db readstore.DBTX) *RefundRepository {
	return &RefundRepository{db: db}
}

func (r *RefundRepository) Insert(ctx context.Context, rf *refund.Refund) error {
	const query = `
		INSERT INTO refund_requests (refund_id, ticket_id, payment_id, sku, request_date, approved, approval_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		rf.ID(), rf.TicketID(), rf.PaymentID(), rf.SKU(), rf.RequestDate(),
		rf.Approval().Bool(), rf.ApprovalDate())
	if err != nil {
		return infra.WrapRepoErr("failed to insert refund request", err)
	}
	return nil
}

func (r *RefundRepository) Update(ctx context.Context, id string, u commands.RefundUpdate) error {
	// approval_date is always part of the write: a decision stamps it and a
	// move back to pending clears it to NULL.
	const query = `
		UPDATE refund_requests
		SET ticket_id = $1, payment_id = $2, sku = $3, approved = $4, approval_date = $5
		WHERE refund_id = $6`

	tag, err := r.db.Exec(ctx, query,
		u.TicketID, u.PaymentID, u.SKU, u.Approved, u.ApprovalDate, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update refund request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("refund request not found", errs.ErrRefundNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *RefundRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM refund_requests WHERE refund_id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete refund request", err)
	}
	return nil
}
