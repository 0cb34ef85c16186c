package repository

import (
	"context"

	"support-console/internal/domain/payment"
	"support-console/internal/infra"
	"support-console/internal/infra/readstore"
	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/commands"
)

type PaymentRepository struct {
	db readstore.DBTX
}

func NewPaymentRepository(db readstore.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *payment.Payment) error {
	const query = `
		INSERT INTO stripe_payments (payment_id, customer_id, amount_cents, currency, payment_status, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.CustomerID(), p.Amount().Cents(), p.Currency().String(),
		p.Status().String(), p.PaymentDate())
	if err != nil {
		return infra.WrapRepoErr("failed to insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, id string, u commands.PaymentUpdate) error {
	const query = `
		UPDATE stripe_payments
		SET customer_id = $1, amount_cents = $2, currency = $3, payment_status = $4
		WHERE payment_id = $5`

	tag, err := r.db.Exec(ctx, query,
		u.CustomerID, u.AmountCents, u.Currency, u.Status, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", errs.ErrPaymentNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM stripe_payments WHERE payment_id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	return nil
}
