package repository

import (
	"context"

	"support-console/internal/domain/ticket"
	"support-console/internal/infra"
	"support-console/internal/infra/readstore"
	"support-console/internal/pkg/errs"
	"support-console/internal/usecase/commands"
)

type TicketRepository struct {
	db readstore.DBTX
}

func NewTicketRepository(db readstore.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	const query = `
		INSERT INTO help_ticket (ticket_id, customer_id, subject, status, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		t.ID(), t.CustomerID(), t.Subject(), t.Status().String(), t.CreatedAt(), t.ResolvedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to insert ticket", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, id string, u commands.TicketUpdate) error {
	// resolved_at is written only when the edit moves the ticket into a
	// resolving status; otherwise the stored value stays as it is.
	query := `UPDATE help_ticket SET customer_id = $1, subject = $2, status = $3 WHERE ticket_id = $4`
	args := []any{u.CustomerID, u.Subject, u.Status, id}
	if u.ResolvedAt != nil {
		query = `UPDATE help_ticket SET customer_id = $1, subject = $2, status = $3, resolved_at = $4 WHERE ticket_id = $5`
		args = []any{u.CustomerID, u.Subject, u.Status, *u.ResolvedAt, id}
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", errs.ErrTicketNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM help_ticket WHERE ticket_id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete ticket", err)
	}
	return nil
}
