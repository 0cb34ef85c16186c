package commands

import (
	"context"
	"strings"

	domrefund "support-console/internal/domain/refund"
	"support-console/internal/pkg/clock"
)

type RefundForm struct {
	TicketID       string
	PaymentID      string
	SKU            string
	ApprovalStatus string // pending | true | false
}

type RefundCommands interface {
	Create(ctx context.Context, form RefundForm) (string, error)
	Update(ctx context.Context, id string, form RefundForm) error
	Delete(ctx context.Context, id string) error
}

type refundCommandsImpl struct {
	repo  RefundRepository
	clock clock.Clock
}

func NewRefundCommands(repo RefundRepository, clk clock.Clock) RefundCommands {
	return &refundCommandsImpl{repo: repo, clock: clk}
}

func (c *refundCommandsImpl) Create(ctx context.Context, form RefundForm) (string, error) {
	approval, err := domrefund.NewApproval(form.ApprovalStatus)
	if err != nil {
		return "", err
	}

	r, err := domrefund.NewRefund(form.TicketID, form.PaymentID, form.SKU, approval, c.clock.Now())
	if err != nil {
		return "", err
	}

	if err := c.repo.Insert(ctx, r); err != nil {
		return "", err
	}
	return r.ID(), nil
}

func (c *refundCommandsImpl) Update(ctx context.Context, id string, form RefundForm) error {
	approval, err := domrefund.NewApproval(form.ApprovalStatus)
	if err != nil {
		return err
	}

	ticketID := strings.TrimSpace(form.TicketID)
	if ticketID == "" {
		return domrefund.ErrEmptyTicketID
	}
	paymentID := strings.TrimSpace(form.PaymentID)
	if paymentID == "" {
		return domrefund.ErrEmptyPaymentID
	}
	sku := strings.TrimSpace(form.SKU)
	if sku == "" {
		return domrefund.ErrEmptySKU
	}

	u := RefundUpdate{
		TicketID:  ticketID,
		PaymentID: paymentID,
		SKU:       sku,
		Approved:  approval.Bool(),
	}
	// approval_date tracks the decision exactly: stamped when one is made,
	// cleared when the request goes back to pending.
	if approval.Decided() {
		now := c.clock.Now()
		u.ApprovalDate = &now
	}

	return c.repo.Update(ctx, id, u)
}

func (c *refundCommandsImpl) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}
