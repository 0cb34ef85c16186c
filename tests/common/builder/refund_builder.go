//go:build unit || e2e

package builder

import (
	"time"

	domrefund "support-console/internal/domain/refund"
	reqdto "support-console/internal/handler/dto/request"
)

type RefundBuilder struct {
	TicketID       string
	PaymentID      string
	SKU            string
	ApprovalStatus string
	Now            time.Time
}

func NewRefundBuilder() *RefundBuilder {
	return &RefundBuilder{
		TicketID:       "tic_2001",
		PaymentID:      "pay_3001",
		SKU:            "SKU-OAK-CHAIR",
		ApprovalStatus: "pending",
		Now:            time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func (b *RefundBuilder) With(mutate func(*RefundBuilder)) *RefundBuilder {
	mutate(b)
	return b
}

func (b *RefundBuilder) WithApproval(status string) *RefundBuilder {
	b.ApprovalStatus = status
	return b
}

func (b *RefundBuilder) WithTicketID(id string) *RefundBuilder {
	b.TicketID = id
	return b
}

func (b *RefundBuilder) WithPaymentID(id string) *RefundBuilder {
	b.PaymentID = id
	return b
}

func (b *RefundBuilder) BuildDomain() (*domrefund.Refund, error) {
	return domrefund.NewRefund(b.TicketID, b.PaymentID, b.SKU, domrefund.Approval(b.ApprovalStatus), b.Now)
}

func (b *RefundBuilder) BuildFormRequestDTO() reqdto.RefundFormRequest {
	return reqdto.RefundFormRequest{
		TicketID:       b.TicketID,
		PaymentID:      b.PaymentID,
		SKU:            b.SKU,
		ApprovalStatus: b.ApprovalStatus,
	}
}
