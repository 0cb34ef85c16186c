package request

import (
	"support-console/internal/usecase/commands"
)

// Modal form payloads. Validation lives here at the boundary; the domain
// layer re-checks its own invariants.

type TicketFormRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Subject    string `json:"subject" binding:"required,max=500"`
	Status     string `json:"status" binding:"required,oneof=open pending resolved closed"`
}

func (r *TicketFormRequest) ToForm() commands.TicketForm {
	return commands.TicketForm{
		CustomerID: r.CustomerID,
		Subject:    r.Subject,
		Status:     r.Status,
	}
}

type RefundFormRequest struct {
	TicketID       string `json:"ticket_id" binding:"required"`
	PaymentID      string `json:"payment_id" binding:"required"`
	SKU            string `json:"sku" binding:"required"`
	ApprovalStatus string `json:"approval_status" binding:"required,oneof=pending true false"`
}

func (r *RefundFormRequest) ToForm() commands.RefundForm {
	return commands.RefundForm{
		TicketID:       r.TicketID,
		PaymentID:      r.PaymentID,
		SKU:            r.SKU,
		ApprovalStatus: r.ApprovalStatus,
	}
}

type PaymentFormRequest struct {
	CustomerID  string `json:"customer_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"min=0"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Status      string `json:"status" binding:"required,oneof=succeeded pending failed refunded"`
}

func (r *PaymentFormRequest) ToForm() commands.PaymentForm {
	return commands.PaymentForm{
		CustomerID:  r.CustomerID,
		AmountCents: r.AmountCents,
		Currency:    r.Currency,
		Status:      r.Status,
	}
}
