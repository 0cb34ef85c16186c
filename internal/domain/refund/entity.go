package refund

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Refund struct {
	id           string
	ticketID     string
	paymentID    string
	sku          string
	requestDate  time.Time
	approval     Approval
	approvalDate *time.Time
}

// NewRefund builds a refund request for creation. Ticket and payment ids are
// soft references: they are not checked against the other tables here or by
// any database constraint.
func NewRefund(ticketID, paymentID, sku string, approval Approval, now time.Time) (*Refund, error) {
	ticketID = strings.TrimSpace(ticketID)
	paymentID = strings.TrimSpace(paymentID)
	sku = strings.TrimSpace(sku)

	if ticketID == "" {
		return nil, ErrEmptyTicketID
	}
	if paymentID == "" {
		return nil, ErrEmptyPaymentID
	}
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if !approval.IsValid() {
		return nil, ErrInvalidApproval
	}

	r := &Refund{
		id:          uuid.NewString(),
		ticketID:    ticketID,
		paymentID:   paymentID,
		sku:         sku,
		requestDate: now,
		approval:    approval,
	}
	if approval.Decided() {
		r.approvalDate = &now
	}
	return r, nil
}

func (r *Refund) ID() string               { return r.id }
func (r *Refund) TicketID() string         { return r.ticketID }
func (r *Refund) PaymentID() string        { return r.paymentID }
func (r *Refund) SKU() string              { return r.sku }
func (r *Refund) RequestDate() time.Time   { return r.requestDate }
func (r *Refund) Approval() Approval       { return r.approval }
func (r *Refund) ApprovalDate() *time.Time { return r.approvalDate }
