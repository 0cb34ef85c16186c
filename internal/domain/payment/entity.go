package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	id          string
	customerID  string
	amount      Amount
	currency    Currency
	status      Status
	paymentDate time.Time
}

func NewPayment(customerID string, amountCents int64, currencyCode string, status Status, now time.Time) (*Payment, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}

	amount, err := NewAmount(amountCents)
	if err != nil {
		return nil, err
	}

	currency, err := NewCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Payment{
		id:          uuid.NewString(),
		customerID:  customerID,
		amount:      amount,
		currency:    currency,
		status:      status,
		paymentDate: now,
	}, nil
}

func (p *Payment) ID() string             { return p.id }
func (p *Payment) CustomerID() string     { return p.customerID }
func (p *Payment) Amount() Amount         { return p.amount }
func (p *Payment) Currency() Currency     { return p.currency }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) PaymentDate() time.Time { return p.paymentDate }
