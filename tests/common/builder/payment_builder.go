//go:build unit || e2e

package builder

import (
	"time"

	dompayment "support-console/internal/domain/payment"
	reqdto "support-console/internal/handler/dto/request"
)

type PaymentBuilder struct {
	CustomerID  string
	AmountCents int64
	Currency    string
	Status      string
	Now         time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		CustomerID:  "cus_1001",
		AmountCents: 4999,
		Currency:    "USD",
		Status:      "succeeded",
		Now:         time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) WithAmount(cents int64) *PaymentBuilder {
	b.AmountCents = cents
	return b
}

func (b *PaymentBuilder) WithCurrency(code string) *PaymentBuilder {
	b.Currency = code
	return b
}

func (b *PaymentBuilder) WithStatus(status string) *PaymentBuilder {
	b.Status = status
	return b
}

func (b *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	status := dompayment.Status(b.Status)
	return dompayment.NewPayment(b.CustomerID, b.AmountCents, b.Currency, status, b.Now)
}

func (b *PaymentBuilder) BuildFormRequestDTO() reqdto.PaymentFormRequest {
	return reqdto.PaymentFormRequest{
		CustomerID:  b.CustomerID,
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Status:      b.Status,
	}
}
