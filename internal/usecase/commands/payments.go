package commands

import (
	"context"
	"strings"

	dompayment "support-console/internal/domain/payment"
	"support-console/internal/pkg/clock"
)

type PaymentForm struct {
	CustomerID  string
	AmountCents int64
	Currency    string
	Status      string
}

type PaymentCommands interface {
	Create(ctx context.Context, form PaymentForm) (string, error)
	Update(ctx context.Context, id string, form PaymentForm) error
	Delete(ctx context.Context, id string) error
}

type paymentCommandsImpl struct {
	repo  PaymentRepository
	clock clock.Clock
}

func NewPaymentCommands(repo PaymentRepository, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{repo: repo, clock: clk}
}

func (c *paymentCommandsImpl) Create(ctx context.Context, form PaymentForm) (string, error) {
	status, err := dompayment.NewStatus(form.Status)
	if err != nil {
		return "", err
	}

	p, err := dompayment.NewPayment(form.CustomerID, form.AmountCents, form.Currency, status, c.clock.Now())
	if err != nil {
		return "", err
	}

	if err := c.repo.Insert(ctx, p); err != nil {
		return "", err
	}
	return p.ID(), nil
}

func (c *paymentCommandsImpl) Update(ctx context.Context, id string, form PaymentForm) error {
	status, err := dompayment.NewStatus(form.Status)
	if err != nil {
		return err
	}
	amount, err := dompayment.NewAmount(form.AmountCents)
	if err != nil {
		return err
	}
	currency, err := dompayment.NewCurrency(form.Currency)
	if err != nil {
		return err
	}
	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		return dompayment.ErrEmptyCustomerID
	}

	return c.repo.Update(ctx, id, PaymentUpdate{
		CustomerID:  customerID,
		AmountCents: amount.Cents(),
		Currency:    currency.String(),
		Status:      status.String(),
	})
}

func (c *paymentCommandsImpl) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}
