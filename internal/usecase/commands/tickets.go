package commands

import (
	"context"
	"strings"

	domticket "support-console/internal/domain/ticket"
	"support-console/internal/pkg/clock"
)

type TicketForm struct {
	CustomerID string
	Subject    string
	Status     string
}

type TicketCommands interface {
	Create(ctx context.Context, form TicketForm) (string, error)
	Update(ctx context.Context, id string, form TicketForm) error
	Delete(ctx context.Context, id string) error
}

type ticketCommandsImpl struct {
	repo  TicketRepository
	clock clock.Clock
}

func NewTicketCommands(repo TicketRepository, clk clock.Clock) TicketCommands {
	return &ticketCommandsImpl{repo: repo, clock: clk}
}

func (c *ticketCommandsImpl) Create(ctx context.Context, form TicketForm) (string, error) {
	status, err := domticket.NewStatus(form.Status)
	if err != nil {
		return "", err
	}

	t, err := domticket.NewTicket(form.CustomerID, form.Subject, status, c.clock.Now())
	if err != nil {
		return "", err
	}

	if err := c.repo.Insert(ctx, t); err != nil {
		return "", err
	}
	return t.ID(), nil
}

func (c *ticketCommandsImpl) Update(ctx context.Context, id string, form TicketForm) error {
	status, err := domticket.NewStatus(form.Status)
	if err != nil {
		return err
	}
	customerID := strings.TrimSpace(form.CustomerID)
	if customerID == "" {
		return domticket.ErrEmptyCustomerID
	}
	subject := strings.TrimSpace(form.Subject)
	if subject == "" {
		return domticket.ErrEmptySubject
	}

	u := TicketUpdate{
		CustomerID: customerID,
		Subject:    subject,
		Status:     status.String(),
	}
	if status.IsResolving() {
		now := c.clock.Now()
		u.ResolvedAt = &now
	}

	return c.repo.Update(ctx, id, u)
}

func (c *ticketCommandsImpl) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}
