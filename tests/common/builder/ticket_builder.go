//go:build unit || e2e

package builder

import (
	"time"

	domticket "support-console/internal/domain/ticket"
	reqdto "support-console/internal/handler/dto/request"
)

type TicketBuilder struct {
	CustomerID string
	Subject    string
	Status     string
	Now        time.Time
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		CustomerID: "cus_1001",
		Subject:    "Order never arrived",
		Status:     "open",
		Now:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) WithStatus(status string) *TicketBuilder {
	b.Status = status
	return b
}

func (b *TicketBuilder) WithSubject(subject string) *TicketBuilder {
	b.Subject = subject
	return b
}

func (b *TicketBuilder) WithCustomerID(id string) *TicketBuilder {
	b.CustomerID = id
	return b
}

func (b *TicketBuilder) BuildDomain() (*domticket.Ticket, error) {
	status := domticket.Status(b.Status)
	return domticket.NewTicket(b.CustomerID, b.Subject, status, b.Now)
}

func (b *TicketBuilder) BuildFormRequestDTO() reqdto.TicketFormRequest {
	return reqdto.TicketFormRequest{
		CustomerID: b.CustomerID,
		Subject:    b.Subject,
		Status:     b.Status,
	}
}
