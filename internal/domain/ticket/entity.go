package ticket

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxSubjectLength = 500

type Ticket struct {
	id         string
	customerID string
	subject    string
	status     Status
	createdAt  time.Time
	resolvedAt *time.Time
}

// NewTicket builds a ticket for creation. The id is server-generated and
// resolved_at starts unset even when the status is already terminal: the
// timestamp records the transition, which only an edit can perform.
func NewTicket(customerID, subject string, status Status, now time.Time) (*Ticket, error) {
	customerID = strings.TrimSpace(customerID)
	subject = strings.TrimSpace(subject)

	if customerID == "" {
		return nil, ErrEmptyCustomerID
	}
	if subject == "" {
		return nil, ErrEmptySubject
	}
	if len(subject) > MaxSubjectLength {
		return nil, ErrSubjectTooLong
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Ticket{
		id:         uuid.NewString(),
		customerID: customerID,
		subject:    subject,
		status:     status,
		createdAt:  now,
	}, nil
}

func (t *Ticket) ID() string             { return t.id }
func (t *Ticket) CustomerID() string     { return t.customerID }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }
