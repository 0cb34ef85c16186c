package ticket

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid ticket status")
	ErrEmptySubject    = errors.New("subject cannot be empty")
	ErrEmptyCustomerID = errors.New("customer id cannot be empty")
	ErrSubjectTooLong  = errors.New("subject exceeds maximum length")
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusPending, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// IsResolving reports whether the status carries a resolution timestamp.
// resolved_at is set when a ticket moves into resolved or closed and is
// never cleared afterwards.
func (s Status) IsResolving() bool {
	return s == StatusResolved || s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
