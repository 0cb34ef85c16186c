package refund

import "errors"

var (
	ErrInvalidApproval = errors.New("invalid approval status")
	ErrEmptyTicketID   = errors.New("ticket id cannot be empty")
	ErrEmptyPaymentID  = errors.New("payment id cannot be empty")
	ErrEmptySKU        = errors.New("sku cannot be empty")
)

// Approval is the tri-state approval flag: pending requests have no decision
// yet and therefore no approval date.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "true"
	ApprovalDenied   Approval = "false"
)

func (a Approval) String() string {
	return string(a)
}

func (a Approval) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalDenied:
		return true
	default:
		return false
	}
}

// Decided reports whether a decision has been made. A decided refund carries
// an approval date; moving back to pending clears it.
func (a Approval) Decided() bool {
	return a == ApprovalApproved || a == ApprovalDenied
}

// Bool maps the tri-state onto the stored nullable column: nil for pending.
func (a Approval) Bool() *bool {
	switch a {
	case ApprovalApproved:
		v := true
		return &v
	case ApprovalDenied:
		v := false
		return &v
	default:
		return nil
	}
}

func NewApproval(s string) (Approval, error) {
	a := Approval(s)
	if !a.IsValid() {
		return "", ErrInvalidApproval
	}
	return a, nil
}

// ApprovalFromBool reconstructs the tri-state from the stored column.
func ApprovalFromBool(b *bool) Approval {
	switch {
	case b == nil:
		return ApprovalPending
	case *b:
		return ApprovalApproved
	default:
		return ApprovalDenied
	}
}
