//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"support-console/internal/domain/refund"
	"support-console/internal/pkg/clock"
	"support-console/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefundRepo struct {
	inserted *refund.Refund
	updates  map[string]commands.RefundUpdate
	deleted  []string
}

func newFakeRefundRepo() *fakeRefundRepo {
	return &fakeRefundRepo{updates: make(map[string]commands.RefundUpdate)}
}

func (r *fakeRefundRepo) Insert(_ context.Context, rf *refund.Refund) error {
	r.inserted = rf
	return nil
}

func (r *fakeRefundRepo) Update(_ context.Context, id string, u commands.RefundUpdate) error {
	r.updates[id] = u
	return nil
}

func (r *fakeRefundRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

var refundTestNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestRefundCommandsCreate(t *testing.T) {
	repo := newFakeRefundRepo()
	uc := commands.NewRefundCommands(repo, clock.NewMockClock(refundTestNow))

	id, err := uc.Create(context.Background(), commands.RefundForm{
		TicketID:       "tic_2001",
		PaymentID:      "pay_3001",
		SKU:            "SKU-OAK-CHAIR",
		ApprovalStatus: "pending",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, repo.inserted.ID(), id)
	assert.Equal(t, refundTestNow, repo.inserted.RequestDate())
	assert.Nil(t, repo.inserted.ApprovalDate(), "pending requests carry no decision date")
}

func TestRefundCommandsCreateDecidedStampsDate(t *testing.T) {
	repo := newFakeRefundRepo()
	uc := commands.NewRefundCommands(repo, clock.NewMockClock(refundTestNow))

	_, err := uc.Create(context.Background(), commands.RefundForm{
		TicketID:       "tic_2001",
		PaymentID:      "pay_3001",
		SKU:            "SKU-OAK-CHAIR",
		ApprovalStatus: "true",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.inserted.ApprovalDate())
	assert.Equal(t, refundTestNow, *repo.inserted.ApprovalDate())
}

func TestRefundCommandsUpdateApprovalDate(t *testing.T) {
	tests := []struct {
		name         string
		approval     string
		wantApproved *bool
		wantStamped  bool
	}{
		{name: "approved", approval: "true", wantApproved: boolPtr(true), wantStamped: true},
		{name: "denied", approval: "false", wantApproved: boolPtr(false), wantStamped: true},
		{name: "back to pending clears the date", approval: "pending", wantApproved: nil, wantStamped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRefundRepo()
			uc := commands.NewRefundCommands(repo, clock.NewMockClock(refundTestNow))

			err := uc.Update(context.Background(), "ref_1", commands.RefundForm{
				TicketID:       "tic_2001",
				PaymentID:      "pay_3001",
				SKU:            "SKU-OAK-CHAIR",
				ApprovalStatus: tt.approval,
			})

			require.NoError(t, err)
			u, ok := repo.updates["ref_1"]
			require.True(t, ok)
			assert.Equal(t, tt.wantApproved, u.Approved)
			if tt.wantStamped {
				require.NotNil(t, u.ApprovalDate)
				assert.Equal(t, refundTestNow, *u.ApprovalDate)
			} else {
				assert.Nil(t, u.ApprovalDate)
			}
		})
	}
}

func TestRefundCommandsUpdateValidation(t *testing.T) {
	tests := []struct {
		name string
		form commands.RefundForm
		want error
	}{
		{
			name: "unknown approval",
			form: commands.RefundForm{TicketID: "t", PaymentID: "p", SKU: "s", ApprovalStatus: "maybe"},
			want: refund.ErrInvalidApproval,
		},
		{
			name: "empty ticket reference",
			form: commands.RefundForm{TicketID: " ", PaymentID: "p", SKU: "s", ApprovalStatus: "pending"},
			want: refund.ErrEmptyTicketID,
		},
		{
			name: "empty payment reference",
			form: commands.RefundForm{TicketID: "t", PaymentID: "", SKU: "s", ApprovalStatus: "pending"},
			want: refund.ErrEmptyPaymentID,
		},
		{
			name: "empty sku",
			form: commands.RefundForm{TicketID: "t", PaymentID: "p", SKU: "  ", ApprovalStatus: "pending"},
			want: refund.ErrEmptySKU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRefundRepo()
			uc := commands.NewRefundCommands(repo, clock.NewMockClock(refundTestNow))

			err := uc.Update(context.Background(), "ref_1", tt.form)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.updates)
		})
	}
}

func boolPtr(b bool) *bool { return &b }
