//go:build unit

package refund_test

import (
	"testing"

	"support-console/internal/domain/refund"
	"support-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefund(t *testing.T) {
	t.Run("pending request has no approval date", func(t *testing.T) {
		actual, err := builder.NewRefundBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEmpty(t, actual.ID())
		assert.Equal(t, refund.ApprovalPending, actual.Approval())
		assert.Nil(t, actual.ApprovalDate())
	})

	t.Run("decided request is stamped with the approval date", func(t *testing.T) {
		for _, status := range []string{"true", "false"} {
			b := builder.NewRefundBuilder().WithApproval(status)
			actual, err := b.BuildDomain()
			require.NoError(t, err)
			require.NotNil(t, actual.ApprovalDate())
			assert.Equal(t, b.Now, *actual.ApprovalDate())
		}
	})

	t.Run("reference validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.RefundBuilder)
			errIs  error
		}{
			{
				name:   "empty ticket id",
				mutate: func(b *builder.RefundBuilder) { b.WithTicketID("") },
				errIs:  refund.ErrEmptyTicketID,
			},
			{
				name:   "empty payment id",
				mutate: func(b *builder.RefundBuilder) { b.WithPaymentID("") },
				errIs:  refund.ErrEmptyPaymentID,
			},
			{
				name:   "empty sku",
				mutate: func(b *builder.RefundBuilder) { b.SKU = "  " },
				errIs:  refund.ErrEmptySKU,
			},
			{
				name:   "invalid approval",
				mutate: func(b *builder.RefundBuilder) { b.WithApproval("maybe") },
				errIs:  refund.ErrInvalidApproval,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewRefundBuilder()
				tc.mutate(b)
				_, err := b.BuildDomain()
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestApprovalRoundTrip(t *testing.T) {
	approved := true
	denied := false

	assert.Equal(t, refund.ApprovalPending, refund.ApprovalFromBool(nil))
	assert.Equal(t, refund.ApprovalApproved, refund.ApprovalFromBool(&approved))
	assert.Equal(t, refund.ApprovalDenied, refund.ApprovalFromBool(&denied))

	assert.Nil(t, refund.ApprovalPending.Bool())
	require.NotNil(t, refund.ApprovalApproved.Bool())
	assert.True(t, *refund.ApprovalApproved.Bool())
	require.NotNil(t, refund.ApprovalDenied.Bool())
	assert.False(t, *refund.ApprovalDenied.Bool())

	assert.False(t, refund.ApprovalPending.Decided())
	assert.True(t, refund.ApprovalApproved.Decided())
	assert.True(t, refund.ApprovalDenied.Decided())
}
