//go:build unit

package ticket_test

import (
	"strings"
	"testing"

	"support-console/internal/domain/ticket"
	"support-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TicketBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewTicketBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestTicket(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEmpty(t, actual.ID())
		assert.Equal(t, "cus_1001", actual.CustomerID())
		assert.Equal(t, "Order never arrived", actual.Subject())
		assert.Equal(t, ticket.StatusOpen, actual.Status())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Nil(t, actual.ResolvedAt())
	})

	t.Run("resolved_at stays unset on creation even for terminal status", func(t *testing.T) {
		actual, err := builder.NewTicketBuilder().WithStatus("closed").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.ResolvedAt())
	})

	t.Run("status validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "open", mutate: func(b *builder.TicketBuilder) { b.WithStatus("open") }},
			{name: "pending", mutate: func(b *builder.TicketBuilder) { b.WithStatus("pending") }},
			{name: "resolved", mutate: func(b *builder.TicketBuilder) { b.WithStatus("resolved") }},
			{name: "closed", mutate: func(b *builder.TicketBuilder) { b.WithStatus("closed") }},
			{
				name:   "unknown status",
				mutate: func(b *builder.TicketBuilder) { b.WithStatus("escalated") },
				errIs:  ticket.ErrInvalidStatus,
			},
			{
				name:   "empty status",
				mutate: func(b *builder.TicketBuilder) { b.WithStatus("") },
				errIs:  ticket.ErrInvalidStatus,
			},
		})
	})

	t.Run("subject validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty subject",
				mutate: func(b *builder.TicketBuilder) { b.WithSubject("") },
				errIs:  ticket.ErrEmptySubject,
			},
			{
				name:   "whitespace only subject",
				mutate: func(b *builder.TicketBuilder) { b.WithSubject("   ") },
				errIs:  ticket.ErrEmptySubject,
			},
			{
				name: "maximum length subject",
				mutate: func(b *builder.TicketBuilder) {
					b.WithSubject(strings.Repeat("a", ticket.MaxSubjectLength))
				},
			},
			{
				name: "subject exceeds maximum length",
				mutate: func(b *builder.TicketBuilder) {
					b.WithSubject(strings.Repeat("a", ticket.MaxSubjectLength+1))
				},
				errIs: ticket.ErrSubjectTooLong,
			},
		})
	})

	t.Run("customer validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty customer id",
				mutate: func(b *builder.TicketBuilder) { b.WithCustomerID("") },
				errIs:  ticket.ErrEmptyCustomerID,
			},
		})
	})
}

func TestStatusIsResolving(t *testing.T) {
	assert.False(t, ticket.StatusOpen.IsResolving())
	assert.False(t, ticket.StatusPending.IsResolving())
	assert.True(t, ticket.StatusResolved.IsResolving())
	assert.True(t, ticket.StatusClosed.IsResolving())
}
