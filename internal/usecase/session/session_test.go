//go:build unit

package session_test

import (
	"context"
	"testing"
	"time"

	"support-console/internal/pkg/clock"
	"support-console/internal/usecase/commands"
	"support-console/internal/usecase/queries"
	"support-console/internal/usecase/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTicketStore struct{}

func (stubTicketStore) List(context.Context, queries.ListParams) ([]queries.TicketView, int64, error) {
	return nil, 0, nil
}
func (stubTicketStore) RelatedRefunds(context.Context, string) ([]queries.TicketRelatedRefund, error) {
	return nil, nil
}

type stubRefundStore struct{}

func (stubRefundStore) List(context.Context, queries.ListParams) ([]queries.RefundView, int64, error) {
	return nil, 0, nil
}
func (stubRefundStore) RelatedTicket(context.Context, string) (queries.RelatedTicket, error) {
	return queries.RelatedTicket{}, nil
}
func (stubRefundStore) RelatedPayment(context.Context, string) (queries.RelatedPayment, error) {
	return queries.RelatedPayment{}, nil
}

type stubPaymentStore struct{}

func (stubPaymentStore) List(context.Context, queries.ListParams) ([]queries.PaymentView, int64, error) {
	return nil, 0, nil
}
func (stubPaymentStore) RelatedRefunds(context.Context, string) ([]queries.PaymentRelatedRefund, error) {
	return nil, nil
}

type stubTicketCommands struct{}

func (stubTicketCommands) Create(context.Context, commands.TicketForm) (string, error) {
	return "", nil
}
func (stubTicketCommands) Update(context.Context, string, commands.TicketForm) error { return nil }
func (stubTicketCommands) Delete(context.Context, string) error                      { return nil }

type stubRefundCommands struct{}

func (stubRefundCommands) Create(context.Context, commands.RefundForm) (string, error) {
	return "", nil
}
func (stubRefundCommands) Update(context.Context, string, commands.RefundForm) error { return nil }
func (stubRefundCommands) Delete(context.Context, string) error                      { return nil }

type stubPaymentCommands struct{}

func (stubPaymentCommands) Create(context.Context, commands.PaymentForm) (string, error) {
	return "", nil
}
func (stubPaymentCommands) Update(context.Context, string, commands.PaymentForm) error { return nil }
func (stubPaymentCommands) Delete(context.Context, string) error                       { return nil }

func newTestRegistry(clk clock.Clock, idleTTL time.Duration) *session.Registry {
	return session.NewRegistry(session.RegistryDeps{
		TicketStore:     stubTicketStore{},
		RefundStore:     stubRefundStore{},
		PaymentStore:    stubPaymentStore{},
		TicketCommands:  stubTicketCommands{},
		RefundCommands:  stubRefundCommands{},
		PaymentCommands: stubPaymentCommands{},
	}, clk, idleTTL)
}

func TestRegistryCreateAndGet(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	reg := newTestRegistry(clk, time.Hour)

	s := reg.Create()
	require.NotNil(t, s)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 1, reg.Len())

	assert.Same(t, s, reg.Get(s.ID), "same id resolves to the same session")

	assert.NotNil(t, s.Tickets)
	assert.NotNil(t, s.Refunds)
	assert.NotNil(t, s.Payments)
	assert.NotNil(t, s.Chat)
}

func TestRegistryGetMaterializesUnknownID(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	reg := newTestRegistry(clk, time.Hour)

	id := uuid.New()
	s := reg.Get(id)
	require.NotNil(t, s)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, 1, reg.Len())

	// the materialized session starts from defaults
	snap := s.Tickets.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Empty(t, snap.Filter)
}

func TestRegistrySweep(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	reg := newTestRegistry(clk, time.Hour)

	old := reg.Create()
	clk.Add(2 * time.Hour)
	fresh := reg.Create()

	assert.Equal(t, 1, reg.Sweep())
	assert.Equal(t, 1, reg.Len())

	// the evicted session comes back empty, the fresh one survives intact
	assert.Same(t, fresh, reg.Get(fresh.ID))
	assert.NotSame(t, old, reg.Get(old.ID))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryGetRefreshesIdleClock(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	reg := newTestRegistry(clk, time.Hour)

	s := reg.Create()
	clk.Add(50 * time.Minute)
	reg.Get(s.ID)
	clk.Add(50 * time.Minute)

	assert.Equal(t, 0, reg.Sweep(), "a touched session is not idle")
	assert.Same(t, s, reg.Get(s.ID))
}
