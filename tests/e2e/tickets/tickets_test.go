//go:build e2e

package tickets_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/usecase/queries"
	"support-console/tests/common/builder"
	"support-console/tests/common/dbtest"
	"support-console/tests/common/httptest"
	"support-console/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ticketsURL = "/api/tickets/view"

type ticketViewResponse = resdto.ViewResponse[queries.TicketView, []queries.TicketRelatedRefund]

type TicketSuite struct {
	e2e.SharedSuite
}

func (s *TicketSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestTicketSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TicketSuite))
}

func (s *TicketSuite) seedTickets(t *testing.T, total, open int) {
	base := time.Now().UTC().Add(-24 * time.Hour)
	for i := range total {
		status := "resolved"
		if i < open {
			status = "open"
		}
		dbtest.CreateTestTicket(t, s.DB, fmt.Sprintf("cus_%04d", i),
			fmt.Sprintf("Ticket %02d", i), status, base.Add(time.Duration(i)*time.Minute))
	}
}

func (s *TicketSuite) TestViewFilterAndPaginate() {
	s.Run("Normal case: filter narrows and pagination walks pages", func() {
		t := s.T()
		s.seedTickets(t, 12, 3)
		token := s.MintSessionToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view ticketViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, int64(12), view.TotalCount)
		require.Len(t, view.Records, 10)
		require.Equal(t, 2, view.TotalPages)
		// default sort is newest first
		require.Equal(t, "Ticket 11", view.Records[0].Subject)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/page",
			map[string]any{"move": "next"}, token)
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, 2, view.Page)
		require.Len(t, view.Records, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/filter",
			map[string]any{"filter": "open"}, token)
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, int64(3), view.TotalCount)
		require.Equal(t, 1, view.Page, "filtering must go back to the first page")
		for _, r := range view.Records {
			require.Equal(t, "open", r.Status)
		}
	})

	s.Run("Normal case: search matches subject case-insensitively", func() {
		t := s.T()
		now := time.Now().UTC()
		dbtest.CreateTestTicket(t, s.DB, "cus_1", "Broken OAK chair", "open", now)
		dbtest.CreateTestTicket(t, s.DB, "cus_2", "Late delivery", "open", now)
		token := s.MintSessionToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/search",
			map[string]any{"query": "oak"}, token)

		var view ticketViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, int64(1), view.TotalCount)
		require.Equal(t, "Broken OAK chair", view.Records[0].Subject)
	})
}

func (s *TicketSuite) TestCreateAndResolve() {
	s.Run("Normal case: created ticket appears without a resolution time", func() {
		t := s.T()
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/modal/create", nil, token)
		form := builder.NewTicketBuilder().WithSubject("Wobbly table leg").BuildFormRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/submit", form, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view ticketViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Nil(t, view.Modal, "modal closes after a successful submit")
		require.Equal(t, int64(1), view.TotalCount)
		require.Equal(t, "Wobbly table leg", view.Records[0].Subject)
		require.Nil(t, view.Records[0].ResolvedAt)
	})

	s.Run("Normal case: moving a ticket to resolved stamps resolved_at", func() {
		t := s.T()
		id := dbtest.CreateTestTicket(t, s.DB, "cus_1", "Order never arrived", "open", time.Now().UTC())
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/modal/edit",
			map[string]any{"id": id}, token)
		form := builder.NewTicketBuilder().WithStatus("resolved").BuildFormRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/submit", form, token)
		require.Equal(t, http.StatusOK, w.Code)

		var resolvedAt *time.Time
		err := s.DB.QueryRow(context.Background(),
			"SELECT resolved_at FROM help_ticket WHERE ticket_id = $1", id).Scan(&resolvedAt)
		require.NoError(t, err)
		require.NotNil(t, resolvedAt, "resolution must be stamped in storage")
	})
}

func (s *TicketSuite) TestDeleteFlow() {
	s.Run("Normal case: cancel keeps the row, confirm removes it", func() {
		t := s.T()
		id := dbtest.CreateTestTicket(t, s.DB, "cus_1", "Order never arrived", "open", time.Now().UTC())
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL, nil, token)

		httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/delete/prompt",
			map[string]any{"id": id}, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/delete/cancel", nil, token)

		var view ticketViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Empty(t, view.PendingDeleteID)
		require.Equal(t, int64(1), view.TotalCount, "cancel must not delete anything")

		httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/delete/prompt",
			map[string]any{"id": id}, token)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/delete/confirm", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, int64(0), view.TotalCount)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM help_ticket WHERE ticket_id = $1", id).Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	s.Run("Error case: confirm without prompt conflicts", func() {
		t := s.T()
		token := s.MintSessionToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/delete/confirm", nil, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *TicketSuite) TestExpansionShowsRelatedRefunds() {
	s.Run("Normal case: expanding a ticket lists its refund requests", func() {
		t := s.T()
		now := time.Now().UTC()
		ticketID := dbtest.CreateTestTicket(t, s.DB, "cus_1", "Order never arrived", "open", now)
		paymentID := dbtest.CreateTestPayment(t, s.DB, "cus_1", 4999, "USD", "succeeded", now)
		dbtest.CreateTestRefund(t, s.DB, ticketID, paymentID, "SKU-OAK-CHAIR", nil, now)
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL, nil, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ticketsURL+"/expand",
			map[string]any{"id": ticketID}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view ticketViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.NotNil(t, view.Expansion)
		require.Equal(t, ticketID, view.Expansion.RecordID)
		require.Len(t, view.Expansion.Payload, 1)
		require.NotNil(t, view.Expansion.Payload[0].AmountCents, "the payment amount is soft-joined in")
		require.Equal(t, int64(4999), *view.Expansion.Payload[0].AmountCents)
	})
}

func (s *TicketSuite) TestRequiresSessionToken() {
	s.Run("Error case: missing token is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
