//go:build e2e

package refunds_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/usecase/queries"
	"support-console/internal/usecase/session"
	"support-console/tests/common/builder"
	"support-console/tests/common/dbtest"
	"support-console/tests/common/httptest"
	"support-console/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const refundsURL = "/api/refunds/view"

type refundViewResponse = resdto.ViewResponse[queries.RefundView, session.RefundExpansion]

type RefundSuite struct {
	e2e.SharedSuite
}

func (s *RefundSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRefundSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RefundSuite))
}

func (s *RefundSuite) queryApprovalState(t *testing.T, id string) (*bool, *time.Time) {
	var approved *bool
	var approvalDate *time.Time
	err := s.DB.QueryRow(context.Background(),
		"SELECT approved, approval_date FROM refund_requests WHERE refund_id = $1", id).
		Scan(&approved, &approvalDate)
	require.NoError(t, err)
	return approved, approvalDate
}

func (s *RefundSuite) TestApprovalLifecycle() {
	s.Run("Normal case: a new request is pending with no approval date", func() {
		t := s.T()
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/modal/create", nil, token)
		form := builder.NewRefundBuilder().BuildFormRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/submit", form, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view refundViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.Equal(t, int64(1), view.TotalCount)
		require.Nil(t, view.Records[0].Approved)
		require.Nil(t, view.Records[0].ApprovalDate)
	})

	s.Run("Normal case: deciding a request stamps the approval date", func() {
		t := s.T()
		now := time.Now().UTC()
		id := dbtest.CreateTestRefund(t, s.DB, "tic_1", "pay_1", "SKU-OAK-CHAIR", nil, now)
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, refundsURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/modal/edit",
			map[string]any{"id": id}, token)
		form := builder.NewRefundBuilder().WithApproval("true").BuildFormRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/submit", form, token)
		require.Equal(t, http.StatusOK, w.Code)

		approved, approvalDate := s.queryApprovalState(t, id)
		require.NotNil(t, approved)
		require.True(t, *approved)
		require.NotNil(t, approvalDate)
	})

	s.Run("Normal case: moving a decision back to pending clears the date", func() {
		t := s.T()
		now := time.Now().UTC()
		denied := false
		id := dbtest.CreateTestRefund(t, s.DB, "tic_1", "pay_1", "SKU-OAK-CHAIR", &denied, now)
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, refundsURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/modal/edit",
			map[string]any{"id": id}, token)
		form := builder.NewRefundBuilder().WithApproval("pending").BuildFormRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/submit", form, token)
		require.Equal(t, http.StatusOK, w.Code)

		approved, approvalDate := s.queryApprovalState(t, id)
		require.Nil(t, approved)
		require.Nil(t, approvalDate, "a request back in pending has no decision date")
	})
}

func (s *RefundSuite) TestApprovalFilter() {
	s.Run("Normal case: filter separates pending, approved and denied", func() {
		t := s.T()
		now := time.Now().UTC()
		yes, no := true, false
		dbtest.CreateTestRefund(t, s.DB, "tic_1", "pay_1", "SKU-A", nil, now)
		dbtest.CreateTestRefund(t, s.DB, "tic_2", "pay_2", "SKU-B", &yes, now)
		dbtest.CreateTestRefund(t, s.DB, "tic_3", "pay_3", "SKU-C", &no, now)
		token := s.MintSessionToken(t)

		for filter, want := range map[string]int64{"pending": 1, "true": 1, "false": 1, "all": 3} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/filter",
				map[string]any{"filter": filter}, token)
			require.Equal(t, http.StatusOK, w.Code)

			var view refundViewResponse
			httptest.DecodeResponseBody(t, w.Body, &view)
			require.Equal(t, want, view.TotalCount, "filter %q", filter)
		}
	})
}

func (s *RefundSuite) TestExpansionJoinsTicketAndPayment() {
	s.Run("Normal case: both sides resolve", func() {
		t := s.T()
		now := time.Now().UTC()
		ticketID := dbtest.CreateTestTicket(t, s.DB, "cus_1", "Order never arrived", "open", now)
		paymentID := dbtest.CreateTestPayment(t, s.DB, "cus_1", 4999, "USD", "succeeded", now)
		refundID := dbtest.CreateTestRefund(t, s.DB, ticketID, paymentID, "SKU-OAK-CHAIR", nil, now)
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, refundsURL, nil, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/expand",
			map[string]any{"id": refundID}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view refundViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.NotNil(t, view.Expansion)
		require.True(t, view.Expansion.Payload.Ticket.Found)
		require.Equal(t, "Order never arrived", view.Expansion.Payload.Ticket.Subject)
		require.True(t, view.Expansion.Payload.Payment.Found)
		require.Equal(t, int64(4999), view.Expansion.Payload.Payment.AmountCents)
	})

	s.Run("Normal case: dangling references surface as not found", func() {
		t := s.T()
		now := time.Now().UTC()
		refundID := dbtest.CreateTestRefund(t, s.DB, "tic_gone", "pay_gone", "SKU-OAK-CHAIR", nil, now)
		token := s.MintSessionToken(t)

		httptest.PerformRequest(t, s.Router, http.MethodGet, refundsURL, nil, token)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refundsURL+"/expand",
			map[string]any{"id": refundID}, token)
		require.Equal(t, http.StatusOK, w.Code, "a dangling reference is data, not an error")

		var view refundViewResponse
		httptest.DecodeResponseBody(t, w.Body, &view)
		require.NotNil(t, view.Expansion)
		require.False(t, view.Expansion.Payload.Ticket.Found)
		require.False(t, view.Expansion.Payload.Payment.Found)
	})
}
