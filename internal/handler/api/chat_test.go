//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"support-console/internal/handler/api"
	resdto "support-console/internal/handler/dto/response"
	"support-console/internal/pkg/clock"
	"support-console/internal/pkg/config"
	"support-console/internal/usecase/chat"
	"support-console/internal/usecase/queries"
	"support-console/internal/usecase/session"
	"support-console/tests/common/httptest"
	commandsmock "support-console/tests/mock/commands"
	queriesmock "support-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockContext *queriesmock.MockChatContextReadStore
	llm         *nethttptest.Server
	session     *session.Session
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockContext = queriesmock.NewMockChatContextReadStore(s.mockCtrl)

	// fixed two-token completion for every request
	s.llm = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Three\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\" open tickets.\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))

	clientCfg := openai.DefaultConfig("test-key")
	clientCfg.BaseURL = s.llm.URL + "/v1"
	assistant := chat.NewAssistantWithClient(
		config.ChatConfig{Model: "gpt-4", MaxTokens: 512, Temperature: 0.5},
		openai.NewClientWithConfig(clientCfg),
		s.mockContext,
		clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
	)

	registry := session.NewRegistry(session.RegistryDeps{
		TicketStore:     queriesmock.NewMockTicketReadStore(s.mockCtrl),
		RefundStore:     queriesmock.NewMockRefundReadStore(s.mockCtrl),
		PaymentStore:    queriesmock.NewMockPaymentReadStore(s.mockCtrl),
		TicketCommands:  commandsmock.NewMockTicketCommands(s.mockCtrl),
		RefundCommands:  commandsmock.NewMockRefundCommands(s.mockCtrl),
		PaymentCommands: commandsmock.NewMockPaymentCommands(s.mockCtrl),
	}, clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)), time.Hour)
	s.session = registry.Create()

	handler := api.NewChatHandler(assistant)

	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			return
		}
		c.Set("session", s.session)
		c.Next()
	}

	group := s.router.Group("/chat", sessionMiddleware)
	group.POST("/messages", handler.Send)
	group.GET("/messages", handler.History)
	group.POST("/clear", handler.Clear)
}

func (s *ChatHandlerTestSuite) TearDownTest() {
	s.llm.Close()
	s.mockCtrl.Finish()
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) expectContext() {
	s.mockContext.EXPECT().TicketContext(gomock.Any()).
		Return(&queries.TicketContext{StatusCounts: map[string]int64{"open": 3}}, nil).AnyTimes()
	s.mockContext.EXPECT().RefundContext(gomock.Any()).
		Return(&queries.RefundContext{ApprovalCounts: map[string]int64{}}, nil).AnyTimes()
	s.mockContext.EXPECT().PaymentContext(gomock.Any()).
		Return(&queries.PaymentContext{}, nil).AnyTimes()
}

func (s *ChatHandlerTestSuite) TestSendStreamsTokens() {
	s.expectContext()

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/messages",
		map[string]any{"message": "how many open tickets?"}, "token")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	s.Contains(body, `data: {"token":"Three"}`)
	s.Contains(body, `data: {"token":" open tickets."}`)
	s.Contains(body, "data: [DONE]")
}

func (s *ChatHandlerTestSuite) TestSendScopeSticks() {
	s.expectContext()

	httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/messages",
		map[string]any{"message": "refund questions only", "scope": "refunds"}, "token")

	s.Equal("refunds", s.session.Chat.Scope())
}

func (s *ChatHandlerTestSuite) TestSendInvalidScope() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/messages",
		map[string]any{"message": "hi", "scope": "orders"}, "token")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ChatHandlerTestSuite) TestHistoryAfterSend() {
	s.expectContext()

	httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/messages",
		map[string]any{"message": "how many open tickets?"}, "token")
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/chat/messages", nil, "token")

	s.Equal(http.StatusOK, w.Code)
	var resp resdto.ChatHistoryResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	s.Require().Len(resp.Messages, 2)
	s.Equal("user", resp.Messages[0].Role)
	s.Equal("how many open tickets?", resp.Messages[0].Content)
	s.Equal("assistant", resp.Messages[1].Role)
	s.Equal("Three open tickets.", resp.Messages[1].Content)
}

func (s *ChatHandlerTestSuite) TestClear() {
	s.session.Chat.Append("user", "hi", time.Now())

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chat/clear", nil, "token")

	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(s.session.Chat.Messages())
}

func (s *ChatHandlerTestSuite) TestRequiresSession() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/chat/messages", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}
