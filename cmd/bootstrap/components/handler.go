package components

import (
	"support-console/internal/handler"
	"support-console/internal/handler/api"
	"support-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewTicketHandler,
		api.NewRefundHandler,
		api.NewPaymentHandler,
		api.NewDashboardHandler,
		api.NewChatHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
