package components

import (
	"context"
	"time"

	"support-console/internal/pkg/clock"
	"support-console/internal/pkg/config"
	"support-console/internal/usecase/chat"
	"support-console/internal/usecase/commands"
	"support-console/internal/usecase/queries"
	"support-console/internal/usecase/session"

	"go.uber.org/fx"
)

const sessionSweepInterval = 5 * time.Minute

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseSessionModule,
	usecaseChatModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTicketCommands,
		commands.NewRefundCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		NewSessionRegistry,
	),
)

var usecaseChatModule = fx.Module("usecase/chat",
	fx.Provide(
		NewChatAssistant,
	),
)

func NewSessionRegistry(
	lc fx.Lifecycle,
	cfg config.Config,
	clk clock.Clock,
	ticketStore queries.TicketReadStore,
	refundStore queries.RefundReadStore,
	paymentStore queries.PaymentReadStore,
	ticketCmds commands.TicketCommands,
	refundCmds commands.RefundCommands,
	paymentCmds commands.PaymentCommands,
) *session.Registry {
	registry := session.NewRegistry(session.RegistryDeps{
		TicketStore:     ticketStore,
		RefundStore:     refundStore,
		PaymentStore:    paymentStore,
		TicketCommands:  ticketCmds,
		RefundCommands:  refundCmds,
		PaymentCommands: paymentCmds,
	}, clk, cfg.Session.IdleTTL)

	var stop func()
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stop = registry.StartSweeping(sessionSweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if stop != nil {
				stop()
			}
			return nil
		},
	})

	return registry
}

func NewChatAssistant(cfg config.Config, store queries.ChatContextReadStore, clk clock.Clock) *chat.Assistant {
	return chat.NewAssistant(cfg.Chat, store, clk)
}
