package components

import (
	"support-console/internal/infra/readstore"
	"support-console/internal/infra/repository"
	"support-console/internal/usecase/commands"
	"support-console/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		fx.Annotate(
			readstore.NewRefundReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewDashboardReadStore,
			fx.As(new(queries.DashboardReadStore)),
		),
		fx.Annotate(
			readstore.NewChatContextReadStore,
			fx.As(new(queries.ChatContextReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewTicketRepository,
			fx.As(new(commands.TicketRepository)),
		),
		fx.Annotate(
			repository.NewRefundRepository,
			fx.As(new(commands.RefundRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) readstore.DBTX {
	return pool
}
