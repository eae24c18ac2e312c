package components

import (
	"log/slog"

	"treesync/internal/pkg/clock"
	"treesync/internal/pkg/config"
	"treesync/internal/usecase/commands"
	"treesync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSyncLease,
		NewSyncCommands,
		NewWebhookCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

func NewSyncLease() commands.SyncLease {
	return commands.NoopSyncLease{}
}

func NewSyncCommands(
	cfg config.Config,
	accounts commands.AccountStore,
	lines commands.OrderLineStore,
	creds commands.CredentialSource,
	connectors commands.ConnectorFactory,
	lease commands.SyncLease,
	clk clock.Clock,
	logger *slog.Logger,
) commands.SyncCommands {
	return commands.NewSyncUseCase(cfg.Sync, accounts, lines, creds, connectors, lease, clk, logger)
}

func NewWebhookCommands(
	cfg config.Config,
	accounts commands.AccountStore,
	events commands.WebhookEventStore,
	creds commands.CredentialSource,
	connectors commands.ConnectorFactory,
	clk clock.Clock,
	logger *slog.Logger,
) commands.WebhookCommands {
	return commands.NewWebhookUseCase(cfg.Webhook, accounts, events, creds, connectors, clk, logger)
}
