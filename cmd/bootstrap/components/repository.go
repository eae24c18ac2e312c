package components

import (
	"treesync/internal/infra/credentials"
	"treesync/internal/infra/pms"
	"treesync/internal/infra/pms/factory"
	repo_impl "treesync/internal/infra/repository"
	"treesync/internal/pkg/config"
	"treesync/internal/pkg/cryptobox"
	"treesync/internal/usecase/commands"
	"treesync/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCryptoBox,
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(commands.AccountStore)),
			fx.As(new(queries.AccountReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderLineRepository,
			fx.As(new(commands.OrderLineStore)),
			fx.As(new(queries.OrderLineReadStore)),
			fx.As(new(pms.LineStore)),
		),
		fx.Annotate(
			repo_impl.NewWebhookEventRepository,
			fx.As(new(commands.WebhookEventStore)),
		),
		fx.Annotate(
			repo_impl.NewCredentialsRepository,
			fx.As(new(credentials.EncryptedReader)),
		),
		fx.Annotate(
			credentials.NewStore,
			fx.As(new(commands.CredentialSource)),
		),
		fx.Annotate(
			factory.New,
			fx.As(new(commands.ConnectorFactory)),
		),
	),
)

func NewCryptoBox(cfg config.Config) (*cryptobox.Box, error) {
	return cryptobox.New(cfg.Secrets.EncryptionKey)
}
