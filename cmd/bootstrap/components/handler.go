package components

import (
	"treesync/internal/handler"
	"treesync/internal/handler/api"
	"treesync/internal/pkg/config"
	"treesync/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSyncHandler,
		api.NewOrderHandler,
		NewWebhookAPIHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookAPIHandler(cfg config.Config, cmds commands.WebhookCommands) *api.WebhookHandler {
	return api.NewWebhookHandler(cmds, cfg.Secrets.WebhookSecret)
}
