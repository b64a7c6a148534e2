package fx

import (
	"github.com/EduardoCSampaio/financas-app/config"
	"github.com/EduardoCSampaio/financas-app/internal/logger"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		initLogger,
	),
)

func initLogger(cfg *config.Config) {
	logger.Init(cfg.App.Environment)
}
