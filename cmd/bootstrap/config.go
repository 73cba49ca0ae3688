package bootstrap

import (
	"coshare-scheduler/internal/pkg/config"
	"coshare-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewEngineSettings,
	),
)

func NewEngineSettings(cfg config.Config) (*commands.EngineSettings, error) {
	return commands.NewEngineSettings(cfg.Engine)
}
