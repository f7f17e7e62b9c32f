package bootstrap

import (
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/jwt"

	"go.uber.org/fx"
)

// ConfigModule loads the environment once and hands narrower slices to
// consumers that should not see the whole Config.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		hotelConfig,
	),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(newJWTService),
)

func hotelConfig(cfg config.Config) config.HotelConfig { return cfg.Hotel }

func newJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
}
