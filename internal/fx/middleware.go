package fx

import (
	"github.com/EduardoCSampaio/financas-app/config"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	"github.com/EduardoCSampaio/financas-app/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) *middleware.JwtService {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
