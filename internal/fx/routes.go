package fx

import (
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	"github.com/EduardoCSampaio/financas-app/internal/domain/auth"
	"github.com/EduardoCSampaio/financas-app/internal/domain/budget"
	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	"github.com/EduardoCSampaio/financas-app/internal/domain/dashboard"
	"github.com/EduardoCSampaio/financas-app/internal/domain/report"
	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	"github.com/EduardoCSampaio/financas-app/internal/infrastructure"
	"github.com/EduardoCSampaio/financas-app/internal/middleware"
	"github.com/EduardoCSampaio/financas-app/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e o rate limiter das rotas públicas
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	accountSvc *account.Service,
	categorySvc *category.Service,
	transactionSvc *transaction.Service,
	budgetSvc *budget.Service,
	dashboardSvc *dashboard.Service,
	reportSvc *report.Service,
	storage *infrastructure.LocalStorage,
) *routes.Handler {
	return &routes.Handler{
		UserService:        userSvc,
		AuthService:        authSvc,
		JwtService:         jwtSvc,
		AccountService:     accountSvc,
		CategoryService:    categorySvc,
		TransactionService: transactionSvc,
		BudgetService:      budgetSvc,
		DashboardService:   dashboardSvc,
		ReportService:      reportSvc,
		Storage:            storage,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
