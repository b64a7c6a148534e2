package fx

import (
	"github.com/EduardoCSampaio/financas-app/config"
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

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newAccountService,
		newCategoryService,
		newTransactionService,
		newBudgetService,
		newDashboardService,
		newReportService,
		newAuthService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newAccountService(repo *infrastructure.AccountRepository) *account.Service {
	return account.NewService(repo)
}

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	accountSvc *account.Service,
	categorySvc *category.Service,
) *transaction.Service {
	return transaction.NewService(repo, accountSvc, categorySvc)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	categorySvc *category.Service,
) *budget.Service {
	return budget.NewService(repo, categorySvc)
}

func newDashboardService(
	repo *infrastructure.DashboardRepository,
	accountSvc *account.Service,
) *dashboard.Service {
	return dashboard.NewService(repo, accountSvc)
}

func newReportService(txSvc *transaction.Service) *report.Service {
	return report.NewService(txSvc)
}

func newAuthService(
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	cfg *config.Config,
) *auth.Service {
	return auth.NewService(userSvc, jwtSvc, nil, cfg.GoogleOAuth.ClientID)
}
