package routes

import (
	"strconv"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	"github.com/EduardoCSampaio/financas-app/internal/domain/auth"
	"github.com/EduardoCSampaio/financas-app/internal/domain/budget"
	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	"github.com/EduardoCSampaio/financas-app/internal/domain/dashboard"
	"github.com/EduardoCSampaio/financas-app/internal/domain/report"
	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/infrastructure"
	"github.com/EduardoCSampaio/financas-app/internal/logger"
	"github.com/EduardoCSampaio/financas-app/internal/middleware"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService        *user.Service
	AuthService        *auth.Service
	JwtService         *middleware.JwtService
	AccountService     *account.Service
	CategoryService    *category.Service
	TransactionService *transaction.Service
	BudgetService      *budget.Service
	DashboardService   *dashboard.Service
	ReportService      *report.Service
	Storage            infrastructure.FileStorage
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	pagination := &pkg.PaginationParams{Page: 1, Limit: 10}

	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		pagination.Page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		pagination.Limit = l
	}

	pagination.Normalize()
	return pagination
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
