package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/dashboard"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// GetDashboard godoc
// @Summary Resumo financeiro do usuário
// @Description Saldo, receitas, despesas, gastos por categoria e
// @Description tendência mensal. view=real considera só transações
// @Description pagas; view=projected considera todas.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param account_id query string false "Restringe a uma conta"
// @Param view query string false "real ou projected" default(projected)
// @Param month query int false "Mês do período (1-12, exige year)"
// @Param year query int false "Ano do período (exige month)"
// @Success 200 {object} dashboard.Summary
// @Router /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var accountID *ulid.ULID
	if raw := c.Query("account_id"); raw != "" {
		parsed, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
			return
		}
		accountID = &parsed
	}

	view := dashboard.View(c.DefaultQuery("view", string(dashboard.ViewProjected)))

	period, err := parsePeriod(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	summary, err := h.DashboardService.GetSummary(ctx, userID, accountID, view, period)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// parsePeriod lê os parâmetros opcionais month e year. Um sem o outro é
// erro de validação.
func parsePeriod(c *gin.Context) (*dashboard.Period, error) {
	rawMonth := c.Query("month")
	rawYear := c.Query("year")
	if rawMonth == "" && rawYear == "" {
		return nil, nil
	}
	if rawMonth == "" || rawYear == "" {
		return nil, appErrors.NewValidationError("month", "month e year devem ser informados juntos")
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return nil, appErrors.NewValidationError("month", "mês deve estar entre 1 e 12")
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		return nil, appErrors.NewValidationError("year", "ano inválido")
	}

	return &dashboard.Period{Year: year, Month: time.Month(month)}, nil
}
