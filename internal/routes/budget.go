package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/budget"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
)

// UpsertBudget godoc
// @Summary Cria ou atualiza o orçamento de uma categoria no mês
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body contracts.BudgetUpsertRequest true "Categoria, mês e limite"
// @Success 200 {object} contracts.BudgetUpsertResponse
// @Router /users/budgets [post]
func (h *Handler) UpsertBudget(c *gin.Context) {
	var body contracts.BudgetUpsertRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	entity := budget.Budget{
		OwnerId:     userID,
		CategoryId:  categoryID,
		Month:       body.Month,
		LimitAmount: body.LimitAmount,
	}

	ctx := c.Request.Context()
	saved, err := h.BudgetService.Upsert(ctx, &entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetUpsertResponse{
		Message: "Orçamento salvo com sucesso",
		Budget:  saved,
	})
}

// ListBudgets godoc
// @Summary Lista os orçamentos do usuário
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} contracts.BudgetListResponse
// @Router /users/budgets [get]
func (h *Handler) ListBudgets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	budgets, err := h.BudgetService.GetAllByUser(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

// DeleteBudget godoc
// @Summary Remove um orçamento
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do orçamento"
// @Success 204 "sem conteúdo"
// @Router /users/budgets/{id} [delete]
func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.Delete(ctx, budgetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
