package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
)

// CreateAccount godoc
// @Summary Cria uma conta financeira
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body contracts.AccountCreateRequest true "Dados da conta"
// @Success 201 {object} contracts.AccountCreateResponse
// @Router /accounts [post]
func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := account.Account{
		Name:           body.Name,
		Type:           body.Type,
		InitialBalance: body.InitialBalance,
		OwnerId:        userID,
	}

	ctx := c.Request.Context()
	if err := h.AccountService.Create(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Conta criada com sucesso",
		Account: &entity,
	})
}

// ListAccounts godoc
// @Summary Lista as contas do usuário
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} contracts.AccountListResponse
// @Router /accounts [get]
func (h *Handler) ListAccounts(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	accounts, err := h.AccountService.GetAllByUser(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// GetAccount godoc
// @Summary Busca uma conta pelo id
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da conta"
// @Success 200 {object} contracts.AccountSingleResponse
// @Failure 403 {object} map[string]string
// @Router /accounts/{id} [get]
func (h *Handler) GetAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	entity, err := h.AccountService.GetByID(ctx, accountID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountSingleResponse{Account: entity})
}

// UpdateAccount godoc
// @Summary Atualiza uma conta
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da conta"
// @Param body body contracts.AccountUpdateRequest true "Dados da conta"
// @Success 200 {object} contracts.AccountSingleResponse
// @Router /accounts/{id} [put]
func (h *Handler) UpdateAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := account.Account{
		Id:             accountID,
		Name:           body.Name,
		Type:           body.Type,
		InitialBalance: body.InitialBalance,
	}

	ctx := c.Request.Context()
	if err := h.AccountService.Update(ctx, &entity, userID); err != nil {
		h.respondError(c, err)
		return
	}

	updated, err := h.AccountService.GetByID(ctx, accountID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountSingleResponse{Account: updated})
}

// DeleteAccount godoc
// @Summary Remove uma conta e suas transações
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da conta"
// @Success 204 "sem conteúdo"
// @Router /accounts/{id} [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.AccountService.Delete(ctx, accountID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
