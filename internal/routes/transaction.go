package routes

import (
	"net/http"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// GetTransactions godoc
// @Summary Lista transações de uma conta, com filtros e paginação
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param account_id query string true "ID da conta"
// @Param search query string false "Busca na descrição"
// @Param category query string false "ID da categoria"
// @Param type query string false "income ou expense"
// @Param status query string false "paid ou pending"
// @Param start_date query string false "Data inicial (AAAA-MM-DD)"
// @Param end_date query string false "Data final (AAAA-MM-DD)"
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} pkg.PaginatedResponse[transaction.Transaction]
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	items, total, err := h.TransactionService.List(ctx, *filter, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(items, pagination.Page, pagination.Limit, total))
}

// GetTransaction godoc
// @Summary Busca uma transação pelo id
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da transação"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	entity, err := h.TransactionService.GetByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

// CreateTransaction godoc
// @Summary Cria uma transação, com comprovante opcional
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param description formData string true "Descrição"
// @Param value formData number true "Valor"
// @Param type formData string true "income ou expense"
// @Param account_id formData string true "ID da conta"
// @Param category_id formData string false "ID da categoria"
// @Param date formData string false "Data (AAAA-MM-DD)"
// @Param paid formData bool false "Pago"
// @Param proof formData file false "Comprovante"
// @Success 201 {object} contracts.TransactionCreateResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	entity, err := h.bindTransactionForm(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.Create(ctx, entity, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação criada com sucesso",
		Transaction: entity,
	})
}

// UpdateTransaction godoc
// @Summary Atualiza uma transação
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da transação"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id} [put]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	entity, err := h.bindTransactionForm(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	entity.Id = transactionID

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.Update(ctx, entity, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

// UpdatePaid godoc
// @Summary Define o estado de pagamento de uma transação
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da transação"
// @Param body body contracts.TransactionPaidRequest true "Estado desejado"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id}/paid [patch]
func (h *Handler) UpdatePaid(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.TransactionPaidRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.NewValidationError("paid", "deve ser informado"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.SetPaid(ctx, transactionID, userID, *body.Paid)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

// DeleteTransaction godoc
// @Summary Remove uma transação
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da transação"
// @Success 204 "sem conteúdo"
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.TransactionService.Delete(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) bindTransactionForm(c *gin.Context) (*transaction.Transaction, error) {
	var body contracts.TransactionFormRequest
	if err := c.ShouldBind(&body); err != nil {
		return nil, appErrors.ErrBadRequest.WithError(err)
	}

	accountID, err := pkg.ParseULID(body.AccountID)
	if err != nil {
		return nil, appErrors.NewValidationError("account_id", "formato inválido")
	}

	categoryID, err := pkg.MustParseULIDPtr(&body.CategoryID)
	if err != nil {
		return nil, appErrors.NewValidationError("category_id", "formato inválido")
	}

	entity := &transaction.Transaction{
		AccountId:   accountID,
		CategoryId:  categoryID,
		Type:        transaction.Types(body.Type),
		Value:       body.Value,
		Description: body.Description,
		Paid:        body.Paid,
	}

	if body.Date != "" {
		date, err := time.Parse(dateLayout, body.Date)
		if err != nil {
			return nil, appErrors.NewValidationError("date", "data deve estar no formato AAAA-MM-DD")
		}
		entity.Date = date
	}

	if file, err := c.FormFile("proof"); err == nil && file != nil {
		url, err := h.Storage.Save(file)
		if err != nil {
			return nil, err
		}
		entity.ProofURL = url
	}

	return entity, nil
}

func (h *Handler) parseTransactionFilter(c *gin.Context) (*transaction.Filter, error) {
	accountID, err := pkg.MustParseULIDOrEmpty(c.Query("account_id"))
	if err != nil {
		return nil, appErrors.NewValidationError("account_id", "formato inválido")
	}

	categoryStr := c.Query("category")
	categoryID, err := pkg.MustParseULIDPtr(&categoryStr)
	if err != nil {
		return nil, appErrors.NewValidationError("category", "formato inválido")
	}

	filter := &transaction.Filter{
		AccountId:  accountID,
		Search:     c.Query("search"),
		CategoryId: categoryID,
		Type:       transaction.Types(c.Query("type")),
		Status:     transaction.PaidStatus(c.Query("status")),
	}

	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, appErrors.NewValidationError("type", "tipo deve ser income ou expense")
	}
	if filter.Status != transaction.StatusAny &&
		filter.Status != transaction.StatusPaid &&
		filter.Status != transaction.StatusPending {
		return nil, appErrors.NewValidationError("status", "status deve ser paid ou pending")
	}

	if raw := c.Query("start_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, appErrors.NewValidationError("start_date", "data deve estar no formato AAAA-MM-DD")
		}
		filter.StartDate = &date
	}
	if raw := c.Query("end_date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, appErrors.NewValidationError("end_date", "data deve estar no formato AAAA-MM-DD")
		}
		filter.EndDate = &date
	}

	return filter, nil
}
