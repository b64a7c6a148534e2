package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary Cria uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body contracts.CategoryCreateRequest true "Nome da categoria"
// @Success 201 {object} contracts.CategoryCreateResponse
// @Failure 409 {object} map[string]string
// @Router /users/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := category.Category{Name: body.Name, OwnerId: userID}

	ctx := c.Request.Context()
	if err := h.CategoryService.Create(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryCreateResponse{
		Message:  "Categoria criada com sucesso",
		Category: &entity,
	})
}

// ListCategories godoc
// @Summary Lista as categorias do usuário
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} contracts.CategoryListResponse
// @Router /users/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	categories, err := h.CategoryService.GetAllByUser(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// UpdateCategory godoc
// @Summary Renomeia uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Param body body contracts.CategoryUpdateRequest true "Novo nome"
// @Success 200 {object} contracts.MessageResponse
// @Router /users/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := category.Category{Id: categoryID, Name: body.Name}

	ctx := c.Request.Context()
	if err := h.CategoryService.Update(ctx, &entity, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria atualizada com sucesso"})
}

// DeleteCategory godoc
// @Summary Remove uma categoria
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 204 "sem conteúdo"
// @Router /users/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.CategoryService.Delete(ctx, categoryID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
