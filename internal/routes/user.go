package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/gin-gonic/gin"
)

// Registration godoc
// @Summary Cadastra um novo usuário
// @Tags users
// @Accept json
// @Produce json
// @Param body body contracts.UserCreateRequest true "Dados do usuário"
// @Success 201 {object} contracts.UserCreateResponse
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *Handler) Registration(c *gin.Context) {
	var body contracts.UserCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	entity := user.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	h.CategoryService.SeedDefaults(ctx, entity.Id)

	c.JSON(http.StatusCreated, contracts.UserCreateResponse{
		Message: "Usuário cadastrado com sucesso",
		User:    &entity,
	})
}

// GetMe godoc
// @Summary Retorna o usuário autenticado
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} contracts.UserSingleResponse
// @Router /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.UserService.GetByID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserSingleResponse{User: entity})
}

// UpdateUserName godoc
// @Summary Atualiza o nome do usuário autenticado
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body contracts.UserUpdateNameRequest true "Novo nome"
// @Success 200 {object} contracts.MessageResponse
// @Router /users/me [patch]
func (h *Handler) UpdateUserName(c *gin.Context) {
	var body contracts.UserUpdateNameRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.UpdateName(ctx, userID, body.Name); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Nome atualizado com sucesso"})
}

// UpdateUserPassword godoc
// @Summary Troca a senha do usuário autenticado
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body contracts.UserUpdatePasswordRequest true "Senha atual e nova"
// @Success 200 {object} contracts.MessageResponse
// @Failure 401 {object} map[string]string
// @Router /users/me/password [patch]
func (h *Handler) UpdateUserPassword(c *gin.Context) {
	var body contracts.UserUpdatePasswordRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.UpdatePassword(ctx, userID, body.CurrentPassword, body.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Senha alterada com sucesso"})
}

// DeleteUser godoc
// @Summary Remove a conta do usuário autenticado
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} contracts.MessageResponse
// @Router /users/me [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.Delete(ctx, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Usuário removido com sucesso"})
}
