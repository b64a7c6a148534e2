package routes

import (
	"net/http"

	"github.com/EduardoCSampaio/financas-app/internal/contracts"
	"github.com/EduardoCSampaio/financas-app/internal/domain/auth"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/gin-gonic/gin"
)

// Authenticate godoc
// @Summary Login com email e senha
// @Tags auth
// @Accept json
// @Produce json
// @Param body body contracts.LoginRequest true "Credenciais"
// @Success 200 {object} contracts.TokenResponse
// @Failure 401 {object} map[string]string
// @Router /auth/token [post]
func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest

	// aceita tanto JSON quanto form (OAuth2 password flow)
	if err := c.ShouldBind(&body); err != nil {
		body.Email = c.PostForm("username")
		body.Password = c.PostForm("password")
		if body.Email == "" || body.Password == "" {
			h.respondError(c, appErrors.ErrBadRequest.WithError(err))
			return
		}
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.Login(ctx, auth.Login{Email: body.Email, Password: body.Password})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.JwtService.Expiration().Seconds()),
		User:        entity,
	})
}

// GoogleAuth godoc
// @Summary Login com credencial do Google
// @Tags auth
// @Accept json
// @Produce json
// @Param body body contracts.GoogleLoginRequest true "ID token do Google"
// @Success 200 {object} contracts.TokenResponse
// @Router /auth/google [post]
func (h *Handler) GoogleAuth(c *gin.Context) {
	var body contracts.GoogleLoginRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(entity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.JwtService.Expiration().Seconds()),
		User:        entity,
	})
}

// ForgotPassword godoc
// @Summary Solicita token de recuperação de senha
// @Tags auth
// @Accept json
// @Produce json
// @Param body body contracts.ForgotPasswordRequest true "Email cadastrado"
// @Success 200 {object} contracts.MessageResponse
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var body contracts.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.AuthService.ForgotPassword(ctx, body.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{
		Message: "Se o email estiver cadastrado, as instruções de recuperação serão enviadas",
	})
}

// ResetPassword godoc
// @Summary Redefine a senha com um token de recuperação
// @Tags auth
// @Accept json
// @Produce json
// @Param body body contracts.ResetPasswordRequest true "Token e nova senha"
// @Success 200 {object} contracts.MessageResponse
// @Failure 401 {object} map[string]string
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var body contracts.ResetPasswordRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.AuthService.ResetPassword(ctx, body.Token, body.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Senha redefinida com sucesso"})
}
