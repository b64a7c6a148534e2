package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida o bearer token e injeta user_id e user_email no
// contexto da requisição.
func AuthMiddleware(jwtService *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Token não fornecido")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Formato do header Authorization inválido")
			return
		}

		email, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token inválido ou expirado")
			return
		}

		entity, err := jwtService.UserService.GetByEmail(c.Request.Context(), email)
		if err != nil {
			abortUnauthorized(c, "Usuário do token não existe")
			return
		}

		c.Set("user_id", entity.Id.String())
		c.Set("user_email", entity.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
