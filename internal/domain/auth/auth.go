package auth

import "context"

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetTokens emite e valida tokens de recuperação de senha. A
// implementação JWT vive no pacote middleware.
type ResetTokens interface {
	GenerateResetToken(email string) (string, error)
	ValidateResetToken(token string) (string, error)
}

// PasswordSender entrega o token de reset ao usuário. Em desenvolvimento
// o envio é apenas logado.
type PasswordSender interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}
