package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

type Service struct {
	UserService    *user.Service
	ResetTokens    ResetTokens
	Sender         PasswordSender
	GoogleClientID string
}

func NewService(
	userSvc *user.Service,
	resetTokens ResetTokens,
	sender PasswordSender,
	googleClientID string,
) *Service {
	return &Service{
		UserService:    userSvc,
		ResetTokens:    resetTokens,
		Sender:         sender,
		GoogleClientID: googleClientID,
	}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.UserService.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Register(ctx context.Context, u *user.User) error {
	return s.UserService.Create(ctx, u)
}

// ForgotPassword sempre responde com sucesso, mesmo para emails
// desconhecidos, para não revelar quais contas existem.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	entity, err := s.UserService.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			logger.Warn().Str("email", email).Msg("pedido de reset para email não cadastrado")
			return nil
		}
		return err
	}

	token, err := s.ResetTokens.GenerateResetToken(entity.Email)
	if err != nil {
		return err
	}

	if s.Sender == nil {
		logger.Info().Str("email", entity.Email).Msg("token de reset gerado (sem sender configurado)")
		return nil
	}

	return s.Sender.SendPasswordReset(ctx, entity.Email, token)
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.ResetTokens.ValidateResetToken(token)
	if err != nil {
		return appErrors.ErrInvalidToken.WithError(err)
	}
	return s.UserService.ResetPassword(ctx, email, newPassword)
}

func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.GoogleClientID == "" {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Login com Google não está configurado")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	payload, err := idtoken.Validate(ctx, credential, s.GoogleClientID)
	if err != nil {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token do Google inválido").WithError(err)
	}

	email, ok := payload.Claims["email"].(string)
	if !ok || email == "" {
		return nil, appErrors.NewAuthError("EMAIL_MISSING", "Email não encontrado no token")
	}

	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = "Usuário Google"
	}

	entity, err := s.UserService.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			password, err := generateSecurePassword()
			if err != nil {
				return nil, err
			}

			newUser := user.User{
				Name:     name,
				Email:    email,
				Password: password,
			}
			if err := s.UserService.Create(ctx, &newUser); err != nil {
				return nil, err
			}
			return &newUser, nil
		}
		return nil, err
	}

	return entity, nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "deve ser informado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func generateSecurePassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	// sufixo garante os requisitos mínimos de senha
	return base64.RawURLEncoding.EncodeToString(buf) + "9", nil
}
