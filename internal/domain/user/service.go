package user

import (
	"context"
	"errors"
	"regexp"
	"time"

	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, u *User) error {
	if err := validatePasswordRequirements(u.Password); err != nil {
		return err
	}

	existing, err := s.Repository.GetByEmail(ctx, u.Email)
	if err != nil && !errors.Is(err, appErrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return appErrors.ErrEmailAlreadyExists
	}

	u.Id = pkg.GenerateULIDObject()

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	u.Password = string(hashed)

	return s.Repository.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, email)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) UpdateName(ctx context.Context, userID ulid.ULID, name string) error {
	if name == "" {
		return appErrors.NewValidationError("name", "nome não pode estar vazio")
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	u.Name = name
	u.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, u)
}

func (s *Service) UpdatePassword(ctx context.Context, userID ulid.ULID, currentPassword, newPassword string) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}

	return s.resetPassword(ctx, u, newPassword)
}

// ResetPassword troca a senha sem exigir a senha atual. Usado apenas
// pelo fluxo de recuperação, após validar o token de reset.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) error {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.resetPassword(ctx, u, newPassword)
}

func (s *Service) resetPassword(ctx context.Context, u *User, newPassword string) error {
	if err := validatePasswordRequirements(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}

	u.Password = string(hashed)
	u.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, u)
}

func (s *Service) CheckPassword(u *User, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

var hasDigit = regexp.MustCompile(`[0-9]`)

func validatePasswordRequirements(password string) error {
	if len(password) < 6 {
		return appErrors.NewValidationError("password", "senha deve ter no mínimo 6 caracteres")
	}
	if !hasDigit.MatchString(password) {
		return appErrors.NewValidationError("password", "senha deve conter ao menos um número")
	}
	return nil
}
