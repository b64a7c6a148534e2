package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EduardoCSampaio/financas-app/internal/domain/auth"
	"github.com/EduardoCSampaio/financas-app/internal/domain/user"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	updateFn     func(ctx context.Context, u *user.User) error
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}
func (f *fakeUserRepository) Delete(ctx context.Context, _ ulid.ULID) error { return nil }
func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

type fakeResetTokens struct {
	generateFn func(email string) (string, error)
	validateFn func(token string) (string, error)
}

func (f *fakeResetTokens) GenerateResetToken(email string) (string, error) {
	if f.generateFn != nil {
		return f.generateFn(email)
	}
	return "token-reset", nil
}

func (f *fakeResetTokens) ValidateResetToken(token string) (string, error) {
	if f.validateFn != nil {
		return f.validateFn(token)
	}
	return "", errors.New("token inválido")
}

type fakeSender struct {
	sentEmail string
	sentToken string
	err       error
}

func (f *fakeSender) SendPasswordReset(_ context.Context, email, token string) error {
	f.sentEmail = email
	f.sentToken = token
	return f.err
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hashed)
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		svc := auth.NewService(user.NewService(&fakeUserRepository{}), &fakeResetTokens{}, nil, "")

		_, err := svc.Login(ctx, auth.Login{Email: "ninguem@email.com", Password: "senha123"})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected INVALID_CREDENTIALS, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Email: email, Password: hashOf(t, "senha123")}, nil
			},
		}
		svc := auth.NewService(user.NewService(repo), &fakeResetTokens{}, nil, "")

		_, err := svc.Login(ctx, auth.Login{Email: "maria@email.com", Password: "errada"})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected INVALID_CREDENTIALS, got %v", err)
		}
	})

	t.Run("success returns the user", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Name: "Maria", Email: email, Password: hashOf(t, "senha123")}, nil
			},
		}
		svc := auth.NewService(user.NewService(repo), &fakeResetTokens{}, nil, "")

		entity, err := svc.Login(ctx, auth.Login{Email: "maria@email.com", Password: "senha123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Name != "Maria" {
			t.Fatalf("unexpected user: %+v", entity)
		}
	})
}

func TestServiceForgotPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown email still succeeds", func(t *testing.T) {
		svc := auth.NewService(user.NewService(&fakeUserRepository{}), &fakeResetTokens{}, nil, "")

		if err := svc.ForgotPassword(ctx, "ninguem@email.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sends token to known email", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Email: email}, nil
			},
		}
		sender := &fakeSender{}
		svc := auth.NewService(user.NewService(repo), &fakeResetTokens{}, sender, "")

		if err := svc.ForgotPassword(ctx, "maria@email.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sender.sentEmail != "maria@email.com" || sender.sentToken != "token-reset" {
			t.Fatalf("token not delivered: %+v", sender)
		}
	})
}

func TestServiceResetPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		svc := auth.NewService(user.NewService(&fakeUserRepository{}), &fakeResetTokens{}, nil, "")

		err := svc.ResetPassword(ctx, "qualquer", "nova123")
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrInvalidToken.Code {
			t.Fatalf("expected INVALID_TOKEN, got %v", err)
		}
	})

	t.Run("valid token updates the password", func(t *testing.T) {
		var updated *user.User
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Email: email, Password: "hash-antigo"}, nil
			},
			updateFn: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}
		tokens := &fakeResetTokens{
			validateFn: func(token string) (string, error) {
				if token != "token-valido" {
					return "", errors.New("token inválido")
				}
				return "maria@email.com", nil
			},
		}
		svc := auth.NewService(user.NewService(repo), tokens, nil, "")

		if err := svc.ResetPassword(ctx, "token-valido", "nova123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil {
			t.Fatalf("expected password update")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("nova123")); err != nil {
			t.Fatalf("new password not stored: %v", err)
		}
	})
}

func TestServiceGoogleLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("disabled without client id", func(t *testing.T) {
		svc := auth.NewService(user.NewService(&fakeUserRepository{}), &fakeResetTokens{}, nil, "")

		_, err := svc.GoogleLogin(ctx, "credential")
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "OAUTH_NOT_CONFIGURED" {
			t.Fatalf("expected OAUTH_NOT_CONFIGURED, got %v", err)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		svc := auth.NewService(user.NewService(&fakeUserRepository{}), &fakeResetTokens{}, nil, "client-id")

		_, err := svc.GoogleLogin(ctx, "")
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "CREDENTIAL_MISSING" {
			t.Fatalf("expected CREDENTIAL_MISSING, got %v", err)
		}
	})
}
