package transaction

import (
	"context"
	"math"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository      Repository
	AccountService  *account.Service
	CategoryService *category.Service
}

func NewService(
	repo Repository,
	accountSvc *account.Service,
	categorySvc *category.Service,
) *Service {
	return &Service{
		Repository:      repo,
		AccountService:  accountSvc,
		CategoryService: categorySvc,
	}
}

func (s *Service) Create(ctx context.Context, t *Transaction, userID ulid.ULID) error {
	if !t.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo deve ser income ou expense")
	}

	if _, err := s.AccountService.GetByID(ctx, t.AccountId, userID); err != nil {
		return err
	}

	if err := s.validateCategory(ctx, t.CategoryId, userID); err != nil {
		return err
	}

	t.Id = pkg.GenerateULIDObject()
	// valores sempre armazenados como magnitude; o tipo dá o sinal
	t.Value = math.Abs(t.Value)
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	return s.Repository.Create(ctx, t)
}

func (s *Service) Update(ctx context.Context, t *Transaction, userID ulid.ULID) error {
	stored, err := s.GetByID(ctx, t.Id, userID)
	if err != nil {
		return err
	}

	if !t.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo deve ser income ou expense")
	}

	// o destino da transação também precisa pertencer ao usuário
	if _, err := s.AccountService.GetByID(ctx, t.AccountId, userID); err != nil {
		return err
	}

	if err := s.validateCategory(ctx, t.CategoryId, userID); err != nil {
		return err
	}

	stored.AccountId = t.AccountId
	stored.Type = t.Type
	stored.CategoryId = t.CategoryId
	stored.Value = math.Abs(t.Value)
	stored.Description = t.Description
	stored.Paid = t.Paid
	if !t.Date.IsZero() {
		stored.Date = t.Date
	}
	if t.ProofURL != "" {
		stored.ProofURL = t.ProofURL
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return err
	}

	*t = *stored
	return nil
}

func (s *Service) Delete(ctx context.Context, id, userID ulid.ULID) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id, userID ulid.ULID) (*Transaction, error) {
	t, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.AccountService.GetByID(ctx, t.AccountId, userID); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) List(ctx context.Context, filter Filter, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if pkg.IsEmptyULID(filter.AccountId) {
		return nil, 0, appErrors.NewValidationError("account_id", "conta é obrigatória")
	}

	if _, err := s.AccountService.GetByID(ctx, filter.AccountId, userID); err != nil {
		return nil, 0, err
	}

	return s.Repository.List(ctx, filter, pagination)
}

func (s *Service) ListAll(ctx context.Context, filter Filter, userID ulid.ULID) ([]*Transaction, error) {
	if pkg.IsEmptyULID(filter.AccountId) {
		return nil, appErrors.NewValidationError("account_id", "conta é obrigatória")
	}

	if _, err := s.AccountService.GetByID(ctx, filter.AccountId, userID); err != nil {
		return nil, err
	}

	return s.Repository.ListAll(ctx, filter)
}

// SetPaid grava o estado de pagamento informado e retorna a transação
// atualizada. O valor é explícito para a operação ser idempotente.
func (s *Service) SetPaid(ctx context.Context, id, userID ulid.ULID, paid bool) (*Transaction, error) {
	stored, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Repository.UpdatePaid(ctx, id, paid); err != nil {
		return nil, err
	}

	stored.Paid = paid
	stored.UpdatedAt = time.Now()
	return stored, nil
}

func (s *Service) validateCategory(ctx context.Context, categoryID *ulid.ULID, userID ulid.ULID) error {
	if categoryID == nil || pkg.IsEmptyULID(*categoryID) {
		return nil
	}
	_, err := s.CategoryService.GetByID(ctx, *categoryID, userID)
	return err
}
