package budget

import (
	"context"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository      Repository
	CategoryService *category.Service
}

func NewService(repo Repository, categorySvc *category.Service) *Service {
	return &Service{Repository: repo, CategoryService: categorySvc}
}

// Upsert cria ou atualiza o limite da categoria no mês. Só existe um
// orçamento por par (categoria, mês).
func (s *Service) Upsert(ctx context.Context, b *Budget) (*Budget, error) {
	if b.LimitAmount <= 0 {
		return nil, appErrors.NewValidationError("limit_amount", "limite deve ser maior que zero")
	}
	if b.Month != "" {
		if _, err := time.Parse("2006-01", b.Month); err != nil {
			return nil, appErrors.NewValidationError("month", "mês deve estar no formato AAAA-MM")
		}
	}

	if _, err := s.CategoryService.GetByID(ctx, b.CategoryId, b.OwnerId); err != nil {
		return nil, err
	}

	existing, err := s.Repository.GetByCategoryAndMonth(ctx, b.OwnerId, b.CategoryId, b.Month)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.LimitAmount = b.LimitAmount
		existing.UpdatedAt = now
		if err := s.Repository.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	b.Id = pkg.GenerateULIDObject()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.Repository.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerID ulid.ULID) error {
	b, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.OwnerId != ownerID {
		return appErrors.ErrResourceNotOwned
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Budget, error) {
	return s.Repository.GetAllByUser(ctx, ownerID)
}

func isNotFound(err error) bool {
	appErr, ok := appErrors.AsAppError(err)
	return ok && appErr.StatusCode == 404
}
