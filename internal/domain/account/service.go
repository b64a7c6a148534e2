package account

import (
	"context"
	"time"

	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, a *Account) error {
	if a.Name == "" {
		return appErrors.NewValidationError("name", "nome da conta é obrigatório")
	}

	a.Id = pkg.GenerateULIDObject()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	return s.Repository.Create(ctx, a)
}

// GetByID valida a posse: contas de outros usuários retornam
// ErrResourceNotOwned, nunca os dados.
func (s *Service) GetByID(ctx context.Context, id, ownerID ulid.ULID) (*Account, error) {
	a, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.OwnerId != ownerID {
		return nil, appErrors.ErrResourceNotOwned
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, a *Account, ownerID ulid.ULID) error {
	current, err := s.GetByID(ctx, a.Id, ownerID)
	if err != nil {
		return err
	}

	current.Name = a.Name
	current.Type = a.Type
	current.InitialBalance = a.InitialBalance
	current.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, id, ownerID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Account, error) {
	return s.Repository.GetAllByUser(ctx, ownerID)
}
