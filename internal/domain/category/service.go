package category

import (
	"context"
	"time"

	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/logger"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Categorias criadas para todo usuário novo.
var defaultCategories = []string{
	"Alimentação",
	"Moradia",
	"Transporte",
	"Lazer",
	"Saúde",
	"Salário",
	"Outros",
}

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, c *Category) error {
	if c.Name == "" {
		return appErrors.NewValidationError("name", "nome da categoria é obrigatório")
	}

	existing, err := s.Repository.GetByName(ctx, c.OwnerId, c.Name)
	if err != nil && !isNotFound(err) {
		return err
	}
	if existing != nil {
		return appErrors.NewConflictError("Categoria")
	}

	c.Id = pkg.GenerateULIDObject()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.Repository.Create(ctx, c)
}

func (s *Service) GetByID(ctx context.Context, id, ownerID ulid.ULID) (*Category, error) {
	c, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerId != ownerID {
		return nil, appErrors.ErrResourceNotOwned
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, c *Category, ownerID ulid.ULID) error {
	current, err := s.GetByID(ctx, c.Id, ownerID)
	if err != nil {
		return err
	}

	current.Name = c.Name
	current.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, id, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, id, ownerID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Category, error) {
	return s.Repository.GetAllByUser(ctx, ownerID)
}

// SeedDefaults cria o conjunto inicial de categorias. Falhas individuais
// são logadas e não abortam o cadastro do usuário.
func (s *Service) SeedDefaults(ctx context.Context, ownerID ulid.ULID) {
	for _, name := range defaultCategories {
		c := &Category{Name: name, OwnerId: ownerID}
		if err := s.Create(ctx, c); err != nil {
			logger.Warn().
				Str("category", name).
				Str("user_id", ownerID.String()).
				Err(err).
				Msg("falha ao criar categoria padrão")
		}
	}
}

func isNotFound(err error) bool {
	appErr, ok := appErrors.AsAppError(err)
	return ok && appErr.StatusCode == 404
}
