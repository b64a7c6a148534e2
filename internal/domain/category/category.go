package category

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Category struct {
	Id      ulid.ULID `json:"id"`
	Name    string    `json:"name"`
	OwnerId ulid.ULID `json:"owner_id"`
	// Limit é o teto de gastos vindo do orçamento da categoria, quando
	// existe um para o mês corrente ou um recorrente.
	Limit     *float64  `json:"limit,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Category, error)
	GetByName(ctx context.Context, ownerID ulid.ULID, name string) (*Category, error)
	GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Category, error)
}
