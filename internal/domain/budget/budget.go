package budget

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Budget limita gastos de uma categoria. Month no formato "2006-01";
// vazio significa limite recorrente, válido para todos os meses.
type Budget struct {
	Id          ulid.ULID `json:"id"`
	OwnerId     ulid.ULID `json:"owner_id"`
	CategoryId  ulid.ULID `json:"category_id"`
	Month       string    `json:"month,omitempty"`
	LimitAmount float64   `json:"limit_amount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, b *Budget) error
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Budget, error)
	GetByCategoryAndMonth(ctx context.Context, ownerID, categoryID ulid.ULID, month string) (*Budget, error)
	GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Budget, error)
}
