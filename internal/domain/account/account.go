package account

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Account struct {
	Id             ulid.ULID `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	InitialBalance float64   `json:"initial_balance"`
	OwnerId        ulid.ULID `json:"owner_id"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Account, error)
	GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*Account, error)
}
