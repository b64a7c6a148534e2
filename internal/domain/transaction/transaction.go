package transaction

import (
	"context"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	Income  Types = "income"
	Expense Types = "expense"
)

func (t Types) IsValid() bool {
	return t == Income || t == Expense
}

type Transaction struct {
	Id           ulid.ULID  `json:"id"`
	AccountId    ulid.ULID  `json:"account_id"`
	Type         Types      `json:"type"`
	CategoryId   *ulid.ULID `json:"category_id"`
	CategoryName string     `json:"category"`
	Value        float64    `json:"value"`
	Description  string     `json:"description"`
	Date         time.Time  `json:"date"`
	Paid         bool       `json:"paid"`
	ProofURL     string     `json:"proof_url,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// PaidStatus filtra pelo estado de pagamento: vazio traz tudo.
type PaidStatus string

const (
	StatusAny     PaidStatus = ""
	StatusPaid    PaidStatus = "paid"
	StatusPending PaidStatus = "pending"
)

type Filter struct {
	AccountId  ulid.ULID
	Search     string
	CategoryId *ulid.ULID
	Type       Types
	Status     PaidStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Transaction, error)
	List(ctx context.Context, filter Filter, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	ListAll(ctx context.Context, filter Filter) ([]*Transaction, error)
	UpdatePaid(ctx context.Context, id ulid.ULID, paid bool) error
}
