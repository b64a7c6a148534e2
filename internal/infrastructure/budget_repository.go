package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/budget"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"
	"github.com/EduardoCSampaio/financas-app/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

type budgetDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId     string    `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_owner_category_month,priority:1;column:owner_id"`
	CategoryId  string    `gorm:"type:varchar(26);not null;uniqueIndex:idx_budgets_owner_category_month,priority:2;column:category_id"`
	Month       string    `gorm:"type:varchar(7);uniqueIndex:idx_budgets_owner_category_month,priority:3;column:month"`
	LimitAmount float64   `gorm:"type:decimal(15,2);not null;column:limit_amount"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(bdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	categoryID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &budget.Budget{
		Id:          id,
		OwnerId:     ownerID,
		CategoryId:  categoryID,
		Month:       bdb.Month,
		LimitAmount: bdb.LimitAmount,
		CreatedAt:   bdb.CreatedAt,
		UpdatedAt:   bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:          b.Id.String(),
		OwnerId:     b.OwnerId.String(),
		CategoryId:  b.CategoryId.String(),
		Month:       b.Month,
		LimitAmount: b.LimitAmount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	if err := r.DB.WithContext(ctx).Table("budgets").Create(bdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	if err := r.DB.WithContext(ctx).Table("budgets").Where("id = ?", bdb.Id).Updates(bdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("budgets").Where("id = ?", id.String()).Delete(&budgetDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	if err := r.DB.WithContext(ctx).Table("budgets").Where("id = ?", id.String()).First(&bdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetByCategoryAndMonth(ctx context.Context, ownerID, categoryID ulid.ULID, month string) (*budget.Budget, error) {
	var bdb budgetDB
	err := r.DB.WithContext(ctx).Table("budgets").
		Where("owner_id = ? AND category_id = ? AND month = ?", ownerID.String(), categoryID.String(), month).
		First(&bdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBudgetNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*budget.Budget, error) {
	q := query.New[budgetDB](r.DB, "budgets").
		Context(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("month DESC, created_at ASC")

	items, err := query.ExecuteAll(q, toDomainBudget)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}
