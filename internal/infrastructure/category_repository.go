package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/category"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"
	"github.com/EduardoCSampaio/financas-app/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id      string `gorm:"type:varchar(26);primaryKey"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_owner_name,priority:2"`
	OwnerId string `gorm:"type:varchar(26);not null;uniqueIndex:idx_categories_owner_name,priority:1;column:owner_id"`
	// BudgetLimit é calculado na leitura a partir da tabela de
	// orçamentos, nunca gravado.
	BudgetLimit *float64  `gorm:"->;column:budget_limit;-:migration"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(cdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &category.Category{
		Id:        id,
		Name:      cdb.Name,
		OwnerId:   ownerID,
		Limit:     cdb.BudgetLimit,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		Name:      c.Name,
		OwnerId:   c.OwnerId.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	if err := r.DB.WithContext(ctx).Table("categories").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	if err := r.DB.WithContext(ctx).Table("categories").Where("id = ?", cdb.Id).Updates(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Delete desvincula as transações da categoria antes de removê-la.
func (r *CategoryRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("transactions").Where("category_id = ?", id.String()).Update("category_id", nil).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("categories").Where("id = ?", id.String()).Delete(&categoryDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrCategoryNotFound
		}
		return nil
	})
}

func (r *CategoryRepository) GetByID(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Where("id = ?", id.String()).First(&cdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByName(ctx context.Context, ownerID ulid.ULID, name string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("owner_id = ? AND name = ?", ownerID.String(), name).
		First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

// budgetLimitSubquery anexa o limite do orçamento da categoria: o do mês
// corrente quando existe, senão o recorrente (month vazio ordena por último).
const budgetLimitSubquery = `categories.*, (
	SELECT b.limit_amount FROM budgets b
	WHERE b.category_id = categories.id
	  AND b.owner_id = ?
	  AND (b.month = '' OR b.month = TO_CHAR(NOW(), 'YYYY-MM'))
	ORDER BY b.month DESC
	LIMIT 1
) AS budget_limit`

func (r *CategoryRepository) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*category.Category, error) {
	q := query.New[categoryDB](r.DB, "categories").
		Context(ctx).
		Select(budgetLimitSubquery, ownerID.String()).
		Where("owner_id = ?", ownerID.String()).
		Order("name ASC")

	items, err := query.ExecuteAll(q, toDomainCategory)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}
