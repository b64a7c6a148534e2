package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"
	"github.com/EduardoCSampaio/financas-app/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

var _ account.Repository = (*AccountRepository)(nil)

type accountDB struct {
	Id             string    `gorm:"type:varchar(26);primaryKey"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Type           string    `gorm:"type:varchar(50)"`
	InitialBalance float64   `gorm:"type:decimal(15,2);not null;default:0;column:initial_balance"`
	OwnerId        string    `gorm:"type:varchar(26);index:idx_accounts_owner_id;not null;column:owner_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;not null"`
}

func (accountDB) TableName() string {
	return "accounts"
}

func toDomainAccount(adb *accountDB) (*account.Account, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(adb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &account.Account{
		Id:             id,
		Name:           adb.Name,
		Type:           adb.Type,
		InitialBalance: adb.InitialBalance,
		OwnerId:        ownerID,
		CreatedAt:      adb.CreatedAt,
		UpdatedAt:      adb.UpdatedAt,
	}, nil
}

func toDBAccount(a *account.Account) *accountDB {
	return &accountDB{
		Id:             a.Id.String(),
		Name:           a.Name,
		Type:           a.Type,
		InitialBalance: a.InitialBalance,
		OwnerId:        a.OwnerId.String(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	if err := r.DB.WithContext(ctx).Table("accounts").Create(adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	if err := r.DB.WithContext(ctx).Table("accounts").Where("id = ?", adb.Id).Updates(adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Delete remove a conta e tudo que depende dela.
func (r *AccountRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("transactions").Where("account_id = ?", id.String()).Delete(&transactionDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("accounts").Where("id = ?", id.String()).Delete(&accountDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrAccountNotFound
		}
		return nil
	})
}

func (r *AccountRepository) GetByID(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	var adb accountDB
	if err := r.DB.WithContext(ctx).Table("accounts").Where("id = ?", id.String()).First(&adb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAccount(&adb)
}

func (r *AccountRepository) GetAllByUser(ctx context.Context, ownerID ulid.ULID) ([]*account.Account, error) {
	q := query.New[accountDB](r.DB, "accounts").
		Context(ctx).
		Where("owner_id = ?", ownerID.String()).
		Order("created_at ASC")

	items, err := query.ExecuteAll(q, toDomainAccount)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}
