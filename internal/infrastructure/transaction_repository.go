package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"
	"github.com/EduardoCSampaio/financas-app/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey;column:id"`
	AccountId    string    `gorm:"type:varchar(26);index:idx_transactions_account_id;not null;column:account_id"`
	Type         string    `gorm:"type:varchar(10);not null;index:idx_transactions_type;column:type"`
	CategoryId   *string   `gorm:"type:varchar(26);index:idx_transactions_category_id;column:category_id"`
	CategoryName string    `gorm:"->;column:category_name"`
	Value        float64   `gorm:"type:decimal(15,2);not null;column:value"`
	Description  string    `gorm:"size:255;column:description"`
	Date         time.Time `gorm:"not null;index:idx_transactions_date;column:date"`
	Paid         bool      `gorm:"not null;default:false;column:paid"`
	ProofURL     string    `gorm:"size:255;column:proof_url"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`
	UpdatedAt    time.Time `gorm:"not null;column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	aid, err := pkg.ParseULID(tdb.AccountId)
	if err != nil {
		return nil, err
	}

	var cid *ulid.ULID
	if tdb.CategoryId != nil && *tdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*tdb.CategoryId)
		if err != nil {
			return nil, err
		}
		cid = &parsed
	}

	return &transaction.Transaction{
		Id:           id,
		AccountId:    aid,
		Type:         transaction.Types(tdb.Type),
		CategoryId:   cid,
		CategoryName: tdb.CategoryName,
		Value:        tdb.Value,
		Description:  tdb.Description,
		Date:         tdb.Date,
		Paid:         tdb.Paid,
		ProofURL:     tdb.ProofURL,
		CreatedAt:    tdb.CreatedAt,
		UpdatedAt:    tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var categoryID *string
	if t.CategoryId != nil {
		s := t.CategoryId.String()
		categoryID = &s
	}
	return &transactionDB{
		Id:          t.Id.String(),
		AccountId:   t.AccountId.String(),
		Type:        string(t.Type),
		CategoryId:  categoryID,
		Value:       t.Value,
		Description: t.Description,
		Date:        t.Date,
		Paid:        t.Paid,
		ProofURL:    t.ProofURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	if err := r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	// Select garante que paid=false e category nula também persistam
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", tdb.Id).
		Select("account_id", "type", "category_id", "value", "description", "date", "paid", "proof_url", "updated_at").
		Updates(tdb).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("transactions").Where("id = ?", id.String()).Delete(&transactionDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.id = ?", id.String()).
		First(&tdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) UpdatePaid(ctx context.Context, id ulid.ULID, paid bool) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ?", id.String()).
		Updates(map[string]interface{}{"paid": paid, "updated_at": time.Now()})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) List(ctx context.Context, filter transaction.Filter, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	q := filteredQuery(r.DB, ctx, filter).
		Order("transactions.date DESC, transactions.id DESC")

	result, err := query.Execute(q, query.NewPage(pagination.Page, pagination.Limit), toDomainTransaction)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return result.Data, result.Total, nil
}

func (r *TransactionRepository) ListAll(ctx context.Context, filter transaction.Filter) ([]*transaction.Transaction, error) {
	q := filteredQuery(r.DB, ctx, filter).
		Order("transactions.date DESC, transactions.id DESC")

	items, err := query.ExecuteAll(q, toDomainTransaction)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return items, nil
}

func filteredQuery(db *gorm.DB, ctx context.Context, filter transaction.Filter) *query.Query[transactionDB] {
	q := query.New[transactionDB](db, "transactions").
		Context(ctx).
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.account_id = ?", filter.AccountId.String())

	q.WhereIf(filter.Search != "", "transactions.description ILIKE ?", "%"+filter.Search+"%").
		WhereIf(filter.Type != "", "transactions.type = ?", string(filter.Type)).
		WhereIf(filter.Status == transaction.StatusPaid, "transactions.paid = ?", true).
		WhereIf(filter.Status == transaction.StatusPending, "transactions.paid = ?", false)

	if filter.CategoryId != nil {
		q.Where("transactions.category_id = ?", filter.CategoryId.String())
	}
	if filter.StartDate != nil {
		q.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q.Where("transactions.date <= ?", *filter.EndDate)
	}

	return q
}
