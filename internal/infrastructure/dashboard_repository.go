package infrastructure

import (
	"context"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/dashboard"
	"github.com/EduardoCSampaio/financas-app/internal/domain/transaction"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

func (r *DashboardRepository) SumInitialBalances(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error) {
	q := r.DB.WithContext(ctx).Table("accounts").
		Where("owner_id = ?", ownerID.String())
	if accountID != nil {
		q = q.Where("id = ?", accountID.String())
	}

	var total float64
	if err := q.Select("COALESCE(SUM(initial_balance), 0)").Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *DashboardRepository) SumByType(ctx context.Context, sq dashboard.SummaryQuery) (float64, float64, error) {
	income, err := r.sumType(ctx, sq, transaction.Income)
	if err != nil {
		return 0, 0, err
	}
	expense, err := r.sumType(ctx, sq, transaction.Expense)
	if err != nil {
		return 0, 0, err
	}
	return income, expense, nil
}

func (r *DashboardRepository) sumType(ctx context.Context, sq dashboard.SummaryQuery, t transaction.Types) (float64, error) {
	q := r.scopedTransactions(ctx, sq).Where("transactions.type = ?", string(t))

	var total float64
	if err := q.Select("COALESCE(SUM(transactions.value), 0)").Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *DashboardRepository) SumExpensesByCategory(ctx context.Context, sq dashboard.SummaryQuery) ([]dashboard.CategoryTotal, error) {
	q := r.scopedTransactions(ctx, sq).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.type = ?", string(transaction.Expense))

	var rows []struct {
		CategoryId string
		Category   string
		Total      float64
	}
	err := q.Select("COALESCE(transactions.category_id, '') AS category_id, COALESCE(categories.name, 'Sem categoria') AS category, COALESCE(SUM(transactions.value), 0) AS total").
		Group("transactions.category_id, categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	totals := make([]dashboard.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, dashboard.CategoryTotal{
			CategoryId: row.CategoryId,
			Category:   row.Category,
			Total:      row.Total,
		})
	}
	return totals, nil
}

// MonthlyTotals retorna um balde por mês, do mais antigo para o mais
// recente, incluindo meses sem movimento.
func (r *DashboardRepository) MonthlyTotals(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]dashboard.MonthTotal, error) {
	if months < 1 {
		months = 1
	}

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := currentMonth.AddDate(0, -(months - 1), 0)

	sq := dashboard.SummaryQuery{
		OwnerId:   ownerID,
		AccountId: accountID,
		PaidOnly:  paidOnly,
		Start:     &start,
	}
	q := r.scopedTransactions(ctx, sq)

	var rows []struct {
		Month string
		Type  string
		Total float64
	}
	err := q.Select("TO_CHAR(transactions.date, 'YYYY-MM') AS month, transactions.type AS type, COALESCE(SUM(transactions.value), 0) AS total").
		Group("TO_CHAR(transactions.date, 'YYYY-MM'), transactions.type").
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	byMonth := make(map[string]*dashboard.MonthTotal, months)
	out := make([]dashboard.MonthTotal, 0, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		out = append(out, dashboard.MonthTotal{Month: key})
		byMonth[key] = &out[len(out)-1]
	}

	for _, row := range rows {
		bucket, ok := byMonth[row.Month]
		if !ok {
			continue
		}
		switch transaction.Types(row.Type) {
		case transaction.Income:
			bucket.Income = row.Total
		case transaction.Expense:
			bucket.Expense = row.Total
		}
	}

	return out, nil
}

func (r *DashboardRepository) scopedTransactions(ctx context.Context, sq dashboard.SummaryQuery) *gorm.DB {
	q := r.DB.WithContext(ctx).Table("transactions").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.owner_id = ?", sq.OwnerId.String())

	if sq.AccountId != nil {
		q = q.Where("transactions.account_id = ?", sq.AccountId.String())
	}
	if sq.PaidOnly {
		q = q.Where("transactions.paid = ?", true)
	}
	if sq.Start != nil {
		q = q.Where("transactions.date >= ?", *sq.Start)
	}
	if sq.End != nil {
		// intervalo meio-aberto: End é o primeiro instante fora do período
		q = q.Where("transactions.date < ?", *sq.End)
	}
	return q
}
