package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	"github.com/EduardoCSampaio/financas-app/internal/domain/dashboard"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeDashboardRepository struct {
	sumInitialBalancesFn    func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error)
	sumByTypeFn             func(ctx context.Context, q dashboard.SummaryQuery) (float64, float64, error)
	sumExpensesByCategoryFn func(ctx context.Context, q dashboard.SummaryQuery) ([]dashboard.CategoryTotal, error)
	monthlyTotalsFn         func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]dashboard.MonthTotal, error)
}

func (f *fakeDashboardRepository) SumInitialBalances(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error) {
	if f.sumInitialBalancesFn != nil {
		return f.sumInitialBalancesFn(ctx, ownerID, accountID)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) SumByType(ctx context.Context, q dashboard.SummaryQuery) (float64, float64, error) {
	if f.sumByTypeFn != nil {
		return f.sumByTypeFn(ctx, q)
	}
	return 0, 0, nil
}

func (f *fakeDashboardRepository) SumExpensesByCategory(ctx context.Context, q dashboard.SummaryQuery) ([]dashboard.CategoryTotal, error) {
	if f.sumExpensesByCategoryFn != nil {
		return f.sumExpensesByCategoryFn(ctx, q)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) MonthlyTotals(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]dashboard.MonthTotal, error) {
	if f.monthlyTotalsFn != nil {
		return f.monthlyTotalsFn(ctx, ownerID, accountID, months, paidOnly)
	}
	return nil, nil
}

type fakeAccountRepository struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*account.Account, error)
}

func (f *fakeAccountRepository) Create(ctx context.Context, _ *account.Account) error { return nil }
func (f *fakeAccountRepository) Update(ctx context.Context, _ *account.Account) error { return nil }
func (f *fakeAccountRepository) Delete(ctx context.Context, _ ulid.ULID) error        { return nil }
func (f *fakeAccountRepository) GetByID(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrAccountNotFound
}
func (f *fakeAccountRepository) GetAllByUser(ctx context.Context, _ ulid.ULID) ([]*account.Account, error) {
	return nil, nil
}

func TestServiceGetSummary(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	t.Run("defaults to projected view", func(t *testing.T) {
		var gotQuery dashboard.SummaryQuery
		repo := &fakeDashboardRepository{
			sumByTypeFn: func(ctx context.Context, q dashboard.SummaryQuery) (float64, float64, error) {
				gotQuery = q
				return 1000, 200, nil
			},
			sumInitialBalancesFn: func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error) {
				return 500, nil
			},
		}
		svc := dashboard.NewService(repo, account.NewService(&fakeAccountRepository{}))

		summary, err := svc.GetSummary(ctx, userID, nil, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.View != dashboard.ViewProjected {
			t.Fatalf("expected projected view, got %s", summary.View)
		}
		if gotQuery.PaidOnly {
			t.Fatalf("projected view must include unpaid transactions")
		}
		if summary.Balance != 1300 {
			t.Fatalf("expected balance 1300, got %v", summary.Balance)
		}
	})

	t.Run("real view only counts paid transactions", func(t *testing.T) {
		var gotQuery dashboard.SummaryQuery
		var gotPaidOnly bool
		repo := &fakeDashboardRepository{
			sumByTypeFn: func(ctx context.Context, q dashboard.SummaryQuery) (float64, float64, error) {
				gotQuery = q
				return 1000, 0, nil
			},
			sumInitialBalancesFn: func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error) {
				return 500, nil
			},
			monthlyTotalsFn: func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]dashboard.MonthTotal, error) {
				gotPaidOnly = paidOnly
				return nil, nil
			},
		}
		svc := dashboard.NewService(repo, account.NewService(&fakeAccountRepository{}))

		summary, err := svc.GetSummary(ctx, userID, nil, dashboard.ViewReal, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !gotQuery.PaidOnly || !gotPaidOnly {
			t.Fatalf("real view must restrict to paid transactions")
		}
		if summary.Balance != 1500 {
			t.Fatalf("expected balance 1500, got %v", summary.Balance)
		}
	})

	t.Run("rejects unknown view", func(t *testing.T) {
		svc := dashboard.NewService(&fakeDashboardRepository{}, account.NewService(&fakeAccountRepository{}))

		_, err := svc.GetSummary(ctx, userID, nil, "otimista", nil)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("checks account ownership when scoped", func(t *testing.T) {
		accountID := ulid.Make()
		accRepo := &fakeAccountRepository{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*account.Account, error) {
				return &account.Account{Id: id, OwnerId: ulid.Make()}, nil
			},
		}
		svc := dashboard.NewService(&fakeDashboardRepository{}, account.NewService(accRepo))

		_, err := svc.GetSummary(ctx, userID, &accountID, dashboard.ViewProjected, nil)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrResourceNotOwned.Code {
			t.Fatalf("expected RESOURCE_NOT_OWNED, got %v", err)
		}
	})

	t.Run("scopes the query to the requested month", func(t *testing.T) {
		var gotQuery dashboard.SummaryQuery
		repo := &fakeDashboardRepository{
			sumByTypeFn: func(ctx context.Context, q dashboard.SummaryQuery) (float64, float64, error) {
				gotQuery = q
				return 0, 0, nil
			},
		}
		svc := dashboard.NewService(repo, account.NewService(&fakeAccountRepository{}))

		period := &dashboard.Period{Year: 2025, Month: time.March}
		if _, err := svc.GetSummary(ctx, userID, nil, dashboard.ViewProjected, period); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotQuery.Start == nil || gotQuery.End == nil {
			t.Fatalf("expected query to carry the period bounds")
		}
		wantStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !gotQuery.Start.Equal(wantStart) || !gotQuery.End.Equal(wantStart.AddDate(0, 1, 0)) {
			t.Fatalf("wrong period bounds: %v .. %v", gotQuery.Start, gotQuery.End)
		}
	})

	t.Run("rejects invalid period", func(t *testing.T) {
		svc := dashboard.NewService(&fakeDashboardRepository{}, account.NewService(&fakeAccountRepository{}))

		_, err := svc.GetSummary(ctx, userID, nil, dashboard.ViewProjected, &dashboard.Period{Year: 2025, Month: 13})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("drops empty category groups and sorts by total", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			sumExpensesByCategoryFn: func(ctx context.Context, q dashboard.SummaryQuery) ([]dashboard.CategoryTotal, error) {
				return []dashboard.CategoryTotal{
					{Category: "Lazer", Total: 50},
					{Category: "Saúde", Total: 0},
					{Category: "Moradia", Total: 800},
				}, nil
			},
		}
		svc := dashboard.NewService(repo, account.NewService(&fakeAccountRepository{}))

		summary, err := svc.GetSummary(ctx, userID, nil, dashboard.ViewProjected, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summary.ByCategory) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(summary.ByCategory))
		}
		if summary.ByCategory[0].Category != "Moradia" || summary.ByCategory[1].Category != "Lazer" {
			t.Fatalf("wrong order: %+v", summary.ByCategory)
		}
	})
}

func TestServiceTrendPercent(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	cases := []struct {
		name  string
		trend []dashboard.MonthTotal
		want  float64
	}{
		{
			name: "growth over previous month",
			trend: []dashboard.MonthTotal{
				{Month: "2025-02", Income: 100},
				{Month: "2025-03", Income: 150},
			},
			want: 50,
		},
		{
			name: "both months empty",
			trend: []dashboard.MonthTotal{
				{Month: "2025-02"},
				{Month: "2025-03"},
			},
			want: 0,
		},
		{
			name: "previous empty with current movement",
			trend: []dashboard.MonthTotal{
				{Month: "2025-02"},
				{Month: "2025-03", Income: 10},
			},
			want: 100,
		},
		{
			name: "negative previous uses magnitude",
			trend: []dashboard.MonthTotal{
				{Month: "2025-02", Expense: 100},
				{Month: "2025-03", Income: 100},
			},
			want: 200,
		},
		{
			name:  "no history",
			trend: nil,
			want:  0,
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDashboardRepository{
				monthlyTotalsFn: func(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]dashboard.MonthTotal, error) {
					return tt.trend, nil
				},
			}
			svc := dashboard.NewService(repo, account.NewService(&fakeAccountRepository{}))

			summary, err := svc.GetSummary(ctx, userID, nil, dashboard.ViewProjected, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if summary.TrendPct != tt.want {
				t.Fatalf("expected trend %v, got %v", tt.want, summary.TrendPct)
			}
		})
	}
}
