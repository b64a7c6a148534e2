package dashboard

import (
	"context"
	"math"
	"sort"

	"github.com/EduardoCSampaio/financas-app/internal/domain/account"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"

	"github.com/oklog/ulid/v2"
)

const trendMonths = 6

type Service struct {
	Repository     Repository
	AccountService *account.Service
}

func NewService(repo Repository, accountSvc *account.Service) *Service {
	return &Service{Repository: repo, AccountService: accountSvc}
}

func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID, accountID *ulid.ULID, view View, period *Period) (*Summary, error) {
	if view == "" {
		view = ViewProjected
	}
	if !view.IsValid() {
		return nil, appErrors.NewValidationError("view", "view deve ser real ou projected")
	}
	if period != nil && !period.IsValid() {
		return nil, appErrors.NewValidationError("month", "mês e ano devem formar um período válido")
	}

	if accountID != nil {
		if _, err := s.AccountService.GetByID(ctx, *accountID, userID); err != nil {
			return nil, err
		}
	}

	q := SummaryQuery{
		OwnerId:   userID,
		AccountId: accountID,
		PaidOnly:  view.PaidOnly(),
	}
	if period != nil {
		start, end := period.Range()
		q.Start = &start
		q.End = &end
	}

	initial, err := s.Repository.SumInitialBalances(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	income, expense, err := s.Repository.SumByType(ctx, q)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.Repository.SumExpensesByCategory(ctx, q)
	if err != nil {
		return nil, err
	}
	byCategory = filterPositive(byCategory)

	trend, err := s.Repository.MonthlyTotals(ctx, userID, accountID, trendMonths, view.PaidOnly())
	if err != nil {
		return nil, err
	}

	return &Summary{
		View:       view,
		Balance:    initial + income - expense,
		Income:     income,
		Expense:    expense,
		ByCategory: byCategory,
		Trend:      trend,
		TrendPct:   trendPercent(trend),
	}, nil
}

// filterPositive descarta agrupamentos sem gasto efetivo e ordena o
// restante do maior para o menor.
func filterPositive(totals []CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total > 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// trendPercent compara o fluxo líquido do mês corrente com o anterior.
// Sem mês anterior (ou anterior zerado): 0 quando o corrente também é
// zero, 100 caso contrário.
func trendPercent(trend []MonthTotal) float64 {
	if len(trend) == 0 {
		return 0
	}

	current := trend[len(trend)-1].Net()
	if len(trend) < 2 {
		if current == 0 {
			return 0
		}
		return 100
	}

	previous := trend[len(trend)-2].Net()
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return (current - previous) / math.Abs(previous) * 100
}
