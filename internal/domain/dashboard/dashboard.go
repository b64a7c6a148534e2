package dashboard

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// View controla quais transações entram nos números derivados.
// "real" considera apenas transações pagas; "projected" considera todas.
type View string

const (
	ViewReal      View = "real"
	ViewProjected View = "projected"
)

func (v View) IsValid() bool {
	return v == ViewReal || v == ViewProjected
}

func (v View) PaidOnly() bool {
	return v == ViewReal
}

type CategoryTotal struct {
	CategoryId string  `json:"category_id"`
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
}

type MonthTotal struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func (m MonthTotal) Net() float64 {
	return m.Income - m.Expense
}

type Summary struct {
	View       View            `json:"view"`
	Balance    float64         `json:"balance"`
	Income     float64         `json:"income"`
	Expense    float64         `json:"expense"`
	ByCategory []CategoryTotal `json:"by_category"`
	Trend      []MonthTotal    `json:"trend"`
	TrendPct   float64         `json:"trend_pct"`
}

// Period restringe o resumo a um mês de calendário.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) IsValid() bool {
	return p.Year >= 1 && p.Month >= time.January && p.Month <= time.December
}

// Range devolve o intervalo [início do mês, início do mês seguinte).
func (p Period) Range() (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

type SummaryQuery struct {
	OwnerId   ulid.ULID
	AccountId *ulid.ULID
	PaidOnly  bool
	Start     *time.Time
	End       *time.Time
}

type Repository interface {
	SumInitialBalances(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID) (float64, error)
	SumByType(ctx context.Context, q SummaryQuery) (income float64, expense float64, err error)
	SumExpensesByCategory(ctx context.Context, q SummaryQuery) ([]CategoryTotal, error)
	MonthlyTotals(ctx context.Context, ownerID ulid.ULID, accountID *ulid.ULID, months int, paidOnly bool) ([]MonthTotal, error)
}
