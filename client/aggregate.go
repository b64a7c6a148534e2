package client

import (
	"math"
	"sort"
	"time"
)

// visible aplica o modo de visão: em ModeReal só transações pagas
// contam para os números derivados.
func visible(list []Transaction, mode ViewMode) []Transaction {
	if mode != ModeReal {
		return list
	}
	out := make([]Transaction, 0, len(list))
	for _, t := range list {
		if t.Paid {
			out = append(out, t)
		}
	}
	return out
}

// ComputeBalance retorna o saldo: inicial mais receitas menos despesas
// das transações visíveis no modo.
func ComputeBalance(list []Transaction, initialBalance float64, mode ViewMode) float64 {
	income, expense := ComputeTotals(list, mode)
	return initialBalance + income - expense
}

// ComputeTotals soma receitas e despesas separadamente.
func ComputeTotals(list []Transaction, mode ViewMode) (income, expense float64) {
	for _, t := range visible(list, mode) {
		switch t.Type {
		case Income:
			income += t.Value
		case Expense:
			expense += t.Value
		}
	}
	return income, expense
}

// ComputeCategoryBreakdown agrupa despesas por categoria, do maior
// gasto para o menor. Grupos zerados ou negativos ficam de fora.
func ComputeCategoryBreakdown(list []Transaction, mode ViewMode) []CategorySum {
	totals := make(map[string]float64)
	for _, t := range visible(list, mode) {
		if t.Type != Expense {
			continue
		}
		name := t.Category
		if name == "" {
			name = "Sem categoria"
		}
		totals[name] += t.Value
	}

	out := make([]CategorySum, 0, len(totals))
	for name, total := range totals {
		if total <= 0 {
			continue
		}
		out = append(out, CategorySum{Category: name, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ComputeMonthOverMonthTrend compara o fluxo líquido (receitas menos
// despesas) do mês de ref com o do mês anterior, em percentual. Sem
// movimento anterior: 0 se o mês atual também está zerado, 100 caso
// contrário.
func ComputeMonthOverMonthTrend(list []Transaction, ref time.Time, mode ViewMode) float64 {
	// primeiro dia do mês evita o estouro de AddDate em dia 29-31
	refMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	current := monthNet(list, refMonth, mode)
	previous := monthNet(list, refMonth.AddDate(0, -1, 0), mode)

	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return (current - previous) / math.Abs(previous) * 100
}

func monthNet(list []Transaction, ref time.Time, mode ViewMode) float64 {
	var net float64
	for _, t := range visible(list, mode) {
		if t.Date.Year() != ref.Year() || t.Date.Month() != ref.Month() {
			continue
		}
		switch t.Type {
		case Income:
			net += t.Value
		case Expense:
			net -= t.Value
		}
	}
	return net
}
