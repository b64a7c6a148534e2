package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tx(typ TransactionType, value float64, paid bool, category string, date time.Time) Transaction {
	return Transaction{
		ID:       "01J0000000000000000000000" + string(typ[0]),
		Type:     typ,
		Value:    value,
		Paid:     paid,
		Category: category,
		Date:     date,
	}
}

func TestComputeBalance(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	list := []Transaction{
		tx(Income, 1000, true, "Salário", now),
		tx(Expense, 200, false, "Lazer", now),
	}

	t.Run("modo real considera apenas transações pagas", func(t *testing.T) {
		assert.Equal(t, 1500.0, ComputeBalance(list, 500, ModeReal))
	})

	t.Run("modo projetado considera todas", func(t *testing.T) {
		assert.Equal(t, 1300.0, ComputeBalance(list, 500, ModeProjected))
	})

	t.Run("lista vazia retorna o saldo inicial", func(t *testing.T) {
		assert.Equal(t, 500.0, ComputeBalance(nil, 500, ModeProjected))
	})
}

func TestComputeTotals(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	list := []Transaction{
		tx(Income, 1000, true, "Salário", now),
		tx(Income, 300, false, "Outros", now),
		tx(Expense, 200, true, "Moradia", now),
		tx(Expense, 50, false, "Lazer", now),
	}

	income, expense := ComputeTotals(list, ModeProjected)
	assert.Equal(t, 1300.0, income)
	assert.Equal(t, 250.0, expense)

	income, expense = ComputeTotals(list, ModeReal)
	assert.Equal(t, 1000.0, income)
	assert.Equal(t, 200.0, expense)
}

func TestComputeCategoryBreakdown(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("soma apenas despesas e ordena do maior para o menor", func(t *testing.T) {
		list := []Transaction{
			tx(Expense, 100, true, "Moradia", now),
			tx(Expense, 400, true, "Moradia", now),
			tx(Expense, 50, true, "Lazer", now),
			tx(Income, 1000, true, "Salário", now),
		}

		result := ComputeCategoryBreakdown(list, ModeProjected)
		assert.Equal(t, []CategorySum{
			{Category: "Moradia", Total: 500},
			{Category: "Lazer", Total: 50},
		}, result)
	})

	t.Run("transações sem categoria entram em Sem categoria", func(t *testing.T) {
		list := []Transaction{
			tx(Expense, 80, true, "", now),
		}

		result := ComputeCategoryBreakdown(list, ModeProjected)
		assert.Equal(t, []CategorySum{{Category: "Sem categoria", Total: 80}}, result)
	})

	t.Run("modo real ignora despesas não pagas", func(t *testing.T) {
		list := []Transaction{
			tx(Expense, 100, false, "Lazer", now),
		}

		assert.Empty(t, ComputeCategoryBreakdown(list, ModeReal))
	})

	t.Run("empate em valor desempata por nome", func(t *testing.T) {
		list := []Transaction{
			tx(Expense, 100, true, "Transporte", now),
			tx(Expense, 100, true, "Alimentação", now),
		}

		result := ComputeCategoryBreakdown(list, ModeProjected)
		assert.Equal(t, "Alimentação", result[0].Category)
		assert.Equal(t, "Transporte", result[1].Category)
	})
}

func TestComputeMonthOverMonthTrend(t *testing.T) {
	ref := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("crescimento percentual sobre o mês anterior", func(t *testing.T) {
		list := []Transaction{
			tx(Income, 100, true, "", feb),
			tx(Income, 150, true, "", mar),
		}

		assert.InDelta(t, 50.0, ComputeMonthOverMonthTrend(list, ref, ModeProjected), 0.001)
	})

	t.Run("mês anterior zerado e atual zerado retorna zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeMonthOverMonthTrend(nil, ref, ModeProjected))
	})

	t.Run("mês anterior zerado e atual com movimento retorna cem", func(t *testing.T) {
		list := []Transaction{tx(Income, 10, true, "", mar)}
		assert.Equal(t, 100.0, ComputeMonthOverMonthTrend(list, ref, ModeProjected))
	})

	t.Run("referência em fim de mês não escorrega para o mês errado", func(t *testing.T) {
		// 31 de março - 1 mês não pode virar 3 de março
		list := []Transaction{
			tx(Income, 100, true, "", feb),
			tx(Income, 100, true, "", mar),
		}

		assert.InDelta(t, 0.0, ComputeMonthOverMonthTrend(list, ref, ModeProjected), 0.001)
	})

	t.Run("modo real desconsidera lançamentos pendentes", func(t *testing.T) {
		list := []Transaction{
			tx(Income, 100, true, "", feb),
			tx(Income, 500, false, "", mar),
			tx(Income, 100, true, "", mar),
		}

		assert.InDelta(t, 0.0, ComputeMonthOverMonthTrend(list, ref, ModeReal), 0.001)
		assert.InDelta(t, 500.0, ComputeMonthOverMonthTrend(list, ref, ModeProjected), 0.001)
	})
}
