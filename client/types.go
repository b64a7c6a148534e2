// Package client é o consumidor programático da API de finanças:
// autenticação, listagem com debounce e os agregados exibidos no
// painel (saldo, totais, gastos por categoria e tendência mensal).
package client

import "time"

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"category_id,omitempty"`
	Category    string          `json:"category"`
	Value       float64         `json:"value"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Paid        bool            `json:"paid"`
	ProofURL    string          `json:"proof_url,omitempty"`
}

type Account struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	InitialBalance float64 `json:"initial_balance"`
	OwnerID        string  `json:"owner_id"`
}

type Category struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Limit *float64 `json:"limit,omitempty"`
}

// ViewMode decide quais transações entram nos números derivados.
// ModeReal considera apenas as pagas; ModeProjected considera todas.
// A lista exibida não é afetada pelo modo.
type ViewMode string

const (
	ModeReal      ViewMode = "real"
	ModeProjected ViewMode = "projected"
)

// Filter reflete os parâmetros de consulta de GET /transactions.
type Filter struct {
	AccountID  string
	Search     string
	CategoryID string
	Type       TransactionType
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type TransactionPage struct {
	Items      []Transaction `json:"items"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}

type CategorySum struct {
	Category string
	Total    float64
}
