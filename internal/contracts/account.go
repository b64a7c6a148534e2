package contracts

import "github.com/EduardoCSampaio/financas-app/internal/domain/account"

type AccountCreateRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Type           string  `json:"type" binding:"omitempty,max=50"`
	InitialBalance float64 `json:"initial_balance" binding:"omitempty"`
}

type AccountUpdateRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Type           string  `json:"type" binding:"omitempty,max=50"`
	InitialBalance float64 `json:"initial_balance" binding:"omitempty"`
}

type AccountCreateResponse struct {
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountSingleResponse struct {
	Account *account.Account `json:"account"`
}

type AccountListResponse struct {
	Accounts []*account.Account `json:"accounts"`
	Total    int                `json:"total"`
}
