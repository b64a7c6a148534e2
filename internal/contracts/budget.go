package contracts

import "github.com/EduardoCSampaio/financas-app/internal/domain/budget"

type BudgetUpsertRequest struct {
	CategoryID  string  `json:"category_id" binding:"required"`
	Month       string  `json:"month" binding:"omitempty,len=7"`
	LimitAmount float64 `json:"limit_amount" binding:"required,gt=0"`
}

type BudgetUpsertResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int              `json:"total"`
}
