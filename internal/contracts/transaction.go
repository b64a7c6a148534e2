package contracts

import "github.com/EduardoCSampaio/financas-app/internal/domain/transaction"

// TransactionFormRequest chega como multipart/form-data para permitir o
// envio do comprovante junto com os campos.
type TransactionFormRequest struct {
	Description string  `form:"description" binding:"required,max=255"`
	Value       float64 `form:"value" binding:"required"`
	Type        string  `form:"type" binding:"required,oneof=income expense"`
	AccountID   string  `form:"account_id" binding:"required"`
	CategoryID  string  `form:"category_id" binding:"omitempty"`
	Date        string  `form:"date" binding:"omitempty"`
	Paid        bool    `form:"paid"`
}

// TransactionPaidRequest carrega o estado de pagamento desejado.
// Ponteiro para distinguir false de campo ausente.
type TransactionPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
