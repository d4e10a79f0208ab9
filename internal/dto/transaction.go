package dto

import (
	"time"

	"smsledger/internal/models"
)

type CreateTransactionRequest struct {
	BudgetID   int     `json:"budget_id"`
	Amount     float64 `json:"amount"`
	CategoryID *int    `json:"category_id"`
	Note       *string `json:"note"`
	Date       string  `json:"date"` // YYYY-MM-DD
}

// UpdateTransactionCategoryRequest reassigns a transaction's category.
// Exactly one of CategoryID or Category (a name, resolved
// case-insensitively) may be set; both empty clears the category.
type UpdateTransactionCategoryRequest struct {
	CategoryID *int    `json:"category_id"`
	Category   *string `json:"category"`
}

type TransactionResponse struct {
	ID              int     `json:"id"`
	BudgetID        int     `json:"budget_id"`
	CategoryID      *int    `json:"category_id"`
	Amount          float64 `json:"amount"`
	Note            *string `json:"note"`
	TransactionDate string  `json:"transaction_date"`
	Source          string  `json:"source"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		BudgetID:        tx.BudgetID,
		CategoryID:      tx.CategoryID,
		Amount:          tx.Amount,
		Note:            tx.Note,
		TransactionDate: tx.TransactionDate.Format(time.DateOnly),
		Source:          string(tx.Source),
	}
}

func NewTransactionResponses(txs []*models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, NewTransactionResponse(tx))
	}
	return responses
}
