package dto

import (
	"time"

	"smsledger/internal/models"
)

type CreateWantsBudgetRequest struct {
	Year        int     `json:"year"`
	Half        int     `json:"half"` // 1 = Jan-Jun, 2 = Jul-Dec
	TotalAmount float64 `json:"total_amount"`
}

type WantsBudgetResponse struct {
	ID          int     `json:"id"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Label       string  `json:"label"`
	TotalAmount float64 `json:"total_amount"`
}

type WantsBudgetDetailResponse struct {
	Budget       WantsBudgetResponse        `json:"budget"`
	Transactions []WantsTransactionResponse `json:"transactions"`
}

type CreateWantsTransactionRequest struct {
	WantsBudgetID int     `json:"wants_budget_id"`
	Amount        float64 `json:"amount"`
	Note          *string `json:"note"`
	Date          string  `json:"date"` // YYYY-MM-DD
}

type WantsTransactionResponse struct {
	ID              int     `json:"id"`
	WantsBudgetID   int     `json:"wants_budget_id"`
	Amount          float64 `json:"amount"`
	Note            *string `json:"note"`
	TransactionDate string  `json:"transaction_date"`
	Source          string  `json:"source"`
}

func NewWantsBudgetResponse(budget *models.WantsBudget, label string) WantsBudgetResponse {
	return WantsBudgetResponse{
		ID:          budget.ID,
		PeriodStart: budget.PeriodStart.Format(time.DateOnly),
		PeriodEnd:   budget.PeriodEnd.Format(time.DateOnly),
		Label:       label,
		TotalAmount: budget.TotalAmount,
	}
}

func NewWantsTransactionResponse(tx *models.WantsTransaction) WantsTransactionResponse {
	return WantsTransactionResponse{
		ID:              tx.ID,
		WantsBudgetID:   tx.WantsBudgetID,
		Amount:          tx.Amount,
		Note:            tx.Note,
		TransactionDate: tx.TransactionDate.Format(time.DateOnly),
		Source:          string(tx.Source),
	}
}

func NewWantsTransactionResponses(txs []*models.WantsTransaction) []WantsTransactionResponse {
	responses := make([]WantsTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, NewWantsTransactionResponse(tx))
	}
	return responses
}
