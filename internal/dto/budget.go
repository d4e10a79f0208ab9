package dto

import (
	"time"

	"smsledger/internal/models"
)

type CreateBudgetRequest struct {
	Month       string  `json:"month"`
	TotalBudget float64 `json:"total_budget"`
}

type BudgetResponse struct {
	ID          int       `json:"id"`
	Month       string    `json:"month"`
	TotalBudget float64   `json:"total_budget"`
	CreatedAt   time.Time `json:"created_at"`
}

type BudgetDetailResponse struct {
	Budget       BudgetResponse        `json:"budget"`
	Transactions []TransactionResponse `json:"transactions"`
}

type CategoryTotalResponse struct {
	CategoryID   *int    `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Total        float64 `json:"total"`
}

type BudgetSummaryResponse struct {
	Budget     BudgetResponse          `json:"budget"`
	TotalSpent float64                 `json:"total_spent"`
	Remaining  float64                 `json:"remaining"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
}

func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID,
		Month:       budget.Month,
		TotalBudget: budget.TotalBudget,
		CreatedAt:   budget.CreatedAt,
	}
}
