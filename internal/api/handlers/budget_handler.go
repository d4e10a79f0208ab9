package handlers

import (
	"errors"

	"smsledger/internal/dto"
	"smsledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	userID        uuid.UUID
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, userID uuid.UUID, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		userID:        userID,
		logger:        logger,
	}
}

func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	budget, err := h.budgetService.CreateBudget(c.Context(), h.userID, req.Month, req.TotalBudget)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrBudgetExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A budget for this month already exists"})
		}
		h.logger.Error("Failed to create budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create budget"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) List(c *fiber.Ctx) error {
	budgets, err := h.budgetService.ListBudgets(c.Context(), h.userID)
	if err != nil {
		h.logger.Error("Failed to list budgets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list budgets"})
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, dto.NewBudgetResponse(budget))
	}
	return c.JSON(responses)
}

func (h *BudgetHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid budget id"})
	}

	budget, transactions, err := h.budgetService.GetBudget(c.Context(), h.userID, id)
	if err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget not found"})
		}
		h.logger.Error("Failed to get budget", zap.Int("budget_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get budget"})
	}

	return c.JSON(dto.BudgetDetailResponse{
		Budget:       dto.NewBudgetResponse(budget),
		Transactions: dto.NewTransactionResponses(transactions),
	})
}

func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid budget id"})
	}

	if err := h.budgetService.DeleteBudget(c.Context(), h.userID, id); err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget not found"})
		}
		h.logger.Error("Failed to delete budget", zap.Int("budget_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete budget"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BudgetHandler) Summary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid budget id"})
	}

	summary, err := h.budgetService.Summary(c.Context(), h.userID, id)
	if err != nil {
		if errors.Is(err, service.ErrBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget not found"})
		}
		h.logger.Error("Failed to build budget summary", zap.Int("budget_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build budget summary"})
	}

	byCategory := make([]dto.CategoryTotalResponse, 0, len(summary.ByCategory))
	for _, total := range summary.ByCategory {
		byCategory = append(byCategory, dto.CategoryTotalResponse{
			CategoryID:   total.CategoryID,
			CategoryName: total.CategoryName,
			Total:        total.Total,
		})
	}

	return c.JSON(dto.BudgetSummaryResponse{
		Budget:     dto.NewBudgetResponse(summary.Budget),
		TotalSpent: summary.TotalSpent,
		Remaining:  summary.Budget.TotalBudget - summary.TotalSpent,
		ByCategory: byCategory,
	})
}
