package handlers

import (
	"errors"
	"time"

	"smsledger/internal/dto"
	"smsledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	budgetService   *service.BudgetService
	categoryService *service.CategoryService
	userID          uuid.UUID
	logger          *zap.Logger
}

func NewTransactionHandler(
	budgetService *service.BudgetService,
	categoryService *service.CategoryService,
	userID uuid.UUID,
	logger *zap.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		budgetService:   budgetService,
		categoryService: categoryService,
		userID:          userID,
		logger:          logger,
	}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	tx, err := h.budgetService.CreateTransaction(
		c.Context(), h.userID, req.BudgetID, req.Amount, req.CategoryID, req.Note, date,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrBudgetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget not found"})
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// UpdateCategory reassigns a transaction's category by ID or by name
// (resolved case-insensitively), or clears it when neither is given.
func (h *TransactionHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	var req dto.UpdateTransactionCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	categoryID := req.CategoryID
	if categoryID == nil && req.Category != nil {
		category, err := h.categoryService.ResolveByName(c.Context(), h.userID, *req.Category)
		if err != nil {
			if errors.Is(err, service.ErrCategoryNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
			}
			h.logger.Error("Failed to resolve category name", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update transaction"})
		}
		categoryID = &category.ID
	}

	if err := h.budgetService.UpdateTransactionCategory(c.Context(), h.userID, id, categoryID); err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		case errors.Is(err, service.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		h.logger.Error("Failed to update transaction category",
			zap.Int("transaction_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update transaction"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	if err := h.budgetService.DeleteTransaction(c.Context(), h.userID, id); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		}
		h.logger.Error("Failed to delete transaction", zap.Int("transaction_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete transaction"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
