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

type WantsHandler struct {
	wantsService *service.WantsService
	userID       uuid.UUID
	logger       *zap.Logger
}

func NewWantsHandler(wantsService *service.WantsService, userID uuid.UUID, logger *zap.Logger) *WantsHandler {
	return &WantsHandler{
		wantsService: wantsService,
		userID:       userID,
		logger:       logger,
	}
}

func (h *WantsHandler) CreateBudget(c *fiber.Ctx) error {
	var req dto.CreateWantsBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	budget, err := h.wantsService.CreateBudget(c.Context(), h.userID, req.Year, req.Half, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrWantsBudgetExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A wants budget for this period already exists"})
		}
		h.logger.Error("Failed to create wants budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create wants budget"})
	}

	return c.Status(fiber.StatusCreated).JSON(
		dto.NewWantsBudgetResponse(budget, service.PeriodLabel(budget.PeriodStart)),
	)
}

func (h *WantsHandler) ListBudgets(c *fiber.Ctx) error {
	budgets, err := h.wantsService.ListBudgets(c.Context(), h.userID)
	if err != nil {
		h.logger.Error("Failed to list wants budgets", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list wants budgets"})
	}

	responses := make([]dto.WantsBudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, dto.NewWantsBudgetResponse(budget, service.PeriodLabel(budget.PeriodStart)))
	}
	return c.JSON(responses)
}

// CurrentBudget returns the wants budget covering today plus its
// transactions, which is the wants overview screen's data source.
func (h *WantsHandler) CurrentBudget(c *fiber.Ctx) error {
	budget, transactions, err := h.wantsService.CurrentBudget(c.Context(), h.userID)
	if err != nil {
		if errors.Is(err, service.ErrWantsBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No wants budget for the current period"})
		}
		h.logger.Error("Failed to get current wants budget", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get current wants budget"})
	}

	return c.JSON(dto.WantsBudgetDetailResponse{
		Budget:       dto.NewWantsBudgetResponse(budget, service.PeriodLabel(budget.PeriodStart)),
		Transactions: dto.NewWantsTransactionResponses(transactions),
	})
}

func (h *WantsHandler) GetBudget(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wants budget id"})
	}

	budget, transactions, err := h.wantsService.GetBudget(c.Context(), h.userID, id)
	if err != nil {
		if errors.Is(err, service.ErrWantsBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wants budget not found"})
		}
		h.logger.Error("Failed to get wants budget", zap.Int("wants_budget_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get wants budget"})
	}

	return c.JSON(dto.WantsBudgetDetailResponse{
		Budget:       dto.NewWantsBudgetResponse(budget, service.PeriodLabel(budget.PeriodStart)),
		Transactions: dto.NewWantsTransactionResponses(transactions),
	})
}

func (h *WantsHandler) DeleteBudget(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid wants budget id"})
	}

	if err := h.wantsService.DeleteBudget(c.Context(), h.userID, id); err != nil {
		if errors.Is(err, service.ErrWantsBudgetNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wants budget not found"})
		}
		h.logger.Error("Failed to delete wants budget", zap.Int("wants_budget_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete wants budget"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WantsHandler) CreateTransaction(c *fiber.Ctx) error {
	var req dto.CreateWantsTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	tx, err := h.wantsService.CreateTransaction(
		c.Context(), h.userID, req.WantsBudgetID, req.Amount, req.Note, date,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrWantsBudgetNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Wants budget not found"})
		}
		h.logger.Error("Failed to create wants transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create wants transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewWantsTransactionResponse(tx))
}

func (h *WantsHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	if err := h.wantsService.DeleteTransaction(c.Context(), h.userID, id); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		}
		h.logger.Error("Failed to delete wants transaction", zap.Int("transaction_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete wants transaction"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
