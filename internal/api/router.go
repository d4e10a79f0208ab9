package api

import (
	"smsledger/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRouter(
	smsHandler *handlers.SMSHandler,
	budgetHandler *handlers.BudgetHandler,
	categoryHandler *handlers.CategoryHandler,
	transactionHandler *handlers.TransactionHandler,
	wantsHandler *handlers.WantsHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Twilio webhook. Form-encoded, signature-verified in the handler;
	// never behind JSON middleware.
	app.Post("/api/sms", smsHandler.Receive)

	// Dashboard-facing JSON API
	v1 := app.Group("/api/v1")

	budgets := v1.Group("/budgets")
	budgets.Post("", budgetHandler.Create)
	budgets.Get("", budgetHandler.List)
	budgets.Get("/:id", budgetHandler.Get)
	budgets.Get("/:id/summary", budgetHandler.Summary)
	budgets.Delete("/:id", budgetHandler.Delete)

	categories := v1.Group("/categories")
	categories.Post("", categoryHandler.Create)
	categories.Get("", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	transactions := v1.Group("/transactions")
	transactions.Post("", transactionHandler.Create)
	transactions.Patch("/:id/category", transactionHandler.UpdateCategory)
	transactions.Delete("/:id", transactionHandler.Delete)

	wants := v1.Group("/wants")
	wants.Post("/budgets", wantsHandler.CreateBudget)
	wants.Get("/budgets", wantsHandler.ListBudgets)
	wants.Get("/budgets/current", wantsHandler.CurrentBudget)
	wants.Get("/budgets/:id", wantsHandler.GetBudget)
	wants.Delete("/budgets/:id", wantsHandler.DeleteBudget)
	wants.Post("/transactions", wantsHandler.CreateTransaction)
	wants.Delete("/transactions/:id", wantsHandler.DeleteTransaction)

	return app
}
