package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrBudgetNotFound = errors.New("budget not found")
	ErrBudgetExists   = errors.New("budget already exists for this month")

	ErrWantsBudgetNotFound = errors.New("wants budget not found")
	ErrWantsBudgetExists   = errors.New("wants budget already exists for this period")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrTransactionNotFound = errors.New("transaction not found")
)
