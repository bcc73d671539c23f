package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// ErrInvalidAmount is the root of all amount validation failures so
// that callers can match them with errors.Is.
var ErrInvalidAmount = errors.New("invalid amount")

// Transaction errors
var (
	ErrAmountNegative           = fmt.Errorf("%w: amounts must not be negative", ErrInvalidAmount)
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be \"income\" or \"expense\"")
	ErrExpenseCategoryRequired  = errors.New("expense transactions must have a category")
	ErrIncomeCategoryNotAllowed = errors.New("income transactions must not have a category")
)

// Category errors
var (
	ErrCategoryNameRequired  = errors.New("the category name must be set")
	ErrCategoryNameNotUnique = errors.New("a category with this name already exists")
	ErrCategoryIsDefault     = errors.New("the default category cannot be deleted")
)

// Budget errors
var (
	ErrBudgetCategoryRequired = errors.New("the budget category must be set")
	ErrBudgetMonthRequired    = errors.New("the budget month must be set")
	ErrBudgetMonthNotUnique   = errors.New("you can not set multiple budgets for the same category and month")
)

// Goal errors
var (
	ErrGoalTargetNotPositive = fmt.Errorf("%w: goal target amounts must be larger than zero", ErrInvalidAmount)
)

// Account errors
var (
	ErrAccountNameRequired = errors.New("the account name must be set")
)
