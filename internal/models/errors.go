package models

import "errors"

var (
	ErrAmountNotPositive    = errors.New("the amount must be larger than zero")
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")
	ErrCategoryInvalid      = errors.New("the specified category does not exist")
	ErrDateNotSet           = errors.New("the date must be set")
	ErrDescriptionNotSet    = errors.New("the description must be set")
)
