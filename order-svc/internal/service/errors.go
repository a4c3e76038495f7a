package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRestaurantClosed   = errors.New("restaurant is closed")
	ErrMinimumOrderNotMet = errors.New("minimum order amount not met")
	ErrInvalidTransition  = errors.New("order cannot be cancelled")
	ErrStorage            = errors.New("storage failure")
)

// MinimumOrderError reports the restaurant threshold the cart fell short of.
type MinimumOrderError struct {
	Minimum  int64
	Subtotal int64
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order amount is %d", e.Minimum)
}

func (e *MinimumOrderError) Is(target error) bool {
	return target == ErrMinimumOrderNotMet
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidAddress    = "INVALID_ADDRESS"
	CodeEmptyCart         = "EMPTY_CART"
	CodeRestaurantClosed  = "RESTAURANT_CLOSED"
	CodeMinimumOrder      = "MINIMUM_ORDER_NOT_MET"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeStorage           = "STORAGE_ERROR"
)

// ErrorCode maps an error to its stable wire code. Unknown errors are storage failures.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrEmptyCart):
		return CodeEmptyCart
	case errors.Is(err, ErrRestaurantClosed):
		return CodeRestaurantClosed
	case errors.Is(err, ErrMinimumOrderNotMet):
		return CodeMinimumOrder
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	default:
		return CodeStorage
	}
}
