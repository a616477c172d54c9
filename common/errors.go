package common

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrorCode classifies an AppError so callers can branch without parsing messages.
type ErrorCode string

const (
	CodeNotFound          ErrorCode = "not_found"
	CodeInvalidArgument   ErrorCode = "invalid_argument"
	CodeInsufficientFunds ErrorCode = "insufficient_funds"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Fields returns the error as log fields for logrus.
func (e *AppError) Fields() logrus.Fields {
	fields := logrus.Fields{"error_code": e.Code}
	if e.Err != nil {
		fields["kind"] = e.Err.Error()
	}
	return fields
}

// NotFound reports a lookup for an account id the ledger does not hold.
func NotFound(accountID int) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf("No account found with id: %d", accountID), ErrNotFound)
}

// NegativeAmount reports a deposit (or guarded withdrawal) of a negative amount.
func NegativeAmount(amount float64) *AppError {
	return NewAppError(CodeInvalidArgument, "Negative amount: "+FormatAmount(amount), ErrInvalidArgument)
}

func InsufficientFunds(balance, amount float64) *AppError {
	msg := fmt.Sprintf("Insufficient funds: balance %s, requested %s", FormatAmount(balance), FormatAmount(amount))
	return NewAppError(CodeInsufficientFunds, msg, ErrInsufficientFunds)
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
