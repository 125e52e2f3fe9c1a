package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"dealflow/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode проверяет код доменной ошибки в цепочке.
func HasCode(err error, code failure.ErrorCode) bool {
	c, ok := GetCode(err)
	return ok && c == code
}

// IsNotFound — сущность отсутствует в хранилище.
func IsNotFound(err error) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}

	switch code {
	case errcodes.NotFound, errcodes.DealNotFound, errcodes.BuyerNotFound, errcodes.MatchNotFound:
		return true
	default:
		return false
	}
}

// IsConflict — операция противоречит уже существующим данным.
func IsConflict(err error) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}

	return code == errcodes.BuyerEmailTaken || code == errcodes.DealAlreadyIngested
}

// IsInvalidArgument — входные данные не прошли проверку.
func IsInvalidArgument(err error) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}

	switch code {
	case errcodes.ValidationError,
		errcodes.InvalidPaging,
		errcodes.InvalidDealID,
		errcodes.InvalidPrice,
		errcodes.InvalidCategory,
		errcodes.InvalidSource,
		errcodes.InvalidBuyerID,
		errcodes.InvalidBudget,
		errcodes.InvalidMatchID,
		errcodes.InvalidMatchStatus,
		errcodes.InvalidTrackAction:
		return true
	default:
		return false
	}
}
