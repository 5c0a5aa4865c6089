package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Booking errors
	ErrCodeInvalidDateRange   ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeRoomNotFound       ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomUnavailable    ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeBookingNotFound    ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeIllegalTransition  ErrorCode = "ILLEGAL_TRANSITION"
	ErrCodeCodeSpaceExhausted ErrorCode = "CODE_SPACE_EXHAUSTED"
	ErrCodeAlreadySettled     ErrorCode = "ALREADY_SETTLED"

	// Database errors
	ErrCodeDBError         ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound      ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate     ErrorCode = "DB_DUPLICATE"
	ErrCodeStorageConflict ErrorCode = "STORAGE_CONFLICT"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Booking errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room not available")
	ErrBookingNotFound  = errors.New("booking not found")

	// Reference code errors
	ErrCodeDuplicate   = errors.New("reference code already exists")
	ErrCodeSpaceUsedUp = errors.New("reference code space exhausted")

	// Payment errors
	ErrAlreadySettled = errors.New("payment already settled")
	ErrInvalidAmount  = errors.New("invalid amount")

	// Storage errors
	ErrStorageConflict = errors.New("storage conflict, retry the operation")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)

// NewIllegalTransition tạo lỗi chuyển trạng thái không hợp lệ, kèm trạng thái hiện tại và trạng thái yêu cầu
func NewIllegalTransition(current, requested string) *AppError {
	return NewAppError(ErrCodeIllegalTransition,
		fmt.Sprintf("cannot transition from %s to %s", current, requested), nil)
}
