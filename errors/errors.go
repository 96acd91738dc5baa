package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidDates  ErrorCode = "INVALID_DATES"
	ErrCodeInvalidGuests ErrorCode = "INVALID_GUESTS"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Allocation / availability errors
	ErrCodeCapacityExceeded     ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeAvailabilityConflict ErrorCode = "AVAILABILITY_CONFLICT"
	ErrCodeNoRoomsAvailable     ErrorCode = "NO_ROOMS_AVAILABLE"

	// Discount errors
	ErrCodeDiscountInvalid   ErrorCode = "DISCOUNT_INVALID"
	ErrCodeDiscountNoSession ErrorCode = "DISCOUNT_NO_SESSION"

	// Payment errors
	ErrCodePaymentSession ErrorCode = "PAYMENT_SESSION_ERROR"
	ErrCodePaymentExpired ErrorCode = "PAYMENT_EXPIRED"
	ErrCodeGateway        ErrorCode = "GATEWAY_ERROR"

	// Loyalty errors
	ErrCodeLoyalty ErrorCode = "LOYALTY_ERROR"

	// Backend errors
	ErrCodeBackend  ErrorCode = "BACKEND_ERROR"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
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
	// Session errors
	ErrSessionNotFound = errors.New("payment session not found")
	ErrSessionTerminal = errors.New("payment session already terminal")
	ErrSessionPaid     = errors.New("payment session already paid")
	ErrSessionCanceled = errors.New("payment session already canceled")
	ErrSessionExpired  = errors.New("payment session already expired")
	ErrNoDeadline      = errors.New("payment session has no deadline")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotSettled = errors.New("booking not confirmed and paid")
	ErrAlreadyAwarded    = errors.New("loyalty points already awarded")

	// Room / allocation errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Draft errors
	ErrDraftNotFound = errors.New("booking draft not found")
)
