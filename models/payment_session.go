package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"storefront/constants"
)

// TransferInstructions là hướng dẫn chuyển khoản hiển thị cho khách
type TransferInstructions struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	AccountName   string `json:"accountName"`
	Content       string `json:"content"`
	Amount        int    `json:"amount"`
}

// Validate kiểm tra hướng dẫn chuyển khoản backend trả về đủ thông tin
// hiển thị cho khách chưa
func (t *TransferInstructions) Validate() error {
	validate := validator.New()

	if err := validate.Struct(t); err != nil {
		return err
	}

	length := len(t.AccountNumber)
	if length < 8 || length > 17 {
		return fmt.Errorf("số tài khoản phải có từ 8 đến 17 chữ số")
	}
	return nil
}

// PaymentSession theo dõi vòng đời thanh toán của một booking đã tạo
type PaymentSession struct {
	BookingID    uint                  `json:"bookingId"`
	Method       string                `json:"method"`
	Status       int                   `json:"status"`
	TransferInfo *TransferInstructions `json:"transferInfo,omitempty"`
	Deadline     *time.Time            `json:"deadline,omitempty"`
	PayURL       string                `json:"payUrl,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// Terminal kiểm tra session đã ở trạng thái cuối chưa
func (s *PaymentSession) Terminal() bool {
	switch s.Status {
	case constants.SessionStatusPaid, constants.SessionStatusCanceled, constants.SessionStatusExpired:
		return true
	}
	return false
}

// Booking là bản ghi booking đọc từ backend
type Booking struct {
	ID            uint   `json:"id"`
	Status        int    `json:"status"`
	PaymentStatus int    `json:"paymentStatus"`
	TotalPrice    int    `json:"totalPrice"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
}

// Settled kiểm tra booking đã được xác nhận và thanh toán chưa
func (b *Booking) Settled() bool {
	return b.Status == constants.BookingStatusConfirmed && b.PaymentStatus == constants.PaymentStatusPaid
}
