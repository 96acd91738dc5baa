package backend

import (
	"context"
	"fmt"

	"storefront/dto"
	"storefront/models"
)

// CreateBooking tạo booking một loại phòng
func (c *Client) CreateBooking(ctx context.Context, token string, req dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	var out dto.CreateBookingResponse
	if err := c.post(ctx, "/bookings/create", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMultiBooking tạo booking nhiều loại phòng
func (c *Client) CreateMultiBooking(ctx context.Context, token string, req dto.CreateMultiBookingRequest) (*dto.CreateBookingResponse, error) {
	var out dto.CreateBookingResponse
	if err := c.post(ctx, "/bookings/create-multi", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBooking đọc trạng thái mới nhất của booking
func (c *Client) GetBooking(ctx context.Context, token string, bookingID uint) (*models.Booking, error) {
	var out models.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", bookingID), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPayment xác nhận thanh toán thủ công (mô phỏng chuyển khoản)
func (c *Client) ConfirmPayment(ctx context.Context, token string, bookingID uint) error {
	return c.put(ctx, fmt.Sprintf("/bookings/%d/confirm", bookingID), token, nil, nil)
}

// GetPaymentDeadline kiểm tra hạn chuyển khoản của booking
func (c *Client) GetPaymentDeadline(ctx context.Context, token string, bookingID uint) (*dto.PaymentDeadlineResponse, error) {
	var out dto.PaymentDeadlineResponse
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d/payment-deadline", bookingID), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoyaltyCheckout cộng điểm thưởng cho booking đã tất toán
func (c *Client) LoyaltyCheckout(ctx context.Context, token string, bookingID uint) (*dto.LoyaltyCheckoutResponse, error) {
	var out dto.LoyaltyCheckoutResponse
	req := dto.LoyaltyCheckoutRequest{BookingID: bookingID}
	if err := c.post(ctx, "/bookings/checkout", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
