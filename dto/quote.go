package dto

import "storefront/models"

// SuggestComboRequest yêu cầu gợi ý tổ hợp phòng cho panel gợi ý
type SuggestComboRequest struct {
	HotelID     uint               `json:"hotelId" binding:"required"`
	Stay        models.StayRequest `json:"stay"`
	RoomsNeeded int                `json:"roomsNeeded" binding:"required"`
}

// QuoteRequest báo giá độc lập cho một loại phòng
type QuoteRequest struct {
	RoomID        uint     `json:"roomId" binding:"required"`
	CheckInDate   string   `json:"checkInDate" binding:"required"`
	CheckOutDate  string   `json:"checkOutDate" binding:"required"`
	Units         int      `json:"units"`
	DiscountCodes []string `json:"discountCodes,omitempty"`
}

// CheckoutRequest gửi draft đi đặt phòng và mở phiên thanh toán
type CheckoutRequest struct {
	DraftID string `json:"draftId" binding:"required"`
}

// CheckoutResponse phiên thanh toán vừa mở cho booking
type CheckoutResponse struct {
	Session   *models.PaymentSession `json:"session"`
	Booking   *models.Booking        `json:"booking"`
	Breakdown *models.PriceBreakdown `json:"breakdown,omitempty"`
}
