package dto

// ApplyDiscountRequest gửi mã giảm giá cho dịch vụ discount định giá
type ApplyDiscountRequest struct {
	Codes        []string `json:"codes"`
	BookingValue int      `json:"bookingValue"` // Giá trị booking sau giảm giá lễ hội
	HotelID      uint     `json:"hotelId"`
}

type AppliedDiscount struct {
	Code   string `json:"code"`
	Amount int    `json:"amount"`
}

type ApplyDiscountResponse struct {
	AppliedDiscounts    []AppliedDiscount `json:"appliedDiscounts"`
	TotalDiscountAmount int               `json:"totalDiscountAmount"`
}
