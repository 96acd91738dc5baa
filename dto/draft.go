package dto

import "storefront/models"

// CreateDraftRequest khởi tạo draft khi màn hình đặt phòng mở
type CreateDraftRequest struct {
	HotelID    uint               `json:"hotelId" binding:"required"`
	Stay       models.StayRequest `json:"stay"`
	GuestName  string             `json:"guestName,omitempty"`
	GuestEmail string             `json:"guestEmail,omitempty"`
	GuestPhone string             `json:"guestPhone,omitempty"`
}

// UpdateStayRequest cập nhật ngày ở và số khách của draft
type UpdateStayRequest struct {
	Stay models.StayRequest `json:"stay"`
}

// SelectRoomsRequest cập nhật số phòng đã chọn theo loại phòng
type SelectRoomsRequest struct {
	RoomSelection map[uint]int `json:"roomSelection" binding:"required"`
}

// UpdatePaymentRequest cập nhật phương thức thanh toán của draft
type UpdatePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// UpdateDiscountRequest cập nhật mã giảm giá của draft
type UpdateDiscountRequest struct {
	DiscountCodes []string `json:"discountCodes"`
}

// UpdateServicesRequest thay danh sách dịch vụ cộng thêm của draft
type UpdateServicesRequest struct {
	Services []models.Service `json:"services"`
}

// UpdateSeasonalRequest gắn chương trình giảm giá lễ hội vào draft
type UpdateSeasonalRequest struct {
	Seasonal *models.SeasonalDiscount `json:"seasonal"`
}

// UpdateGuestRequest cập nhật thông tin khách của draft
type UpdateGuestRequest struct {
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

// DraftQuoteResponse là draft kèm kết quả xếp phòng và báo giá mới nhất
type DraftQuoteResponse struct {
	Draft      *models.BookingDraft     `json:"draft"`
	Allocation *models.AllocationResult `json:"allocation,omitempty"`
	Breakdown  *models.PriceBreakdown   `json:"breakdown,omitempty"`
	Notice     string                   `json:"notice,omitempty"` // Thông báo tạm thời (vd: mã giảm giá sai)
}
