package models

import (
	"time"
)

// BookingDraft là trạng thái nháp của màn hình đặt phòng.
// Đây là nguồn dữ liệu duy nhất cho mọi thành phần trên màn hình;
// mọi cập nhật đi qua DraftService, không giữ bản sao riêng.
type BookingDraft struct {
	ID            string            `json:"id"`
	HotelID       uint              `json:"hotelId"`
	GuestName     string            `json:"guestName,omitempty"`
	GuestEmail    string            `json:"guestEmail,omitempty"`
	GuestPhone    string            `json:"guestPhone,omitempty"`
	Stay          StayRequest       `json:"stay"`
	RoomSelection map[uint]int      `json:"roomSelection,omitempty"` // roomId -> số phòng
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	DiscountCodes []string          `json:"discountCodes,omitempty"`
	Services      []Service         `json:"services,omitempty"`
	Seasonal      *SeasonalDiscount `json:"seasonal,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SelectedUnits trả về tổng số phòng đã chọn trong draft
func (d *BookingDraft) SelectedUnits() int {
	total := 0
	for _, units := range d.RoomSelection {
		total += units
	}
	return total
}

// SelectedRoomIDs trả về danh sách roomId đã chọn
func (d *BookingDraft) SelectedRoomIDs() []uint {
	ids := make([]uint, 0, len(d.RoomSelection))
	for id := range d.RoomSelection {
		ids = append(ids, id)
	}
	return ids
}
