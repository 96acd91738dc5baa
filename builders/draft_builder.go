package builders

import (
	"time"

	"storefront/models"
)

// DraftBuilder giúp tạo booking draft theo từng bước
type DraftBuilder struct {
	draft *models.BookingDraft
}

// NewDraftBuilder tạo instance mới của DraftBuilder
func NewDraftBuilder(id string) *DraftBuilder {
	now := time.Now()
	return &DraftBuilder{
		draft: &models.BookingDraft{
			ID:            id,
			RoomSelection: map[uint]int{},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// WithHotel thêm thông tin khách sạn
func (b *DraftBuilder) WithHotel(hotelID uint) *DraftBuilder {
	b.draft.HotelID = hotelID
	return b
}

// WithStay thêm thông tin lưu trú
func (b *DraftBuilder) WithStay(stay models.StayRequest) *DraftBuilder {
	b.draft.Stay = stay
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *DraftBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *DraftBuilder {
	b.draft.GuestName = guestName
	b.draft.GuestPhone = guestPhone
	b.draft.GuestEmail = guestEmail
	return b
}

// WithRooms thêm lựa chọn phòng
func (b *DraftBuilder) WithRooms(selection map[uint]int) *DraftBuilder {
	for roomID, units := range selection {
		if units > 0 {
			b.draft.RoomSelection[roomID] = units
		}
	}
	return b
}

// WithPaymentMethod thêm hình thức thanh toán
func (b *DraftBuilder) WithPaymentMethod(method string) *DraftBuilder {
	b.draft.PaymentMethod = method
	return b
}

// Build trả về draft đã hoàn chỉnh
func (b *DraftBuilder) Build() *models.BookingDraft {
	return b.draft
}
