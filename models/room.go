package models

import (
	"time"

	"storefront/constants"
)

// DateLayout định dạng ngày dùng chung cho toàn bộ engine
const DateLayout = "02/01/2006"

type Room struct {
	RoomId        uint   `json:"id"`
	HotelID       uint   `json:"hotelId"`
	RoomName      string `json:"roomName"`
	Price         int    `json:"price"`                   // Giá gốc mỗi đêm
	DiscountPrice int    `json:"discountPrice,omitempty"` // Giá ưu đãi mỗi đêm (0 = không có)
	People        int    `json:"people"`                  // Sức chứa tối đa mỗi phòng
	Num           int    `json:"num"`                     // Tổng số phòng của loại này
	Status        int    `json:"status"`
	// InventoryOverrides ghi đè số phòng trống theo ngày (key theo DateLayout).
	// Giá trị ghi đè không bao giờ vượt quá Num.
	InventoryOverrides map[string]int `json:"inventoryOverrides,omitempty"`
}

// NightlyRate trả về giá mỗi đêm đang áp dụng
func (r *Room) NightlyRate() int {
	if r.DiscountPrice > 0 && r.DiscountPrice < r.Price {
		return r.DiscountPrice
	}
	return r.Price
}

// IsAvailable kiểm tra phòng có đang mở bán không
func (r *Room) IsAvailable() bool {
	return r.Status == constants.RoomStatusAvailable
}

// UnitsOn trả về số phòng của ngày date (ghi đè theo ngày nếu có)
func (r *Room) UnitsOn(date time.Time) int {
	if r.InventoryOverrides != nil {
		if units, ok := r.InventoryOverrides[date.Format(DateLayout)]; ok {
			if units > r.Num {
				return r.Num
			}
			if units < 0 {
				return 0
			}
			return units
		}
	}
	return r.Num
}

// RoomBooking là một booking đã tồn tại trên loại phòng, dùng để trừ tồn kho
type RoomBooking struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	RoomsBooked  int    `json:"roomsBooked"`
}

// Covers kiểm tra booking có chiếm phòng vào ngày date không ([checkIn, checkOut))
func (b *RoomBooking) Covers(date time.Time) bool {
	checkIn, err := time.Parse(DateLayout, b.CheckInDate)
	if err != nil {
		return false
	}
	checkOut, err := time.Parse(DateLayout, b.CheckOutDate)
	if err != nil {
		return false
	}
	return !date.Before(checkIn) && date.Before(checkOut)
}
