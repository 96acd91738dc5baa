package models

import "time"

// LoyaltyTransaction ghi nhận điểm thưởng cho một booking đã tất toán.
// Mỗi booking chỉ có tối đa một giao dịch điểm.
type LoyaltyTransaction struct {
	BookingID   uint      `json:"bookingId"`
	Points      int       `json:"points"`
	TotalPoints int       `json:"totalPoints"` // Số dư điểm sau khi cộng
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}
