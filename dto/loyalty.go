package dto

// LoyaltyCheckoutRequest cộng điểm cho booking đã tất toán
type LoyaltyCheckoutRequest struct {
	BookingID uint `json:"bookingId"`
}

type LoyaltyCheckoutResponse struct {
	PointsEarned int `json:"pointsEarned"`
	TotalPoints  int `json:"totalPoints"`
}
