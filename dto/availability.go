package dto

// CheckAvailabilityRequest yêu cầu kiểm tra phòng trống cho một loại phòng
type CheckAvailabilityRequest struct {
	RoomID   uint   `json:"roomId"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
}

// CheckAvailabilityResponse số phòng trống tối thiểu trong kỳ nghỉ
type CheckAvailabilityResponse struct {
	AvailableUnits int `json:"availableUnits"`
}
