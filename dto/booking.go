package dto

import "storefront/models"

// CustomerInfo thông tin khách đặt phòng
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

// CreateBookingRequest tạo booking một loại phòng
type CreateBookingRequest struct {
	RoomID        uint         `json:"roomId"`
	Units         int          `json:"units"`
	CheckInDate   string       `json:"checkInDate"`
	CheckOutDate  string       `json:"checkOutDate"`
	Adults        int          `json:"adults"`
	ChildrenAges  []int        `json:"childrenAges,omitempty"`
	PaymentMethod string       `json:"paymentMethod"`
	TotalAmount   int          `json:"totalAmount"`
	DiscountCodes []string     `json:"discountCodes,omitempty"`
	Customer      CustomerInfo `json:"customer"`
}

// BookingRoomInput một dòng phòng trong booking nhiều loại phòng
type BookingRoomInput struct {
	RoomID uint `json:"roomId"`
	Units  int  `json:"units"`
}

// CreateMultiBookingRequest tạo booking nhiều loại phòng
type CreateMultiBookingRequest struct {
	Rooms         []BookingRoomInput `json:"rooms"`
	CheckInDate   string             `json:"checkInDate"`
	CheckOutDate  string             `json:"checkOutDate"`
	Adults        int                `json:"adults"`
	ChildrenAges  []int              `json:"childrenAges,omitempty"`
	PaymentMethod string             `json:"paymentMethod"`
	TotalAmount   int                `json:"totalAmount"`
	Customer      CustomerInfo       `json:"customer"`
}

// PaymentResult thông tin thanh toán backend trả kèm booking vừa tạo
type PaymentResult struct {
	TransferInfo    *models.TransferInstructions `json:"transferInfo,omitempty"`
	DeadlineMinutes int                          `json:"deadlineMinutes,omitempty"`
	PayURL          string                       `json:"payUrl,omitempty"`
}

// CreateBookingResponse booking vừa tạo kèm thông tin thanh toán nếu có
type CreateBookingResponse struct {
	Booking       models.Booking `json:"booking"`
	PaymentResult *PaymentResult `json:"paymentResult,omitempty"`
}

// RoomDetailResponse phòng kèm các booking hiện có trên loại phòng đó
type RoomDetailResponse struct {
	Room     models.Room          `json:"room"`
	Bookings []models.RoomBooking `json:"bookings,omitempty"`
}
