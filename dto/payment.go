package dto

// PaymentDeadlineResponse kết quả kiểm tra hạn chuyển khoản
type PaymentDeadlineResponse struct {
	TimeRemaining int64 `json:"timeRemaining"` // Số giây còn lại
	Expired       bool  `json:"expired"`
}

// CreateGatewayRequest tạo phiên thanh toán trên cổng ngoài
type CreateGatewayRequest struct {
	Amount    int    `json:"amount"`
	OrderID   string `json:"orderId"`
	BookingID uint   `json:"bookingId"`
}

type CreateGatewayResponse struct {
	PayURL string `json:"payUrl"`
}
