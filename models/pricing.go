package models

// PriceBreakdown là kết quả tính giá theo từng lớp.
// Mọi giá trị là số nguyên theo đơn vị tiền tệ nhỏ nhất của backend.
type PriceBreakdown struct {
	Base     int `json:"base"`     // Giá gốc = giá đêm x số đêm x số phòng
	Seasonal int `json:"seasonal"` // Giảm giá lễ hội đã trừ
	Voucher  int `json:"voucher"`  // Giảm giá voucher đã trừ
	Services int `json:"services"` // Phí dịch vụ cộng thêm
	Total    int `json:"total"`    // Tổng phải trả, không bao giờ âm
}

// SeasonalDiscount là chương trình giảm giá lễ hội theo khách sạn
type SeasonalDiscount struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Percent       int    `json:"percent"`       // Phần trăm giảm trên giá đêm (0 = dùng FixedPerNight)
	FixedPerNight int    `json:"fixedPerNight"` // Mức giảm cố định mỗi đêm
	HotelIDs      []uint `json:"hotelIds"`      // Các khách sạn được áp dụng
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`
}

// AppliesTo kiểm tra khách sạn có thuộc chương trình giảm giá không
func (d *SeasonalDiscount) AppliesTo(hotelID uint) bool {
	for _, id := range d.HotelIDs {
		if id == hotelID {
			return true
		}
	}
	return false
}

// NightlyAmount trả về mức giảm trên một đêm một phòng theo giá đêm rate
func (d *SeasonalDiscount) NightlyAmount(rate int) int {
	if d.Percent > 0 {
		return rate * d.Percent / 100
	}
	return d.FixedPerNight
}

// Service là dịch vụ cộng thêm khách chọn kèm booking
type Service struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// TotalServiceCost cộng dồn giá các dịch vụ đã chọn
func TotalServiceCost(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.Price
	}
	return total
}
