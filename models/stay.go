package models

import (
	"time"
)

type StayRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"` // Ngày trả phòng (không tính đêm này)
	Adults       int    `json:"adults"`
	ChildrenAges []int  `json:"childrenAges,omitempty"`
	NumRooms     int    `json:"numRooms"`
}

// Dates parse ngày nhận và trả phòng theo DateLayout
func (s *StayRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(DateLayout, s.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(DateLayout, s.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

// Nights trả về số đêm của kỳ nghỉ, 0 nếu ngày không hợp lệ
func (s *StayRequest) Nights() int {
	checkIn, checkOut, err := s.Dates()
	if err != nil || !checkOut.After(checkIn) {
		return 0
	}
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// OccupantBuckets quy đổi trẻ em theo tuổi: từ 6 tuổi tính như người lớn,
// 2-5 tuổi tính một chỗ trẻ em, dưới 2 tuổi không tính chỗ.
func (s *StayRequest) OccupantBuckets() (adultEq int, childEq int) {
	adultEq = s.Adults
	for _, age := range s.ChildrenAges {
		switch {
		case age >= 6:
			adultEq++
		case age >= 2:
			childEq++
		}
	}
	return adultEq, childEq
}

// TotalGuests trả về tổng số khách cần xếp phòng sau khi quy đổi
func (s *StayRequest) TotalGuests() int {
	adultEq, childEq := s.OccupantBuckets()
	return adultEq + childEq
}
