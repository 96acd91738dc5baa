package models

// RoomAvailability là một ứng viên cho việc xếp phòng:
// loại phòng kèm số phòng trống đã được resolver xác nhận cho kỳ nghỉ.
type RoomAvailability struct {
	Room      Room `json:"room"`
	FreeUnits int  `json:"freeUnits"`
}

// RoomPick là một lựa chọn (loại phòng, số phòng) trong kết quả xếp phòng
type RoomPick struct {
	Room  Room `json:"room"`
	Units int  `json:"units"`
}

// Capacity trả về sức chứa của lựa chọn
func (p *RoomPick) Capacity() int {
	return p.Room.People * p.Units
}

type AllocationResult struct {
	Picks     []RoomPick `json:"picks"`
	Success   bool       `json:"success"`
	Shortfall int        `json:"shortfall"` // Số khách chưa có chỗ
}

// TotalCapacity trả về tổng sức chứa của toàn bộ lựa chọn
func (a *AllocationResult) TotalCapacity() int {
	total := 0
	for i := range a.Picks {
		total += a.Picks[i].Capacity()
	}
	return total
}

// TotalUnits trả về tổng số phòng được chọn
func (a *AllocationResult) TotalUnits() int {
	total := 0
	for i := range a.Picks {
		total += a.Picks[i].Units
	}
	return total
}
