package services

import (
	"sort"

	"storefront/models"
)

// Cả hai thuật toán xếp phòng dùng chung một chính sách:
// ưu tiên ít phòng nhất, sức chứa lớn trước.

// sortByCapacityDesc lọc phòng đang mở bán rồi xếp giảm dần theo sức chứa.
// Phòng cùng sức chứa giữ nguyên thứ tự đầu vào.
func sortByCapacityDesc(rooms []models.RoomAvailability) []models.RoomAvailability {
	candidates := make([]models.RoomAvailability, 0, len(rooms))
	for _, r := range rooms {
		if r.Room.IsAvailable() {
			candidates = append(candidates, r)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Room.People > candidates[j].Room.People
	})
	return candidates
}

// AutoAllocateByGuests chọn tổ hợp phòng phủ đủ totalGuests khách:
// duyệt phòng theo sức chứa giảm dần, mỗi loại lấy
// ceil(số khách còn lại / sức chứa) phòng nhưng không quá số phòng trống.
// Success = true khi toàn bộ khách có chỗ; Shortfall là số khách còn thiếu.
// totalGuests <= 0 là lỗi đầu vào của caller, cần chặn ở tầng validate.
func AutoAllocateByGuests(rooms []models.RoomAvailability, totalGuests int) models.AllocationResult {
	result := models.AllocationResult{Picks: []models.RoomPick{}}

	if totalGuests <= 0 {
		result.Success = true
		return result
	}

	candidates := sortByCapacityDesc(rooms)
	if len(candidates) == 0 {
		result.Shortfall = totalGuests
		return result
	}

	remaining := totalGuests
	for _, cand := range candidates {
		if remaining <= 0 {
			break
		}
		if cand.Room.People <= 0 || cand.FreeUnits <= 0 {
			continue
		}

		need := (remaining + cand.Room.People - 1) / cand.Room.People
		if need > cand.FreeUnits {
			need = cand.FreeUnits
		}

		result.Picks = append(result.Picks, models.RoomPick{Room: cand.Room, Units: need})
		remaining -= need * cand.Room.People
	}

	result.Success = remaining <= 0
	if remaining > 0 {
		result.Shortfall = remaining
	}
	return result
}

// SuggestCombo gợi ý đúng roomsNeeded phòng (cho phép lặp lại cùng loại)
// thay vì số phòng tối thiểu: tiêu thụ loại lớn trước cho tới khi đủ khách
// hoặc đủ phòng, phần còn thiếu lấp bằng loại nhỏ nhất để tránh thừa chỗ.
// Hàm không thất bại; caller phải tự kiểm tra tổng sức chứa trước khi
// coi gợi ý là đặt được.
func SuggestCombo(rooms []models.RoomAvailability, totalGuests, roomsNeeded int) []models.RoomPick {
	if roomsNeeded <= 0 {
		return []models.RoomPick{}
	}

	candidates := sortByCapacityDesc(rooms)
	if len(candidates) == 0 {
		return []models.RoomPick{}
	}

	picks := make([]models.RoomPick, 0, roomsNeeded)
	remaining := totalGuests

	for _, cand := range candidates {
		if len(picks) >= roomsNeeded || remaining <= 0 {
			break
		}
		taken := 0
		for len(picks) < roomsNeeded && remaining > 0 && taken < cand.FreeUnits {
			picks = append(picks, models.RoomPick{Room: cand.Room, Units: 1})
			remaining -= cand.Room.People
			taken++
		}
	}

	// Lấp phần còn thiếu bằng loại phòng nhỏ nhất
	smallest := candidates[len(candidates)-1]
	for len(picks) < roomsNeeded {
		picks = append(picks, models.RoomPick{Room: smallest.Room, Units: 1})
	}

	return picks
}
