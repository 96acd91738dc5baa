package services

import (
	"context"
	"sync"
	"time"

	"storefront/backend"
	"storefront/dto"
	"storefront/models"
	"storefront/services/logger"
)

// ResolveAvailability tính số phòng trống tối thiểu của một loại phòng
// trong [checkIn, checkOut): mỗi ngày lấy tồn kho (có ghi đè theo ngày)
// trừ đi số phòng của các booking chồng lấn, kỳ nghỉ chỉ trống bằng
// ngày chật nhất. Ngày thiếu hoặc sai (checkout <= checkin) thì trả về
// tổng số phòng vì không lọc được theo ngày.
func ResolveAvailability(room *models.Room, bookings []models.RoomBooking, checkInDate, checkOutDate string) int {
	checkIn, err := time.Parse(models.DateLayout, checkInDate)
	if err != nil {
		return room.Num
	}
	checkOut, err := time.Parse(models.DateLayout, checkOutDate)
	if err != nil || !checkOut.After(checkIn) {
		return room.Num
	}

	minFree := -1
	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		free := room.UnitsOn(date)
		for i := range bookings {
			if bookings[i].RoomID == room.RoomId && bookings[i].Covers(date) {
				free -= bookings[i].RoomsBooked
			}
		}
		if free < 0 {
			free = 0
		}
		if minFree < 0 || free < minFree {
			minFree = free
		}
	}
	if minFree < 0 {
		return room.Num
	}
	return minFree
}

// InventoryService hỏi backend số phòng trống và phát sự kiện cho UI
type InventoryService struct {
	backend  *backend.Client
	notifier *NotifyService
	logger   logger.Logger
	fanout   int
}

type InventoryServiceOptions struct {
	Backend  *backend.Client
	Notifier *NotifyService
	Logger   logger.Logger
	Fanout   int // Số request kiểm tra phòng chạy song song tối đa
}

// NewInventoryService tạo instance mới của InventoryService
func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Fanout <= 0 {
		opts.Fanout = 4
	}
	return &InventoryService{
		backend:  opts.Backend,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		fanout:   opts.Fanout,
	}
}

// CheckRooms hỏi số phòng trống cho từng loại phòng trong kỳ nghỉ.
// Các request chạy song song có giới hạn; kết quả gắn theo roomId nên
// thứ tự phản hồi không quan trọng. Xong thì phát availability.changed
// để các bộ chọn số lượng trên UI tính lại.
func (s *InventoryService) CheckRooms(ctx context.Context, token string, roomIDs []uint, checkInDate, checkOutDate string) (map[uint]int, error) {
	freeUnits := make(map[uint]int, len(roomIDs))
	if len(roomIDs) == 0 {
		return freeUnits, nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	sem := make(chan struct{}, s.fanout)

	for _, roomID := range roomIDs {
		wg.Add(1)
		go func(roomID uint) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			units, err := s.backend.CheckAvailability(ctx, token, dto.CheckAvailabilityRequest{
				RoomID:   roomID,
				CheckIn:  checkInDate,
				CheckOut: checkOutDate,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			freeUnits[roomID] = units
		}(roomID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if s.notifier != nil {
		s.notifier.AvailabilityChanged(checkInDate, checkOutDate, freeUnits)
	}
	return freeUnits, nil
}

// ResolveRoom lấy chi tiết phòng từ backend và tự tính số phòng trống
// từ tồn kho và các booking hiện có (dùng khi cần breakdown theo ngày).
func (s *InventoryService) ResolveRoom(ctx context.Context, token string, roomID uint, checkInDate, checkOutDate string) (*models.Room, int, error) {
	detail, err := s.backend.GetRoomByID(ctx, token, roomID)
	if err != nil {
		return nil, 0, err
	}
	free := ResolveAvailability(&detail.Room, detail.Bookings, checkInDate, checkOutDate)
	return &detail.Room, free, nil
}
