package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	json "github.com/goccy/go-json"

	"storefront/backend"
	"storefront/dto"
	"storefront/models"
)

func TestResolveAvailability(t *testing.T) {
	base := &models.Room{RoomId: 7, Num: 5}
	overridden := &models.Room{
		RoomId: 7,
		Num:    5,
		InventoryOverrides: map[string]int{
			"02/01/2026": 2,
			"03/01/2026": 9, // ghi đè không vượt quá tổng số phòng
		},
	}
	bookings := []models.RoomBooking{
		{RoomID: 7, CheckInDate: "01/01/2026", CheckOutDate: "03/01/2026", RoomsBooked: 2},
		{RoomID: 8, CheckInDate: "01/01/2026", CheckOutDate: "05/01/2026", RoomsBooked: 5},
	}

	tests := []struct {
		name     string
		room     *models.Room
		bookings []models.RoomBooking
		checkIn  string
		checkOut string
		want     int
	}{
		{
			name: "khong co booking thi con nguyen tong so phong",
			room: base, checkIn: "01/01/2026", checkOut: "03/01/2026",
			want: 5,
		},
		{
			name: "tru booking chong lan va bo qua phong khac",
			room: base, bookings: bookings, checkIn: "01/01/2026", checkOut: "03/01/2026",
			want: 3,
		},
		{
			name: "ngay tra phong cua booking cu khong chiem cho",
			room: base, bookings: bookings, checkIn: "03/01/2026", checkOut: "05/01/2026",
			want: 5,
		},
		{
			name: "ghi de ton kho theo ngay de ngay chat nhat quyet dinh",
			room: overridden, bookings: bookings, checkIn: "01/01/2026", checkOut: "04/01/2026",
			want: 0,
		},
		{
			name: "khong bao gio am",
			room: &models.Room{RoomId: 7, Num: 1}, bookings: bookings, checkIn: "01/01/2026", checkOut: "02/01/2026",
			want: 0,
		},
		{
			name: "ngay sai thi tra ve tong so phong",
			room: base, bookings: bookings, checkIn: "2026-01-01", checkOut: "03/01/2026",
			want: 5,
		},
		{
			name: "tra phong truoc nhan phong thi tra ve tong so phong",
			room: base, checkIn: "05/01/2026", checkOut: "02/01/2026",
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAvailability(tt.room, tt.bookings, tt.checkIn, tt.checkOut)
			if got != tt.want {
				t.Errorf("ResolveAvailability = %d, muốn %d", got, tt.want)
			}
		})
	}
}

func TestCheckRoomsKeysResultsByRoom(t *testing.T) {
	var inflight, maxInflight int32
	mux := http.NewServeMux()
	mux.HandleFunc("/rooms/check-availability", func(w http.ResponseWriter, r *http.Request) {
		cur := atomic.AddInt32(&inflight, 1)
		defer atomic.AddInt32(&inflight, -1)
		for {
			seen := atomic.LoadInt32(&maxInflight)
			if cur <= seen || atomic.CompareAndSwapInt32(&maxInflight, seen, cur) {
				break
			}
		}

		var req dto.CheckAvailabilityRequest
		json.NewDecoder(r.Body).Decode(&req)
		// Số phòng trống bằng roomId để kiểm tra kết quả gắn đúng phòng
		writeEnvelope(w, 1, dto.CheckAvailabilityResponse{AvailableUnits: int(req.RoomID)})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := backend.NewClient(backend.ClientOptions{BaseURL: srv.URL})
	svc := NewInventoryService(InventoryServiceOptions{Backend: client, Fanout: 2})

	roomIDs := []uint{3, 1, 4, 2, 5}
	freeUnits, err := svc.CheckRooms(context.Background(), "", roomIDs, "01/01/2026", "03/01/2026")
	if err != nil {
		t.Fatalf("CheckRooms trả lỗi: %v", err)
	}
	if len(freeUnits) != len(roomIDs) {
		t.Fatalf("nhận %d kết quả, muốn %d", len(freeUnits), len(roomIDs))
	}
	for _, roomID := range roomIDs {
		if freeUnits[roomID] != int(roomID) {
			t.Errorf("freeUnits[%d] = %d, kết quả gắn sai phòng", roomID, freeUnits[roomID])
		}
	}
	if atomic.LoadInt32(&maxInflight) > 2 {
		t.Errorf("có %d request chạy song song, vượt giới hạn 2", maxInflight)
	}
}

func TestCheckRoomsPropagatesFirstError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rooms/check-availability", func(w http.ResponseWriter, r *http.Request) {
		var req dto.CheckAvailabilityRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.RoomID == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			writeEnvelope(w, 0, nil)
			return
		}
		writeEnvelope(w, 1, dto.CheckAvailabilityResponse{AvailableUnits: 1})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := backend.NewClient(backend.ClientOptions{BaseURL: srv.URL})
	svc := NewInventoryService(InventoryServiceOptions{Backend: client})

	if _, err := svc.CheckRooms(context.Background(), "", []uint{1, 2, 3}, "01/01/2026", "03/01/2026"); err == nil {
		t.Fatal("muốn lỗi khi một request thất bại")
	}
}

func TestCheckRoomsEmptyInput(t *testing.T) {
	svc := NewInventoryService(InventoryServiceOptions{})
	freeUnits, err := svc.CheckRooms(context.Background(), "", nil, "01/01/2026", "03/01/2026")
	if err != nil {
		t.Fatalf("CheckRooms trả lỗi: %v", err)
	}
	if len(freeUnits) != 0 {
		t.Errorf("muốn map rỗng, nhận %v", freeUnits)
	}
}
