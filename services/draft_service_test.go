package services

import (
	"context"
	"reflect"
	"testing"

	"storefront/errors"
	"storefront/models"
)

func testStay() models.StayRequest {
	return models.StayRequest{
		CheckInDate:  "01/01/2026",
		CheckOutDate: "03/01/2026",
		Adults:       2,
	}
}

func TestDraftLifecycle(t *testing.T) {
	svc := NewDraftService(DraftServiceOptions{Store: NewMemoryDraftStore()})
	ctx := context.Background()

	draft, err := svc.Create(ctx, 10, testStay())
	if err != nil {
		t.Fatalf("Create trả lỗi: %v", err)
	}
	if draft.ID == "" || draft.HotelID != 10 {
		t.Fatalf("draft = %+v", draft)
	}

	got, err := svc.Get(ctx, draft.ID)
	if err != nil {
		t.Fatalf("Get trả lỗi: %v", err)
	}
	if !reflect.DeepEqual(got.Stay, testStay()) {
		t.Errorf("Stay = %+v", got.Stay)
	}

	if err := svc.Discard(ctx, draft.ID); err != nil {
		t.Fatalf("Discard trả lỗi: %v", err)
	}
	if _, err := svc.Get(ctx, draft.ID); err != errors.ErrDraftNotFound {
		t.Errorf("Get sau Discard = %v, muốn ErrDraftNotFound", err)
	}
}

func TestUpdateStayResetsRoomSelection(t *testing.T) {
	svc := NewDraftService(DraftServiceOptions{Store: NewMemoryDraftStore()})
	ctx := context.Background()

	draft, _ := svc.Create(ctx, 10, testStay())
	if _, err := svc.SelectRooms(ctx, draft.ID, map[uint]int{1: 2}); err != nil {
		t.Fatalf("SelectRooms trả lỗi: %v", err)
	}

	newStay := testStay()
	newStay.CheckOutDate = "05/01/2026"
	got, err := svc.UpdateStay(ctx, draft.ID, newStay)
	if err != nil {
		t.Fatalf("UpdateStay trả lỗi: %v", err)
	}
	if len(got.RoomSelection) != 0 {
		t.Errorf("đổi ngày ở phải xóa lựa chọn phòng cũ, còn %v", got.RoomSelection)
	}
}

func TestSelectRoomsDropsNonPositiveUnits(t *testing.T) {
	svc := NewDraftService(DraftServiceOptions{Store: NewMemoryDraftStore()})
	ctx := context.Background()

	draft, _ := svc.Create(ctx, 10, testStay())
	got, err := svc.SelectRooms(ctx, draft.ID, map[uint]int{1: 2, 2: 0, 3: -1})
	if err != nil {
		t.Fatalf("SelectRooms trả lỗi: %v", err)
	}
	if len(got.RoomSelection) != 1 || got.RoomSelection[1] != 2 {
		t.Errorf("RoomSelection = %v, muốn chỉ giữ phòng 1", got.RoomSelection)
	}
	if got.SelectedUnits() != 2 {
		t.Errorf("SelectedUnits = %d", got.SelectedUnits())
	}
}

func TestSubscribersSeeEveryUpdate(t *testing.T) {
	svc := NewDraftService(DraftServiceOptions{Store: NewMemoryDraftStore()})
	ctx := context.Background()

	var seen []*models.BookingDraft
	svc.Subscribe(func(draft *models.BookingDraft) {
		seen = append(seen, draft)
	})

	draft, _ := svc.Create(ctx, 10, testStay())
	svc.SetPaymentMethod(ctx, draft.ID, "cash")
	svc.SetDiscountCodes(ctx, draft.ID, []string{"TET2026"})

	if len(seen) != 2 {
		t.Fatalf("subscriber nhận %d lần, muốn 2", len(seen))
	}
	if seen[0].PaymentMethod != "cash" {
		t.Errorf("bản cập nhật đầu = %+v", seen[0])
	}
	if len(seen[1].DiscountCodes) != 1 {
		t.Errorf("bản cập nhật hai = %+v", seen[1])
	}
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	draft := &models.BookingDraft{ID: "d1", HotelID: 10}
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("Save trả lỗi: %v", err)
	}

	got, _ := store.Get(ctx, "d1")
	got.HotelID = 99

	again, _ := store.Get(ctx, "d1")
	if again.HotelID != 10 {
		t.Error("sửa bản đọc ra làm đổi dữ liệu trong store")
	}
}

func TestUpdateUnknownDraft(t *testing.T) {
	svc := NewDraftService(DraftServiceOptions{Store: NewMemoryDraftStore()})
	if _, err := svc.SetPaymentMethod(context.Background(), "khong-ton-tai", "cash"); err != errors.ErrDraftNotFound {
		t.Errorf("lỗi = %v, muốn ErrDraftNotFound", err)
	}
}
