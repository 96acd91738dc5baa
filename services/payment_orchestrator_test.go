package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront/backend"
	"storefront/constants"
	"storefront/dto"
	"storefront/errors"
	"storefront/models"
)

// fakeBooking mô phỏng backend đặt phòng cho các test orchestrator
type fakeBooking struct {
	booking       models.Booking
	paymentResult *dto.PaymentResult
	deadline      dto.PaymentDeadlineResponse
	payURL        string

	failCreate   bool
	failDeadline bool

	createCalls   int32
	deadlineCalls int32
	gatewayCalls  int32
	loyaltyCalls  int32
}

func newBookingServer(t *testing.T, fb *fakeBooking) *backend.Client {
	t.Helper()
	mux := http.NewServeMux()
	create := func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.createCalls, 1)
		if fb.failCreate {
			writeEnvelope(w, 0, nil)
			return
		}
		writeEnvelope(w, 1, dto.CreateBookingResponse{Booking: fb.booking, PaymentResult: fb.paymentResult})
	}
	mux.HandleFunc("POST /bookings/create", create)
	mux.HandleFunc("POST /bookings/create-multi", create)
	mux.HandleFunc("GET /bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 1, fb.booking)
	})
	mux.HandleFunc("PUT /bookings/{id}/confirm", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 1, nil)
	})
	mux.HandleFunc("GET /bookings/{id}/payment-deadline", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.deadlineCalls, 1)
		if fb.failDeadline {
			w.WriteHeader(http.StatusInternalServerError)
			writeEnvelope(w, 0, nil)
			return
		}
		writeEnvelope(w, 1, fb.deadline)
	})
	mux.HandleFunc("POST /bookings/checkout", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.loyaltyCalls, 1)
		writeEnvelope(w, 1, dto.LoyaltyCheckoutResponse{PointsEarned: 50, TotalPoints: 150})
	})
	mux.HandleFunc("POST /payments/{provider}/create", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.gatewayCalls, 1)
		writeEnvelope(w, 1, dto.CreateGatewayResponse{PayURL: fb.payURL})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.NewClient(backend.ClientOptions{BaseURL: srv.URL})
}

func testDraft(method string) *models.BookingDraft {
	return &models.BookingDraft{
		ID:      "draft-1",
		HotelID: 10,
		Stay: models.StayRequest{
			CheckInDate:  "01/01/2026",
			CheckOutDate: "03/01/2026",
			Adults:       2,
		},
		RoomSelection: map[uint]int{1: 1},
		PaymentMethod: method,
		GuestName:     "Nguyễn Văn A",
		GuestPhone:    "0901234567",
	}
}

func testCandidates() []models.RoomAvailability {
	return []models.RoomAvailability{
		{Room: models.Room{RoomId: 1, HotelID: 10, People: 2, Price: 500000}, FreeUnits: 3},
	}
}

func newTestOrchestrator(client *backend.Client, loyalty *LoyaltyService) *PaymentOrchestrator {
	return NewPaymentOrchestrator(PaymentOrchestratorOptions{
		Backend:      client,
		Loyalty:      loyalty,
		InitialDelay: 5 * time.Millisecond,
		PollInterval: 5 * time.Millisecond,
	})
}

func waitForStatus(t *testing.T, o *PaymentOrchestrator, bookingID uint, status int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		session, err := o.Session(bookingID)
		if err != nil {
			t.Fatalf("Session trả lỗi: %v", err)
		}
		if session.Status == status {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("booking %d không chuyển sang trạng thái %d", bookingID, status)
}

func TestSubmitRejectsInsufficientCapacity(t *testing.T) {
	fb := &fakeBooking{booking: models.Booking{ID: 7}}
	o := newTestOrchestrator(newBookingServer(t, fb), nil)
	defer o.Shutdown()

	draft := testDraft(constants.PaymentMethodCash)
	draft.Stay.ChildrenAges = []int{8, 7} // 4 khách quy đổi, phòng chỉ chứa 2

	_, _, err := o.Submit(context.Background(), "", draft, testCandidates(), models.PriceBreakdown{Total: 1000000})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeCapacityExceeded {
		t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeCapacityExceeded)
	}
	if atomic.LoadInt32(&fb.createCalls) != 0 {
		t.Error("bị từ chối tại chỗ nhưng vẫn gọi backend")
	}
}

func TestSubmitCashStaysPending(t *testing.T) {
	fb := &fakeBooking{booking: models.Booking{ID: 7}}
	o := newTestOrchestrator(newBookingServer(t, fb), nil)
	defer o.Shutdown()

	session, booking, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodCash), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}
	if booking.ID != 7 {
		t.Errorf("booking ID = %d, muốn 7", booking.ID)
	}
	if session.Status != constants.SessionStatusPending {
		t.Errorf("thanh toán tại quầy phải giữ trạng thái chờ, nhận %d", session.Status)
	}
	if session.Deadline != nil || session.PayURL != "" {
		t.Error("thanh toán tại quầy không có hạn chuyển khoản hay địa chỉ cổng")
	}

	got, err := o.Session(7)
	if err != nil || got.Method != constants.PaymentMethodCash {
		t.Errorf("Session(7) = %+v, %v", got, err)
	}
}

func TestSubmitBankTransferExpiresExactlyOnce(t *testing.T) {
	fb := &fakeBooking{
		booking: models.Booking{ID: 7},
		paymentResult: &dto.PaymentResult{
			TransferInfo:    &models.TransferInstructions{BankName: "VCB", AccountNumber: "001122"},
			DeadlineMinutes: 1,
		},
		deadline: dto.PaymentDeadlineResponse{Expired: true},
	}
	o := newTestOrchestrator(newBookingServer(t, fb), nil)
	defer o.Shutdown()

	session, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodBankTransfer), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}
	if session.Deadline == nil || session.TransferInfo == nil {
		t.Fatal("chuyển khoản phải có hạn và hướng dẫn chuyển khoản")
	}

	waitForStatus(t, o, 7, constants.SessionStatusExpired)

	// Hết hạn rồi thì không thanh toán được nữa
	if _, err := o.Confirm(context.Background(), "", 7); err == nil {
		t.Error("muốn lỗi khi xác nhận session đã hết hạn")
	}
	got, _ := o.Session(7)
	if got.Status != constants.SessionStatusExpired {
		t.Errorf("trạng thái = %d, session hết hạn không được đổi nữa", got.Status)
	}

	// Gọi Expire lần nữa là no-op
	o.Expire(7)
	got, _ = o.Session(7)
	if got.Status != constants.SessionStatusExpired {
		t.Errorf("Expire lặp lại làm đổi trạng thái: %d", got.Status)
	}
}

func TestPollStopsOnBackendError(t *testing.T) {
	fb := &fakeBooking{
		booking:      models.Booking{ID: 7},
		failDeadline: true,
	}
	o := newTestOrchestrator(newBookingServer(t, fb), nil)
	defer o.Shutdown()

	_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodBankTransfer), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}

	// Chờ qua vài chu kỳ poll rồi kiểm tra vòng lặp đã dừng hẳn
	time.Sleep(60 * time.Millisecond)
	calls := atomic.LoadInt32(&fb.deadlineCalls)
	if calls != 1 {
		t.Errorf("backend bị gọi %d lần, lỗi mạng phải dừng vòng kiểm tra", calls)
	}
	session, _ := o.Session(7)
	if session.Status != constants.SessionStatusPending {
		t.Errorf("trạng thái = %d, lỗi kiểm tra không được tự hết hạn session", session.Status)
	}
}

func TestSubmitGateway(t *testing.T) {
	t.Run("dung payUrl backend tra kem booking", func(t *testing.T) {
		fb := &fakeBooking{
			booking:       models.Booking{ID: 7},
			paymentResult: &dto.PaymentResult{PayURL: "https://pay.example/abc"},
		}
		o := newTestOrchestrator(newBookingServer(t, fb), nil)
		defer o.Shutdown()

		session, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodMomo), testCandidates(), models.PriceBreakdown{Total: 1000000})
		if err != nil {
			t.Fatalf("Submit trả lỗi: %v", err)
		}
		if session.PayURL != "https://pay.example/abc" {
			t.Errorf("PayURL = %q", session.PayURL)
		}
		if atomic.LoadInt32(&fb.gatewayCalls) != 0 {
			t.Error("đã có payUrl thì không gọi lại cổng thanh toán")
		}
	})

	t.Run("tu tao phien cong khi backend khong tra payUrl", func(t *testing.T) {
		fb := &fakeBooking{
			booking: models.Booking{ID: 7},
			payURL:  "https://pay.example/xyz",
		}
		o := newTestOrchestrator(newBookingServer(t, fb), nil)
		defer o.Shutdown()

		session, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodVNPay), testCandidates(), models.PriceBreakdown{Total: 1000000})
		if err != nil {
			t.Fatalf("Submit trả lỗi: %v", err)
		}
		if session.PayURL != "https://pay.example/xyz" {
			t.Errorf("PayURL = %q", session.PayURL)
		}
		if atomic.LoadInt32(&fb.gatewayCalls) != 1 {
			t.Errorf("cổng thanh toán bị gọi %d lần", fb.gatewayCalls)
		}
	})

	t.Run("cong khong tra dia chi thi bao loi", func(t *testing.T) {
		fb := &fakeBooking{booking: models.Booking{ID: 7}}
		o := newTestOrchestrator(newBookingServer(t, fb), nil)
		defer o.Shutdown()

		_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodMomo), testCandidates(), models.PriceBreakdown{Total: 1000000})
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeGateway {
			t.Fatalf("lỗi = %v, muốn %s", err, errors.ErrCodeGateway)
		}
	})
}

func TestConfirmMarksPaidAndAwardsLoyaltyOnce(t *testing.T) {
	fb := &fakeBooking{
		booking: models.Booking{
			ID:            7,
			Status:        constants.BookingStatusConfirmed,
			PaymentStatus: constants.PaymentStatusPaid,
		},
	}
	client := newBookingServer(t, fb)
	loyalty := NewLoyaltyService(LoyaltyServiceOptions{Backend: client})
	o := newTestOrchestrator(client, loyalty)
	defer o.Shutdown()

	_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodBankTransfer), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}

	session, err := o.Confirm(context.Background(), "", 7)
	if err != nil {
		t.Fatalf("Confirm trả lỗi: %v", err)
	}
	if session.Status != constants.SessionStatusPaid {
		t.Errorf("trạng thái = %d, muốn đã thanh toán", session.Status)
	}
	if atomic.LoadInt32(&fb.loyaltyCalls) != 1 {
		t.Errorf("cộng điểm %d lần, muốn đúng một lần", fb.loyaltyCalls)
	}

	// Xác nhận lặp lại không cộng điểm thêm
	if _, err := o.Confirm(context.Background(), "", 7); err == nil {
		t.Error("muốn lỗi khi xác nhận session đã thanh toán")
	}
	if atomic.LoadInt32(&fb.loyaltyCalls) != 1 {
		t.Errorf("cộng điểm %d lần sau xác nhận lặp", fb.loyaltyCalls)
	}
}

func TestRecheckPicksUpPaidBooking(t *testing.T) {
	fb := &fakeBooking{booking: models.Booking{ID: 7}}
	client := newBookingServer(t, fb)
	o := newTestOrchestrator(client, nil)
	defer o.Shutdown()

	_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodCash), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}

	// Backend chưa ghi nhận thanh toán
	session, err := o.Recheck(context.Background(), "", 7)
	if err != nil {
		t.Fatalf("Recheck trả lỗi: %v", err)
	}
	if session.Status != constants.SessionStatusPending {
		t.Errorf("trạng thái = %d, muốn vẫn chờ", session.Status)
	}

	// Lễ tân xác nhận trên backend, khách bấm kiểm tra lại
	fb.booking.Status = constants.BookingStatusConfirmed
	fb.booking.PaymentStatus = constants.PaymentStatusPaid
	session, err = o.Recheck(context.Background(), "", 7)
	if err != nil {
		t.Fatalf("Recheck trả lỗi: %v", err)
	}
	if session.Status != constants.SessionStatusPaid {
		t.Errorf("trạng thái = %d, muốn đã thanh toán", session.Status)
	}
}

func TestSubmitFailureLeavesNoSession(t *testing.T) {
	fb := &fakeBooking{failCreate: true}
	o := newTestOrchestrator(newBookingServer(t, fb), nil)
	defer o.Shutdown()

	_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodCash), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err == nil {
		t.Fatal("muốn lỗi khi backend từ chối tạo booking")
	}
	if _, err := o.Session(0); err == nil {
		t.Error("không được giữ session cho booking tạo thất bại")
	}
}

func TestSweepExpired(t *testing.T) {
	fb := &fakeBooking{booking: models.Booking{ID: 7}}
	o := NewPaymentOrchestrator(PaymentOrchestratorOptions{
		Backend:      newBookingServer(t, fb),
		InitialDelay: time.Hour, // timer theo session không kịp chạy trong test
		PollInterval: time.Hour,
	})
	defer o.Shutdown()

	_, _, err := o.Submit(context.Background(), "", testDraft(constants.PaymentMethodBankTransfer), testCandidates(), models.PriceBreakdown{Total: 1000000})
	if err != nil {
		t.Fatalf("Submit trả lỗi: %v", err)
	}

	if n := o.SweepExpired(time.Now()); n != 0 {
		t.Errorf("chưa tới hạn mà quét được %d session", n)
	}

	if n := o.SweepExpired(time.Now().Add(24 * time.Hour)); n != 1 {
		t.Errorf("quét được %d session, muốn 1", n)
	}
	session, _ := o.Session(7)
	if session.Status != constants.SessionStatusExpired {
		t.Errorf("trạng thái = %d, muốn hết hạn", session.Status)
	}

	if n := o.SweepExpired(time.Now().Add(48 * time.Hour)); n != 0 {
		t.Errorf("session đã hết hạn mà vẫn quét được %d", n)
	}
}
