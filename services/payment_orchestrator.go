package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront/backend"
	"storefront/constants"
	"storefront/dto"
	"storefront/errors"
	"storefront/models"
	"storefront/services/logger"
)

// PaymentOrchestrator dẫn booking từ lúc tạo tới trạng thái thanh toán
// cuối cùng. Vòng đời: Draft -> Submitting -> {chờ chuyển khoản,
// chờ thanh toán tại quầy, chuyển hướng sang cổng} -> {Paid, Canceled,
// Expired}. Lỗi mạng khi submit giữ nguyên draft để khách thử lại.
type PaymentOrchestrator struct {
	backend      *backend.Client
	loyalty      *LoyaltyService
	notifier     *NotifyService
	logger       logger.Logger
	initialDelay time.Duration
	pollInterval time.Duration

	mu       sync.Mutex
	sessions map[uint]*sessionEntry
}

type sessionEntry struct {
	session *models.PaymentSession
	token   string
	cancel  context.CancelFunc
}

type PaymentOrchestratorOptions struct {
	Backend      *backend.Client
	Loyalty      *LoyaltyService
	Notifier     *NotifyService
	Logger       logger.Logger
	InitialDelay time.Duration // Chờ trước lần kiểm tra hạn đầu tiên
	PollInterval time.Duration // Chu kỳ kiểm tra hạn chuyển khoản
}

// NewPaymentOrchestrator tạo instance mới của PaymentOrchestrator
func NewPaymentOrchestrator(opts PaymentOrchestratorOptions) *PaymentOrchestrator {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.InitialDelay == 0 {
		opts.InitialDelay = 5 * time.Second
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = 30 * time.Second
	}
	return &PaymentOrchestrator{
		backend:      opts.Backend,
		loyalty:      opts.Loyalty,
		notifier:     opts.Notifier,
		logger:       opts.Logger,
		initialDelay: opts.InitialDelay,
		pollInterval: opts.PollInterval,
		sessions:     make(map[uint]*sessionEntry),
	}
}

// Submit gửi draft đi đặt phòng rồi rẽ nhánh theo phương thức thanh toán.
// rooms là các ứng viên đã resolve cho lựa chọn phòng của draft; tổng sức
// chứa của lựa chọn phải đủ cho số khách, nếu không thì từ chối tại chỗ
// và không gọi mạng.
func (o *PaymentOrchestrator) Submit(ctx context.Context, token string, draft *models.BookingDraft, rooms []models.RoomAvailability, breakdown models.PriceBreakdown) (*models.PaymentSession, *models.Booking, error) {
	required := draft.Stay.TotalGuests()

	capacity := 0
	roomByID := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		roomByID[r.Room.RoomId] = r.Room
	}
	for roomID, units := range draft.RoomSelection {
		room, ok := roomByID[roomID]
		if !ok {
			return nil, nil, errors.NewAppError(errors.ErrCodeValidation, "Phòng đã chọn không còn trong danh sách", nil)
		}
		capacity += room.People * units
	}

	if capacity < required {
		return nil, nil, errors.NewAppError(errors.ErrCodeCapacityExceeded,
			fmt.Sprintf("Phòng đã chọn chỉ đủ cho %d khách, cần chỗ cho %d khách", capacity, required), nil)
	}

	resp, err := o.createBooking(ctx, token, draft, breakdown.Total)
	if err != nil {
		// Draft giữ nguyên, khách có thể gửi lại
		return nil, nil, err
	}

	session := &models.PaymentSession{
		BookingID: resp.Booking.ID,
		Method:    draft.PaymentMethod,
		Status:    constants.SessionStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch draft.PaymentMethod {
	case constants.PaymentMethodCash:
		// Thanh toán tại quầy: booking giữ trạng thái chờ cho tới khi
		// lễ tân xác nhận lúc nhận phòng; engine không theo dõi thêm.
		o.register(session, token, false)

	case constants.PaymentMethodBankTransfer:
		minutes := 15
		if resp.PaymentResult != nil {
			if resp.PaymentResult.DeadlineMinutes > 0 {
				minutes = resp.PaymentResult.DeadlineMinutes
			}
			if info := resp.PaymentResult.TransferInfo; info != nil {
				if err := info.Validate(); err != nil {
					o.logger.Warn("hướng dẫn chuyển khoản của booking %d thiếu thông tin: %v", resp.Booking.ID, err)
				}
				session.TransferInfo = info
			}
		}
		deadline := time.Now().Add(time.Duration(minutes) * time.Minute)
		session.Deadline = &deadline
		o.register(session, token, true)

	case constants.PaymentMethodMomo, constants.PaymentMethodVNPay:
		payURL := ""
		if resp.PaymentResult != nil {
			payURL = resp.PaymentResult.PayURL
		}
		if payURL == "" {
			payURL, err = o.backend.CreateGatewayPayment(ctx, token, draft.PaymentMethod, dto.CreateGatewayRequest{
				Amount:    breakdown.Total,
				OrderID:   draft.ID,
				BookingID: resp.Booking.ID,
			})
			if err != nil {
				return nil, nil, err
			}
		}
		// Khách rời trang sang cổng thanh toán; kết quả được xử lý ở
		// luồng callback riêng, ngoài phạm vi engine.
		session.PayURL = payURL
		o.register(session, token, false)

	default:
		return nil, nil, errors.NewAppError(errors.ErrCodeValidation, "Phương thức thanh toán không hợp lệ", nil)
	}

	if o.notifier != nil {
		o.notifier.SessionChanged(session)
	}
	booking := resp.Booking
	return session, &booking, nil
}

func (o *PaymentOrchestrator) createBooking(ctx context.Context, token string, draft *models.BookingDraft, total int) (*dto.CreateBookingResponse, error) {
	customer := dto.CustomerInfo{
		Name:  draft.GuestName,
		Email: draft.GuestEmail,
		Phone: draft.GuestPhone,
	}

	if len(draft.RoomSelection) == 1 {
		for roomID, units := range draft.RoomSelection {
			return o.backend.CreateBooking(ctx, token, dto.CreateBookingRequest{
				RoomID:        roomID,
				Units:         units,
				CheckInDate:   draft.Stay.CheckInDate,
				CheckOutDate:  draft.Stay.CheckOutDate,
				Adults:        draft.Stay.Adults,
				ChildrenAges:  draft.Stay.ChildrenAges,
				PaymentMethod: draft.PaymentMethod,
				TotalAmount:   total,
				DiscountCodes: draft.DiscountCodes,
				Customer:      customer,
			})
		}
	}

	rooms := make([]dto.BookingRoomInput, 0, len(draft.RoomSelection))
	for roomID, units := range draft.RoomSelection {
		rooms = append(rooms, dto.BookingRoomInput{RoomID: roomID, Units: units})
	}
	return o.backend.CreateMultiBooking(ctx, token, dto.CreateMultiBookingRequest{
		Rooms:         rooms,
		CheckInDate:   draft.Stay.CheckInDate,
		CheckOutDate:  draft.Stay.CheckOutDate,
		Adults:        draft.Stay.Adults,
		ChildrenAges:  draft.Stay.ChildrenAges,
		PaymentMethod: draft.PaymentMethod,
		TotalAmount:   total,
		Customer:      customer,
	})
}

// register ghi nhận session và mở vòng kiểm tra hạn nếu cần
func (o *PaymentOrchestrator) register(session *models.PaymentSession, token string, poll bool) {
	entry := &sessionEntry{session: session, token: token}

	o.mu.Lock()
	o.sessions[session.BookingID] = entry
	o.mu.Unlock()

	if poll {
		ctx, cancel := context.WithCancel(context.Background())
		entry.cancel = cancel
		go o.pollDeadline(ctx, entry)
	}
}

// pollDeadline kiểm tra hạn chuyển khoản: chờ một nhịp đầu rồi lặp theo
// chu kỳ cố định. Lỗi mạng thì dừng hẳn thay vì thử lại vô hạn; khách
// phải tự kiểm tra lại. Timer bị hủy khi session về trạng thái cuối
// hoặc khách rời màn hình.
func (o *PaymentOrchestrator) pollDeadline(ctx context.Context, entry *sessionEntry) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(o.initialDelay):
	}

	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		deadline, err := o.backend.GetPaymentDeadline(ctx, entry.token, entry.session.BookingID)
		if err != nil {
			o.logger.Error("kiểm tra hạn thanh toán booking %d thất bại, dừng theo dõi: %v", entry.session.BookingID, err)
			return
		}
		if deadline.Expired || deadline.TimeRemaining <= 0 {
			o.Expire(entry.session.BookingID)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Session trả về phiên thanh toán đang theo dõi của booking
func (o *PaymentOrchestrator) Session(bookingID uint) (*models.PaymentSession, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry, ok := o.sessions[bookingID]
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	clone := *entry.session
	return &clone, nil
}

// Confirm xác nhận thanh toán thủ công (nút "mô phỏng chuyển khoản"):
// báo backend rồi chuyển session sang Paid và kích hoạt cộng điểm.
func (o *PaymentOrchestrator) Confirm(ctx context.Context, token string, bookingID uint) (*models.PaymentSession, error) {
	if err := o.backend.ConfirmPayment(ctx, token, bookingID); err != nil {
		return nil, err
	}
	return o.markPaid(ctx, token, bookingID)
}

// Recheck đọc lại booking từ backend; nếu đã thanh toán thì chuyển
// session sang Paid. Dùng khi khách bấm kiểm tra lại bằng tay.
func (o *PaymentOrchestrator) Recheck(ctx context.Context, token string, bookingID uint) (*models.PaymentSession, error) {
	booking, err := o.backend.GetBooking(ctx, token, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != constants.PaymentStatusPaid {
		return o.Session(bookingID)
	}
	return o.markPaid(ctx, token, bookingID)
}

// markPaid chuyển session sang Paid đúng một lần rồi kích hoạt cộng điểm.
// Lỗi cộng điểm không làm hỏng booking.
func (o *PaymentOrchestrator) markPaid(ctx context.Context, token string, bookingID uint) (*models.PaymentSession, error) {
	o.mu.Lock()
	entry, ok := o.sessions[bookingID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.ErrSessionNotFound
	}

	if err := models.GetSessionState(entry.session.Status).Pay(entry.session); err != nil {
		clone := *entry.session
		o.mu.Unlock()
		return &clone, errors.NewAppError(errors.ErrCodePaymentSession, "Phiên thanh toán đã kết thúc", err)
	}
	entry.session.UpdatedAt = time.Now()
	if entry.cancel != nil {
		entry.cancel()
		entry.cancel = nil
	}
	clone := *entry.session
	o.mu.Unlock()

	if o.notifier != nil {
		o.notifier.SessionChanged(&clone)
	}

	if o.loyalty != nil {
		if _, err := o.loyalty.OnBookingSettled(ctx, token, bookingID); err != nil {
			o.logger.Warn("không cộng được điểm cho booking %d: %v", bookingID, err)
		}
	}
	return &clone, nil
}

// Expire chuyển session sang Expired đúng một lần. Các lần gọi sau khi
// session đã ở trạng thái cuối là no-op, không lặp lại side effect hủy.
func (o *PaymentOrchestrator) Expire(bookingID uint) {
	o.mu.Lock()
	entry, ok := o.sessions[bookingID]
	if !ok {
		o.mu.Unlock()
		return
	}
	if err := models.GetSessionState(entry.session.Status).Expire(entry.session); err != nil {
		o.mu.Unlock()
		return
	}
	entry.session.UpdatedAt = time.Now()
	if entry.cancel != nil {
		entry.cancel()
		entry.cancel = nil
	}
	clone := *entry.session
	o.mu.Unlock()

	o.logger.Info("booking %d hết hạn chuyển khoản, coi như đã hủy", bookingID)
	if o.notifier != nil {
		o.notifier.SessionChanged(&clone)
	}
}

// Unregister dừng theo dõi session khi khách rời màn hình đặt phòng,
// tránh timer cũ sửa trạng thái sau khi khách đã đi.
func (o *PaymentOrchestrator) Unregister(bookingID uint) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry, ok := o.sessions[bookingID]
	if !ok {
		return
	}
	if entry.cancel != nil {
		entry.cancel()
		entry.cancel = nil
	}
	delete(o.sessions, bookingID)
}

// Shutdown hủy toàn bộ timer đang chạy
func (o *PaymentOrchestrator) Shutdown() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, entry := range o.sessions {
		if entry.cancel != nil {
			entry.cancel()
			entry.cancel = nil
		}
	}
}

// SweepExpired là lưới an toàn chạy theo cron: quét các session chuyển
// khoản còn chờ mà đã quá hạn. Nhờ Expire chặn trạng thái cuối nên chạy
// chồng với timer theo session vẫn vô hại.
func (o *PaymentOrchestrator) SweepExpired(now time.Time) int {
	o.mu.Lock()
	var overdue []uint
	for bookingID, entry := range o.sessions {
		s := entry.session
		if s.Method == constants.PaymentMethodBankTransfer && !s.Terminal() && s.Deadline != nil && s.Deadline.Before(now) {
			overdue = append(overdue, bookingID)
		}
	}
	o.mu.Unlock()

	for _, bookingID := range overdue {
		o.Expire(bookingID)
	}
	return len(overdue)
}
