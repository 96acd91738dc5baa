package services

import (
	"context"
	"sync"
	"time"

	"storefront/backend"
	"storefront/errors"
	"storefront/models"
	"storefront/services/logger"
)

// LoyaltyService cộng điểm thưởng khi booking đạt trạng thái
// đã xác nhận và đã thanh toán. Lỗi ở đây không bao giờ làm hỏng
// booking: chỉ phần điểm bị bỏ qua và khách được thông báo.
type LoyaltyService struct {
	backend  *backend.Client
	notifier *NotifyService
	logger   logger.Logger

	mu      sync.Mutex
	awarded map[uint]*models.LoyaltyTransaction
}

type LoyaltyServiceOptions struct {
	Backend  *backend.Client
	Notifier *NotifyService
	Logger   logger.Logger
}

// NewLoyaltyService tạo instance mới của LoyaltyService
func NewLoyaltyService(opts LoyaltyServiceOptions) *LoyaltyService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &LoyaltyService{
		backend:  opts.Backend,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		awarded:  make(map[uint]*models.LoyaltyTransaction),
	}
}

// OnBookingSettled cộng điểm cho booking: đọc lại booking từ backend
// thay vì tin trạng thái cache cục bộ, chỉ cộng khi booking thực sự
// đã xác nhận và đã thanh toán, và mỗi booking chỉ cộng một lần.
func (s *LoyaltyService) OnBookingSettled(ctx context.Context, token string, bookingID uint) (*models.LoyaltyTransaction, error) {
	s.mu.Lock()
	if tx, ok := s.awarded[bookingID]; ok {
		s.mu.Unlock()
		return tx, nil
	}
	s.mu.Unlock()

	booking, err := s.backend.GetBooking(ctx, token, bookingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeLoyalty, "Không đọc được trạng thái booking", err)
	}
	if !booking.Settled() {
		return nil, errors.NewAppError(errors.ErrCodeLoyalty, "Booking chưa đủ điều kiện cộng điểm", errors.ErrBookingNotSettled)
	}

	resp, err := s.backend.LoyaltyCheckout(ctx, token, bookingID)
	if err != nil {
		// Có thể đã được cộng từ trước hoặc backend từ chối; booking
		// vẫn hợp lệ, chỉ phần điểm bị bỏ qua
		return nil, errors.NewAppError(errors.ErrCodeLoyalty, "Không cộng được điểm thưởng", err)
	}

	tx := &models.LoyaltyTransaction{
		BookingID:   bookingID,
		Points:      resp.PointsEarned,
		TotalPoints: resp.TotalPoints,
		Completed:   true,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.awarded[bookingID] = tx
	s.mu.Unlock()

	s.logger.Info("booking %d được cộng %d điểm, số dư %d", bookingID, tx.Points, tx.TotalPoints)
	if s.notifier != nil {
		s.notifier.LoyaltyAwarded(tx)
	}
	return tx, nil
}
