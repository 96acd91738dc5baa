package services

import (
	json "github.com/goccy/go-json"
	"github.com/olahol/melody"

	"storefront/models"
	"storefront/services/logger"
)

// Tên các sự kiện đẩy xuống màn hình đặt phòng
const (
	EventDraftChanged        = "draft.changed"
	EventAvailabilityChanged = "availability.changed"
	EventSessionChanged      = "session.changed"
	EventLoyaltyAwarded      = "loyalty.awarded"
)

// NotifyService đẩy sự kiện realtime xuống các màn hình qua websocket,
// thay cho kiểu bắn custom event rải rác giữa các component.
type NotifyService struct {
	m      *melody.Melody
	logger logger.Logger
}

type NotifyServiceOptions struct {
	Melody *melody.Melody
	Logger logger.Logger
}

// NewNotifyService tạo instance mới của NotifyService
func NewNotifyService(opts NotifyServiceOptions) *NotifyService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &NotifyService{
		m:      opts.Melody,
		logger: opts.Logger,
	}
}

type wsEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func (n *NotifyService) broadcast(event string, data interface{}) {
	if n.m == nil {
		return
	}
	payload, err := json.Marshal(wsEvent{Event: event, Data: data})
	if err != nil {
		n.logger.Error("không mã hóa được sự kiện %s: %v", event, err)
		return
	}
	if err := n.m.Broadcast(payload); err != nil {
		n.logger.Error("không broadcast được sự kiện %s: %v", event, err)
	}
}

// DraftChanged báo draft vừa được cập nhật để các tab khác cùng phiên
// đồng bộ lại màn hình.
func (n *NotifyService) DraftChanged(draft *models.BookingDraft) {
	n.broadcast(EventDraftChanged, draft)
}

// AvailabilityChanged báo cho UI biết số phòng trống vừa được tính lại
// để các bộ chọn số lượng cập nhật mà không cần reload trang.
func (n *NotifyService) AvailabilityChanged(checkIn, checkOut string, freeUnits map[uint]int) {
	n.broadcast(EventAvailabilityChanged, map[string]interface{}{
		"checkInDate":  checkIn,
		"checkOutDate": checkOut,
		"freeUnits":    freeUnits,
	})
}

// SessionChanged báo trạng thái phiên thanh toán vừa thay đổi
func (n *NotifyService) SessionChanged(session *models.PaymentSession) {
	n.broadcast(EventSessionChanged, session)
}

// LoyaltyAwarded báo điểm thưởng vừa được cộng
func (n *NotifyService) LoyaltyAwarded(tx *models.LoyaltyTransaction) {
	n.broadcast(EventLoyaltyAwarded, tx)
}
