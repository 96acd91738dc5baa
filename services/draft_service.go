package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront/builders"
	"storefront/models"
	"storefront/services/logger"
)

// DraftSubscriber nhận draft mới nhất sau mỗi lần cập nhật
type DraftSubscriber func(draft *models.BookingDraft)

// DraftService là đường ghi duy nhất vào BookingDraft.
// Mỗi trường có đúng một hàm cập nhật; sau khi lưu, mọi subscriber
// (bảng phòng, panel gợi ý, form thanh toán) được gọi với bản draft mới.
type DraftService struct {
	store  DraftStore
	logger logger.Logger
	subs   []DraftSubscriber
}

type DraftServiceOptions struct {
	Store  DraftStore
	Logger logger.Logger
}

// NewDraftService tạo instance mới của DraftService
func NewDraftService(opts DraftServiceOptions) *DraftService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &DraftService{
		store:  opts.Store,
		logger: opts.Logger,
	}
}

// Subscribe đăng ký nhận thông báo mỗi khi draft thay đổi.
// Gọi trước khi phục vụ request; không an toàn khi gọi song song với update.
func (s *DraftService) Subscribe(fn DraftSubscriber) {
	s.subs = append(s.subs, fn)
}

func (s *DraftService) notify(draft *models.BookingDraft) {
	for _, fn := range s.subs {
		fn(draft)
	}
}

// Create khởi tạo draft khi màn hình đặt phòng mở
func (s *DraftService) Create(ctx context.Context, hotelID uint, stay models.StayRequest) (*models.BookingDraft, error) {
	draft := builders.NewDraftBuilder(uuid.NewString()).
		WithHotel(hotelID).
		WithStay(stay).
		Build()
	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Get đọc draft theo id
func (s *DraftService) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	return s.store.Get(ctx, id)
}

// Discard xóa draft khi khách rời màn hình hoặc đặt phòng thành công
func (s *DraftService) Discard(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// update đọc, biến đổi rồi lưu draft; đây là đường ghi duy nhất
func (s *DraftService) update(ctx context.Context, id string, mutate func(draft *models.BookingDraft)) (*models.BookingDraft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mutate(draft)
	draft.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.notify(draft)
	return draft, nil
}

// UpdateStay cập nhật ngày ở và số khách; lựa chọn phòng cũ không còn
// chắc chắn hợp lệ nên được tính lại từ đầu.
func (s *DraftService) UpdateStay(ctx context.Context, id string, stay models.StayRequest) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.Stay = stay
		draft.RoomSelection = nil
	})
}

// UpdateGuest cập nhật thông tin liên hệ của khách
func (s *DraftService) UpdateGuest(ctx context.Context, id, name, email, phone string) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.GuestName = name
		draft.GuestEmail = email
		draft.GuestPhone = phone
	})
}

// SelectRooms thay toàn bộ lựa chọn phòng hiện tại
func (s *DraftService) SelectRooms(ctx context.Context, id string, selection map[uint]int) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		cleaned := make(map[uint]int, len(selection))
		for roomID, units := range selection {
			if units > 0 {
				cleaned[roomID] = units
			}
		}
		draft.RoomSelection = cleaned
	})
}

// SetPaymentMethod cập nhật phương thức thanh toán
func (s *DraftService) SetPaymentMethod(ctx context.Context, id, method string) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.PaymentMethod = method
	})
}

// SetDiscountCodes thay danh sách mã giảm giá
func (s *DraftService) SetDiscountCodes(ctx context.Context, id string, codes []string) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.DiscountCodes = codes
	})
}

// SetSeasonal gắn chương trình giảm giá lễ hội đang hiệu lực vào draft.
// Chương trình không áp dụng cho khách sạn của draft vẫn được gắn;
// PricingComposer sẽ tính mức giảm bằng 0 thay vì giữ giá trị cũ.
func (s *DraftService) SetSeasonal(ctx context.Context, id string, seasonal *models.SeasonalDiscount) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.Seasonal = seasonal
	})
}

// SetServices thay danh sách dịch vụ cộng thêm
func (s *DraftService) SetServices(ctx context.Context, id string, services []models.Service) (*models.BookingDraft, error) {
	return s.update(ctx, id, func(draft *models.BookingDraft) {
		draft.Services = services
	})
}
