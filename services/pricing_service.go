package services

import (
	"context"

	"storefront/backend"
	"storefront/dto"
	"storefront/errors"
	"storefront/models"
	"storefront/services/logger"
)

// ComputeTotal tính giá theo đúng thứ tự các lớp; thứ tự không đổi được
// vì mỗi phép trừ đều chặn sàn 0 trước khi áp lớp kế tiếp:
//  1. base = giá đêm x số đêm x số phòng
//  2. trừ giảm giá lễ hội (chỉ khi khách sạn thuộc chương trình), chặn 0
//  3. trừ voucher do dịch vụ discount định giá, chặn 0
//  4. cộng phí dịch vụ
// Giảm giá lễ hội không áp dụng cho khách sạn của phòng thì đóng góp 0,
// không giữ lại giá trị đã tính cho phòng trước đó.
func ComputeTotal(room *models.Room, nights, units int, seasonal *models.SeasonalDiscount, voucherAmount, serviceCost int) models.PriceBreakdown {
	var breakdown models.PriceBreakdown

	if nights <= 0 || units <= 0 {
		breakdown.Services = serviceCost
		breakdown.Total = serviceCost
		return breakdown
	}

	rate := room.NightlyRate()
	breakdown.Base = rate * nights * units

	running := breakdown.Base
	if seasonal != nil && seasonal.AppliesTo(room.HotelID) {
		amount := seasonal.NightlyAmount(rate) * nights * units
		if amount > running {
			amount = running
		}
		breakdown.Seasonal = amount
		running -= amount
	}

	if voucherAmount > 0 {
		if voucherAmount > running {
			voucherAmount = running
		}
		breakdown.Voucher = voucherAmount
		running -= voucherAmount
	}

	breakdown.Services = serviceCost
	breakdown.Total = running + serviceCost
	return breakdown
}

// PricingService ghép ComputeTotal với dịch vụ discount bên ngoài
type PricingService struct {
	backend *backend.Client
	logger  logger.Logger
}

type PricingServiceOptions struct {
	Backend *backend.Client
	Logger  logger.Logger
}

// NewPricingService tạo instance mới của PricingService
func NewPricingService(opts PricingServiceOptions) *PricingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PricingService{
		backend: opts.Backend,
		logger:  opts.Logger,
	}
}

// Quote báo giá một loại phòng: tính base và giảm giá lễ hội tại chỗ,
// rồi nhờ dịch vụ discount định giá voucher trên giá trị sau lễ hội.
// Lỗi voucher là lỗi tạm thời: báo giá không voucher vẫn được trả về
// cùng với lỗi để UI hiện thông báo mà không mất giá đã tính.
func (s *PricingService) Quote(ctx context.Context, token string, room *models.Room, nights, units int, seasonal *models.SeasonalDiscount, codes []string, services []models.Service) (models.PriceBreakdown, error) {
	serviceCost := models.TotalServiceCost(services)
	breakdown := ComputeTotal(room, nights, units, seasonal, 0, serviceCost)

	if len(codes) == 0 {
		return breakdown, nil
	}

	afterSeasonal := breakdown.Base - breakdown.Seasonal
	applied, err := s.backend.ApplyDiscounts(ctx, token, dto.ApplyDiscountRequest{
		Codes:        codes,
		BookingValue: afterSeasonal,
		HotelID:      room.HotelID,
	})
	if err != nil {
		s.logger.Warn("áp mã giảm giá thất bại: %v", err)
		return breakdown, errors.NewAppError(errors.ErrCodeDiscountInvalid, "Mã giảm giá không hợp lệ hoặc đã hết hạn", err)
	}

	return ComputeTotal(room, nights, units, seasonal, applied.TotalDiscountAmount, serviceCost), nil
}

// QuoteSelection báo giá cho một tổ hợp nhiều loại phòng: base và giảm
// giá lễ hội tính theo từng loại rồi cộng dồn, voucher định giá một lần
// trên tổng giá trị sau lễ hội, phí dịch vụ cộng sau cùng.
func (s *PricingService) QuoteSelection(ctx context.Context, token string, hotelID uint, picks []models.RoomPick, nights int, seasonal *models.SeasonalDiscount, codes []string, services []models.Service) (models.PriceBreakdown, error) {
	var combined models.PriceBreakdown
	for i := range picks {
		part := ComputeTotal(&picks[i].Room, nights, picks[i].Units, seasonal, 0, 0)
		combined.Base += part.Base
		combined.Seasonal += part.Seasonal
	}

	serviceCost := models.TotalServiceCost(services)
	combined.Services = serviceCost

	afterSeasonal := combined.Base - combined.Seasonal
	voucher := 0

	var discountErr error
	if len(codes) > 0 {
		applied, err := s.backend.ApplyDiscounts(ctx, token, dto.ApplyDiscountRequest{
			Codes:        codes,
			BookingValue: afterSeasonal,
			HotelID:      hotelID,
		})
		if err != nil {
			s.logger.Warn("áp mã giảm giá thất bại: %v", err)
			discountErr = errors.NewAppError(errors.ErrCodeDiscountInvalid, "Mã giảm giá không hợp lệ hoặc đã hết hạn", err)
		} else {
			voucher = applied.TotalDiscountAmount
		}
	}

	if voucher > afterSeasonal {
		voucher = afterSeasonal
	}
	combined.Voucher = voucher
	combined.Total = afterSeasonal - voucher + serviceCost
	return combined, discountErr
}
