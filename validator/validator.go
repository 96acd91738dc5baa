package validator

import (
	"regexp"
	"time"

	"storefront/constants"
	"storefront/errors"
	"storefront/models"
)

// ValidateStay kiểm tra ngày ở và số khách trước khi gọi mạng
func ValidateStay(stay *models.StayRequest) error {
	if stay.CheckInDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng không được để trống", nil)
	}
	if stay.CheckOutDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày trả phòng không được để trống", nil)
	}

	checkIn, err := time.Parse(models.DateLayout, stay.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := time.Parse(models.DateLayout, stay.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng không hợp lệ", err)
	}
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if stay.Adults <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "Phải có ít nhất một người lớn", nil)
	}
	for _, age := range stay.ChildrenAges {
		if age < 0 || age > 17 {
			return errors.NewAppError(errors.ErrCodeInvalidGuests, "Tuổi trẻ em không hợp lệ", nil)
		}
	}
	if stay.TotalGuests() <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, "Số khách phải lớn hơn 0", nil)
	}

	return nil
}

// ValidateDraftForCheckout kiểm tra draft đủ điều kiện gửi đặt phòng
func ValidateDraftForCheckout(draft *models.BookingDraft) error {
	if err := ValidateStay(&draft.Stay); err != nil {
		return err
	}

	if len(draft.RoomSelection) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Chưa chọn phòng nào", nil)
	}
	for _, units := range draft.RoomSelection {
		if units <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số phòng mỗi loại phải lớn hơn 0", nil)
		}
	}

	switch draft.PaymentMethod {
	case constants.PaymentMethodCash, constants.PaymentMethodBankTransfer,
		constants.PaymentMethodMomo, constants.PaymentMethodVNPay:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Phương thức thanh toán không hợp lệ", nil)
	}

	if draft.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if draft.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if !isValidPhone(draft.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại khách không hợp lệ", nil)
	}
	if draft.GuestEmail != "" && !isValidEmail(draft.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email khách không hợp lệ", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
