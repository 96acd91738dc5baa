package models

import (
	"errors"

	"storefront/constants"
)

// SessionState định nghĩa interface cho các trạng thái của PaymentSession.
// Chuyển trạng thái không hợp lệ trả về lỗi; nhờ đó side effect của việc
// hết hạn/hủy chỉ chạy đúng một lần.
type SessionState interface {
	Pay(session *PaymentSession) error
	Cancel(session *PaymentSession) error
	Expire(session *PaymentSession) error
}

// PendingSessionState trạng thái chờ thanh toán
type PendingSessionState struct{}

func (s *PendingSessionState) Pay(session *PaymentSession) error {
	session.Status = constants.SessionStatusPaid
	return nil
}

func (s *PendingSessionState) Cancel(session *PaymentSession) error {
	session.Status = constants.SessionStatusCanceled
	return nil
}

func (s *PendingSessionState) Expire(session *PaymentSession) error {
	session.Status = constants.SessionStatusExpired
	return nil
}

// PaidSessionState trạng thái đã thanh toán
type PaidSessionState struct{}

func (s *PaidSessionState) Pay(session *PaymentSession) error {
	return errors.New("session already paid")
}

func (s *PaidSessionState) Cancel(session *PaymentSession) error {
	return errors.New("cannot cancel paid session")
}

func (s *PaidSessionState) Expire(session *PaymentSession) error {
	return errors.New("cannot expire paid session")
}

// CanceledSessionState trạng thái đã hủy
type CanceledSessionState struct{}

func (s *CanceledSessionState) Pay(session *PaymentSession) error {
	return errors.New("cannot pay canceled session")
}

func (s *CanceledSessionState) Cancel(session *PaymentSession) error {
	return errors.New("session already canceled")
}

func (s *CanceledSessionState) Expire(session *PaymentSession) error {
	return errors.New("cannot expire canceled session")
}

// ExpiredSessionState trạng thái đã hết hạn
type ExpiredSessionState struct{}

func (s *ExpiredSessionState) Pay(session *PaymentSession) error {
	return errors.New("cannot pay expired session")
}

func (s *ExpiredSessionState) Cancel(session *PaymentSession) error {
	return errors.New("session already expired")
}

func (s *ExpiredSessionState) Expire(session *PaymentSession) error {
	return errors.New("session already expired")
}

// GetSessionState trả về state tương ứng với trạng thái session
func GetSessionState(status int) SessionState {
	switch status {
	case constants.SessionStatusPending:
		return &PendingSessionState{}
	case constants.SessionStatusPaid:
		return &PaidSessionState{}
	case constants.SessionStatusCanceled:
		return &CanceledSessionState{}
	case constants.SessionStatusExpired:
		return &ExpiredSessionState{}
	default:
		return &PendingSessionState{}
	}
}
