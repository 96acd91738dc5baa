package constants

// Room status
const (
	RoomStatusAvailable   = 0
	RoomStatusMaintenance = 1
	RoomStatusBusy        = 2
)

// Booking status (phía backend)
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)

// Payment status (phía backend)
const (
	PaymentStatusPending = 0
	PaymentStatusPaid    = 1
	PaymentStatusFailed  = 2
)

// Session status
const (
	SessionStatusPending  = 0
	SessionStatusPaid     = 1
	SessionStatusCanceled = 2
	SessionStatusExpired  = 3
)

// Payment method
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodMomo         = "momo"
	PaymentMethodVNPay        = "vnpay"
)
