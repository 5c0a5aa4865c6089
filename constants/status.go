package constants

// Booking status
const (
	BookingStatusReserved   = "RESERVED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusCancelled  = "CANCELLED"
)

// Payment status
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
)

// Payment gateway
const (
	PaymentGatewayStripe = "STRIPE"
	PaymentGatewayPaypal = "PAYPAL"
)

// Booking reference code defaults
const (
	ReferenceCodeLength      = 10
	ReferenceCodeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ReferenceCodeMaxAttempts = 5
)

// ReserveMaxRetries số lần thử lại khi transaction đặt phòng bị serialization conflict
const ReserveMaxRetries = 3

// ActiveBookingStatuses các trạng thái còn giữ phòng trong khoảng ngày của booking
var ActiveBookingStatuses = []string{BookingStatusReserved, BookingStatusCheckedIn}
