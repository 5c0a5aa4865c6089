package services

import (
	"context"
	"errors"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/events"
	"hotelbooking/models"
	"hotelbooking/services/logger"
)

// PaymentStore ghi kết quả thanh toán. SettleOutcome phải là conditional update
// nguyên tử: chỉ đổi trạng thái và ghi record khi payment_status chưa COMPLETED,
// trả về applied=false khi booking đã settle.
type PaymentStore interface {
	SettleOutcome(ctx context.Context, bookingReference, newStatus string, record *models.PaymentRecord) (bool, error)
	ByReference(ctx context.Context, bookingReference string) ([]models.PaymentRecord, error)
}

// PaymentOutcome kết quả thanh toán do gateway bên ngoài báo về
type PaymentOutcome struct {
	Gateway       string
	TransactionID string
	AmountCents   int64
	Success       bool
	FailureReason string
}

// PaymentService áp kết quả thanh toán bên ngoài vào booking đúng một lần
type PaymentService struct {
	bookings BookingStore
	payments PaymentStore
	sink     events.Sink
	logger   logger.Logger
}

type PaymentServiceOptions struct {
	Bookings BookingStore
	Payments PaymentStore
	Sink     events.Sink
	Logger   logger.Logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	s := &PaymentService{
		bookings: opts.Bookings,
		payments: opts.Payments,
		sink:     opts.Sink,
		logger:   opts.Logger,
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return s
}

// ApplyOutcome áp một kết quả thanh toán vào booking theo mã đặt phòng.
// Gateway gửi at-least-once nên outcome trùng với booking đã COMPLETED là no-op
// trả về trạng thái hiện tại: không ghi record mới, không phát event thứ hai.
// Kết quả mâu thuẫn đến sau khi đã COMPLETED cũng bị bỏ qua, chỉ ghi log cảnh báo.
func (s *PaymentService) ApplyOutcome(ctx context.Context, bookingReference string, outcome PaymentOutcome) (*models.Booking, error) {
	if outcome.AmountCents < 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "amount cannot be negative", apperrors.ErrInvalidAmount)
	}

	b, err := s.bookings.ByReference(ctx, bookingReference)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, "booking not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not load booking", err)
	}

	if b.PaymentStatus == constants.PaymentStatusCompleted {
		if !outcome.Success {
			s.logger.Warn("booking %s already settled, ignoring conflicting failure report (txn %s)",
				bookingReference, outcome.TransactionID)
		} else {
			s.logger.Info("booking %s already settled, duplicate delivery ignored", bookingReference)
		}
		return b, nil
	}

	newStatus := constants.PaymentStatusFailed
	if outcome.Success {
		newStatus = constants.PaymentStatusCompleted
	}

	record := &models.PaymentRecord{
		BookingReference: bookingReference,
		Gateway:          outcome.Gateway,
		TransactionID:    outcome.TransactionID,
		AmountCents:      outcome.AmountCents,
		Success:          outcome.Success,
		FailureReason:    outcome.FailureReason,
	}

	applied, err := s.payments.SettleOutcome(ctx, bookingReference, newStatus, record)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not record payment outcome", err)
	}
	if !applied {
		// thua race với một delivery trùng, trả về trạng thái hiện tại
		s.logger.Info("booking %s settled concurrently, duplicate delivery ignored", bookingReference)
		return s.bookings.ByReference(ctx, bookingReference)
	}

	b.PaymentStatus = newStatus

	payload := map[string]interface{}{
		"success":       outcome.Success,
		"gateway":       outcome.Gateway,
		"transactionId": outcome.TransactionID,
		"amountCents":   outcome.AmountCents,
	}
	if !outcome.Success {
		payload["failureReason"] = outcome.FailureReason
	}
	s.emit(ctx, events.New(events.KindPaymentSettled, bookingReference, payload))

	return b, nil
}

// History liệt kê các payment record của một booking
func (s *PaymentService) History(ctx context.Context, bookingReference string) ([]models.PaymentRecord, error) {
	out, err := s.payments.ByReference(ctx, bookingReference)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "could not list payment records", err)
	}
	return out, nil
}

func (s *PaymentService) emit(ctx context.Context, event events.Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, event); err != nil {
		s.logger.Error("publish event %s for booking %s failed: %v", event.Kind, event.BookingReference, err)
	}
}
