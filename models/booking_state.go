package models

import (
	"hotelbooking/constants"
	"hotelbooking/errors"
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	CheckIn(b *Booking) error
	CheckOut(b *Booking) error
	Cancel(b *Booking) error
}

// ReservedState trạng thái đã đặt, chờ nhận phòng
type ReservedState struct{}

func (s *ReservedState) CheckIn(b *Booking) error {
	b.BookingStatus = constants.BookingStatusCheckedIn
	return nil
}

func (s *ReservedState) CheckOut(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusReserved, constants.BookingStatusCheckedOut)
}

func (s *ReservedState) Cancel(b *Booking) error {
	b.BookingStatus = constants.BookingStatusCancelled
	return nil
}

// CheckedInState trạng thái khách đang ở
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCheckedIn, constants.BookingStatusCheckedIn)
}

func (s *CheckedInState) CheckOut(b *Booking) error {
	b.BookingStatus = constants.BookingStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(b *Booking) error {
	b.BookingStatus = constants.BookingStatusCancelled
	return nil
}

// CheckedOutState trạng thái đã trả phòng, terminal
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCheckedOut, constants.BookingStatusCheckedIn)
}

func (s *CheckedOutState) CheckOut(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCheckedOut, constants.BookingStatusCheckedOut)
}

func (s *CheckedOutState) Cancel(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCheckedOut, constants.BookingStatusCancelled)
}

// CancelledState trạng thái đã hủy, terminal
type CancelledState struct{}

func (s *CancelledState) CheckIn(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCancelled, constants.BookingStatusCheckedIn)
}

func (s *CancelledState) CheckOut(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCancelled, constants.BookingStatusCheckedOut)
}

func (s *CancelledState) Cancel(b *Booking) error {
	return errors.NewIllegalTransition(constants.BookingStatusCancelled, constants.BookingStatusCancelled)
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusCheckedOut:
		return &CheckedOutState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &ReservedState{}
	}
}

// PaymentState định nghĩa interface cho các trạng thái thanh toán
type PaymentState interface {
	Complete(b *Booking) error
	Fail(b *Booking) error
	Retry(b *Booking) error
}

// PendingPaymentState chưa thanh toán
type PendingPaymentState struct{}

func (s *PendingPaymentState) Complete(b *Booking) error {
	b.PaymentStatus = constants.PaymentStatusCompleted
	return nil
}

func (s *PendingPaymentState) Fail(b *Booking) error {
	b.PaymentStatus = constants.PaymentStatusFailed
	return nil
}

func (s *PendingPaymentState) Retry(b *Booking) error {
	return errors.NewIllegalTransition(constants.PaymentStatusPending, constants.PaymentStatusPending)
}

// FailedPaymentState thanh toán thất bại, cho phép thử lại
type FailedPaymentState struct{}

// Complete chấp nhận lần thử lại thành công, rút gọn của FAILED -> PENDING -> COMPLETED
func (s *FailedPaymentState) Complete(b *Booking) error {
	b.PaymentStatus = constants.PaymentStatusCompleted
	return nil
}

// Fail gateway có thể báo thất bại nhiều lần, trạng thái giữ nguyên FAILED
func (s *FailedPaymentState) Fail(b *Booking) error {
	b.PaymentStatus = constants.PaymentStatusFailed
	return nil
}

func (s *FailedPaymentState) Retry(b *Booking) error {
	b.PaymentStatus = constants.PaymentStatusPending
	return nil
}

// CompletedPaymentState đã thanh toán xong, terminal
type CompletedPaymentState struct{}

func (s *CompletedPaymentState) Complete(b *Booking) error {
	return errors.NewIllegalTransition(constants.PaymentStatusCompleted, constants.PaymentStatusCompleted)
}

func (s *CompletedPaymentState) Fail(b *Booking) error {
	return errors.NewIllegalTransition(constants.PaymentStatusCompleted, constants.PaymentStatusFailed)
}

func (s *CompletedPaymentState) Retry(b *Booking) error {
	return errors.NewIllegalTransition(constants.PaymentStatusCompleted, constants.PaymentStatusPending)
}

// GetPaymentState trả về state tương ứng với trạng thái thanh toán
func GetPaymentState(status string) PaymentState {
	switch status {
	case constants.PaymentStatusCompleted:
		return &CompletedPaymentState{}
	case constants.PaymentStatusFailed:
		return &FailedPaymentState{}
	default:
		return &PendingPaymentState{}
	}
}

// StatusPatch mô tả cập nhật trạng thái từng phần, field nil sẽ được giữ nguyên
type StatusPatch struct {
	BookingStatus *string
	PaymentStatus *string
}

// Transition áp dụng patch trạng thái lên booking, chỉ các field khác nil mới được xét
func Transition(b *Booking, patch StatusPatch) error {
	if patch.BookingStatus != nil {
		state := GetBookingState(b.BookingStatus)
		var err error
		switch *patch.BookingStatus {
		case constants.BookingStatusCheckedIn:
			err = state.CheckIn(b)
		case constants.BookingStatusCheckedOut:
			err = state.CheckOut(b)
		case constants.BookingStatusCancelled:
			err = state.Cancel(b)
		default:
			err = errors.NewIllegalTransition(b.BookingStatus, *patch.BookingStatus)
		}
		if err != nil {
			return err
		}
	}

	if patch.PaymentStatus != nil {
		state := GetPaymentState(b.PaymentStatus)
		var err error
		switch *patch.PaymentStatus {
		case constants.PaymentStatusCompleted:
			err = state.Complete(b)
		case constants.PaymentStatusFailed:
			err = state.Fail(b)
		case constants.PaymentStatusPending:
			err = state.Retry(b)
		default:
			err = errors.NewIllegalTransition(b.PaymentStatus, *patch.PaymentStatus)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
