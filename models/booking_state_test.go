package models

import (
	"testing"

	"hotelbooking/constants"
	"hotelbooking/errors"
)

func strPtr(s string) *string { return &s }

func newTestBooking(bookingStatus, paymentStatus string) *Booking {
	return &Booking{
		ID:               1,
		BookingReference: "ABC123XYZ0",
		BookingStatus:    bookingStatus,
		PaymentStatus:    paymentStatus,
	}
}

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"reserved to checked in", constants.BookingStatusReserved, constants.BookingStatusCheckedIn, false},
		{"reserved to cancelled", constants.BookingStatusReserved, constants.BookingStatusCancelled, false},
		{"reserved to checked out", constants.BookingStatusReserved, constants.BookingStatusCheckedOut, true},
		{"checked in to checked out", constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut, false},
		{"checked in to cancelled", constants.BookingStatusCheckedIn, constants.BookingStatusCancelled, false},
		{"checked out to reserved", constants.BookingStatusCheckedOut, constants.BookingStatusReserved, true},
		{"checked out to checked in", constants.BookingStatusCheckedOut, constants.BookingStatusCheckedIn, true},
		{"checked out to cancelled", constants.BookingStatusCheckedOut, constants.BookingStatusCancelled, true},
		{"cancelled to checked in", constants.BookingStatusCancelled, constants.BookingStatusCheckedIn, true},
		{"cancelled to cancelled", constants.BookingStatusCancelled, constants.BookingStatusCancelled, true},
	}

	for _, tc := range cases {
		b := newTestBooking(tc.from, constants.PaymentStatusPending)
		err := Transition(b, StatusPatch{BookingStatus: strPtr(tc.to)})

		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected IllegalTransition, got nil", tc.name)
			}
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != errors.ErrCodeIllegalTransition {
				t.Fatalf("%s: expected IllegalTransition code, got %v", tc.name, err)
			}
			if b.BookingStatus != tc.from {
				t.Fatalf("%s: status changed on rejected transition: %s", tc.name, b.BookingStatus)
			}
			continue
		}

		if err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
		if b.BookingStatus != tc.to {
			t.Fatalf("%s: status not applied, got %s", tc.name, b.BookingStatus)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"pending to completed", constants.PaymentStatusPending, constants.PaymentStatusCompleted, false},
		{"pending to failed", constants.PaymentStatusPending, constants.PaymentStatusFailed, false},
		{"pending to pending", constants.PaymentStatusPending, constants.PaymentStatusPending, true},
		{"failed to pending", constants.PaymentStatusFailed, constants.PaymentStatusPending, false},
		{"failed to completed", constants.PaymentStatusFailed, constants.PaymentStatusCompleted, false},
		{"failed to failed", constants.PaymentStatusFailed, constants.PaymentStatusFailed, false},
		{"completed to pending", constants.PaymentStatusCompleted, constants.PaymentStatusPending, true},
		{"completed to failed", constants.PaymentStatusCompleted, constants.PaymentStatusFailed, true},
		{"completed to completed", constants.PaymentStatusCompleted, constants.PaymentStatusCompleted, true},
	}

	for _, tc := range cases {
		b := newTestBooking(constants.BookingStatusReserved, tc.from)
		err := Transition(b, StatusPatch{PaymentStatus: strPtr(tc.to)})

		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected IllegalTransition, got nil", tc.name)
			}
			if b.PaymentStatus != tc.from {
				t.Fatalf("%s: status changed on rejected transition: %s", tc.name, b.PaymentStatus)
			}
			continue
		}

		if err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
		if b.PaymentStatus != tc.to {
			t.Fatalf("%s: status not applied, got %s", tc.name, b.PaymentStatus)
		}
	}
}

func TestTransitionPartialPatch(t *testing.T) {
	b := newTestBooking(constants.BookingStatusReserved, constants.PaymentStatusPending)

	// patch rỗng không đổi gì
	if err := Transition(b, StatusPatch{}); err != nil {
		t.Fatalf("empty patch should be a no-op, got %v", err)
	}
	if b.BookingStatus != constants.BookingStatusReserved || b.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("empty patch changed state: %s/%s", b.BookingStatus, b.PaymentStatus)
	}

	// patch cả hai field cùng lúc
	err := Transition(b, StatusPatch{
		BookingStatus: strPtr(constants.BookingStatusCheckedIn),
		PaymentStatus: strPtr(constants.PaymentStatusCompleted),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b.BookingStatus != constants.BookingStatusCheckedIn {
		t.Fatalf("booking status not applied: %s", b.BookingStatus)
	}
	if b.PaymentStatus != constants.PaymentStatusCompleted {
		t.Fatalf("payment status not applied: %s", b.PaymentStatus)
	}
}

func TestTransitionUnknownTarget(t *testing.T) {
	b := newTestBooking(constants.BookingStatusReserved, constants.PaymentStatusPending)

	if err := Transition(b, StatusPatch{BookingStatus: strPtr("RESERVED")}); err == nil {
		t.Fatalf("re-entering RESERVED must be rejected")
	}
	if err := Transition(b, StatusPatch{BookingStatus: strPtr("SOMETHING")}); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
	if err := Transition(b, StatusPatch{PaymentStatus: strPtr("REFUNDED")}); err == nil {
		t.Fatalf("unknown payment status must be rejected")
	}
}

func TestActive(t *testing.T) {
	for _, s := range []string{constants.BookingStatusReserved, constants.BookingStatusCheckedIn} {
		if !newTestBooking(s, constants.PaymentStatusPending).Active() {
			t.Fatalf("%s should hold the room", s)
		}
	}
	for _, s := range []string{constants.BookingStatusCheckedOut, constants.BookingStatusCancelled} {
		if newTestBooking(s, constants.PaymentStatusPending).Active() {
			t.Fatalf("%s should release the room", s)
		}
	}
}
