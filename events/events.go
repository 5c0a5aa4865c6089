package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event kinds
const (
	KindBookingCreated = "booking.created"
	KindPaymentSettled = "payment.settled"
)

// Event mô tả một sự kiện phát ra cho hệ thống notification bên ngoài.
// Engine đảm bảo at-least-once emission, không đảm bảo delivery.
type Event struct {
	ID               string                 `json:"id"`
	Kind             string                 `json:"kind"`
	BookingReference string                 `json:"bookingReference"`
	Payload          map[string]interface{} `json:"payload,omitempty"`
	OccurredAt       time.Time              `json:"occurredAt"`
}

// Sink nhận event để gửi thông báo bất đồng bộ
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// New tạo event mới với ID và timestamp
func New(kind, bookingReference string, payload map[string]interface{}) Event {
	return Event{
		ID:               uuid.NewString(),
		Kind:             kind,
		BookingReference: bookingReference,
		Payload:          payload,
		OccurredAt:       time.Now().UTC(),
	}
}
