package builders

import (
	"time"

	"hotelbooking/constants"
	"hotelbooking/models"
	"hotelbooking/utils"
)

// BookingBuilder lắp booking mới theo từng bước trước khi ghi xuống storage.
// Booking bắt đầu ở RESERVED/PENDING, tổng tiền tính theo số đêm nhân đơn giá phòng.
type BookingBuilder struct {
	roomID     uint
	priceCents int64
	customerID uint
	reference  string
	checkIn    time.Time
	checkOut   time.Time
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{}
}

// WithRoom thêm thông tin phòng, đơn giá lấy từ catalog
func (b *BookingBuilder) WithRoom(room *models.Room) *BookingBuilder {
	b.roomID = room.RoomId
	b.priceCents = room.PriceCents
	return b
}

// WithCustomer thêm thông tin khách đặt
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.customerID = customerID
	return b
}

// WithDates thêm khoảng ngày ở, [checkIn, checkOut)
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

// WithReference gắn mã đặt phòng đã được issuer cấp
func (b *BookingBuilder) WithReference(code string) *BookingBuilder {
	b.reference = code
	return b
}

// Build trả về booking mới, gọi được nhiều lần với reference khác nhau
func (b *BookingBuilder) Build() *models.Booking {
	nights := utils.Nights(b.checkIn, b.checkOut)
	return &models.Booking{
		BookingReference: b.reference,
		RoomID:           b.roomID,
		CustomerID:       b.customerID,
		CheckInDate:      b.checkIn,
		CheckOutDate:     b.checkOut,
		TotalCents:       b.priceCents * int64(nights),
		BookingStatus:    constants.BookingStatusReserved,
		PaymentStatus:    constants.PaymentStatusPending,
	}
}
