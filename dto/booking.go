package dto

import (
	"time"

	"hotelbooking/models"
	"hotelbooking/utils"
)

// CreateBookingRequest là DTO cho request đặt phòng.
// totalPrice không nhận từ client, engine tự tính lại từ giá phòng.
type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required,bookdate"`
	CheckOutDate string `json:"checkOutDate" binding:"required,bookdate"`
	CustomerID   uint   `json:"customerId"`
}

// UpdateBookingStatusRequest là DTO cập nhật trạng thái từng phần,
// field bỏ trống sẽ được giữ nguyên
type UpdateBookingStatusRequest struct {
	ID            uint    `json:"id" binding:"required"`
	BookingStatus *string `json:"bookingStatus"`
	PaymentStatus *string `json:"paymentStatus"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID               uint      `json:"id"`
	BookingReference string    `json:"bookingReference"`
	RoomID           uint      `json:"roomId"`
	CustomerID       uint      `json:"customerId"`
	CheckInDate      string    `json:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate"`
	Nights           int       `json:"nights"`
	TotalCents       int64     `json:"totalCents"`
	TotalPrice       string    `json:"totalPrice"`
	BookingStatus    string    `json:"bookingStatus"`
	PaymentStatus    string    `json:"paymentStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToBookingResponse convert model sang DTO response
func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		BookingReference: b.BookingReference,
		RoomID:           b.RoomID,
		CustomerID:       b.CustomerID,
		CheckInDate:      utils.FormatDate(b.CheckInDate),
		CheckOutDate:     utils.FormatDate(b.CheckOutDate),
		Nights:           b.Nights(),
		TotalCents:       b.TotalCents,
		TotalPrice:       utils.FormatCents(b.TotalCents),
		BookingStatus:    b.BookingStatus,
		PaymentStatus:    b.PaymentStatus,
		CreatedAt:        b.CreatedAt,
	}
}
