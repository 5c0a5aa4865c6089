package models

import (
	"time"

	"hotelbooking/constants"
)

type Booking struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BookingReference string    `json:"bookingReference" gorm:"uniqueIndex;size:20"`
	RoomID           uint      `json:"roomId" gorm:"index:idx_bookings_room_dates"`
	Room             Room      `json:"room" gorm:"foreignKey:RoomID"`
	CustomerID       uint      `json:"customerId" gorm:"index"`
	CheckInDate      time.Time `json:"checkInDate" gorm:"type:date;index:idx_bookings_room_dates"`
	CheckOutDate     time.Time `json:"checkOutDate" gorm:"type:date;index:idx_bookings_room_dates"`
	TotalCents       int64     `json:"totalCents"`
	BookingStatus    string    `json:"bookingStatus" gorm:"size:20;index"`
	PaymentStatus    string    `json:"paymentStatus" gorm:"size:20"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Active cho biết booking còn giữ phòng trong khoảng ngày của nó hay không
func (b *Booking) Active() bool {
	for _, s := range constants.ActiveBookingStatuses {
		if b.BookingStatus == s {
			return true
		}
	}
	return false
}

// Nights số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}
