package models

import "time"

// BookingReference giữ các mã đặt phòng đã phát hành, unique index chặn mã trùng
type BookingReference struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"uniqueIndex;size:20"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
