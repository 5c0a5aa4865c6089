package models

import (
	"fmt"
	"time"
)

// Room type constants
const (
	RoomTypeSingle   = "SINGLE"
	RoomTypeDouble   = "DOUBLE"
	RoomTypeStandard = "STANDARD"
	RoomTypeDeluxe   = "DELUXE"
	RoomTypeSuite    = "SUITE"
)

// RoomTypes danh sách các loại phòng hợp lệ
var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite}

type Room struct {
	RoomId      uint      `json:"id" gorm:"primaryKey"`
	RoomNumber  int       `json:"roomNumber" gorm:"uniqueIndex"`
	Type        string    `json:"type" gorm:"size:20;index"`
	PriceCents  int64     `json:"priceCents"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	ImageUrl    string    `json:"imageUrl"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateType() error {
	for _, t := range RoomTypes {
		if r.Type == t {
			return nil
		}
	}
	return fmt.Errorf("invalid room type: %s", r.Type)
}
