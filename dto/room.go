package dto

import (
	"hotelbooking/models"
	"hotelbooking/utils"
)

// AvailableRoomsQuery là query param cho API tìm phòng trống
type AvailableRoomsQuery struct {
	CheckIn  string `form:"checkIn" binding:"required,bookdate"`
	CheckOut string `form:"checkOut" binding:"required,bookdate"`
	Type     string `form:"type"`
}

// RoomResponse là DTO cho response của room
type RoomResponse struct {
	ID            uint   `json:"id"`
	RoomNumber    int    `json:"roomNumber"`
	Type          string `json:"type"`
	PriceCents    int64  `json:"priceCents"`
	PricePerNight string `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
	Description   string `json:"description"`
	ImageUrl      string `json:"imageUrl"`
}

// ToRoomResponse convert model sang DTO response
func ToRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{
		ID:            r.RoomId,
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PriceCents:    r.PriceCents,
		PricePerNight: utils.FormatCents(r.PriceCents),
		Capacity:      r.Capacity,
		Description:   r.Description,
		ImageUrl:      r.ImageUrl,
	}
}

// ToRoomResponses convert danh sách room
func ToRoomResponses(rooms []models.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, ToRoomResponse(r))
	}
	return out
}
