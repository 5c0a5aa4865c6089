package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotelbooking/dto"
	"hotelbooking/repositories"
	"hotelbooking/response"
	"hotelbooking/services"
	"hotelbooking/validator"
)

type RoomController struct {
	rooms   *repositories.RoomRepo
	service *services.BookingService
	redis   *redis.Client
}

func NewRoomController(rooms *repositories.RoomRepo, service *services.BookingService, redisCli *redis.Client) *RoomController {
	return &RoomController{
		rooms:   rooms,
		service: service,
		redis:   redisCli,
	}
}

// GetAvailableRooms godoc
// @Summary Tìm phòng trống trong một khoảng ngày
// @Tags rooms
// @Produce json
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param type query string false "Room type filter"
// @Success 200 {object} response.ResponseTotal
// @Router /api/v1/rooms/available [get]
func (ctl *RoomController) GetAvailableRooms(c *gin.Context) {
	var query dto.AvailableRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "checkIn and checkOut are required, format YYYY-MM-DD")
		return
	}

	if err := validator.ValidateRoomType(query.Type); err != nil {
		response.FromError(c, err)
		return
	}

	checkIn, checkOut, err := validator.ValidateDateRange(query.CheckIn, query.CheckOut)
	if err != nil {
		response.FromError(c, err)
		return
	}

	rooms, err := ctl.service.AvailableRooms(c.Request.Context(), checkIn, checkOut, query.Type)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := dto.ToRoomResponses(rooms)
	response.SuccessWithTotal(c, out, len(out))
}

// GetRooms godoc
// @Summary Danh sách phòng trong catalog
// @Tags rooms
// @Produce json
// @Success 200 {object} response.ResponseTotal
// @Router /api/v1/rooms [get]
func (ctl *RoomController) GetRooms(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.RoomResponse
	if ctl.redis != nil {
		if err := services.GetFromRedis(ctx, ctl.redis, services.CacheKeyRooms, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	rooms, err := ctl.rooms.All(ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	out := dto.ToRoomResponses(rooms)
	if ctl.redis != nil {
		_ = services.SetToRedis(ctx, ctl.redis, services.CacheKeyRooms, out, 10*time.Minute)
	}

	response.SuccessWithTotal(c, out, len(out))
}

// GetRoomDetail godoc
// @Summary Chi tiết một phòng
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Router /api/v1/rooms/{id} [get]
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}

	room, err := ctl.rooms.ByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "room not found")
		return
	}

	response.Success(c, dto.ToRoomResponse(*room))
}

// GetRoomTypes godoc
// @Summary Danh sách loại phòng đang có
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/rooms/types [get]
func (ctl *RoomController) GetRoomTypes(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []string
	if ctl.redis != nil {
		if err := services.GetFromRedis(ctx, ctl.redis, services.CacheKeyRoomTypes, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	types, err := ctl.rooms.Types(ctx)
	if err != nil {
		response.ServerError(c)
		return
	}

	if ctl.redis != nil {
		_ = services.SetToRedis(ctx, ctl.redis, services.CacheKeyRoomTypes, types, 10*time.Minute)
	}

	response.Success(c, types)
}
