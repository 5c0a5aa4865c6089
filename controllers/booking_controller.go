package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotelbooking/dto"
	"hotelbooking/middleware"
	"hotelbooking/models"
	"hotelbooking/response"
	"hotelbooking/services"
	"hotelbooking/validator"
)

type BookingController struct {
	service *services.BookingService
	redis   *redis.Client
}

func NewBookingController(service *services.BookingService, redisCli *redis.Client) *BookingController {
	return &BookingController{
		service: service,
		redis:   redisCli,
	}
}

// CreateBooking godoc
// @Summary Đặt phòng cho một khoảng ngày
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 200 {object} response.Response
// @Router /api/v1/bookings [post]
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid booking request")
		return
	}

	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		customerID = request.CustomerID
	}
	if customerID == 0 {
		response.Unauthorized(c)
		return
	}

	checkIn, checkOut, err := validator.ValidateDateRange(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := ctl.service.Reserve(c.Request.Context(), request.RoomID, checkIn, checkOut, customerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.invalidateCaches(c)

	response.Success(c, dto.ToBookingResponse(booking))
}

// GetBookings godoc
// @Summary Danh sách booking, mới nhất trước
// @Tags bookings
// @Produce json
// @Success 200 {object} response.ResponseTotal
// @Router /api/v1/bookings [get]
func (ctl *BookingController) GetBookings(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []dto.BookingResponse
	if ctl.redis != nil {
		if err := services.GetFromRedis(ctx, ctl.redis, services.CacheKeyBookings, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithTotal(c, cached, len(cached))
			return
		}
	}

	bookings, err := ctl.service.ListBookings(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.ToBookingResponse(&bookings[i]))
	}

	if ctl.redis != nil {
		_ = services.SetToRedis(ctx, ctl.redis, services.CacheKeyBookings, out, 5*time.Minute)
	}

	response.SuccessWithTotal(c, out, len(out))
}

// GetBookingByReference godoc
// @Summary Tra booking theo mã đặt phòng
// @Tags bookings
// @Produce json
// @Param code path string true "Booking reference"
// @Success 200 {object} response.Response
// @Router /api/v1/bookings/ref/{code} [get]
func (ctl *BookingController) GetBookingByReference(c *gin.Context) {
	code := c.Param("code")

	booking, err := ctl.service.FindByReference(c.Request.Context(), code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.ToBookingResponse(booking))
}

// UpdateBookingStatus godoc
// @Summary Cập nhật trạng thái booking/payment, field bỏ trống giữ nguyên
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.UpdateBookingStatusRequest true "Status patch"
// @Success 200 {object} response.Response
// @Router /api/v1/bookings/status [put]
func (ctl *BookingController) UpdateBookingStatus(c *gin.Context) {
	var request dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid status update request")
		return
	}

	if err := validator.ValidateStatusPatch(request.BookingStatus, request.PaymentStatus); err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := ctl.service.TransitionBooking(c.Request.Context(), request.ID, models.StatusPatch{
		BookingStatus: request.BookingStatus,
		PaymentStatus: request.PaymentStatus,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctl.invalidateCaches(c)

	response.Success(c, dto.ToBookingResponse(booking))
}

// invalidateCaches xóa các cache bị ảnh hưởng khi booking thay đổi
func (ctl *BookingController) invalidateCaches(c *gin.Context) {
	if ctl.redis == nil {
		return
	}
	_ = services.DeleteFromRedis(c.Request.Context(), ctl.redis,
		services.CacheKeyBookings, services.CacheKeyRooms)
}
