package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotelbooking/dto"
	"hotelbooking/response"
	"hotelbooking/services"
)

type PaymentController struct {
	service *services.PaymentService
	redis   *redis.Client
}

func NewPaymentController(service *services.PaymentService, redisCli *redis.Client) *PaymentController {
	return &PaymentController{
		service: service,
		redis:   redisCli,
	}
}

// ApplyPaymentOutcome godoc
// @Summary Ghi nhận kết quả thanh toán từ gateway
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentOutcomeRequest true "Payment outcome"
// @Success 200 {object} response.Response
// @Router /api/v1/payments/outcome [post]
func (ctl *PaymentController) ApplyPaymentOutcome(c *gin.Context) {
	var request dto.PaymentOutcomeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payment outcome request")
		return
	}

	booking, err := ctl.service.ApplyOutcome(c.Request.Context(), request.BookingReference, services.PaymentOutcome{
		Gateway:       request.Gateway,
		TransactionID: request.TransactionID,
		AmountCents:   request.AmountCents,
		Success:       request.Success,
		FailureReason: request.FailureReason,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	if ctl.redis != nil {
		_ = services.DeleteFromRedis(c.Request.Context(), ctl.redis, services.CacheKeyBookings)
	}

	response.Success(c, dto.ToBookingResponse(booking))
}

// GetPaymentHistory godoc
// @Summary Các payment record của một booking
// @Tags payments
// @Produce json
// @Param code path string true "Booking reference"
// @Success 200 {object} response.ResponseTotal
// @Router /api/v1/payments/{code} [get]
func (ctl *PaymentController) GetPaymentHistory(c *gin.Context) {
	code := c.Param("code")

	records, err := ctl.service.History(c.Request.Context(), code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]dto.PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ToPaymentRecordResponse(r))
	}

	response.SuccessWithTotal(c, out, len(out))
}

// parseUintParam đọc path param dạng uint
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
