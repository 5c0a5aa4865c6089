package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// ResponseTotal là response kèm tổng số phần tử
type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total int         `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "success",
		Data: data,
	})
}

// SuccessWithTotal trả về response thành công kèm tổng số phần tử
func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "success",
		Total: total,
		Data:  data,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// UnprocessableEntity trả về response cho transition không hợp lệ
func UnprocessableEntity(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "unauthorized",
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "internal server error",
	})
}

// FromError map error kind của engine sang HTTP status tương ứng
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeInvalidDateRange, errors.ErrCodeValidation,
		errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeRoomNotFound, errors.ErrCodeBookingNotFound, errors.ErrCodeDBNotFound:
		NotFound(c, appErr.Message)
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeStorageConflict,
		errors.ErrCodeAlreadySettled, errors.ErrCodeDBDuplicate:
		Conflict(c, appErr.Message)
	case errors.ErrCodeIllegalTransition:
		UnprocessableEntity(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		Unauthorized(c)
	default:
		ServerError(c)
	}
}
