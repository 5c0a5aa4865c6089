package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/utils"
)

// RegisterValidators đăng ký custom validation cho binding engine của gin.
// Tag "bookdate" yêu cầu field là chuỗi ngày theo utils.DateLayout.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseDate(fl.Field().String())
		return err == nil
	})
}

// ValidateDateRange parse và kiểm tra một khoảng ngày [checkIn, checkOut)
func ValidateDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "check-in date is not a valid date", err)
	}

	checkOut, err := utils.ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "check-out date is not a valid date", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}

	return checkIn, checkOut, nil
}

// ValidateRoomType kiểm tra loại phòng nếu được truyền, chuỗi rỗng là hợp lệ (không lọc)
func ValidateRoomType(roomType string) error {
	if roomType == "" {
		return nil
	}
	r := models.Room{Type: roomType}
	if err := r.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid room type", err)
	}
	return nil
}

// ValidateStatusPatch kiểm tra patch có yêu cầu ít nhất một thay đổi
func ValidateStatusPatch(bookingStatus, paymentStatus *string) error {
	if bookingStatus == nil && paymentStatus == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "at least one status field is required", errors.ErrMissingRequired)
	}
	return nil
}
