package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

// BookingRepo thao tác với bảng bookings
type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateIfAvailable kiểm tra phòng trống và insert booking trong cùng một transaction.
// Row của phòng bị khóa FOR UPDATE nên hai request đặt cùng phòng sẽ được serialize,
// check-then-insert không thể interleave.
func (r *BookingRepo) CreateIfAvailable(ctx context.Context, b *models.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "room_id = ?", b.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return err
		}

		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND booking_status IN ?", b.RoomID, constants.ActiveBookingStatuses).
			Where("check_in_date < ? AND check_out_date > ?", b.CheckOutDate, b.CheckInDate).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return apperrors.ErrRoomUnavailable
		}

		return tx.Create(b).Error
	})
	return translateStorageError(err)
}

// ByID lấy booking theo ID
func (r *BookingRepo) ByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Preload("Room").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ByReference lấy booking theo mã đặt phòng
func (r *BookingRepo) ByReference(ctx context.Context, code string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Preload("Room").
		First(&b, "booking_reference = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List trả về toàn bộ booking, mới nhất trước
func (r *BookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveExpiredStays các booking CHECKED_IN có ngày trả phòng đã qua
func (r *BookingRepo) ActiveExpiredStays(ctx context.Context, before time.Time) ([]models.Booking, error) {
	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where("booking_status = ? AND check_out_date <= ?", constants.BookingStatusCheckedIn, before).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyPatch ghi lại trạng thái mới với điều kiện trạng thái cũ chưa bị thay đổi,
// tránh lost update khi có hai request chuyển trạng thái chạy song song
func (r *BookingRepo) ApplyPatch(ctx context.Context, b *models.Booking, prevBookingStatus, prevPaymentStatus string) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND booking_status = ? AND payment_status = ?", b.ID, prevBookingStatus, prevPaymentStatus).
		Updates(map[string]interface{}{
			"booking_status": b.BookingStatus,
			"payment_status": b.PaymentStatus,
		})
	if res.Error != nil {
		return translateStorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStorageConflict
	}
	return nil
}

// translateStorageError map lỗi storage về sentinel error của engine
func translateStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrCodeDuplicate
	}
	if isSerializationFailure(err) {
		return apperrors.ErrStorageConflict
	}
	return err
}

// isSerializationFailure nhận diện serialization/deadlock failure của postgres (SQLSTATE 40001, 40P01)
func isSerializationFailure(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01") ||
		strings.Contains(msg, "could not serialize") ||
		strings.Contains(msg, "deadlock detected")
}
