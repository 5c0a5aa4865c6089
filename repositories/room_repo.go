package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/constants"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
)

// RoomRepo thao tác với bảng rooms, chỉ đọc từ phía engine
type RoomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// ByID lấy phòng theo ID
func (r *RoomRepo) ByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// AvailableBetween trả về các phòng không có booking RESERVED/CHECKED_IN nào
// giao với khoảng [checkIn, checkOut). roomType rỗng nghĩa là không lọc theo loại.
// Kết quả sắp theo room_id để ổn định, caller không được phụ thuộc vào thứ tự.
func (r *RoomRepo) AvailableBetween(ctx context.Context, checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	booked := r.db.Model(&models.Booking{}).
		Select("room_id").
		Where("booking_status IN ?", constants.ActiveBookingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)

	q := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_id NOT IN (?)", booked)
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}

	var rooms []models.Room
	if err := q.Order("room_id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// All trả về toàn bộ phòng trong catalog
func (r *RoomRepo) All(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Order("room_id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Types trả về danh sách các loại phòng đang có
func (r *RoomRepo) Types(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).Model(&models.Room{}).
		Distinct("type").Order("type").Pluck("type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
