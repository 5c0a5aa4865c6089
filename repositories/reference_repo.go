package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/models"
)

// ReferenceRepo giữ không gian mã đặt phòng, uniqueness do unique index đảm bảo
type ReferenceRepo struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

// Reserve insert mã mới, mã trùng trả về ErrCodeDuplicate.
// Insert-or-reject là thao tác nguyên tử ở tầng storage, không check-then-insert.
func (r *ReferenceRepo) Reserve(ctx context.Context, code string) error {
	err := r.db.WithContext(ctx).Create(&models.BookingReference{Code: code}).Error
	return translateStorageError(err)
}

// Release thu hồi mã đã giữ khi việc đặt phòng phía sau thất bại
func (r *ReferenceRepo) Release(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Where("code = ?", code).Delete(&models.BookingReference{}).Error
}
