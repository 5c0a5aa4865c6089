package repositories

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/constants"
	"hotelbooking/models"
)

// PaymentRepo thao tác với bảng payment_records, chỉ ghi thêm
type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// SettleOutcome áp kết quả thanh toán bằng conditional update: chỉ khi payment_status
// chưa COMPLETED thì mới đổi trạng thái và ghi PaymentRecord, tất cả trong một transaction.
// Trả về applied=false khi booking đã settle từ trước (duplicate delivery thua race).
func (r *PaymentRepo) SettleOutcome(ctx context.Context, bookingReference, newStatus string, record *models.PaymentRecord) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("booking_reference = ? AND payment_status <> ?", bookingReference, constants.PaymentStatusCompleted).
			Update("payment_status", newStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true
		return tx.Create(record).Error
	})
	return applied, translateStorageError(err)
}

// ByReference liệt kê các payment record của một booking
func (r *PaymentRepo) ByReference(ctx context.Context, bookingReference string) ([]models.PaymentRecord, error) {
	var out []models.PaymentRecord
	if err := r.db.WithContext(ctx).
		Where("booking_reference = ?", bookingReference).
		Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
