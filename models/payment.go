package models

import "time"

// PaymentRecord ghi lại một kết quả thanh toán từ gateway, chỉ ghi thêm, không sửa
type PaymentRecord struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	BookingReference string    `json:"bookingReference" gorm:"index;size:20"`
	Gateway          string    `json:"gateway" gorm:"size:20"`
	TransactionID    string    `json:"transactionId" gorm:"size:64"`
	AmountCents      int64     `json:"amountCents"`
	Success          bool      `json:"success"`
	FailureReason    string    `json:"failureReason,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
