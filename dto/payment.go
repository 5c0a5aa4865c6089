package dto

import (
	"time"

	"hotelbooking/models"
)

// PaymentOutcomeRequest là DTO cho kết quả thanh toán do gateway báo về
type PaymentOutcomeRequest struct {
	BookingReference string `json:"bookingReference" binding:"required"`
	Gateway          string `json:"gateway"`
	TransactionID    string `json:"transactionId" binding:"required"`
	AmountCents      int64  `json:"amountCents" binding:"min=0"`
	Success          bool   `json:"success"`
	FailureReason    string `json:"failureReason"`
}

// PaymentRecordResponse là DTO cho một payment record
type PaymentRecordResponse struct {
	ID               uint      `json:"id"`
	BookingReference string    `json:"bookingReference"`
	Gateway          string    `json:"gateway"`
	TransactionID    string    `json:"transactionId"`
	AmountCents      int64     `json:"amountCents"`
	Success          bool      `json:"success"`
	FailureReason    string    `json:"failureReason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToPaymentRecordResponse convert model sang DTO response
func ToPaymentRecordResponse(p models.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:               p.ID,
		BookingReference: p.BookingReference,
		Gateway:          p.Gateway,
		TransactionID:    p.TransactionID,
		AmountCents:      p.AmountCents,
		Success:          p.Success,
		FailureReason:    p.FailureReason,
		CreatedAt:        p.CreatedAt,
	}
}
