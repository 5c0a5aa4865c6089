package utils

import (
	"time"
)

// DateLayout là định dạng ngày dùng trong toàn bộ API (ISO, không có giờ)
const DateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày theo DateLayout, luôn ở UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate format ngày theo DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDate cắt bỏ phần giờ, giữ lại ngày ở UTC
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights tính số đêm giữa checkIn và checkOut
func Nights(checkIn, checkOut time.Time) int {
	return int(TruncateToDate(checkOut).Sub(TruncateToDate(checkIn)).Hours() / 24)
}

// Overlaps kiểm tra hai khoảng ngày nửa mở [start1, end1) và [start2, end2) có giao nhau không
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}
