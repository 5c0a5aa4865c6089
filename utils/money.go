package utils

import "fmt"

// FormatCents format số tiền lưu bằng cent thành chuỗi thập phân hai chữ số
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
