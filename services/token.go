package services

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	json "github.com/goccy/go-json"

	"hotelbooking/errors"
)

// GetCustomerIDFromToken lấy customerID từ JWT do identity service bên ngoài phát hành.
// Engine không tự verify chữ ký, việc đó thuộc về API gateway phía trước.
func GetCustomerIDFromToken(tokenString string) (uint, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "could not decode token payload", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "could not parse token claims", err)
	}

	customerID, ok := claims["customerId"].(float64)
	if !ok || customerID <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "customerId claim missing", nil)
	}

	return uint(customerID), nil
}
