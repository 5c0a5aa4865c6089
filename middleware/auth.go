package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/response"
	"hotelbooking/services"
)

// CustomerAuth lấy customerID từ JWT của identity service bên ngoài và đưa vào context.
// Các handler phía sau truyền customerID vào engine một cách tường minh,
// engine không bao giờ tự đọc security context.
func CustomerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		customerID, err := services.GetCustomerIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("customerID", customerID)
		c.Next()
	}
}

// CustomerIDFromContext đọc customerID do CustomerAuth đặt vào context
func CustomerIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get("customerID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
