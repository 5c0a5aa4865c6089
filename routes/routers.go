package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"hotelbooking/controllers"
	middlewares "hotelbooking/middleware"
	"hotelbooking/repositories"
	"hotelbooking/services"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, bookingSvc *services.BookingService, paymentSvc *services.PaymentService) {

	roomRepo := repositories.NewRoomRepo(db)

	bookingController := controllers.NewBookingController(bookingSvc, redisCli)
	roomController := controllers.NewRoomController(roomRepo, bookingSvc, redisCli)
	paymentController := controllers.NewPaymentController(paymentSvc, redisCli)

	router.Use(middlewares.RequestID())

	v1 := router.Group("/api/v1")

	v1.POST("/bookings", middlewares.CustomerAuth(), bookingController.CreateBooking)
	v1.GET("/bookings", bookingController.GetBookings)
	v1.GET("/bookings/ref/:code", bookingController.GetBookingByReference)
	v1.PUT("/bookings/status", bookingController.UpdateBookingStatus)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.GET("/rooms/types", roomController.GetRoomTypes)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	v1.POST("/payments/outcome", paymentController.ApplyPaymentOutcome)
	v1.GET("/payments/:code", paymentController.GetPaymentHistory)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
