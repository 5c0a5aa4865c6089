package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/config"
	"hotelbooking/jobs"
	"hotelbooking/repositories"
	"hotelbooking/routes"
	"hotelbooking/services"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"
	"hotelbooking/validator"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using system environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := config.MigrateDB(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	if err := validator.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	sink := notification.NewMelodySink(m)

	codeIssuer := services.NewCodeIssuer(services.CodeIssuerOptions{
		Store: repositories.NewReferenceRepo(config.DB),
	})

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		Bookings: repositories.NewBookingRepo(config.DB),
		Rooms:    repositories.NewRoomRepo(config.DB),
		Codes:    codeIssuer,
		Sink:     sink,
		Logger:   appLogger,
	})

	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		Bookings: repositories.NewBookingRepo(config.DB),
		Payments: repositories.NewPaymentRepo(config.DB),
		Sink:     sink,
		Logger:   appLogger,
	})

	jobs.SetStayCompleter(bookingService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, bookingService, paymentService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
