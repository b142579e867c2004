package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sparklean/config"
	"sparklean/cron"
	"sparklean/database"
	bookingRepo "sparklean/database/repository/booking"
	cleanerRepo "sparklean/database/repository/cleaner"
	pricingRepo "sparklean/database/repository/pricing"
	scheduleRepo "sparklean/database/repository/schedule"
	teamRepo "sparklean/database/repository/team"
	"sparklean/handlers"
	"sparklean/routes"
	"sparklean/services/booking"
	"sparklean/services/pricing"
	"sparklean/services/recurring"
	"sparklean/services/team"
	"sparklean/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())

	// Repositories.
	pricingRepository := pricingRepo.NewMongoPricingRepo()
	bookingRepository := bookingRepo.NewMongoBookingRepo()
	scheduleRepository := scheduleRepo.NewMongoScheduleRepo()
	teamRepository := teamRepo.NewMongoTeamRepo()
	cleanerRepository := cleanerRepo.NewMongoCleanerRepo()

	clock := time.Now

	// Pricing.
	provider := pricing.NewProvider(pricingRepository, utils.GetCacheClient(), config.PricingCacheTTL(), logger)
	calculator := &pricing.Calculator{Provider: provider}
	pricingAdmin := &pricing.Admin{Provider: provider, Logger: logger}

	// Bookings and earnings.
	var paymentHandler booking.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		paymentHandler = &booking.StripePaymentHandler{Logger: logger}
	}
	bookingService := &booking.Service{
		Bookings:   bookingRepository,
		Cleaners:   cleanerRepository,
		Teams:      teamRepository,
		Calculator: calculator,
		Payments:   paymentHandler,
		Logger:     logger,
		Clock:      clock,
	}

	teamService := &team.Service{
		Teams:    teamRepository,
		Bookings: bookingRepository,
		Cleaners: cleanerRepository,
		Logger:   logger,
		Clock:    clock,
	}

	// Recurring schedules.
	generator := &recurring.Generator{
		Schedules:  scheduleRepository,
		Bookings:   bookingRepository,
		Cleaners:   cleanerRepository,
		Calculator: calculator,
		Logger:     logger,
		Clock:      clock,
	}

	handlerBundle := &handlers.HandlerBundle{
		Pricing:  handlers.NewPricingHandler(provider, pricingAdmin, calculator),
		Booking:  handlers.NewBookingHandler(bookingService),
		Cleaner:  handlers.NewCleanerHandler(bookingService, clock),
		Schedule: handlers.NewScheduleHandler(scheduleRepository, generator, clock),
		Team:     handlers.NewTeamHandler(teamService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background generation worker.
	cron.InitGenerationWorker(generator, scheduleRepository)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	database.CloseDB()
	logger.Info("Server exited")
}
