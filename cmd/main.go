package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkAvailabilityHandler "github.com/roomsonrent/rental-service/internal/api/handlers/check_availability"
	createBookingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/create_booking"
	createListingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/create_listing"
	createLocationHandler "github.com/roomsonrent/rental-service/internal/api/handlers/create_location"
	createReviewHandler "github.com/roomsonrent/rental-service/internal/api/handlers/create_review"
	deleteBookingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/delete_booking"
	deleteListingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/delete_listing"
	deleteReviewHandler "github.com/roomsonrent/rental-service/internal/api/handlers/delete_review"
	getBookingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/get_booking"
	getListingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/get_listing"
	getListingReviewsHandler "github.com/roomsonrent/rental-service/internal/api/handlers/get_listing_reviews"
	getOwnerBookingsHandler "github.com/roomsonrent/rental-service/internal/api/handlers/get_owner_bookings"
	getUserBookingsHandler "github.com/roomsonrent/rental-service/internal/api/handlers/get_user_bookings"
	listListingsHandler "github.com/roomsonrent/rental-service/internal/api/handlers/list_listings"
	listLocationsHandler "github.com/roomsonrent/rental-service/internal/api/handlers/list_locations"
	updateBookingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/roomsonrent/rental-service/internal/api/handlers/update_booking_status"
	updateListingHandler "github.com/roomsonrent/rental-service/internal/api/handlers/update_listing"
	"github.com/roomsonrent/rental-service/internal/api/middleware"
	"github.com/roomsonrent/rental-service/internal/config"
	"github.com/roomsonrent/rental-service/internal/domain"
	listingCache "github.com/roomsonrent/rental-service/internal/infra/cache/listing"
	bookingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/booking"
	listingRepo "github.com/roomsonrent/rental-service/internal/infra/storage/listing"
	locationRepo "github.com/roomsonrent/rental-service/internal/infra/storage/location"
	reviewRepo "github.com/roomsonrent/rental-service/internal/infra/storage/review"
	userRepo "github.com/roomsonrent/rental-service/internal/infra/storage/user"
	"github.com/roomsonrent/rental-service/internal/integrations/mailer"
	bookingsService "github.com/roomsonrent/rental-service/internal/service/bookings"
	listingsService "github.com/roomsonrent/rental-service/internal/service/listings"
	locationsService "github.com/roomsonrent/rental-service/internal/service/locations"
	reviewsService "github.com/roomsonrent/rental-service/internal/service/reviews"
	checkAvailabilityUC "github.com/roomsonrent/rental-service/internal/usecase/check_availability"
	createBookingUC "github.com/roomsonrent/rental-service/internal/usecase/create_booking"
	"github.com/roomsonrent/rental-service/pkg/dbmetrics"
	"github.com/roomsonrent/rental-service/pkg/logger"
	"github.com/roomsonrent/rental-service/pkg/metrics"
	"github.com/roomsonrent/rental-service/pkg/simpletxmanager"
	"github.com/roomsonrent/rental-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting rental-service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by the usecases and services
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Initialize repositories (with or without query metrics)
	var (
		bookingRepository  *bookingRepo.Repository
		listingRepository  *listingRepo.Repository
		locationRepository *locationRepo.Repository
		reviewRepository   *reviewRepo.Repository
		userRepository     *userRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		listingRepository = listingRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		listingRepository = listingRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Listing cache (if enabled)
	var cache *listingCache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		cache = listingCache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Listing cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTLSeconds)
	}

	// The cache and mailer fields are interfaces; assign only when the
	// backends are configured so the services see a true nil otherwise.
	var listingsCache listingsService.ListingCache
	var reviewsCache reviewsService.ListingCache
	if cache != nil {
		listingsCache = cache
		reviewsCache = cache
	}

	// SMTP mailer (if enabled)
	var bookingsMailer bookingsService.Mailer
	var createBookingMailer createBookingUC.Mailer
	if cfg.SMTP.Enabled {
		mailClient := mailer.NewClient(
			cfg.SMTP.Host, cfg.SMTP.Port,
			cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From,
			log,
		)
		bookingsMailer = mailClient
		createBookingMailer = mailClient
		log.Info("Booking notifications enabled (smtp=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	// Status transition policy
	transitions := domain.PermissiveTransitions
	if cfg.Booking.StrictStatusTransitions {
		transitions = domain.StrictTransitions
		log.Info("Strict booking status transitions enabled")
	}

	// Initialize services
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		listingRepository,
		userRepository,
		bookingsMailer,
		transitions,
		log,
	)
	listingSvc := listingsService.NewService(
		listingRepository,
		listingsCache,
		userRepository,
		log,
	)
	locationSvc := locationsService.NewService(
		locationRepository,
		userRepository,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		listingRepository,
		reviewsCache,
		userRepository,
		txMgr,
		log,
	)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		listingRepository,
		userRepository,
		createBookingMailer,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		listingRepository,
		log,
	)

	// Initialize handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	createListing := createListingHandler.NewHandler(listingSvc, log)
	getListing := getListingHandler.NewHandler(listingSvc, log)
	listListings := listListingsHandler.NewHandler(listingSvc, log)
	updateListing := updateListingHandler.NewHandler(listingSvc, log)
	deleteListing := deleteListingHandler.NewHandler(listingSvc, log)

	listLocations := listLocationsHandler.NewHandler(locationSvc, log)
	createLocation := createLocationHandler.NewHandler(locationSvc, log)

	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getListingReviews := getListingReviewsHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	api.HandleFunc("/listings", listListings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings/{listingId}", getListing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings/{listingId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/listings/{listingId}/reviews", getListingReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owners/me/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/listings", createListing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/listings/{listingId}", updateListing.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/listings/{listingId}", deleteListing.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/locations", createLocation.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/listings/{listingId}/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
