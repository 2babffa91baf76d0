package api

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/get_available_slots"
	getDayReservationsHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/get_day_reservations"
	getReservationHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/get_reservation"
	getSeatingRulesHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/get_seating_rules"
	"github.com/m04kA/SMC-SeatingService/internal/api/middleware"
	"github.com/m04kA/SMC-SeatingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ReservationService операции над созданными бронями
type ReservationService interface {
	getReservationHandler.ReservationService
	cancelReservationHandler.ReservationService
	getDayReservationsHandler.ReservationService
}

// Dependencies все, что нужно роутеру
// Metrics и RateLimiter могут быть nil (выключены)
type Dependencies struct {
	CheckAvailability checkAvailabilityHandler.CheckAvailabilityUseCase
	GetAvailableSlots getAvailableSlotsHandler.GetAvailableSlotsUseCase
	CreateBooking     createBookingHandler.CreateBookingUseCase
	Reservations      ReservationService

	ContactPhone   string
	AllowedOrigins []string

	Metrics     *metrics.Metrics
	MetricsPath string
	RateLimiter *middleware.RateLimiter

	Logger Logger
}

// NewRouter собирает HTTP-обработчик сервиса
func NewRouter(deps Dependencies) http.Handler {
	log := deps.Logger

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(deps.CheckAvailability, deps.ContactPhone, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(deps.GetAvailableSlots, log)
	createBooking := createBookingHandler.NewHandler(deps.CreateBooking, log)
	getReservation := getReservationHandler.NewHandler(deps.Reservations, log)
	cancelReservation := cancelReservationHandler.NewHandler(deps.Reservations, log)
	getDayReservations := getDayReservationsHandler.NewHandler(deps.Reservations, log)
	getSeatingRules := getSeatingRulesHandler.NewHandler(deps.ContactPhone, log)

	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		if deps.MetricsPath != "" {
			r.Handle(deps.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		}
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if deps.RateLimiter != nil {
		api.Use(middleware.RateLimit(deps.RateLimiter, deps.Metrics, log))
	}

	// --- Проверка мест ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/days/{date}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rules", getSeatingRules.Handle).Methods(http.MethodGet)

	// --- Брони ---
	api.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{code}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{code}", cancelReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/days/{date}/reservations", getDayReservations.Handle).Methods(http.MethodGet)

	var handler http.Handler = r

	if len(deps.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(deps.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
		)(handler)
	}

	return gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
		gorillaHandlers.PrintRecoveryStack(false),
	)(handler)
}

// recoveryLogger адаптер Logger под gorilla/handlers.RecoveryHandlerLogger
type recoveryLogger struct {
	log Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered: %v", v)
}
