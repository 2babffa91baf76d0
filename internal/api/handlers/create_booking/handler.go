package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SeatingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры брони"
	msgSlotNotAvailable   = "на выбранное время не хватает мест"
	msgPartyOverLimit     = "для групп больше 6 человек бронь оформляется по телефону"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var unavailable *createBooking.SlotUnavailableError
		switch {
		case errors.As(err, &unavailable):
			h.logger.Warn("POST /reservations - Slot not available: party=%d, date=%s, time=%s",
				req.PartySize, req.Date, req.Time)
			handlers.RespondJSON(w, http.StatusConflict, SlotUnavailableResponse{
				Code:        http.StatusConflict,
				Message:     msgSlotNotAvailable,
				Suggestions: unavailable.Suggestions.Strings(),
			})

		case errors.Is(err, createBooking.ErrPartyOverLimit):
			h.logger.Warn("POST /reservations - Party over limit: party=%d", req.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPartyOverLimit)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: party=%d, date=%s, time=%s, error=%v",
				req.PartySize, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: code=%s, party=%d, date=%s, time=%s",
		response.Code, response.PartySize, response.Date, response.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
