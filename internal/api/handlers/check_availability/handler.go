package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SeatingService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase      CheckAvailabilityUseCase
	contactPhone string
	logger       Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, contactPhone string, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		contactPhone: contactPhone,
		logger:       logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты, времени и размера группы)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability - Failed to check availability: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.contactPhone)

	h.logger.Info("POST /availability - Decision %s: party=%d, date=%s, time=%s, suggestions=[%s]",
		response.Status, response.PartySize, response.Date, response.RequestedTime, response.SuggestedTimes)
	handlers.RespondJSON(w, http.StatusOK, response)
}
