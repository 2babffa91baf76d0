package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SeatingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPartySize = "некорректный размер группы"
	msgInvalidFlag      = "некорректное значение onlyAvailable"
	msgPartyOverLimit   = "для групп больше 6 человек онлайн-бронь недоступна"
)

var (
	errInvalidDate      = errors.New("invalid date")
	errInvalidPartySize = errors.New("invalid partySize")
	errInvalidFlag      = errors.New("invalid onlyAvailable")
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/slots
// Query params: partySize (optional, default 1), onlyAvailable (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("partySize"), query.Get("onlyAvailable"))
	if err != nil {
		h.logger.Warn("GET /days/{date}/slots - Invalid request: %v", err)
		switch {
		case errors.Is(err, errInvalidPartySize):
			handlers.RespondBadRequest(w, msgInvalidPartySize)
		case errors.Is(err, errInvalidFlag):
			handlers.RespondBadRequest(w, msgInvalidFlag)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPartyOverLimit):
			h.logger.Warn("GET /days/{date}/slots - Party over limit: party=%d", useCaseReq.PartySize)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPartyOverLimit)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /days/{date}/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /days/{date}/slots - Slots retrieved successfully: date=%s, party=%d, slots_count=%d",
		response.Date, response.PartySize, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
