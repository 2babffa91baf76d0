package get_seating_rules

import (
	"net/http"

	"github.com/m04kA/SMC-SeatingService/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	rules  *RulesResponse
	logger Logger
}

func NewHandler(contactPhone string, logger Logger) *Handler {
	return &Handler{
		rules:  NewRulesResponse(contactPhone),
		logger: logger,
	}
}

// Handle GET /api/v1/rules
// Публичный endpoint, правила не зависят от даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /rules - Rules retrieved")
	handlers.RespondJSON(w, http.StatusOK, h.rules)
}
