package handler

import (
	"net/http"
	"strconv"

	"github.com/mcoot/connectfour/internal/api/apierr"
	"github.com/mcoot/connectfour/internal/api/response"
	"github.com/mcoot/connectfour/internal/services/game"
)

// MaxEventsLimit caps the page size a client may request
const MaxEventsLimit = 1000

// EventsHandler serves the event log
type EventsHandler struct {
	gameController game.ControllerInterface
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(gameController game.ControllerInterface) *EventsHandler {
	return &EventsHandler{gameController: gameController}
}

// List handles GET /api/v1/events?after=N&limit=M
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var after uint64
	if v := query.Get("after"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("after must be a non-negative integer"))
			return
		}
		after = parsed
	}

	limit := game.DefaultEventsLimit
	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > MaxEventsLimit {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be between 1 and 1000"))
			return
		}
		limit = parsed
	}

	events, err := h.gameController.Events(r.Context(), after, limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EventPageFromModel(events, after))
}

// Health handles GET /api/v1/health
func (h *EventsHandler) Health(w http.ResponseWriter, r *http.Request) {
	state := h.gameController.Snapshot()
	response.JSON(w, http.StatusOK, response.Health{
		Status:  "ok",
		Games:   state.GameCount,
		LastSeq: state.LastSeq,
	})
}
