package handler

import (
	"net/http"

	"go.uber.org/zap"
)

type SystemHandler struct {
	logs *zap.SugaredLogger
	db   Pinger
}

func NewSystemHandler(logger *zap.SugaredLogger, db Pinger) *SystemHandler {
	return &SystemHandler{
		logs: logger,
		db:   db,
	}
}

func (h *SystemHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]string{"msg": "server up"}), requestID(r))
}

// HandleHealth reports whether the database answers.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if err := h.db.Ping(r.Context()); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, "database connection failed"), reqID)
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]string{"msg": "database connection is healthy"}), reqID)
}
