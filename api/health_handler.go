package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]interface{}{
			"status": "ok",
			"uptime": time.Since(h.startupTime).String(),
		})
	}
}
