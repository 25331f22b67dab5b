package api

import (
	"net/http"

	"github.com/rpupo63/unsaid-thoughts-backend/database"
	"github.com/rpupo63/unsaid-thoughts-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type statsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	thoughtRepo *database.ThoughtRepo
}

func newStatsHandler(thoughtRepo *database.ThoughtRepo) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		thoughtRepo: thoughtRepo,
	}
}

// getStats aggregates over all published thoughts
func (h statsHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.thoughtRepo.Stats(nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

// getMyStats aggregates over the caller's published thoughts
func (h statsHandler) getMyStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		stats, err := h.thoughtRepo.Stats(&identity.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
