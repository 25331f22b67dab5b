package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/database"
	"github.com/rpupo63/unsaid-thoughts-backend/errs"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type thoughtHandler struct {
	responder   Responder
	logger      zerolog.Logger
	thoughtRepo *database.ThoughtRepo
}

func newThoughtHandler(thoughtRepo *database.ThoughtRepo) thoughtHandler {
	logger := log.With().Str("handlerName", "thoughtHandler").Logger()

	return thoughtHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		thoughtRepo: thoughtRepo,
	}
}

// listThoughts serves GET /api/thoughts with the optional limit, tag,
// search and exclude query parameters. Only published thoughts appear.
func (h thoughtHandler) listThoughts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ThoughtFilter{
			Tag:    r.URL.Query().Get("tag"),
			Search: r.URL.Query().Get("search"),
		}

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
				return
			}
			filter.Limit = limit
		}

		if raw := r.URL.Query().Get("exclude"); raw != "" {
			exclude, err := uuid.Parse(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid exclude"))
				return
			}
			filter.Exclude = &exclude
		}

		thoughts, err := h.thoughtRepo.Find(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thoughts", err))
			return
		}

		h.responder.WriteJSON(w, thoughts)
	}
}

// listMyThoughts serves the owner's dashboard: every thought of the
// caller, drafts included.
func (h thoughtHandler) listMyThoughts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		thoughts, err := h.thoughtRepo.Find(database.ThoughtFilter{AuthorID: &identity.ID})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thoughts", err))
			return
		}

		h.responder.WriteJSON(w, thoughts)
	}
}

// getThoughtBySlug is the public read path; each successful fetch
// bumps the view counter (the response carries the pre-bump value).
func (h thoughtHandler) getThoughtBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		thought, err := h.thoughtRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thought", err))
			return
		}
		if thought == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("thought not found"))
			return
		}

		if err := h.thoughtRepo.IncrementViewCount(thought.ID); err != nil {
			h.logger.Error().Err(err).Str("thoughtId", thought.ID.String()).Msg("Failed to increment view count")
		}

		h.responder.WriteJSON(w, thought)
	}
}

// getThoughtByID reads a single thought without the view-count side
// effect; the editor uses it.
func (h thoughtHandler) getThoughtByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid thought id"))
			return
		}

		thought, err := h.thoughtRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thought", err))
			return
		}
		if thought == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("thought not found"))
			return
		}

		h.responder.WriteJSON(w, thought)
	}
}

func (h thoughtHandler) createThought() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req CreateThoughtRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		thought := models.Thought{
			Title:       req.Title,
			Slug:        req.Slug,
			Content:     req.Content,
			Excerpt:     req.Excerpt,
			ReadingTime: 1,
			IsPublished: true,
		}
		if req.ReadingTime != nil {
			thought.ReadingTime = *req.ReadingTime
		}
		if req.WordCount != nil {
			thought.WordCount = *req.WordCount
		}
		if req.IsPublished != nil {
			thought.IsPublished = *req.IsPublished
		}

		created, err := h.thoughtRepo.Create(&thought, identity.ID, req.TagNames)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "thought", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h thoughtHandler) updateThought() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid thought id"))
			return
		}

		// Ownership is settled before any decode or write happens.
		existing, err := h.thoughtRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thought", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("thought not found"))
			return
		}
		if existing.AuthorID != identity.ID {
			h.responder.WriteError(w, errs.NewNotOwnerError("thought"))
			return
		}

		var req UpdateThoughtRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var tagNames []string
		if req.TagNames != nil {
			tagNames = *req.TagNames
			if tagNames == nil {
				tagNames = []string{}
			}
		}

		updated, err := h.thoughtRepo.Update(id, database.ThoughtUpdate{
			Title:       req.Title,
			Slug:        req.Slug,
			Content:     req.Content,
			Excerpt:     req.Excerpt,
			ReadingTime: req.ReadingTime,
			WordCount:   req.WordCount,
			IsPublished: req.IsPublished,
		}, tagNames)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "thought", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("thought not found"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h thoughtHandler) deleteThought() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid thought id"))
			return
		}

		existing, err := h.thoughtRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "thought", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("thought not found"))
			return
		}
		if existing.AuthorID != identity.ID {
			h.responder.WriteError(w, errs.NewNotOwnerError("thought"))
			return
		}

		if _, err := h.thoughtRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "thought", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
