package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/unsaid-thoughts-backend/database"
	"github.com/rpupo63/unsaid-thoughts-backend/errs"
	"github.com/rpupo63/unsaid-thoughts-backend/models"
	"github.com/rpupo63/unsaid-thoughts-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    *services.TokenIssuer
}

func newAuthHandler(userRepo *database.UserRepo, tokens *services.TokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

// register creates an account and signs the caller in. Duplicate
// email/username answers are deliberately terse.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Email already in use"))
			return
		}

		existing, err = h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Username already taken"))
			return
		}

		hash, err := services.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to create account"))
			return
		}

		user := models.User{
			ID:          uuid.New(),
			Username:    req.Username,
			Email:       req.Email,
			Password:    hash,
			DisplayName: req.DisplayName,
			CreatedAt:   time.Now(),
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		token, err := h.tokens.Issue(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, AuthResponse{User: user, Token: token})
	}
}

// login verifies credentials by email. Lookup and password failures
// share one generic message so accounts cannot be enumerated.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil || !services.CheckPassword(user.Password, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid email or password"))
			return
		}

		token, err := h.tokens.Issue(*user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, AuthResponse{User: *user, Token: token})
	}
}
