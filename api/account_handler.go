package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/personal-blog-backend/auth"
	"github.com/rpupo63/personal-blog-backend/errs"
	"github.com/rpupo63/personal-blog-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type accountHandler struct {
	responder Responder
	logger    zerolog.Logger
	accounts  services.Accounts
	sessions  auth.Sessions
}

func newAccountHandler(accounts services.Accounts, sessions auth.Sessions) accountHandler {
	logger := log.With().Str("handlerName", "accountHandler").Logger()

	return accountHandler{
		responder: NewResponder(logger),
		logger:    logger,
		accounts:  accounts,
		sessions:  sessions,
	}
}

// RegisterRequest is the body of a registration submission
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of a login submission
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IdentityResponse describes the caller's resolved identity
type IdentityResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        uint   `json:"userId,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Administrator bool   `json:"administrator,omitempty"`
}

func newIdentityResponse(identity auth.Identity) IdentityResponse {
	return IdentityResponse{
		Authenticated: identity.Authenticated,
		UserID:        identity.UserID,
		Name:          identity.Name,
		Email:         identity.Email,
		Administrator: identity.IsAdministrator(),
	}
}

// registerForm serves the registration form's field list alongside the
// caller's current identity, so a logged-in visitor can be redirected away.
func (h accountHandler) registerForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, newIdentityResponse(identityFromCtx(r.Context())))
	}
}

// register creates an account and logs the new user straight in.
// @Summary Register account
// @Accept json
// @Produce json
// @Success 201 {object} IdentityResponse "New identity, session established"
// @Failure 409 {object} ErrorResponse "Conflict - email already registered"
// @Router /register [post]
func (h accountHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.Malformed("registration"))
			return
		}

		identity, err := h.accounts.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.sessions.Issue(identity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.sessions.SetCookie(w, token)

		h.responder.WriteJSONStatus(w, http.StatusCreated, newIdentityResponse(identity))
	}
}

// loginForm mirrors registerForm for the login page.
func (h accountHandler) loginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, newIdentityResponse(identityFromCtx(r.Context())))
	}
}

// login authenticates credentials and establishes a session.
// @Summary Log in
// @Accept json
// @Produce json
// @Success 200 {object} IdentityResponse "Identity, session established"
// @Failure 401 {object} ErrorResponse "Unknown email or wrong password"
// @Router /login [post]
func (h accountHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.Malformed("login"))
			return
		}

		identity, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.sessions.Issue(identity)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.sessions.SetCookie(w, token)

		h.responder.WriteJSON(w, newIdentityResponse(identity))
	}
}

// logout clears the session cookie. Logging out twice is fine.
// @Summary Log out
// @Produce json
// @Success 200 {object} IdentityResponse "Anonymous identity"
// @Router /logout [get]
func (h accountHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.ClearCookie(w)
		h.responder.WriteJSON(w, newIdentityResponse(auth.Anonymous))
	}
}
