package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fluxfinance/fluxfinance/internal/api/domain"
	"github.com/fluxfinance/fluxfinance/internal/api/service"
	"github.com/fluxfinance/fluxfinance/pkg/httpx"
	"github.com/fluxfinance/fluxfinance/pkg/slogx"
)

// LoginRequest is the credentials body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the user's public profile.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// LoginHandler serves POST /api/auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials against the seeded user set and issues a bearer token valid for one hour.
//	@Description	Unknown email and wrong password return the same error so account existence never leaks.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Email and password"
//	@Success		200			{object}	LoginResponse	"token, user"
//	@Failure		400			{object}	httpx.ErrorResponse
//	@Failure		401			{object}	httpx.ErrorResponse	"Email or password is incorrect"
//	@Failure		500			{object}	httpx.ErrorResponse
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Email or password is incorrect")
			return
		}
		log.Error("login failed unexpectedly", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}
