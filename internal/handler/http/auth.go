package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.writeToken(w, r, registeredUser, "*Handler.register")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.ID.String()).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser, "*Handler.login")
}

// writeToken issues a token for user and sends it both as the plain-text body
// and in the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User, funcName string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteText(w, token.SignedString, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing token")
	}
}

// decodeJSON decodes the request body into dst, limiting its size.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
