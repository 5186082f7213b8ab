package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/utils"
)

type validateResetTokenResponse struct {
	Valid     bool      `json:"valid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// validateResetToken answers whether the token from the "token" query
// parameter is still live. Unknown, expired, and consumed tokens all map to
// 404 so that callers cannot probe which token strings ever existed.
func (h *Handler) validateResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString := r.URL.Query().Get("token")

	token, err := h.services.ResetService.Validate(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("reset token validation failed")
		utils.WriteJSONError(w, "token is expired or invalid", statusFromError(err))
		return
	}

	utils.WriteJSON(w, validateResetTokenResponse{Valid: true, ExpiresAt: token.ExpiryDate}, http.StatusOK)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// resetPassword consumes a live reset token and sets the new password on the
// owning account. The token never authorizes a second change.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.ResetPassword(ctx, request.Token, request.NewPassword); err != nil {
		log.Err(err).Msg("password reset failed")
		utils.WriteJSONError(w, "password reset failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
