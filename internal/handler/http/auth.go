package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/service"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/internal/utils"
	"github.com/avasilcai/school-admin/models"
)

// registerRequest is the payload of POST /api/users/register. Username and
// Password are optional: a missing username is derived from the holder's
// names, and a missing password triggers issuance of a password-reset token
// so the holder sets their own credential on first login.
type registerRequest struct {
	Username  string      `json:"username,omitempty"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Password  string      `json:"password,omitempty"`
	Role      models.Role `json:"role"`

	Student *models.StudentProfile `json:"student,omitempty"`
	Parent  *models.ParentProfile  `json:"parent,omitempty"`
	Teacher *models.TeacherProfile `json:"teacher,omitempty"`
}

type registerResponse struct {
	Account models.Account `json:"account"`

	// ResetToken is set only when no explicit password was supplied; the
	// holder uses it to set their own password before it expires.
	ResetToken string `json:"reset_token,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	username := request.Username
	if username == "" {
		derived, err := h.services.ProvisioningService.DeriveUsername(ctx, request.FirstName, request.LastName, request.Role)
		if err != nil {
			log.Err(err).Msg("username derivation failed")
			utils.WriteJSONError(w, "could not derive a username", statusFromError(err))
			return
		}
		username = derived
	}

	// without an explicit password the account starts with a random
	// throwaway credential and a reset token for first-login setup
	password := request.Password
	generatedPassword := password == ""
	if generatedPassword {
		generated, err := utils.NewOpaqueToken()
		if err != nil {
			log.Err(err).Msg("initial password generation failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		password = generated
	}

	account := models.Account{
		Username: username,
		Email:    request.Email,
		Role:     request.Role,
		Student:  request.Student,
		Parent:   request.Parent,
		Teacher:  request.Teacher,
	}

	created, err := h.services.ProvisioningService.ProvisionAccount(ctx, account, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidRoleMapping):
			log.Err(err).Msg("role does not match profile")
			utils.WriteJSONError(w, "role does not match profile", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			utils.WriteJSONError(w, "username already exists", http.StatusConflict)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, "email already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during account registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	response := registerResponse{Account: created}

	if generatedPassword {
		resetToken, err := h.services.ResetService.Issue(ctx, created)
		if err != nil {
			log.Err(err).Int64("account_id", created.ID).Msg("reset token issuance failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		response.ResetToken = resetToken.Token
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundAccount, err := h.services.AuthService.Login(ctx, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid username/password")
			utils.WriteJSONError(w, "invalid username/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundAccount.ID).Str("role", string(foundAccount.Role)).Msg("account successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundAccount)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
