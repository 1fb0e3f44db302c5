package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/internal/service"
	"github.com/elparchetipk/go-auth-api/internal/store"
	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON body"), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case service.AsValidationError(err) != nil:
			log.Err(err).Msg("registration input rejected")
			utils.WriteJSON(w, models.FailWithErrors("validation failed", service.AsValidationError(err).Fields), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.Fail("email already registered"), http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.Fail("internal server error"), http.StatusInternalServerError)
			return
		}
	}

	public := registeredUser.Public()
	response := models.OK("user registered successfully")
	response.User = &public

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("invalid JSON body"), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case service.AsValidationError(err) != nil:
			log.Err(err).Msg("login input rejected")
			utils.WriteJSON(w, models.FailWithErrors("validation failed", service.AsValidationError(err).Fields), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// one answer for unknown email and wrong password
			log.Err(err).Msg("credentials rejected")
			utils.WriteJSON(w, models.Fail("invalid email or password"), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.Fail("internal server error"), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Fail("internal server error"), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	public := foundUser.Public()
	response := models.OK("login successful")
	response.User = &public
	response.Token = token.SignedString

	utils.WriteJSON(w, response, http.StatusOK)
}

// logout acknowledges the client's intent to end the session. Tokens are
// bearer credentials and cannot be revoked server-side before expiry; the
// client discards its stored token on this answer.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.OK("logout successful"), http.StatusOK)
}

// profile re-fetches the subject by ID so the answer reflects the current
// record, not the token's snapshot.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteJSON(w, models.Fail("unauthorized"), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.Profile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", userID).Msg("user no longer exists")
			utils.WriteJSON(w, models.Fail("user not found"), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile lookup")
			utils.WriteJSON(w, models.Fail("internal server error"), http.StatusInternalServerError)
			return
		}
	}

	public := foundUser.Public()
	response := models.OK("profile retrieved successfully")
	response.User = &public

	utils.WriteJSON(w, response, http.StatusOK)
}

// verify answers with the subject the auth middleware already resolved; a
// request reaching this handler holds a live token for an existing account.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := r.Context().Value(utils.UserCtxKey).(models.User)
	if !ok {
		log.Error().Msg("no user in context")
		utils.WriteJSON(w, models.Fail("unauthorized"), http.StatusUnauthorized)
		return
	}

	public := user.Public()
	response := models.OK("token is valid")
	response.User = &public

	utils.WriteJSON(w, response, http.StatusOK)
}
