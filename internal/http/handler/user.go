package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"todoer/internal/core"
	"todoer/internal/http/handler/middleware"
	"todoer/internal/http/payload"
)

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
	sessionTTL       time.Duration
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, userService UserService, sessionTTL time.Duration) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            userService,
		sessionTTL:       sessionTTL,
	}
}

func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest,
			"invalid request data (make sure all fields are full and properly formatted)"), reqID)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterUser,
			"request_id", reqID)
		return
	}

	userID, err := h.users.Register(r.Context(), req.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			respond(w, h.logs, errorEnvelope(http.StatusBadRequest, core.ErrUsernameTaken.Error()), reqID)
			return
		}
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("failed to register user",
			"error", err,
			"handler", RegisterUser,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusCreated, map[string]uint{"id": userID}), reqID)
}

func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest,
			"invalid request data (make sure all fields are full and properly formatted)"), reqID)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", LoginUser,
			"request_id", reqID)
		return
	}

	session, err := h.users.Login(r.Context(), req.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrIncorrectPassword) {
			respond(w, h.logs, errorEnvelope(http.StatusBadRequest, core.ErrIncorrectPassword.Error()), reqID)
			return
		}
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", LoginUser,
			"request_id", reqID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond(w, h.logs, successEnvelope(http.StatusCreated, map[string]uint{"id": session.UserID}), reqID)
}

func (h *UserHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	h.users.Logout(sessionToken(r))

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]string{"msg": "logged out"}), reqID)
}

func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	userID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest, "user id must be a positive integer"), reqID)
		return
	}

	user, err := h.users.GetUser(r.Context(), uint(userID))
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			respond(w, h.logs, errorEnvelope(http.StatusNotFound, core.ErrUserNotFound.Error()), reqID)
			return
		}
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("failed to get user",
			"error", err,
			"handler", GetUserByID,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, user), reqID)
}

func (h *UserHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	var req payload.UpdateUserRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest,
			"invalid request data (make sure all fields are full and properly formatted)"), reqID)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", reqID)
		return
	}

	err := h.users.UpdateUser(r.Context(), actorID, req.ToCredentials())
	if err != nil {
		env := errorEnvelope(http.StatusInternalServerError, oopsMsg)
		switch {
		case errors.Is(err, core.ErrUsernameTaken):
			env = errorEnvelope(http.StatusBadRequest, core.ErrUsernameTaken.Error())
		case errors.Is(err, core.ErrUserNotFound):
			env = errorEnvelope(http.StatusNotFound, core.ErrUserNotFound.Error())
		default:
			h.logs.Errorw("failed to update user",
				"error", err,
				"handler", UpdateUser,
				"request_id", reqID)
		}
		respond(w, h.logs, env, reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]uint{"id": actorID}), reqID)
}

func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	err := h.users.DeleteUser(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			respond(w, h.logs, errorEnvelope(http.StatusNotFound, core.ErrUserNotFound.Error()), reqID)
			return
		}
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("failed to delete user",
			"error", err,
			"handler", DeleteUser,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]string{"msg": "account deleted"}), reqID)
}
