package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"todoer/internal/http/handler/middleware"
)

// Route patterns, registered verbatim on the mux.
var (
	RegisterUser = "POST /users"
	LoginUser    = "POST /users/login"
	LogoutUser   = "GET /users/logout"
	GetUserByID  = "GET /users/{id}"
	UpdateUser   = "PUT /users"
	DeleteUser   = "DELETE /users"
	ListTodos    = "GET /todos/{$}"
	CreateTodo   = "POST /todos/{$}"
	UpdateTodo   = "PUT /todos/{$}"
	DeleteTodo   = "DELETE /todos/{id}"
	Liveness     = "GET /{$}"
	Health       = "GET /health"
)

func respond(w http.ResponseWriter, logs *zap.SugaredLogger, env Envelope, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.Code)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return id
}

func actingUserID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(middleware.UserIDKey).(uint)
	return id, ok
}

func sessionToken(r *http.Request) string {
	token, _ := r.Context().Value(middleware.SessionTokenKey).(string)
	return token
}
