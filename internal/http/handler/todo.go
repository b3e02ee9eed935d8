package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"todoer/internal/core"
	"todoer/internal/http/payload"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todos            TodoService
}

func NewTodoHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, todoService TodoService) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todos:            todoService,
	}
}

func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	todos, err := h.todos.ListTodos(r.Context(), actorID)
	if err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("failed to list todos",
			"error", err,
			"handler", ListTodos,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, todos), reqID)
}

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	var req payload.CreateTodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest,
			"invalid request data (make sure all fields are full and properly formatted)"), reqID)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTodo,
			"request_id", reqID)
		return
	}

	todoID, err := h.todos.CreateTodo(r.Context(), actorID, req.ToDraft())
	if err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusInternalServerError, oopsMsg), reqID)
		h.logs.Errorw("failed to create todo",
			"error", err,
			"handler", CreateTodo,
			"request_id", reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusCreated, map[string]uint{"id": todoID}), reqID)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	var req payload.UpdateTodoRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest,
			"invalid request data (make sure all fields are full and properly formatted)"), reqID)
		h.logs.Infow("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTodo,
			"request_id", reqID)
		return
	}

	err := h.todos.UpdateTodo(r.Context(), actorID, req.ToChange())
	if err != nil {
		h.respondTodoError(w, err, UpdateTodo, reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]uint{"id": req.ID}), reqID)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	actorID, ok := actingUserID(r)
	if !ok {
		respond(w, h.logs, errorEnvelope(http.StatusUnauthorized, "authentication required"), reqID)
		return
	}

	todoID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(w, h.logs, errorEnvelope(http.StatusBadRequest, "todo id must be a positive integer"), reqID)
		return
	}

	if err := h.todos.DeleteTodo(r.Context(), actorID, uint(todoID)); err != nil {
		h.respondTodoError(w, err, DeleteTodo, reqID)
		return
	}

	respond(w, h.logs, successEnvelope(http.StatusOK, map[string]string{"msg": "todo deleted"}), reqID)
}

func (h *TodoHandler) respondTodoError(w http.ResponseWriter, err error, route string, reqID string) {
	env := errorEnvelope(http.StatusInternalServerError, oopsMsg)
	switch {
	case errors.Is(err, core.ErrTodoNotFound):
		env = errorEnvelope(http.StatusNotFound, core.ErrTodoNotFound.Error())
	case errors.Is(err, core.ErrForbidden):
		env = errorEnvelope(http.StatusForbidden, core.ErrForbidden.Error())
	default:
		h.logs.Errorw("todo operation failed",
			"error", err,
			"handler", route,
			"request_id", reqID)
	}
	respond(w, h.logs, env, reqID)
}
