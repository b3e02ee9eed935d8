package handler

import (
	"context"
	"net/http"

	"todoer/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	Register(ctx context.Context, creds core.Credentials) (uint, error)
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	Logout(token string)
	GetUser(ctx context.Context, id uint) (core.User, error)
	UpdateUser(ctx context.Context, actorID uint, creds core.Credentials) error
	DeleteUser(ctx context.Context, actorID uint) error
}

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	ListTodos(ctx context.Context, ownerID uint) ([]core.Todo, error)
	CreateTodo(ctx context.Context, ownerID uint, draft core.TodoDraft) (uint, error)
	UpdateTodo(ctx context.Context, actorID uint, change core.TodoChange) error
	DeleteTodo(ctx context.Context, actorID uint, todoID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name Pinger . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}
