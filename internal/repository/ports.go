package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Repo is the persistence gateway. Every operation runs against the unit of
// work it is called on; InTransaction hands the caller a gateway bound to a
// single transaction.
//
//counterfeiter:generate -o fake -fake-name Repo . Repo
type Repo interface {
	InTransaction(ctx context.Context, fn func(tx Repo) error) error

	CreateUser(ctx context.Context, user User) (uint, error)
	GetUserByID(ctx context.Context, id uint) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	UpdateUser(ctx context.Context, user User) error
	DeleteUser(ctx context.Context, id uint) error

	CreateTodo(ctx context.Context, todo Todo) (uint, error)
	GetTodoByID(ctx context.Context, id uint) (Todo, error)
	ListTodosByOwner(ctx context.Context, userID uint) ([]Todo, error)
	UpdateTodo(ctx context.Context, todo Todo) error
	DeleteTodo(ctx context.Context, id uint) error
	DeleteTodosByOwner(ctx context.Context, userID uint) error
}
