package repository

import (
	"context"
	"errors"
	"fmt"

	"todoer/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrTodoNotFound error = errors.New("todo not found")
var ErrDuplicateUsername error = errors.New("username already taken")

type TodoRepository struct {
	db *db.PostgresDB
}

func NewTodoRepository(storage *db.PostgresDB) *TodoRepository {
	return &TodoRepository{
		db: storage,
	}
}

var _ Repo = (*TodoRepository)(nil)

func (r *TodoRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Todo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *TodoRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// InTransaction runs fn against a gateway bound to one transaction; commit and
// rollback follow fn's return value.
func (r *TodoRepository) InTransaction(ctx context.Context, fn func(tx Repo) error) error {
	return r.db.Transaction(ctx, func(tx *db.PostgresDB) error {
		return fn(&TodoRepository{db: tx})
	})
}

func (r *TodoRepository) CreateUser(ctx context.Context, user User) (uint, error) {
	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

func (r *TodoRepository) GetUserByID(ctx context.Context, id uint) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) UpdateUser(ctx context.Context, user User) error {
	affected, err := r.db.UpdateRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteUser(ctx context.Context, id uint) error {
	affected, err := r.db.DeleteBy(ctx, "id", id, &User{})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, todo Todo) (uint, error) {
	err := r.db.InsertRecord(ctx, &todo)
	if err != nil {
		return 0, fmt.Errorf("create todo: %w", err)
	}

	return todo.ID, nil
}

func (r *TodoRepository) GetTodoByID(ctx context.Context, id uint) (Todo, error) {
	var todo Todo

	err := r.db.GetOneBy(ctx, "id", id, &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("get todo by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) ListTodosByOwner(ctx context.Context, userID uint) ([]Todo, error) {
	todos := []Todo{}

	err := r.db.GetAllBy(ctx, "user_id", userID, &todos)
	if err != nil {
		return nil, fmt.Errorf("list todos by owner: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) UpdateTodo(ctx context.Context, todo Todo) error {
	affected, err := r.db.UpdateRecord(ctx, &todo)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, id uint) error {
	affected, err := r.db.DeleteBy(ctx, "id", id, &Todo{})
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// DeleteTodosByOwner removes every todo of a user; deleting none is fine.
func (r *TodoRepository) DeleteTodosByOwner(ctx context.Context, userID uint) error {
	_, err := r.db.DeleteBy(ctx, "user_id", userID, &Todo{})
	if err != nil {
		return fmt.Errorf("delete todos by owner: %w", err)
	}

	return nil
}
