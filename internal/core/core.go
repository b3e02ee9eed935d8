package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"todoer/internal/repository"
)

var TimeNow = time.Now

var ErrIncorrectPassword error = errors.New("incorrect username or password")
var ErrUserNotFound error = errors.New("user not found")
var ErrTodoNotFound error = errors.New("todo not found")
var ErrUsernameTaken error = errors.New("username must be unique")
var ErrForbidden error = errors.New("record belongs to another user")

// Todoer implements the business operations of the service: account lifecycle,
// login sessions and per-owner todo CRUD. Every persistence call runs inside a
// single unit of work per operation, and todo mutations pass the ownership
// guard before any statement executes.
type Todoer struct {
	logs     *zap.SugaredLogger
	repo     repository.Repo
	sessions SessionService
}

func NewTodoer(logger *zap.SugaredLogger, repo repository.Repo, sessions SessionService) *Todoer {
	return &Todoer{
		logs:     logger,
		repo:     repo,
		sessions: sessions,
	}
}

// Register creates an account with a bcrypt-hashed password and returns the
// generated user id.
func (t *Todoer) Register(ctx context.Context, creds Credentials) (uint, error) {
	hash, err := hashPassword(creds.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var userID uint
	err = t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		userID, err = tx.CreateUser(ctx, repository.User{
			Username:     creds.Username,
			PasswordHash: hash,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user registered", "user_id", userID)
	return userID, nil
}

// Login verifies the credentials and issues a session token. Unknown username
// and wrong password are indistinguishable to the caller.
func (t *Todoer) Login(ctx context.Context, creds Credentials) (Session, error) {
	var user repository.User
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		var err error
		user, err = tx.GetUserByUsername(ctx, creds.Username)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrIncorrectPassword
		}
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}

	if !verifyPassword(user.PasswordHash, creds.Password) {
		return Session{}, ErrIncorrectPassword
	}

	token, err := t.sessions.Issue(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue session: %w", err)
	}

	t.logs.Infow("user logged in", "user_id", user.ID)
	return Session{Token: token, UserID: user.ID}, nil
}

func (t *Todoer) Logout(token string) {
	t.sessions.Revoke(token)
}

func (t *Todoer) GetUser(ctx context.Context, id uint) (User, error) {
	var user repository.User
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		var err error
		user, err = tx.GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return User{ID: user.ID, Username: user.Username}, nil
}

// UpdateUser replaces the acting user's username and password.
func (t *Todoer) UpdateUser(ctx context.Context, actorID uint, creds Credentials) error {
	hash, err := hashPassword(creds.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		if _, err := tx.GetUserByID(ctx, actorID); err != nil {
			return err
		}
		return tx.UpdateUser(ctx, repository.User{
			ID:           actorID,
			Username:     creds.Username,
			PasswordHash: hash,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateUsername):
			return ErrUsernameTaken
		}
		return fmt.Errorf("update user: %w", err)
	}

	t.logs.Infow("user updated", "user_id", actorID)
	return nil
}

// DeleteUser removes the acting user's account together with all their todos,
// then kills every session the user still holds.
func (t *Todoer) DeleteUser(ctx context.Context, actorID uint) error {
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		if err := tx.DeleteTodosByOwner(ctx, actorID); err != nil {
			return err
		}
		return tx.DeleteUser(ctx, actorID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	t.sessions.RevokeUser(actorID)

	t.logs.Infow("user deleted", "user_id", actorID)
	return nil
}

func (t *Todoer) ListTodos(ctx context.Context, ownerID uint) ([]Todo, error) {
	var records []repository.Todo
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		var err error
		records, err = tx.ListTodosByOwner(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]Todo, len(records))
	for i, record := range records {
		todos[i] = recordToTodo(record)
	}
	return todos, nil
}

func (t *Todoer) CreateTodo(ctx context.Context, ownerID uint, draft TodoDraft) (uint, error) {
	record := repository.Todo{
		UserID:      ownerID,
		Description: draft.Description,
		DateCreated: TimeNow(),
		DateDue:     draft.DateDue,
		Priority:    draft.Priority,
		Completed:   draft.Completed,
	}

	var todoID uint
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		var err error
		todoID, err = tx.CreateTodo(ctx, record)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("create todo: %w", err)
	}

	t.logs.Infow("todo created", "todo_id", todoID, "user_id", ownerID)
	return todoID, nil
}

// UpdateTodo replaces a todo's mutable fields. The record's owner is checked
// against the acting identity before the update statement runs, inside the
// same unit of work.
func (t *Todoer) UpdateTodo(ctx context.Context, actorID uint, change TodoChange) error {
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		existing, err := tx.GetTodoByID(ctx, change.ID)
		if err != nil {
			return err
		}
		if existing.UserID != actorID {
			return ErrForbidden
		}

		return tx.UpdateTodo(ctx, repository.Todo{
			ID:          change.ID,
			UserID:      existing.UserID,
			Description: change.Description,
			DateCreated: change.DateCreated,
			DateDue:     change.DateDue,
			Priority:    change.Priority,
			Completed:   change.Completed,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTodoNotFound):
			return ErrTodoNotFound
		case errors.Is(err, ErrForbidden):
			return ErrForbidden
		}
		return fmt.Errorf("update todo: %w", err)
	}

	t.logs.Infow("todo updated", "todo_id", change.ID, "user_id", actorID)
	return nil
}

// DeleteTodo removes a todo after the same ownership guard as UpdateTodo.
func (t *Todoer) DeleteTodo(ctx context.Context, actorID uint, todoID uint) error {
	err := t.repo.InTransaction(ctx, func(tx repository.Repo) error {
		existing, err := tx.GetTodoByID(ctx, todoID)
		if err != nil {
			return err
		}
		if existing.UserID != actorID {
			return ErrForbidden
		}

		return tx.DeleteTodo(ctx, todoID)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTodoNotFound):
			return ErrTodoNotFound
		case errors.Is(err, ErrForbidden):
			return ErrForbidden
		}
		return fmt.Errorf("delete todo: %w", err)
	}

	t.logs.Infow("todo deleted", "todo_id", todoID, "user_id", actorID)
	return nil
}

func recordToTodo(record repository.Todo) Todo {
	return Todo{
		ID:          record.ID,
		UserID:      record.UserID,
		Description: record.Description,
		DateCreated: record.DateCreated,
		DateDue:     record.DateDue,
		Priority:    record.Priority,
		Completed:   record.Completed,
	}
}
