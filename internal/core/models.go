package core

import (
	"time"

	"todoer/internal/repository"
)

// User is the outward-facing profile. It deliberately has no password field,
// so a hash can never reach a response payload.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Todo struct {
	ID          uint                `json:"id"`
	UserID      uint                `json:"user_id"`
	Description string              `json:"description"`
	DateCreated time.Time           `json:"date_created"`
	DateDue     *time.Time          `json:"date_due"`
	Priority    repository.Priority `json:"priority"`
	Completed   bool                `json:"completed"`
}

type Credentials struct {
	Username string
	Password string
}

type Session struct {
	Token  string
	UserID uint
}

// TodoDraft carries the client-settable fields of a new todo; owner and
// creation time are assigned by the service.
type TodoDraft struct {
	Description string
	DateDue     *time.Time
	Priority    repository.Priority
	Completed   bool
}

// TodoChange is a full replacement of a todo's mutable state (PUT semantics).
type TodoChange struct {
	ID          uint
	Description string
	DateCreated time.Time
	DateDue     *time.Time
	Priority    repository.Priority
	Completed   bool
}
