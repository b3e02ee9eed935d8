package payload

import (
	"time"

	"github.com/jellydator/validation"

	"todoer/internal/core"
	"todoer/internal/repository"
)

type CreateTodoRequest struct {
	Description string     `json:"description"`
	DateDue     *time.Time `json:"date_due"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
}

func (c CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.Priority, validation.Required, validation.In(repository.PriorityNames()...)),
	)
}

func (c CreateTodoRequest) ToDraft() core.TodoDraft {
	return core.TodoDraft{
		Description: c.Description,
		DateDue:     c.DateDue,
		Priority:    repository.Priority(c.Priority),
		Completed:   c.Completed,
	}
}

// UpdateTodoRequest carries the full replacement state, date_created included,
// since PUT does not merge.
type UpdateTodoRequest struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	DateCreated time.Time  `json:"date_created"`
	DateDue     *time.Time `json:"date_due"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
}

func (u UpdateTodoRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Description, validation.Required),
		validation.Field(&u.DateCreated, validation.Required),
		validation.Field(&u.Priority, validation.Required, validation.In(repository.PriorityNames()...)),
	)
}

func (u UpdateTodoRequest) ToChange() core.TodoChange {
	return core.TodoChange{
		ID:          u.ID,
		Description: u.Description,
		DateCreated: u.DateCreated,
		DateDue:     u.DateDue,
		Priority:    repository.Priority(u.Priority),
		Completed:   u.Completed,
	}
}
