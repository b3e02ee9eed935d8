package payload

import (
	"github.com/jellydator/validation"

	"todoer/internal/core"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 255)),
		// 72 bytes is the bcrypt input limit
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (r RegisterRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: r.Username,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: l.Username,
		Password: l.Password,
	}
}

// UpdateUserRequest fully replaces the profile, so the same rules apply as at
// signup.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Required, validation.Length(3, 255)),
		validation.Field(&u.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (u UpdateUserRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: u.Username,
		Password: u.Password,
	}
}
