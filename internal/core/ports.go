package core

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionService . SessionService
type SessionService interface {
	Issue(userID uint) (string, error)
	Resolve(token string) (uint, bool)
	Revoke(token string)
	RevokeUser(userID uint)
}
