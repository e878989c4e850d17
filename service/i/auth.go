package i

import (
	"github.com/beka-birhanu/cleaner-api/domain"
)

// Authenticator registers operators and signs them in.
type Authenticator interface {
	Register(username, password string) (*domain.User, error)
	SignIn(username, password string) (*domain.User, string, error)
}
