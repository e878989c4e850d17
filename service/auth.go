package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth registers operators and issues their access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, ErrMissingDependency
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates a new operator account.
func (a *Auth) Register(username, password string) (*domain.User, error) {
	if _, err := a.userRepo.ByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	userConfig := domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	user, err := domain.NewUser(userConfig)
	if err != nil {
		return nil, err
	}

	err = a.userRepo.Save(user)
	if errors.Is(err, domain.ErrUsernameConflict) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn checks the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
