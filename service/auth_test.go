package service

import (
	"errors"
	"testing"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery-staple-42"

func TestAuthRegister(t *testing.T) {
	t.Run("new user", func(t *testing.T) {
		users := &mockUserRepo{}
		svc, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)

		users.On("ByUsername", "robot_1").Return(nil, domain.ErrUserNotFound)
		users.On("Save", mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register("robot_1", testPassword)
		require.NoError(t, err)
		assert.Equal(t, "robot_1", user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)
		users.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		users := &mockUserRepo{}
		svc, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)
		users.On("ByUsername", "robot_1").Return(&domain.User{Username: "robot_1"}, nil)

		_, err = svc.Register("robot_1", testPassword)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		users.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("weak password", func(t *testing.T) {
		users := &mockUserRepo{}
		svc, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)
		users.On("ByUsername", "robot_1").Return(nil, domain.ErrUserNotFound)

		_, err = svc.Register("robot_1", "1234")
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
	})

	t.Run("username taken concurrently", func(t *testing.T) {
		users := &mockUserRepo{}
		svc, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)
		users.On("ByUsername", "robot_1").Return(nil, domain.ErrUserNotFound)
		users.On("Save", mock.AnythingOfType("*domain.User")).Return(domain.ErrUsernameConflict)

		_, err = svc.Register("robot_1", testPassword)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("repository failure", func(t *testing.T) {
		users := &mockUserRepo{}
		svc, err := NewAuthService(users, &mockTokenizer{})
		require.NoError(t, err)
		boom := errors.New("boom")
		users.On("ByUsername", "robot_1").Return(nil, boom)

		_, err = svc.Register("robot_1", testPassword)
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthSignIn(t *testing.T) {
	user, err := domain.NewUser(domain.UserConfig{ID: uuid.New(), Username: "robot_1", PlainPassword: testPassword})
	require.NoError(t, err)

	users := &mockUserRepo{}
	tokens := &mockTokenizer{}
	svc, err := NewAuthService(users, tokens)
	require.NoError(t, err)

	users.On("ByUsername", "robot_1").Return(user, nil)
	users.On("ByUsername", "ghost").Return(nil, domain.ErrUserNotFound)
	tokens.On("Generate", mock.Anything, tokenLifetime).Return("signed-token", nil)

	t.Run("valid credentials", func(t *testing.T) {
		got, token, err := svc.SignIn("robot_1", testPassword)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.SignIn("robot_1", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.SignIn("ghost", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
