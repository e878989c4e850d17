package identity

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct{ mock.Mock }

func (m *mockAuthenticator) Register(username, password string) (*domain.User, error) {
	args := m.Called(username, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockAuthenticator) SignIn(username, password string) (*domain.User, string, error) {
	args := m.Called(username, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.String(1), args.Error(2)
}

type stubTokenizer struct {
	claims map[string]interface{}
	err    error
}

func (s stubTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) { return "", nil }

func (s stubTokenizer) Decode(string) (map[string]interface{}, error) { return s.claims, s.err }

func init() {
	gin.SetMode(gin.TestMode)
}

func post(engine *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func newEngine(auth *mockAuthenticator) *gin.Engine {
	engine := gin.New()
	NewIdentityServer(auth).RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func TestRegister(t *testing.T) {
	const body = `{"username":"operator_1","password":"correct horse battery"}`

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"created", nil, http.StatusCreated},
		{"taken", service.ErrUsernameTaken, http.StatusConflict},
		{"weak password", domain.ErrWeakPassword, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthenticator{}
			auth.On("Register", "operator_1", "correct horse battery").Return(&domain.User{}, tt.err)

			rec := post(newEngine(auth), "/api/v1/auth/register", body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("missing password", func(t *testing.T) {
		auth := &mockAuthenticator{}
		rec := post(newEngine(auth), "/api/v1/auth/register", `{"username":"operator_1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Username: "operator_1"}

	t.Run("success", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("SignIn", "operator_1", "secret").Return(user, "signed", nil)

		rec := post(newEngine(auth), "/api/v1/auth/login", `{"username":"operator_1","password":"secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, user.ID.String(), got.ID)
		assert.Equal(t, "signed", got.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("SignIn", "operator_1", "wrong").Return(nil, "", service.ErrInvalidCredentials)

		rec := post(newEngine(auth), "/api/v1/auth/login", `{"username":"operator_1","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token failure", func(t *testing.T) {
		auth := &mockAuthenticator{}
		auth.On("SignIn", "operator_1", "secret").Return(nil, "", errors.New("signing failed"))

		rec := post(newEngine(auth), "/api/v1/auth/login", `{"username":"operator_1","password":"secret"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	claims := map[string]interface{}{"username": "operator_1"}

	newProtected := func(ts stubTokenizer) *gin.Engine {
		engine := gin.New()
		engine.GET("/protected", Authoriz(ts), func(c *gin.Context) {
			got, _ := c.Get(ContextUserClaims)
			c.JSON(http.StatusOK, got)
		})
		return engine
	}

	tests := []struct {
		name   string
		header string
		ts     stubTokenizer
		status int
	}{
		{"valid token", "Bearer good", stubTokenizer{claims: claims}, http.StatusOK},
		{"lowercase scheme", "bearer good", stubTokenizer{claims: claims}, http.StatusOK},
		{"missing header", "", stubTokenizer{claims: claims}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", stubTokenizer{claims: claims}, http.StatusUnauthorized},
		{"no token", "Bearer", stubTokenizer{claims: claims}, http.StatusUnauthorized},
		{"invalid token", "Bearer bad", stubTokenizer{err: errors.New("expired")}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newProtected(tt.ts).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"username":"operator_1"}`, rec.Body.String())
			}
		})
	}
}
