package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/cleaner-api/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "secret") })
}

func TestRouterEngine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	engine := NewRouter(Config{
		BaseURL:                 "/api",
		ServiceName:             "cleaner-api-test",
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: deny,
	}).Engine()

	tests := []struct {
		target string
		status int
	}{
		{"/api/v1/ping", http.StatusOK},
		{"/api/v1/secret", http.StatusUnauthorized},
		{"/metrics", http.StatusOK},
		{"/api/v2/ping", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
