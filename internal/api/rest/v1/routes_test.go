//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"items_service/internal/domain/items"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRoutes_RegistersItemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, new(MockItemService), 0)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /items",
		"GET /items",
		"GET /items/:id",
		"PUT /items/:id",
		"DELETE /items/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestSetupRoutes_RequestIDHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockService := new(MockItemService)
	mockService.On("Get", mock.Anything, uint(1)).
		Return(&items.Item{ID: 1, Name: "Laptop"}, nil)
	SetupRoutes(r, mockService, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestSetupRoutes_RequestIDEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockService := new(MockItemService)
	mockService.On("Get", mock.Anything, uint(1)).
		Return(&items.Item{ID: 1, Name: "Laptop"}, nil)
	SetupRoutes(r, mockService, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/items/1", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRateLimit_RejectsExcessRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mockService := new(MockItemService)
	mockService.On("Get", mock.Anything, mock.Anything).
		Return(&items.Item{ID: 1, Name: "Laptop"}, nil)
	SetupRoutes(r, mockService, 1)

	var lastCode int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", fmt.Sprintf("/items/%d", i+1), nil)
		req.RemoteAddr = "10.0.0.1:12345"
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
