package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

// createTestContext creates a test Gin context with body marshaled as JSON.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}
	return newTestContext(method, path, bodyReader)
}

// createRawTestContext creates a test Gin context with a raw request body.
func createRawTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	return newTestContext(method, path, strings.NewReader(body))
}

func newTestContext(method, path string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}
