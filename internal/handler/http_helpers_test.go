package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, rr
}

func TestRespondServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation",
			err:    service.NewValidationError("email", "must be a valid email address"),
			status: http.StatusBadRequest,
			body:   `{"message":"validation failed","errors":{"email":"must be a valid email address"}}`,
		},
		{
			name:   "section",
			err:    fmt.Errorf("lookup: %w", service.ErrSectionNotFound),
			status: http.StatusNotFound,
			body:   `{"message":"Content section not found"}`,
		},
		{
			name:   "skill",
			err:    service.ErrSkillNotFound,
			status: http.StatusNotFound,
			body:   `{"message":"skill not found"}`,
		},
		{
			name:   "upload type",
			err:    service.ErrInvalidFileType,
			status: http.StatusBadRequest,
			body:   `{"message":"invalid file type"}`,
		},
		{
			name:   "upload size",
			err:    service.ErrFileTooLarge,
			status: http.StatusBadRequest,
			body:   `{"message":"file too large"}`,
		},
		{
			name:   "unknown",
			err:    errors.New("database is locked"),
			status: http.StatusInternalServerError,
			body:   `{"message":"Failed to fetch skills"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rr := newTestContext(http.MethodGet, "/api/skills")
			respondServiceError(c, tt.err, "Failed to fetch skills")

			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}

func TestParseUintParam(t *testing.T) {
	c, _ := newTestContext(http.MethodGet, "/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := parseUintParam(c, "id")
	assert.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, raw := range []string{"", "0", "-1", "abc", "99999999999"} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := parseUintParam(c, "id")
		assert.Error(t, err, raw)
	}
}

func TestBearerToken(t *testing.T) {
	tests := map[string]struct {
		token string
		ok    bool
	}{
		"Bearer admin123":   {"admin123", true},
		"bearer  admin123 ": {"admin123", true},
		"Bearer ":           {"", false},
		"Basic YWRtaW4=":    {"", false},
		"":                  {"", false},
	}

	for header, want := range tests {
		token, ok := bearerToken(header)
		assert.Equal(t, want.ok, ok, header)
		assert.Equal(t, want.token, token, header)
	}
}

func TestETagMatches(t *testing.T) {
	assert.True(t, etagMatches(`"abc"`, `"abc"`))
	assert.True(t, etagMatches(`"x", W/"abc"`, `"abc"`))
	assert.True(t, etagMatches(`*`, `"abc"`))
	assert.False(t, etagMatches(``, `"abc"`))
	assert.False(t, etagMatches(`"abd"`, `"abc"`))
}

func TestRespondCachedSetsETag(t *testing.T) {
	c, rr := newTestContext(http.MethodGet, "/api/skills")
	respondCached(c, []string{"Docker"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `["Docker"]`, rr.Body.String())
	etag := rr.Header().Get("ETag")
	assert.True(t, strings.HasPrefix(etag, `"`) && len(etag) == 18, etag)

	c, rr = newTestContext(http.MethodGet, "/api/skills")
	c.Request.Header.Set("If-None-Match", etag)
	respondCached(c, []string{"Docker"})
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNotModified, rr.Code)
}
