package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// captureSession runs withSession and returns the token it stored.
func captureSession(t *testing.T, h *Handler, req *http.Request) (string, bool) {
	t.Helper()
	var token string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok = utils.GetSessionTokenFromContext(r.Context())
	})
	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)
	return token, ok
}

func TestWithSession_Sources(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		cookie    string
		wantToken string
		wantOK    bool
	}{
		{"no credentials", "", "", "", false},
		{"bearer header", "Bearer tok-h", "", "tok-h", true},
		{"lowercase scheme", "bearer tok-h", "", "tok-h", true},
		{"cookie only", "", "tok-c", "tok-c", true},
		{"header wins over cookie", "Bearer tok-h", "tok-c", "tok-h", true},
		{"malformed header falls back to cookie", "Basic dXNlcg==", "tok-c", "tok-c", true},
		{"malformed header without cookie", "Bearer", "", "", false},
		{"blank cookie", "", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{sessionCookie: "sessionToken", logger: logger.Nop()}
			req := httptest.NewRequest(http.MethodGet, "/api/brands/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sessionToken", Value: tt.cookie})
			}

			token, ok := captureSession(t, h, req)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestWithSession_CustomCookieName(t *testing.T) {
	h := &Handler{sessionCookie: "sid", logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.AddCookie(&http.Cookie{Name: "sessionToken", Value: "ignored"})
	req.AddCookie(&http.Cookie{Name: "sid", Value: "used"})

	token, ok := captureSession(t, h, req)

	assert.True(t, ok)
	assert.Equal(t, "used", token)
}

func TestWithSession_LogsSubject(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{sessionCookie: "sessionToken", logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/admin/all", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin-7"))
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"session_subject":"admin-7"`)
	assert.Contains(t, buf.String(), `"session_source":"header"`)
}

func TestWithSession_OpaqueTokenStillForwarded(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{sessionCookie: "sessionToken", logger: logger.Nop()}
	var token string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _ = utils.GetSessionTokenFromContext(r.Context())
		logger.FromRequest(r).Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.AddCookie(&http.Cookie{Name: "sessionToken", Value: "not-a-jwt"})
	l := zerolog.New(&buf)
	req = req.WithContext(l.WithContext(req.Context()))

	h.withSession(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "not-a-jwt", token)
	assert.NotContains(t, buf.String(), "session_subject")
	assert.Contains(t, buf.String(), `"session_source":"cookie"`)
}
