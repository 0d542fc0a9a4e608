package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandlers_Login_SetsSessionCookie(t *testing.T) {
	svc, store := newTestAuthService(t, 24*time.Hour)
	_, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{Secure: true, TTL: 24 * time.Hour}}

	w := DoJSON(t, http.HandlerFunc(h.Login), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   map[string]string{"email": "Admin@Example.COM", "password": "s3cret-passw0rd"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	DecodeBody(t, w, &body)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "admin@example.com", body.User.Email)
	assert.Equal(t, "admin", body.User.Role)
	assert.NotEmpty(t, body.User.ID)

	cookie := sessionCookieFrom(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuthHandlers_Login_DevModeCookieNotSecure(t *testing.T) {
	svc, store := newTestAuthService(t, 24*time.Hour)
	_, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{Secure: false, TTL: 24 * time.Hour}}

	w := DoJSON(t, http.HandlerFunc(h.Login), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   map[string]string{"email": "admin@example.com", "password": "s3cret-passw0rd"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sessionCookieFrom(t, w).Secure)
}

func TestAuthHandlers_Login_UniformRejection(t *testing.T) {
	svc, store := newTestAuthService(t, 24*time.Hour)
	_, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{TTL: 24 * time.Hour}}

	cases := []struct {
		name string
		body map[string]string
	}{
		{"unknown email", map[string]string{"email": "nobody@example.com", "password": "s3cret-passw0rd"}},
		{"wrong password", map[string]string{"email": "admin@example.com", "password": "wrong"}},
	}

	var bodies []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := DoJSON(t, http.HandlerFunc(h.Login), JSONRequest{
				Method: http.MethodPost,
				Path:   "/api/auth/login",
				Body:   tc.body,
			})
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Empty(t, w.Result().Cookies())
			bodies = append(bodies, w.Body.String())
		})
	}

	// The response body must not vary by failure cause.
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}

func TestAuthHandlers_Login_MalformedRequestIs400(t *testing.T) {
	svc, store := newTestAuthService(t, 24*time.Hour)
	_, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{TTL: 24 * time.Hour}}

	cases := []struct {
		name string
		body map[string]string
	}{
		{"empty fields", map[string]string{"email": "", "password": ""}},
		{"malformed email", map[string]string{"email": "not-an-email", "password": "whatever"}},
		{"missing password", map[string]string{"email": "admin@example.com", "password": ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := DoJSON(t, http.HandlerFunc(h.Login), JSONRequest{
				Method: http.MethodPost,
				Path:   "/api/auth/login",
				Body:   tc.body,
			})
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, w.Result().Cookies())

			var body map[string]string
			DecodeBody(t, w, &body)
			assert.Equal(t, "validation_failed", body["error"])
		})
	}
}

func TestAuthHandlers_Login_RejectsBadJSON(t *testing.T) {
	svc, _ := newTestAuthService(t, 24*time.Hour)
	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{TTL: 24 * time.Hour}}

	w := DoJSON(t, http.HandlerFunc(h.Login), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   map[string]any{"email": "a@b.co", "password": "x", "unexpected": true},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlers_Logout_AlwaysSucceeds(t *testing.T) {
	svc, _ := newTestAuthService(t, 24*time.Hour)
	h := &AuthHandlers{Svc: svc, Cookies: CookieSettings{Secure: true, TTL: 24 * time.Hour}}

	// No session cookie at all.
	w := DoJSON(t, http.HandlerFunc(h.Logout), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookieFrom(t, w)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	// Garbage cookie is cleared just the same.
	w = DoJSON(t, http.HandlerFunc(h.Logout), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
		Cookie: &http.Cookie{Name: SessionCookieName, Value: "not-a-token"},
	})
	require.Equal(t, http.StatusOK, w.Code)
}
