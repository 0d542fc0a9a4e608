package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevahub/volunteer-api/internal/mocks"
	"github.com/sevahub/volunteer-api/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *service.AuthService) {
	t.Helper()

	authSvc, store := newTestAuthService(t, 24*time.Hour)
	_, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockApplicantRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	applicantSvc := service.NewApplicantService(service.ApplicantServiceOptions{Applicants: repo})

	router := NewRouter(RouterServices{
		Auth:       authSvc,
		Applicants: applicantSvc,
		Env:        "test",
		Cookies:    CookieSettings{Secure: true, TTL: 24 * time.Hour},
	})
	return router, authSvc
}

func TestRouter_LoginMeLogoutFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	// Unauthenticated /me is rejected.
	w := DoJSON(t, router, JSONRequest{Method: http.MethodGet, Path: "/api/auth/me"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Login.
	w = DoJSON(t, router, JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   map[string]string{"email": "admin@example.com", "password": "s3cret-passw0rd"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	session := sessionCookieFrom(t, w)
	require.NotEmpty(t, session.Value)

	// Authenticated /me returns the identity.
	w = DoJSON(t, router, JSONRequest{
		Method: http.MethodGet,
		Path:   "/api/auth/me",
		Cookie: &http.Cookie{Name: SessionCookieName, Value: session.Value},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	DecodeBody(t, w, &me)
	assert.Equal(t, "admin@example.com", me.User.Email)
	assert.Equal(t, "admin", me.User.Role)

	// Logout clears the cookie.
	w = DoJSON(t, router, JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
		Cookie: &http.Cookie{Name: SessionCookieName, Value: session.Value},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, sessionCookieFrom(t, w).MaxAge)

	// A client that dropped the cookie is signed out.
	w = DoJSON(t, router, JSONRequest{Method: http.MethodGet, Path: "/api/auth/me"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminEndpointsRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := DoJSON(t, router, JSONRequest{Method: http.MethodGet, Path: "/api/applicants"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = DoJSON(t, router, JSONRequest{
		Method: http.MethodGet,
		Path:   "/api/applicants",
		Cookie: &http.Cookie{Name: SessionCookieName, Value: "forged.token.value"},
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := DoJSON(t, router, JSONRequest{Method: http.MethodGet, Path: "/healthz"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	DecodeBody(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}
