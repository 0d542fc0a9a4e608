package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevahub/volunteer-api/internal/adapters/token"
	mocksauth "github.com/sevahub/volunteer-api/internal/mocks/auth"
	"github.com/sevahub/volunteer-api/internal/service"
)

const testJWTSecret = "unit-test-signing-secret"

// newTestAuthService builds a real AuthService over in-memory credentials and
// a real signing codec so cookie and token behavior match production.
func newTestAuthService(t *testing.T, ttl time.Duration) (*service.AuthService, *mocksauth.MemoryCredentialStore) {
	t.Helper()
	store := mocksauth.NewMemoryCredentialStore()
	codec, err := token.NewCodec(token.Config{Secret: []byte(testJWTSecret), TTL: ttl})
	require.NoError(t, err)
	return service.NewAuthService(service.AuthServiceOptions{
		Credentials: store,
		Tokens:      codec,
	}), store
}

// JSONRequest encapsulates the parameters needed to execute a JSON HTTP request.
type JSONRequest struct {
	Method string
	Path   string
	Body   any
	Cookie *http.Cookie
}

// DoJSON executes a JSON request against the handler and returns the recorder.
func DoJSON(t *testing.T, h http.Handler, req JSONRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(req.Method, req.Path, body)
	r.Header.Set("Content-Type", "application/json")
	if req.Cookie != nil {
		r.AddCookie(req.Cookie)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// DecodeBody unmarshals a recorded JSON response body.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

// sessionCookieFrom extracts the session cookie from a recorded response.
func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("response did not set %q cookie", SessionCookieName)
	return nil
}
