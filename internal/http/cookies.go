package httpx

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// CookieSettings controls the attributes applied to the session cookie.
type CookieSettings struct {
	Domain string
	// Secure marks the cookie HTTPS-only. Enabled in production; left off in
	// development so the cookie survives plain-HTTP localhost.
	Secure bool
	TTL    time.Duration
}

// setSessionCookie installs the session token on the client. The cookie is
// HttpOnly (scripts never read it) and SameSite=Strict (never sent on
// cross-site requests).
func setSessionCookie(w http.ResponseWriter, settings CookieSettings, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   settings.Domain,
		MaxAge:   int(settings.TTL / time.Second),
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately. Attributes mirror
// setSessionCookie so browsers match the cookie being deleted.
func clearSessionCookie(w http.ResponseWriter, settings CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   settings.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
