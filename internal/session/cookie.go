// Package session owns the cookie leg of the session transport. The token
// travels in an HttpOnly, SameSite=Strict cookie scoped to /; bearer headers
// remain available for non-browser clients but the cookie is the primary
// mechanism.
package session

import (
	"net/http"
	"time"
)

// CookieName is the session cookie key.
const CookieName = "token"

// Manager issues and clears session cookies with consistent attributes.
type Manager struct {
	// Secure marks cookies Secure; disabled only in local development.
	Secure bool
	// TTL is the cookie lifetime, matching the token expiry.
	TTL time.Duration
}

// Set issues the session cookie carrying the signed token.
func (m Manager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear overwrites the session cookie with an expired one. Safe to call
// when no cookie is present.
func (m Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the raw token from the request's cookie jar, or "" when the
// cookie is absent.
func Read(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
