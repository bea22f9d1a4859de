// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the PID cookie.
const CookieName = "onepick_pid"

// cookieMaxAge is ten years. The binding between PID and order number is
// permanent, so the cookie outlives any single voting period.
const cookieMaxAge = 10 * 365 * 24 * 60 * 60

// GetOrCreate returns the caller's PID, minting one and setting the cookie
// if the request carries none.
func GetOrCreate(w http.ResponseWriter, r *http.Request) string {
	if pid, ok := GetExisting(r); ok {
		return pid
	}

	pid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    pid,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return pid
}

// GetExisting returns the caller's PID without creating one. A present but
// malformed cookie counts as absent.
func GetExisting(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}
