// Package flash carries one-time notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const CookieName = "cf_flash"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one message shown on the next page render.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(msg string) Notice { return Notice{Kind: KindSuccess, Message: msg} }

func Error(msg string) Notice { return Notice{Kind: KindError, Message: msg} }

// Write stores notice for the next request. Empty messages are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	notice, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	http.SetCookie(w, cookie(r, base64.RawURLEncoding.EncodeToString(payload), 0))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie
// even when its value is unreadable.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	http.SetCookie(w, cookie(r, "", -1))

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(c.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err = json.Unmarshal(raw, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

func normalize(n Notice) (Notice, bool) {
	n.Message = strings.TrimSpace(n.Message)
	if n.Message == "" {
		return Notice{}, false
	}
	switch n.Kind {
	case KindSuccess, KindError:
		return n, true
	default:
		return Notice{}, false
	}
}
