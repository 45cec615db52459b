package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// SessionCookieName carries the signed admin session token.
const SessionCookieName = "pf_session"

// SessionClaims is the payload of a signed admin session token.
type SessionClaims struct {
	Sub    string `json:"sub"`
	Exp    int64  `json:"exp"`
	Issuer string `json:"iss"`
}

type adminKey string

const (
	adminUserKey adminKey = "admin_user"
)

// SignSession produces an HMAC-SHA256 signed token for the claims.
func SignSession(secret string, claims SessionClaims) (string, error) {
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	payloadEnc := base64.RawURLEncoding.EncodeToString(payloadJSON)
	return payloadEnc + "." + hmacSign(secret, payloadEnc), nil
}

func hmacSign(secret, data string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySession checks the token signature and expiry and returns its claims.
func VerifySession(secret, token string) (*SessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, errors.New("invalid token")
	}
	expected := hmacSign(secret, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, errors.New("invalid signature")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, err
	}
	var claims SessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	if claims.Exp != 0 && time.Now().Unix() > claims.Exp {
		return nil, errors.New("token expired")
	}
	return &claims, nil
}

// SetSessionCookie attaches the signed token to the response.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// AdminRequired guards admin-only routes. Requests without a valid session
// cookie are redirected to the login form, never served.
func AdminRequired(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			claims, err := VerifySession(secret, cookie.Value)
			if err != nil {
				ClearSessionCookie(w)
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), adminUserKey, claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the authenticated admin username, or "" for an
// anonymous request.
func AdminFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(adminUserKey).(string); ok {
		return v
	}
	return ""
}
