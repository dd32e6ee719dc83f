package session

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "hotel_session"

type contextKey string

const idKey contextKey = "session_id"

func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, idKey, sid)
}

func IDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(idKey).(string)
	return sid, ok && sid != ""
}

// Manager issues and verifies the signed cookie that names a visitor's
// session. The cookie only carries the session id; data lives in a Store.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (m *Manager) GenerateToken(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": m.now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken returns the session id and expiry carried by a cookie value.
func (m *Manager) ParseToken(tokenString string) (string, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return "", time.Time{}, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, fmt.Errorf("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", time.Time{}, fmt.Errorf("session token has no sid")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, fmt.Errorf("session token has no expiry")
	}
	return sid, exp.Time, nil
}

// Middleware makes sure every request carries a session id. Visitors
// without a valid cookie get a new session; cookies past half their
// lifetime are reissued for the same session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, refresh := m.resolve(r)
		if refresh {
			if err := m.setCookie(w, sid); err != nil {
				log.Printf("Failed to issue session cookie: %v", err)
			}
		}
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), sid)))
	})
}

func (m *Manager) resolve(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return uuid.NewString(), true
	}

	sid, exp, err := m.ParseToken(cookie.Value)
	if err != nil {
		return uuid.NewString(), true
	}

	remaining := exp.Sub(m.now())
	return sid, remaining < m.ttl/2
}

func (m *Manager) setCookie(w http.ResponseWriter, sid string) error {
	token, err := m.GenerateToken(sid)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  m.now().Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}
