package auth

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/personal-blog-backend/errs"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "blog_session"

// DefaultSessionTTL bounds how long a login stays valid.
const DefaultSessionTTL = 24 * time.Hour

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Sessions mints and verifies the signed tokens that bind a caller to an
// authenticated identity across requests.
type Sessions struct {
	secret       []byte
	ttl          time.Duration
	secureCookie bool
}

func NewSessions(secret string, ttl time.Duration, secureCookie bool) Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Sessions{
		secret:       []byte(secret),
		ttl:          ttl,
		secureCookie: secureCookie,
	}
}

// Issue mints a signed session token for the identity.
func (s Sessions) Issue(identity Identity) (string, error) {
	if !identity.Authenticated {
		return "", errs.NewInternalError("cannot issue a session for an anonymous identity")
	}

	now := time.Now()
	claims := sessionClaims{
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a session token back into an identity. Expired or otherwise
// invalid tokens resolve to Anonymous alongside the error, so callers can
// treat verification failure as an unauthenticated request.
func (s Sessions) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Anonymous, errs.NewExpiredTokenError()
		}
		return Anonymous, errs.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Anonymous, errs.NewInvalidTokenError()
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return Anonymous, errs.NewInvalidTokenError()
	}

	return Authenticated(uint(userID), claims.Name, claims.Email), nil
}

// SetCookie binds the token to the response as the session cookie.
func (s Sessions) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie. Clearing an absent cookie is a
// no-op, which keeps logout idempotent.
func (s Sessions) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
