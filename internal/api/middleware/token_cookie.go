package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const tokenCookieName = "ts_session"

// TokenCookie stores the external API token in an HttpOnly cookie wrapped in
// an HS256 JWT, so a tampered or expired cookie reads as no token at all.
type TokenCookie struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewTokenCookie(secret string, ttl time.Duration, secure bool) *TokenCookie {
	return &TokenCookie{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

type tokenClaims struct {
	Token string `json:"tok"`
	jwt.RegisteredClaims
}

// Encode signs token into a cookie value.
func (tc *TokenCookie) Encode(token string) (string, error) {
	if token == "" {
		return "", errors.New("token cookie: empty token")
	}
	now := tc.now()
	claims := tokenClaims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Decode returns the API token inside value, or "" if value is not one of
// ours or has expired.
func (tc *TokenCookie) Decode(value string) string {
	if value == "" {
		return ""
	}
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (interface{}, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(tc.now))
	if err != nil || !tkn.Valid {
		return ""
	}
	return claims.Token
}

func (tc *TokenCookie) Issue(c echo.Context, token string) error {
	value, err := tc.Encode(token)
	if err != nil {
		return err
	}
	c.SetCookie(tc.cookie(value, int(tc.ttl.Seconds())))
	return nil
}

func (tc *TokenCookie) Read(c echo.Context) string {
	ck, err := c.Cookie(tokenCookieName)
	if err != nil {
		return ""
	}
	return tc.Decode(ck.Value)
}

// Clear expires the cookie in the browser.
func (tc *TokenCookie) Clear(c echo.Context) {
	c.SetCookie(tc.cookie("", -1))
}

func (tc *TokenCookie) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   tc.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
