// middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/kathirfood/menu_backend/config"
	"github.com/kathirfood/menu_backend/models"
)

// Auth failure values. Missing and invalid tokens are distinct so the
// HTTP layer can answer with the right message; bad logins collapse into
// a single error that reveals nothing about which field was wrong.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrMissingToken          = errors.New("access token required")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

// OperatorClaims is the JWT payload: the operator username plus the
// standard expiry claim. Nothing else is encoded in the token.
type OperatorClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// Valid implements the jwt.Claims interface.
func (c OperatorClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// AuthGate issues and verifies bearer tokens for the single configured
// operator. It keeps no per-request state: verification is a pure
// function of the token, the signing secret and the clock, so any
// process holding the same secret can verify tokens issued by another,
// and a restart invalidates nothing.
type AuthGate struct {
	cfg config.AuthConfig
	now func() time.Time
}

// NewAuthGate creates an auth gate from explicit configuration.
func NewAuthGate(cfg config.AuthConfig) *AuthGate {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthGate{cfg: cfg, now: time.Now}
}

// IssueToken checks the credentials against the configured operator and
// returns a signed token valid for the configured TTL. Unknown user and
// wrong password are indistinguishable to the caller.
func (g *AuthGate) IssueToken(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.cfg.OperatorUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.cfg.OperatorPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := g.now()
	claims := &OperatorClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(g.cfg.TokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(g.cfg.JWTSecret))
}

// Verify validates a bearer token and returns the subject username.
// An empty token is ErrMissingToken; a bad signature, wrong signing
// method or past expiry is ErrInvalidOrExpiredToken. No store is
// consulted.
func (g *AuthGate) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(g.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidOrExpiredToken
	}

	claims, ok := token.Claims.(*OperatorClaims)
	if !ok || claims.Username == "" {
		return "", ErrInvalidOrExpiredToken
	}

	return claims.Username, nil
}

// RequireToken guards mutating routes. It rejects before any handler or
// store access runs, with distinct responses for an absent bearer
// credential and an invalid or expired one.
func (g *AuthGate) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ExtractBearerToken(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Access token required. Please login first.",
				})
			}

			username, err := g.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusForbidden, models.Response{
					Success: false,
					Message: "Invalid or expired token. Please login again.",
				})
			}

			c.Set("username", username)
			return next(c)
		}
	}
}

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns "" when the header is absent or not in Bearer form.
func ExtractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
