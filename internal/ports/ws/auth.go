package ws

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// TokenCookie is the cookie a browser client may carry its token in.
const TokenCookie = "tienlen_token"

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the authenticated caller of a connection.
type Identity struct {
	UserID string
	Name   string
}

// Authenticator issues and verifies HS256 tokens.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator returns an authenticator signing with secret.
func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken signs a token for userID. Name is optional.
func (a *Authenticator) IssueToken(userID, name string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user is required")
	}
	claims := jwt.MapClaims{
		"id":  userID,
		"sub": userID,
		"iat": a.now().Unix(),
		"exp": a.now().Add(a.ttl).Unix(),
	}
	if name != "" {
		claims["name"] = name
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify checks the signature and expiry of tokenString and extracts the caller.
// The user id comes from the "id" claim, falling back to "sub".
func (a *Authenticator) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	if id == "" {
		id, _ = claims["sub"].(string)
	}
	if id == "" {
		return Identity{}, fmt.Errorf("%w: no user id claim", ErrInvalidToken)
	}
	name, _ := claims["name"].(string)
	return Identity{UserID: id, Name: name}, nil
}

// Authenticate reads the token from the "token" query parameter, a Bearer
// Authorization header or the token cookie, in that order.
func (a *Authenticator) Authenticate(r *http.Request) (Identity, error) {
	raw := r.URL.Query().Get("token")
	if raw == "" {
		if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			raw = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}
	}
	if raw == "" {
		if c, err := r.Cookie(TokenCookie); err == nil {
			raw = c.Value
		}
	}
	if raw == "" {
		return Identity{}, ErrMissingToken
	}
	return a.Verify(raw)
}
