package session

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Claims is everything carried inside the signed session token. The token
// is a bearer credential: it never leaves the session cookie and the
// browser treats it as opaque.
type Claims struct {
	UserID       string
	Username     string
	Name         string
	Role         string
	SessionID    string
	SessionToken string
	RememberMe   bool
	IssuedAt     time.Time
	Expiration   time.Time
}

// Codec signs and verifies session tokens with a process-wide HS256 key.
// The key is injected once at startup and never mutated afterwards.
type Codec struct {
	key    jwk.Key
	issuer string
}

// NewCodec builds a Codec from the raw signing secret
func NewCodec(secret []byte, issuer string) (*Codec, error) {
	key, err := jwk.Import(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to import signing key: %w", err)
	}
	return &Codec{key: key, issuer: issuer}, nil
}

// Sign produces a compact signed token from the claims. Pure function of
// claims and key; the expiry comes from the claims, not the clock.
func (c *Codec) Sign(claims *Claims) (string, error) {
	tok, err := jwt.NewBuilder().
		Subject(claims.UserID).
		Issuer(c.issuer).
		IssuedAt(claims.IssuedAt).
		Expiration(claims.Expiration).
		Claim("username", claims.Username).
		Claim("name", claims.Name).
		Claim("role", claims.Role).
		Claim("sid", claims.SessionID).
		Claim("stk", claims.SessionToken).
		Claim("remember_me", claims.RememberMe).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), c.key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify checks signature integrity and expiry, nothing else. Malformed
// input, a bad signature or a past expiry all collapse to ErrInvalidToken
// so callers never have to distinguish them.
func (c *Codec) Verify(raw string) (*Claims, error) {
	tok, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.HS256(), c.key),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if sub, ok := tok.Subject(); ok {
		claims.UserID = sub
	}
	if iat, ok := tok.IssuedAt(); ok {
		claims.IssuedAt = iat
	}
	if exp, ok := tok.Expiration(); ok {
		claims.Expiration = exp
	}
	claims.Username = stringClaim(tok, "username")
	claims.Name = stringClaim(tok, "name")
	claims.Role = stringClaim(tok, "role")
	claims.SessionID = stringClaim(tok, "sid")
	claims.SessionToken = stringClaim(tok, "stk")
	claims.RememberMe = boolClaim(tok, "remember_me")

	if claims.SessionID == "" || claims.SessionToken == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func stringClaim(tok jwt.Token, name string) string {
	var v any
	if tok.Get(name, &v) == nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func boolClaim(tok jwt.Token, name string) bool {
	var v any
	if tok.Get(name, &v) == nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
