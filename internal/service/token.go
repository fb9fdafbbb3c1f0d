package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenCodec issues and verifies HS256-signed, time-bounded tokens carrying
// the username as the subject claim. Tokens are self-contained: nothing is
// kept server-side, so a token stays valid until its expiry.
type tokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func newTokenCodec(secret string, ttl time.Duration) *tokenCodec {
	return &tokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject, valid for the configured TTL.
func (c *tokenCodec) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})
	return token.SignedString(c.secret)
}

// Verify checks the signature, structure and expiry of a token and returns
// its subject. The signature is validated before any claim is trusted; every
// failure collapses to ErrInvalidToken so callers cannot branch on the cause.
func (c *tokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
