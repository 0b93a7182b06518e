package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Identity is what a session token says about its bearer.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Claims struct {
	Identity
	gojwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies HS256 session tokens with a single secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the issuer reading time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	cp := *i
	cp.now = now
	return &cp
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

/*
* Build claims for the identity with exp = now + ttl
* Sign with HS256
 */
func (i *Issuer) GenerateJWT(identity Identity) (string, *Claims, error) {
	issuedAt := i.now().UTC()
	claims := &Claims{
		Identity: identity,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ParseJWT verifies signature, algorithm and expiry. Every failure wraps
// ErrInvalidToken.
func (i *Issuer) ParseJWT(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(raw, claims, func(t *gojwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
