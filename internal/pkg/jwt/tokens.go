package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=../../../gen/mocks/jwt/token_parser_mock.go -package=mocks . TokenParser

const (
	TokenContextKey  = "token"
	ClaimsContextKey = "claims"
)

type tokenCtxKey struct{}

type TokenParser interface {
	ParseToken(secret []byte, tokenString string) (*Claims, error)
	DecodeToken(tokenString string) (*Claims, error)
}

// Claims issued by the storefront backend. Only the registered claims are mapped; the
// user is resolved through the backend, so custom claims are left to it.
type Claims struct {
	jwt.RegisteredClaims
}

// Expiry returns the token expiry, or the zero time when the token has none.
func (c *Claims) Expiry() time.Time {
	if c == nil || c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

type JWTTokenParser struct {
	decoder *jwt.Parser
}

func NewJWTTokenParser() *JWTTokenParser {
	return &JWTTokenParser{
		decoder: jwt.NewParser(),
	}
}

func (tp *JWTTokenParser) ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}

		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// DecodeToken reads claims without checking the signature. The backend stays the
// authority on the token; expired tokens are still rejected here.
func (tp *JWTTokenParser) DecodeToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := tp.decoder.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}

	if exp := claims.Expiry(); !exp.IsZero() && time.Now().After(exp) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}

func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtxKey{}).(string)
	return token, ok && token != ""
}
