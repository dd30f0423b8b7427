package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talx-hub/nexus-sdk/internal/model"
)

const TokenExpire = 3 * time.Hour
const CookieName = "jwt-token"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrNoToken      = errors.New("no token in request")
)

type Claims struct {
	jwt.RegisteredClaims
	PlayerID string
}

func BuildJWTString(id string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpire)),
			},
			PlayerID: id,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

// Authenticate issues a token for the player and wraps it in a cookie.
func Authenticate(id string, secret []byte) (string, http.Cookie, error) {
	jwtString, err := BuildJWTString(id, secret)
	if err != nil {
		return "", http.Cookie{}, fmt.Errorf("authentication failed: %w", err)
	}
	return jwtString, http.Cookie{
		Name:     CookieName,
		Value:    jwtString,
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
	}, nil
}

// TokenFromRequest prefers a bearer token and falls back to the cookie,
// since game clients cannot always keep cookies.
func TokenFromRequest(r *http.Request) (string, error) {
	const prefix = "Bearer "
	if h := r.Header.Get(model.HeaderAuthorization); strings.HasPrefix(h, prefix) {
		return strings.TrimPrefix(h, prefix), nil
	}
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoToken
	}
	return c.Value, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}
	if claims.PlayerID == "" {
		return Claims{}, errors.New("token carries no player id")
	}

	return *claims, nil
}
