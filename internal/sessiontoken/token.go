// Package sessiontoken issues and verifies the persisted session reference.
// The reference is an HMAC-signed JWT carrying only the user id, signed with a
// device-local random key. It makes the stored pointer tamper-evident; it is
// not a bearer credential for any remote system.
package sessiontoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/airlineempire/cli/internal/common"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Issue signs a session reference for userID valid for validity.
func Issue(userID string, signingKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})

	return token.SignedString(signingKey)
}

// UserID extracts the user id from a signed session reference. Any signature,
// format, or expiry problem is reported as common.ErrInvalidToken.
func UserID(tokenString string, signingKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
