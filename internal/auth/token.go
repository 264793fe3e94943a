package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkrasnovs/launchboard/internal/common"
)

// Claims carries the standard claims plus the user id the token was minted
// for. The token only encodes {userId, issued-at} under a fixed shared
// secret; it is a local "is logged in" marker, not a capability.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenIssuer mints and decodes session tokens (HS256 under a fixed secret).
type TokenIssuer struct {
	secret []byte
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

// Mint produces a token for the given user id, stamped with the current time.
func (i *TokenIssuer) Mint(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode extracts the user id and the mint timestamp from a token.
// Malformed tokens or tokens signed with a different secret yield
// common.ErrInvalidToken.
func (i *TokenIssuer) Decode(tokenString string) (string, time.Time, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return "", time.Time{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return "", time.Time{}, common.ErrInvalidToken
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return claims.UserID, issuedAt, nil
}
