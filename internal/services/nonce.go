package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/welbinator/therepo/internal/config"
)

// Form actions a nonce can be minted for.
const (
	ActionSubmitListing = "submit_listing"
	ActionEditListing   = "edit_listing"
)

const nonceTTL = 12 * time.Hour

var ErrInvalidNonce = errors.New("invalid form token")

type nonceClaims struct {
	Action string `json:"act"`
	UserID uint   `json:"uid"`
	jwt.RegisteredClaims
}

// CreateNonce mints an anti-forgery token bound to one action and user.
func CreateNonce(action string, userID uint) (string, error) {
	claims := nonceClaims{
		Action: action,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(nonceTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Current.JWTSecret))
}

// VerifyNonce checks a token against the expected action and user. It must
// pass before any form processing happens.
func VerifyNonce(tokenString, action string, userID uint) error {
	token, err := jwt.ParseWithClaims(tokenString, &nonceClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Current.JWTSecret), nil
	})
	if err != nil {
		return ErrInvalidNonce
	}
	claims, ok := token.Claims.(*nonceClaims)
	if !ok || !token.Valid {
		return ErrInvalidNonce
	}
	if claims.Action != action || claims.UserID != userID {
		return ErrInvalidNonce
	}
	return nil
}
