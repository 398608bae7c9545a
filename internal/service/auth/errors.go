// Package auth provides JWT token issuance/validation and password hashing.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed, has an invalid
	// signature, or fails validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrWrongTokenType is returned when an access token is presented where a
	// refresh token is expected, or vice versa.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
