// Package token implements the minimal HS256 JWT format used for API auth:
// header.payload.signature, each segment base64url without padding.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

var header = map[string]string{"alg": "HS256", "typ": "JWT"}

// Encode signs the claims with the shared secret and returns the token.
func Encode(claims map[string]any, secret string) (string, error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	headerSegment := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadSegment := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signingInput := headerSegment + "." + payloadSegment

	return signingInput + "." + sign(signingInput, secret), nil
}

// Decode verifies the signature and expiry and returns the claims. A wrong
// secret, tampered segment, or malformed token yields ErrInvalidToken; a
// valid token past its exp claim yields ErrTokenExpired.
func Decode(tok, secret string) (map[string]any, error) {
	segments := strings.Split(tok, ".")
	if len(segments) != 3 {
		return nil, ErrInvalidToken
	}

	signingInput := segments[0] + "." + segments[1]
	expected, err := base64.RawURLEncoding.DecodeString(sign(signingInput, secret))
	if err != nil {
		return nil, ErrInvalidToken
	}
	actual, err := base64.RawURLEncoding.DecodeString(segments[2])
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !hmac.Equal(expected, actual) {
		return nil, ErrInvalidToken
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims := map[string]any{}
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().Unix() > int64(exp) {
			return nil, ErrTokenExpired
		}
	}

	return claims, nil
}

func sign(signingInput, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
