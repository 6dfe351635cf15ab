package azauth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// EncodeClaims base64url-encodes a claims challenge for use with
// `az login --claims`. The encoder is idempotent: input that already decodes
// as base64url passes through unchanged. A plain-text challenge that happens
// to be valid base64 is therefore misclassified and passed through; the
// ambiguity is inherent to the format.
func EncodeClaims(claims string) string {
	if _, err := base64.URLEncoding.DecodeString(claims); err == nil {
		return claims
	}
	return base64.URLEncoding.EncodeToString([]byte(claims))
}

// DecodeClaims base64url-decodes a claims challenge. Input that is not valid
// base64url is assumed to be plain text already and returned unchanged.
func DecodeClaims(claims string) string {
	decoded, err := base64.URLEncoding.DecodeString(claims)
	if err != nil {
		return claims
	}
	return string(decoded)
}

// DecodeAccessToken decodes the claims body of a JWT access token without
// verifying the signature, giving the same view as https://jwt.ms. A token is
// header.claims.signature; only the claims segment is decoded.
func DecodeAccessToken(accessToken string) (jwt.MapClaims, error) {
	parts := strings.Split(accessToken, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("access token is not a JWT: got %d dot-separated segments", len(parts))
	}
	body, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode token claims segment: %w", err)
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}
	return claims, nil
}
