/*
Copyright 2026 the DummyJSON API Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTPrefix is how every base64url encoded JSON header starts ('{"').
const JWTPrefix = "ey"

// IsJWTShaped only checks the prefix, the signature can't be verified
// without the provider's key.
func IsJWTShaped(token string) bool {
	return strings.HasPrefix(token, JWTPrefix)
}

// TokenClaims are the claims DummyJSON embeds in its tokens.
type TokenClaims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// ParseTokenClaims decodes the claims without verifying the signature.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token claims: %w", err)
	}

	return claims, nil
}
