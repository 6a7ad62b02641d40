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

package fake

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"k8s.io/apimachinery/pkg/util/rand"
)

const (
	defaultExpiresInMins = 60

	// Refresh tokens outlive access tokens.
	refreshExpiresInMins = 30 * 24 * 60
)

var (
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	ErrUnknownUser             = errors.New("token subject is not a known user")
)

type claims struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	jwt.RegisteredClaims
}

type userResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type loginResponse struct {
	userResponse
	tokenPair
}

// randomID makes every issued token unique, even two minted for the same
// user in the same second.
func randomID() string {
	return rand.String(16)
}

func toUserResponse(user User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    user.Gender,
		Image:     user.Image,
	}
}

func (s *Server) issue(user User, key []byte, lifetime time.Duration) (string, error) {
	now := s.now()

	c := &claims{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Gender:    user.Gender,
		Image:     user.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        randomID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

func (s *Server) issuePair(user User, expiresInMins int) (*tokenPair, error) {
	if expiresInMins <= 0 {
		expiresInMins = defaultExpiresInMins
	}

	access, err := s.issue(user, s.accessKey, time.Duration(expiresInMins)*time.Minute)
	if err != nil {
		return nil, err
	}

	refresh, err := s.issue(user, s.refreshKey, refreshExpiresInMins*time.Minute)
	if err != nil {
		return nil, err
	}

	return &tokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *Server) verify(token string, key []byte) (*User, error) {
	c := &claims{}

	parser := jwt.NewParser(jwt.WithTimeFunc(s.now))

	if _, err := parser.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, t.Header["alg"])
		}

		return key, nil
	}); err != nil {
		return nil, err
	}

	user, ok := s.usersByID[c.ID]
	if !ok {
		return nil, ErrUnknownUser
	}

	return &user, nil
}

// stringField returns a string field and whether it was present and non-empty.
func stringField(object map[string]any, name string) (string, bool) {
	value, ok := object[name].(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

// intField tolerates JSON numbers and numeric strings.
func intField(object map[string]any, name string) int {
	switch value := object[name].(type) {
	case float64:
		return int(value)
	case string:
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}

	return 0
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	username, hasUsername := stringField(body, "username")
	password, hasPassword := stringField(body, "password")

	if !hasUsername || !hasPassword {
		writeMessage(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, ok := s.users[username]
	if !ok || user.Password != password {
		writeMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	pair, err := s.issuePair(user, intField(body, "expiresInMins"))
	if err != nil {
		s.logger.Error(err, "login failed", "username", username)
		writeMessage(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, &loginResponse{
		userResponse: toUserResponse(user),
		tokenPair:    *pair,
	})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Access Token is required")
		return
	}

	user, err := s.verify(token, s.accessKey)
	if err != nil {
		s.logger.V(1).Info("access token rejected", "error", err)
		writeMessage(w, http.StatusUnauthorized, "Invalid/Expired Token!")

		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	token, ok := stringField(body, "refreshToken")
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Refresh token required")
		return
	}

	user, err := s.verify(token, s.refreshKey)
	if err != nil {
		s.logger.V(1).Info("refresh token rejected", "error", err)
		writeMessage(w, http.StatusForbidden, "Invalid refresh token")

		return
	}

	pair, err := s.issuePair(*user, intField(body, "expiresInMins"))
	if err != nil {
		s.logger.Error(err, "refresh failed", "username", user.Username)
		writeMessage(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, pair)
}
