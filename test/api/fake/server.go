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

// Package fake serves the consumed subset of the DummyJSON API in process.
// It deliberately shares no types with the client so that the two act as
// independent implementations of the same contract.
package fake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"
)

// User is an account the fake will accept logins for.
type User struct {
	ID        int
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Gender    string
	Image     string
}

// DefaultUser is the well known DummyJSON demo account.
func DefaultUser() User {
	return User{
		ID:        1,
		Username:  "emilys",
		Password:  "emilyspass",
		Email:     "emily.johnson@x.dummyjson.com",
		FirstName: "Emily",
		LastName:  "Johnson",
		Gender:    "female",
		Image:     "https://dummyjson.com/icon/emilys/128",
	}
}

type Options struct {
	// Users defaults to DefaultUser.
	Users []User

	// SigningKey is the HMAC secret for issued tokens, a per-server
	// random key is used when empty.
	SigningKey []byte

	Logger logr.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Server is an http.Handler.  Nothing is ever persisted, mutations are
// simulated and echoed back exactly like the real service does, so there
// is no mutable state to guard.
type Server struct {
	users      map[string]User
	usersByID  map[int]User
	accessKey  []byte
	refreshKey []byte
	catalog    []product
	logger     logr.Logger
	now        func() time.Time
	router     chi.Router
}

func New(options Options) *Server {
	users := options.Users
	if len(users) == 0 {
		users = []User{DefaultUser()}
	}

	key := options.SigningKey
	if len(key) == 0 {
		key = []byte(randomID())
	}

	now := options.Now
	if now == nil {
		now = time.Now
	}

	logger := options.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}

	s := &Server{
		users:      map[string]User{},
		usersByID:  map[int]User{},
		accessKey:  key,
		refreshKey: append([]byte("refresh:"), key...),
		catalog:    seedCatalog(),
		logger:     logger,
		now:        now,
	}

	for _, user := range users {
		s.users[user.Username] = user
		s.usersByID[user.ID] = user
	}

	router := chi.NewRouter()
	router.Use(s.logRequests)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Get("/me", s.me)
		r.Post("/refresh", s.refresh)
	})

	router.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Get("/search", s.searchProducts)
		r.Get("/category/{category}", s.productsByCategory)
		r.Post("/add", s.addProduct)
		r.Get("/{id}", s.getProduct)
		r.Put("/{id}", s.updateProduct)
		r.Patch("/{id}", s.updateProduct)
		r.Delete("/{id}", s.deleteProduct)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
	})

	s.router = router

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.logger.V(1).Info("request served", "method", r.Method, "path", r.URL.Path, "status", recorder.status, "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// readObject decodes a JSON object body, an empty body reads as {}.
func readObject(r *http.Request) (map[string]any, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	object := map[string]any{}

	if len(data) == 0 {
		return object, nil
	}

	if err := json.Unmarshal(data, &object); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			// Same wording as the provider's JSON parser.
			return nil, fmt.Errorf("Expected ',' or '}' after property value in JSON at position %d", syntaxErr.Offset) //nolint:err113,staticcheck
		}

		return nil, err
	}

	return object, nil
}

// writeBodyError reports a body that could not be read or parsed.
func writeBodyError(w http.ResponseWriter, err error) {
	writeMessage(w, http.StatusBadRequest, err.Error())
}
