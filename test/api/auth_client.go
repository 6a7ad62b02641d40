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
	"context"
	"fmt"
	"net/http"
)

// AuthClient wraps the authentication endpoints.  Raw variants return the
// response untouched for negative testing, typed variants require a 2xx.
// Tokens are never stored, every call that needs one takes it explicitly.
type AuthClient struct {
	client *APIClient
}

func NewAuthClient(client *APIClient) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// LoginRaw posts any JSON serializable body, a LoginRequest or a loose map.
func (c *AuthClient) LoginRaw(ctx context.Context, body any) (*Response, error) {
	resp, err := c.client.Do(ctx, http.MethodPost, c.client.endpoints.Login(), WithJSONBody(body))
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return resp, nil
}

func (c *AuthClient) Login(ctx context.Context, request LoginRequest) (*LoginResponse, error) {
	resp, err := c.LoginRaw(ctx, request)
	if err != nil {
		return nil, err
	}

	return decodeSuccess[LoginResponse](resp)
}

// MeRaw looks up the current user.  A nil token omits the Authorization
// header entirely, a pointer to the empty string sends an empty bearer.
func (c *AuthClient) MeRaw(ctx context.Context, token *string) (*Response, error) {
	var opts []RequestOption

	if token != nil {
		opts = append(opts, WithBearerToken(*token))
	}

	resp, err := c.client.Do(ctx, http.MethodGet, c.client.endpoints.Me(), opts...)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return resp, nil
}

func (c *AuthClient) Me(ctx context.Context, token string) (*User, error) {
	resp, err := c.MeRaw(ctx, &token)
	if err != nil {
		return nil, err
	}

	return decodeSuccess[User](resp)
}

func (c *AuthClient) RefreshRaw(ctx context.Context, body any) (*Response, error) {
	resp, err := c.client.Do(ctx, http.MethodPost, c.client.endpoints.Refresh(), WithJSONBody(body))
	if err != nil {
		return nil, fmt.Errorf("refreshing tokens: %w", err)
	}

	return resp, nil
}

func (c *AuthClient) Refresh(ctx context.Context, request RefreshRequest) (*RefreshResponse, error) {
	resp, err := c.RefreshRaw(ctx, request)
	if err != nil {
		return nil, err
	}

	return decodeSuccess[RefreshResponse](resp)
}
