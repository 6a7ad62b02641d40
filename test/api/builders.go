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
	"maps"

	"k8s.io/apimachinery/pkg/util/rand"
)

// GenerateTestName returns a name unique enough to spot in provider logs.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

// LoginPayloadBuilder builds loose login bodies so negative tests can send
// any combination of present, missing and wrong fields.
type LoginPayloadBuilder struct {
	payload map[string]any
}

// NewLoginPayload starts from the configured, valid credentials.
func NewLoginPayload(config *TestConfig) *LoginPayloadBuilder {
	return &LoginPayloadBuilder{
		payload: map[string]any{
			"username":      config.Username,
			"password":      config.Password,
			"expiresInMins": config.TokenExpiryMinutes,
		},
	}
}

// NewEmptyLoginPayload starts from {}.
func NewEmptyLoginPayload() *LoginPayloadBuilder {
	return &LoginPayloadBuilder{
		payload: map[string]any{},
	}
}

func (b *LoginPayloadBuilder) WithUsername(username string) *LoginPayloadBuilder {
	b.payload["username"] = username
	return b
}

func (b *LoginPayloadBuilder) WithPassword(password string) *LoginPayloadBuilder {
	b.payload["password"] = password
	return b
}

func (b *LoginPayloadBuilder) WithoutUsername() *LoginPayloadBuilder {
	delete(b.payload, "username")
	return b
}

func (b *LoginPayloadBuilder) WithoutPassword() *LoginPayloadBuilder {
	delete(b.payload, "password")
	return b
}

// Build returns a copy so the builder can be reused.
func (b *LoginPayloadBuilder) Build() map[string]any {
	return maps.Clone(b.payload)
}

// DefaultLoginRequest returns the typed login for the configured user.
func DefaultLoginRequest(config *TestConfig) LoginRequest {
	return LoginRequest{
		Username:      config.Username,
		Password:      config.Password,
		ExpiresInMins: config.TokenExpiryMinutes,
	}
}

// ProductPayloadBuilder builds products for the add endpoint.
type ProductPayloadBuilder struct {
	product Product
}

// NewProductPayload creates a product with a unique title and sane defaults.
func NewProductPayload() *ProductPayloadBuilder {
	return &ProductPayloadBuilder{
		product: Product{
			Title:              GenerateTestName("test-product"),
			Price:              1234,
			DiscountPercentage: 20,
			Category:           "vehicle",
		},
	}
}

func (b *ProductPayloadBuilder) WithTitle(title string) *ProductPayloadBuilder {
	b.product.Title = title
	return b
}

func (b *ProductPayloadBuilder) WithPrice(price float64) *ProductPayloadBuilder {
	b.product.Price = price
	return b
}

func (b *ProductPayloadBuilder) WithDiscountPercentage(discount float64) *ProductPayloadBuilder {
	b.product.DiscountPercentage = discount
	return b
}

func (b *ProductPayloadBuilder) WithCategory(category string) *ProductPayloadBuilder {
	b.product.Category = category
	return b
}

func (b *ProductPayloadBuilder) Build() Product {
	return b.product
}

// MalformedProductJSON is a product document missing its closing brace.
func MalformedProductJSON() []byte {
	return []byte(`{
  "title": "G-wagon",
  "price": 565474736
`)
}
