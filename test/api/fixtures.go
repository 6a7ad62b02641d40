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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"slices"
	"strings"

	"github.com/spjmurray/go-util/pkg/set"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// LoginWithDefaultCredentials logs in as the configured user and fails the
// spec if that doesn't work.
func LoginWithDefaultCredentials(ctx context.Context, client *AuthClient, config *TestConfig) *LoginResponse {
	login, err := client.Login(ctx, DefaultLoginRequest(config))
	Expect(err).NotTo(HaveOccurred(), "logging in as %s", config.Username)

	GinkgoWriter.Printf("Logged in as %s with user ID %d\n", login.Username, login.ID)

	return login
}

// VerifyTokenPair checks both tokens are present and look like JWTs.
func VerifyTokenPair(accessToken, refreshToken string) {
	Expect(accessToken).NotTo(BeEmpty(), "Access token should not be blank")
	Expect(refreshToken).NotTo(BeEmpty(), "Refresh token should not be blank")
	Expect(IsJWTShaped(accessToken)).To(BeTrue(), "Access token should look like a JWT")
	Expect(IsJWTShaped(refreshToken)).To(BeTrue(), "Refresh token should look like a JWT")
}

// VerifyErrorResponse checks the status code and that the error envelope
// carries a message, which must contain one of the given substrings when
// any are supplied.
func VerifyErrorResponse(resp *Response, statusCode int, substrings ...string) {
	Expect(resp.StatusCode).To(Equal(statusCode), "unexpected status, body: %s", resp.String())

	message := resp.Message()
	Expect(message).NotTo(BeEmpty(), "error response should carry a message, body: %s", resp.String())

	if len(substrings) == 0 {
		return
	}

	lower := strings.ToLower(message)

	matched := slices.ContainsFunc(substrings, func(s string) bool {
		return strings.Contains(lower, strings.ToLower(s))
	})

	Expect(matched).To(BeTrue(), "message %q should mention one of %v", message, substrings)
}

// VerifyRejectedLogin checks a login was refused without leaking tokens.
func VerifyRejectedLogin(resp *Response, substrings ...string) {
	VerifyErrorResponse(resp, 400, substrings...)
	Expect(resp.String()).NotTo(ContainSubstring("accessToken"))
	Expect(resp.String()).NotTo(ContainSubstring("refreshToken"))
}

// VerifyProductsPage checks the pagination envelope is self consistent.
func VerifyProductsPage(page *ProductsResponse) {
	Expect(page.Products).NotTo(BeNil(), "Products list should not be nil")
	Expect(page.Skip).To(BeNumerically(">=", 0))
	Expect(len(page.Products)).To(BeNumerically("<=", page.Limit), "Returned products should not exceed the limit")
	Expect(page.Total).To(BeNumerically(">=", len(page.Products)), "Total should be >= number of returned products")
}

// VerifyProductsInCategory checks every product belongs to the category.
func VerifyProductsInCategory(products []Product, category string) {
	seen := make([]string, len(products))

	for i, product := range products {
		seen[i] = product.Category
	}

	unexpected := slices.Collect(set.New[string](seen...).Difference(set.New[string](category)).All())
	Expect(unexpected).To(BeEmpty(), "Every product should be in category %s", category)
}

// VerifyProductSummary checks the fields every catalog entry carries.
func VerifyProductSummary(product Product) {
	Expect(product.ID).NotTo(BeZero(), "Product id should not be 0")
	Expect(strings.TrimSpace(product.Title)).NotTo(BeEmpty(), "Product title should not be blank")
}
