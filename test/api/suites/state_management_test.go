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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dummyjson-qa/apitests/test/api"
)

var _ = Describe("Session State", func() {
	Context("When a user session progresses", func() {
		Describe("Given a full login, lookup and refresh chain", func() {
			It("should keep the identity stable across token rotation", func() {
				// Login.
				login := api.LoginWithDefaultCredentials(ctx, authClient, config)
				api.VerifyTokenPair(login.AccessToken, login.RefreshToken)

				// The access token identifies the user.
				user, err := authClient.Me(ctx, login.AccessToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(login.ID))
				Expect(user.Username).To(Equal(login.Username))

				// Refresh rotates both tokens.
				refreshed, err := authClient.Refresh(ctx, api.RefreshRequest{
					RefreshToken:  login.RefreshToken,
					ExpiresInMins: config.TokenExpiryMinutes,
				})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyTokenPair(refreshed.AccessToken, refreshed.RefreshToken)
				Expect(refreshed.AccessToken).NotTo(Equal(login.AccessToken))

				// The rotated access token still identifies the same user.
				again, err := authClient.Me(ctx, refreshed.AccessToken)
				Expect(err).NotTo(HaveOccurred())
				Expect(again.ID).To(Equal(user.ID))
				Expect(again.Username).To(Equal(user.Username))
				Expect(again.Email).To(Equal(user.Email))
			})
		})

		Describe("Given a rotated refresh token", func() {
			It("should accept the new refresh token for a further rotation", func() {
				login := api.LoginWithDefaultCredentials(ctx, authClient, config)

				first, err := authClient.Refresh(ctx, api.RefreshRequest{RefreshToken: login.RefreshToken})
				Expect(err).NotTo(HaveOccurred())

				second, err := authClient.Refresh(ctx, api.RefreshRequest{RefreshToken: first.RefreshToken})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyTokenPair(second.AccessToken, second.RefreshToken)
			})
		})
	})
})
