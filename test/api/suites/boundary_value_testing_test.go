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

var _ = Describe("Boundary Value Testing", func() {
	Context("When paginating the catalog", func() {
		var total int

		BeforeEach(func() {
			page, err := productsClient.GetAllProductsPage(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())

			total = page.Total
			Expect(total).To(BeNumerically(">", 0))
		})

		Describe("Given the smallest page", func() {
			It("should return exactly one product", func() {
				page, err := productsClient.GetAllProductsPage(ctx, 1, 0)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyProductsPage(page)
				Expect(page.Products).To(HaveLen(1))
				Expect(page.Products[0].ID).To(Equal(1))
			})
		})

		Describe("Given a limit of zero", func() {
			It("should return the whole catalog", func() {
				page, err := productsClient.GetAllProductsPage(ctx, 0, 0)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyProductsPage(page)
				Expect(page.Products).To(HaveLen(total))
			})
		})

		Describe("Given an offset", func() {
			It("should start the page at the offset", func() {
				page, err := productsClient.GetAllProductsPage(ctx, 5, 10)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyProductsPage(page)
				Expect(page.Skip).To(Equal(10))
				Expect(page.Products).To(HaveLen(5))
				Expect(page.Products[0].ID).To(Equal(11))
			})
		})

		Describe("Given an offset past the end", func() {
			It("should return an empty page", func() {
				page, err := productsClient.GetAllProductsPage(ctx, 10, total+10)
				Expect(err).NotTo(HaveOccurred())

				Expect(page.Products).To(BeEmpty())
				Expect(page.Total).To(Equal(total))
			})
		})
	})
})
