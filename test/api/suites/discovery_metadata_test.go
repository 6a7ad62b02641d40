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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dummyjson-qa/apitests/test/api"
)

var _ = Describe("Product Discovery", func() {
	Context("When listing products", func() {
		Describe("Given the default pagination", func() {
			It("should return a consistent page of the catalog", func() {
				resp, err := productsClient.GetAllProductsRaw(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.IsSuccess()).To(BeTrue(), "listing failed: %s", resp.String())
				expectConformsToSchema(resp)

				var page api.ProductsResponse
				Expect(resp.Decode(&page)).To(Succeed())

				api.VerifyProductsPage(&page)
				Expect(page.Products).NotTo(BeEmpty(), "Products list should not be empty")
				Expect(page.Skip).To(BeZero())

				for _, product := range page.Products {
					api.VerifyProductSummary(product)
				}
			})
		})
	})

	Context("When retrieving a specific product", func() {
		DescribeTable("Given the product exists",
			func(id int) {
				product, err := productsClient.GetProductByID(ctx, id)
				Expect(err).NotTo(HaveOccurred())

				Expect(product.ID).To(Equal(id), "Product id should be %d", id)
				Expect(product.Title).NotTo(BeEmpty())
				Expect(product.Price).To(BeNumerically(">", 0))
				Expect(product.Category).NotTo(BeEmpty())
			},
			Entry("the first product", 1),
			Entry("a product deep in the catalog", 153),
		)
	})

	Context("When searching products", func() {
		Describe("Given a query matching the catalog", func() {
			It("should only return matching products", func() {
				const query = "phone"

				result, err := productsClient.SearchProductsByName(ctx, query)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyProductsPage(result)
				Expect(result.Products).NotTo(BeEmpty(), "Search for %q should return products", query)

				for _, product := range result.Products {
					text := strings.ToLower(strings.Join([]string{product.Title, product.Description, product.Category, product.Brand}, " "))
					Expect(text).To(ContainSubstring(query), "Product %d should match %q", product.ID, query)
				}
			})
		})

		Describe("Given a query matching nothing", func() {
			It("should return an empty page", func() {
				result, err := productsClient.SearchProductsByName(ctx, api.GenerateTestName("no-such-product"))
				Expect(err).NotTo(HaveOccurred())

				Expect(result.Products).To(BeEmpty())
				Expect(result.Total).To(BeZero())
			})
		})
	})

	Context("When filtering by category", func() {
		Describe("Given a known category", func() {
			It("should only return products in that category", func() {
				const category = "smartphones"

				resp, err := productsClient.GetProductsByCategoryRaw(ctx, category)
				Expect(err).NotTo(HaveOccurred())
				expectConformsToSchema(resp)

				var result api.ProductsResponse
				Expect(resp.Decode(&result)).To(Succeed())

				api.VerifyProductsPage(&result)
				Expect(result.Products).NotTo(BeEmpty())
				api.VerifyProductsInCategory(result.Products, category)
			})
		})
	})
})
