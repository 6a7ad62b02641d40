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
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dummyjson-qa/apitests/test/api"
)

var _ = Describe("Product Operations", func() {
	Context("When adding a product", func() {
		Describe("Given a valid product", func() {
			It("should echo the product with a new id", func() {
				payload := api.NewProductPayload().
					WithTitle("G-wagon").
					WithPrice(565474736).
					Build()

				resp, err := productsClient.AddProductRaw(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusCreated), "add failed: %s", resp.String())
				expectConformsToSchema(resp)

				var created api.Product
				Expect(resp.Decode(&created)).To(Succeed())

				Expect(created.ID).To(BeNumerically(">", 0), "Created product should be assigned an id")
				Expect(created.Title).To(Equal(payload.Title))
				Expect(created.Price).To(Equal(payload.Price))
				Expect(created.DiscountPercentage).To(Equal(payload.DiscountPercentage))
				Expect(created.Category).To(Equal(payload.Category))
			})

			It("should decode the created product", func() {
				created, err := productsClient.AddProduct(ctx, api.NewProductPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(created.ID).To(BeNumerically(">", 0))
			})
		})
	})

	Context("When updating a product", func() {
		Describe("Given an existing product", func() {
			It("should apply the changes and keep the id", func() {
				request := api.UpdateProductRequest{
					Title: "iPhone Galaxy +1",
					Price: 999,
				}

				updated, err := productsClient.UpdateProduct(ctx, 1, request)
				Expect(err).NotTo(HaveOccurred())

				Expect(updated.ID).To(Equal(1), "Product id should be retained after update")
				Expect(updated.Title).To(Equal(request.Title))
				Expect(updated.Price).To(Equal(request.Price))
			})
		})
	})

	Context("When deleting a product", func() {
		Describe("Given an existing product", func() {
			It("should flag the product as deleted", func() {
				before := time.Now().Add(-time.Hour)

				deleted, err := productsClient.DeleteProduct(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				Expect(deleted.ID).To(Equal(1))
				Expect(deleted.IsDeleted).To(BeTrue(), "Product should be flagged as deleted")
				Expect(deleted.DeletedOn).NotTo(BeNil(), "Deletion timestamp should be set")
				Expect(*deleted.DeletedOn).To(BeTemporally(">", before))
			})
		})
	})
})
