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
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dummyjson-qa/apitests/test/api"
)

const unknownProductID = 999999

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When a product does not exist", func() {
		Describe("Given an unknown product id", func() {
			It("should return 404 with the product id in the message", func() {
				resp, err := productsClient.GetProductByIDRaw(ctx, unknownProductID)
				Expect(err).NotTo(HaveOccurred())
				expectConformsToSchema(resp)

				Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
				Expect(resp.Message()).To(Equal("Product with id '999999' not found"))
			})

			It("should fail to decode the error envelope as a product", func() {
				_, err := productsClient.GetProductByID(ctx, unknownProductID)

				var decodeErr *api.DecodeError
				Expect(errors.As(err, &decodeErr)).To(BeTrue(), "expected a decode error, got %v", err)
				Expect(decodeErr.StatusCode).To(Equal(http.StatusNotFound))
				Expect(decodeErr.Field).To(Equal("id"))
			})

			It("should reject an update of a product that was never persisted", func() {
				resp, err := productsClient.UpdateProductRaw(ctx, 195, api.UpdateProductRequest{Title: "iPhone Galaxy +1"})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusNotFound, "not found")
			})

			It("should reject deletion of an unknown product", func() {
				resp, err := productsClient.DeleteProductRaw(ctx, 500)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusNotFound, "Product with id '500' not found")
				expectConformsToSchema(resp)
			})
		})
	})

	Context("When a request body is malformed", func() {
		Describe("Given invalid JSON syntax", func() {
			It("should reject the product with 400 Bad Request", func() {
				resp, err := productsClient.AddProductRawBytes(ctx, api.MalformedProductJSON())
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusBadRequest, "Expected ',' or '}' after property value in JSON")
				expectConformsToSchema(resp)
			})
		})
	})
})
