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

// ProductsClient wraps the product catalog endpoints.
//
// Typed methods never look at the status code, they assume success and let
// decoding fail when an error envelope comes back instead of the expected
// structure.  Use the Raw variants to assert on error responses.
type ProductsClient struct {
	client *APIClient
}

func NewProductsClient(client *APIClient) *ProductsClient {
	return &ProductsClient{
		client: client,
	}
}

// GetAllProductsRaw lists the first page using the server's default page size.
func (c *ProductsClient) GetAllProductsRaw(ctx context.Context) (*Response, error) {
	resp, err := c.client.Do(ctx, http.MethodGet, c.client.endpoints.ListProducts())
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return resp, nil
}

func (c *ProductsClient) GetAllProducts(ctx context.Context) (*ProductsResponse, error) {
	resp, err := c.GetAllProductsRaw(ctx)
	if err != nil {
		return nil, err
	}

	return decode[ProductsResponse](resp)
}

// GetAllProductsPageRaw lists an explicit page, a limit of 0 asks for everything.
func (c *ProductsClient) GetAllProductsPageRaw(ctx context.Context, limit, skip int) (*Response, error) {
	query, err := c.client.endpoints.ListProductsQuery(limit, skip)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodGet, c.client.endpoints.ListProducts(), WithQuery(query))
	if err != nil {
		return nil, fmt.Errorf("listing products page: %w", err)
	}

	return resp, nil
}

func (c *ProductsClient) GetAllProductsPage(ctx context.Context, limit, skip int) (*ProductsResponse, error) {
	resp, err := c.GetAllProductsPageRaw(ctx, limit, skip)
	if err != nil {
		return nil, err
	}

	return decode[ProductsResponse](resp)
}

func (c *ProductsClient) GetProductByIDRaw(ctx context.Context, id int) (*Response, error) {
	path, err := c.client.endpoints.GetProduct(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}

	return resp, nil
}

func (c *ProductsClient) GetProductByID(ctx context.Context, id int) (*Product, error) {
	resp, err := c.GetProductByIDRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	return decode[Product](resp)
}

func (c *ProductsClient) SearchProductsByNameRaw(ctx context.Context, query string) (*Response, error) {
	values, err := c.client.endpoints.SearchProductsQuery(query)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodGet, c.client.endpoints.SearchProducts(), WithQuery(values))
	if err != nil {
		return nil, fmt.Errorf("searching products for %q: %w", query, err)
	}

	return resp, nil
}

func (c *ProductsClient) SearchProductsByName(ctx context.Context, query string) (*ProductsResponse, error) {
	resp, err := c.SearchProductsByNameRaw(ctx, query)
	if err != nil {
		return nil, err
	}

	return decode[ProductsResponse](resp)
}

func (c *ProductsClient) GetProductsByCategoryRaw(ctx context.Context, category string) (*Response, error) {
	path, err := c.client.endpoints.ProductsByCategory(category)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("listing products in category %q: %w", category, err)
	}

	return resp, nil
}

func (c *ProductsClient) GetProductsByCategory(ctx context.Context, category string) (*ProductsResponse, error) {
	resp, err := c.GetProductsByCategoryRaw(ctx, category)
	if err != nil {
		return nil, err
	}

	return decode[ProductsResponse](resp)
}

// AddProductRaw posts any JSON serializable body.
func (c *ProductsClient) AddProductRaw(ctx context.Context, body any) (*Response, error) {
	return c.addProduct(ctx, WithJSONBody(body))
}

// AddProductRawBytes posts the bytes verbatim, used for malformed JSON.
func (c *ProductsClient) AddProductRawBytes(ctx context.Context, body []byte) (*Response, error) {
	return c.addProduct(ctx, WithRawBody(body))
}

func (c *ProductsClient) addProduct(ctx context.Context, body RequestOption) (*Response, error) {
	resp, err := c.client.Do(ctx, http.MethodPost, c.client.endpoints.AddProduct(), body)
	if err != nil {
		return nil, fmt.Errorf("adding product: %w", err)
	}

	return resp, nil
}

func (c *ProductsClient) AddProduct(ctx context.Context, product Product) (*Product, error) {
	resp, err := c.AddProductRaw(ctx, product)
	if err != nil {
		return nil, err
	}

	return decode[Product](resp)
}

func (c *ProductsClient) UpdateProductRaw(ctx context.Context, id int, body any) (*Response, error) {
	path, err := c.client.endpoints.UpdateProduct(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodPut, path, WithJSONBody(body))
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}

	return resp, nil
}

func (c *ProductsClient) UpdateProduct(ctx context.Context, id int, request UpdateProductRequest) (*Product, error) {
	resp, err := c.UpdateProductRaw(ctx, id, request)
	if err != nil {
		return nil, err
	}

	return decode[Product](resp)
}

func (c *ProductsClient) DeleteProductRaw(ctx context.Context, id int) (*Response, error) {
	path, err := c.client.endpoints.DeleteProduct(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(ctx, http.MethodDelete, path)
	if err != nil {
		return nil, fmt.Errorf("deleting product %d: %w", id, err)
	}

	return resp, nil
}

func (c *ProductsClient) DeleteProduct(ctx context.Context, id int) (*Product, error) {
	resp, err := c.DeleteProductRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	return decode[Product](resp)
}
