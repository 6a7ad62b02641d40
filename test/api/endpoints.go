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
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
// Parameters are styled the same way a generated OpenAPI client would.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func pathParam(name string, value any) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("styling path parameter %s: %w", name, err)
	}

	return styled, nil
}

func queryParam(values url.Values, name string, value any) error {
	fragment, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("styling query parameter %s: %w", name, err)
	}

	parsed, err := url.ParseQuery(fragment)
	if err != nil {
		return fmt.Errorf("parsing query parameter %s: %w", name, err)
	}

	for k, vs := range parsed {
		for _, v := range vs {
			values.Add(k, v)
		}
	}

	return nil
}

// Authentication endpoints.
func (e *Endpoints) Login() string {
	return "/auth/login"
}

func (e *Endpoints) Me() string {
	return "/auth/me"
}

func (e *Endpoints) Refresh() string {
	return "/auth/refresh"
}

// Product catalog endpoints.
func (e *Endpoints) ListProducts() string {
	return "/products"
}

// ListProductsQuery returns pagination parameters, a negative value omits the parameter.
func (e *Endpoints) ListProductsQuery(limit, skip int) (url.Values, error) {
	values := url.Values{}

	if limit >= 0 {
		if err := queryParam(values, "limit", limit); err != nil {
			return nil, err
		}
	}

	if skip >= 0 {
		if err := queryParam(values, "skip", skip); err != nil {
			return nil, err
		}
	}

	return values, nil
}

func (e *Endpoints) GetProduct(productID int) (string, error) {
	id, err := pathParam("id", productID)
	if err != nil {
		return "", err
	}

	return "/products/" + id, nil
}

func (e *Endpoints) SearchProducts() string {
	return "/products/search"
}

func (e *Endpoints) SearchProductsQuery(query string) (url.Values, error) {
	values := url.Values{}

	if err := queryParam(values, "q", query); err != nil {
		return nil, err
	}

	return values, nil
}

func (e *Endpoints) ProductsByCategory(category string) (string, error) {
	c, err := pathParam("category", category)
	if err != nil {
		return "", err
	}

	return "/products/category/" + c, nil
}

func (e *Endpoints) AddProduct() string {
	return "/products/add"
}

func (e *Endpoints) UpdateProduct(productID int) (string, error) {
	return e.GetProduct(productID)
}

func (e *Endpoints) DeleteProduct(productID int) (string, error) {
	return e.GetProduct(productID)
}
