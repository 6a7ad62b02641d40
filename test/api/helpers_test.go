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

package api_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dummyjson-qa/apitests/test/api"
	"github.com/dummyjson-qa/apitests/test/api/fake"
)

// fakeAPI is a client wired to an in-process fake of the service.
type fakeAPI struct {
	config   *api.TestConfig
	auth     *api.AuthClient
	products *api.ProductsClient
}

func newFakeAPI(t *testing.T, opts ...api.Option) *fakeAPI {
	t.Helper()

	user := fake.DefaultUser()

	server := httptest.NewServer(fake.New(fake.Options{}))
	t.Cleanup(server.Close)

	config := &api.TestConfig{
		BaseURL:            server.URL,
		Username:           user.Username,
		Password:           user.Password,
		TokenExpiryMinutes: 30,
		RequestTimeout:     10 * time.Second,
	}

	client := api.NewAPIClient(config, opts...)

	return &fakeAPI{
		config:   config,
		auth:     api.NewAuthClient(client),
		products: api.NewProductsClient(client),
	}
}
