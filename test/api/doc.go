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

// Package api provides integration test utilities for the DummyJSON API.
//
// # Layers
//
// APIClient is a thin transport wrapper.  It performs exactly one HTTP call
// per invocation and hands back a Response holding the status code, headers
// and raw body.  It never fails on a non-2xx status: the negative scenarios
// deliberately provoke 400, 401, 403 and 404 responses and need to assert
// on their bodies.
//
// AuthClient and ProductsClient expose one method per API operation.  Raw
// variants return the Response, typed variants decode it.  Decoding ignores
// unknown fields but fails when a field tagged required is absent, which is
// what makes a positive test fail loudly when the provider changes shape.
//
// # Contract Checks
//
// SchemaValidator, enabled with VALIDATE_SCHEMA, checks every response
// against an OpenAPI description of the consumed endpoints.  The fake
// subpackage serves the same contract in process so the client itself is
// unit tested without network access.
//
// # Configuration
//
// Credentials come from DUMMYJSON_USERNAME and DUMMYJSON_PASSWORD, either in
// the environment or in a .env file at the repository root.  LoadTestConfig
// fails if either is unset.
package api
