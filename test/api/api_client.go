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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	config    *TestConfig
	endpoints *Endpoints
	validator *SchemaValidator
}

// Option customizes an APIClient.
type Option func(*APIClient)

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *APIClient) {
		c.client = doer
	}
}

// WithSchemaValidator checks every response against the API description,
// violations are recorded in Response.SchemaError.
func WithSchemaValidator(validator *SchemaValidator) Option {
	return func(c *APIClient) {
		c.validator = validator
	}
}

func NewAPIClient(config *TestConfig, opts ...Option) *APIClient {
	timeout := config.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// NewAPIClientWithConfig is NewAPIClient with schema validation enabled
// when the configuration asks for it.
func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	var opts []Option

	if config.ValidateSchema {
		validator, err := NewSchemaValidator()
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithSchemaValidator(validator))
	}

	return NewAPIClient(config, opts...), nil
}

func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}

func (c *APIClient) Config() *TestConfig {
	return c.config
}

// requestOptions collects everything that varies per request.
type requestOptions struct {
	query   url.Values
	body    any
	rawBody []byte
	hasBody bool
	header  http.Header
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithQuery appends query parameters.
func WithQuery(values url.Values) RequestOption {
	return func(o *requestOptions) {
		for k, vs := range values {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}

// WithJSONBody serializes body as JSON, either a typed request or a
// map[string]any so negative tests can omit required fields.
func WithJSONBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
		o.rawBody = nil
		o.hasBody = true
	}
}

// WithRawBody sends the bytes verbatim as application/json, used to send
// malformed documents.
func WithRawBody(body []byte) RequestOption {
	return func(o *requestOptions) {
		o.body = nil
		o.rawBody = body
		o.hasBody = true
	}
}

// WithBearerToken sets the Authorization header, an empty token is still sent.
func WithBearerToken(token string) RequestOption {
	return WithHeader("Authorization", "Bearer "+token)
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value with a fresh
// trace and span ID, so a failed request can be found in provider logs.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", randomHex(16), randomHex(8))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

func (o *requestOptions) reader() (io.Reader, error) {
	if !o.hasBody {
		return nil, nil
	}

	if o.rawBody != nil {
		return bytes.NewReader(o.rawBody), nil
	}

	data, err := json.Marshal(o.body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

// Do performs one HTTP call.  Only transport failures are returned as errors,
// the status code is never interpreted so negative tests can inspect 4xx
// responses in full.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) Do(ctx context.Context, method, path string, opts ...RequestOption) (*Response, error) {
	options := &requestOptions{
		query:  url.Values{},
		header: http.Header{},
	}

	for _, o := range opts {
		o(options)
	}

	fullURL := c.baseURL + path
	if len(options.query) > 0 {
		fullURL += "?" + options.query.Encode()
	}

	body, err := options.reader()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, vs := range options.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	result := &Response{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if c.validator != nil {
		if err := c.validator.Validate(ctx, req, result); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "response violates API description")
			result.SchemaError = err
		}
	}

	return result, nil
}
