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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

var ErrMissingField = errors.New("required field missing from response")

// Response is an unprocessed HTTP result.  The body is held as bytes and
// only interpreted when one of the accessors is called.
type Response struct {
	Method     string
	Path       string
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string

	// SchemaError is set when validation is enabled and the response
	// does not conform to the API description.
	SchemaError error
}

// IsSuccess is true for any 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// String returns the raw body.
func (r *Response) String() string {
	return string(r.Body)
}

// JSON returns the body as a generic JSON tree.
func (r *Response) JSON() (any, error) {
	var tree any
	if err := json.Unmarshal(r.Body, &tree); err != nil {
		return nil, &DecodeError{Target: "JSON", Err: err}
	}

	return tree, nil
}

// Message returns the message field of an error envelope, or the empty
// string if there isn't one.
func (r *Response) Message() string {
	var envelope ErrorResponse
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return ""
	}

	return envelope.Message
}

// Decode deserializes the body into out.  Fields absent from out are
// ignored, but fields tagged required:"true" must be present and non-null.
func (r *Response) Decode(out any) error {
	target := typeName(out)

	if err := json.Unmarshal(r.Body, out); err != nil {
		field := ""

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field = typeErr.Field
		}

		return &DecodeError{Target: target, Field: field, StatusCode: r.StatusCode, Err: err}
	}

	if field, ok := missingRequiredField(r.Body, out); ok {
		return &DecodeError{Target: target, Field: field, StatusCode: r.StatusCode, Err: ErrMissingField}
	}

	return nil
}

// DecodeError is returned when a body cannot be mapped onto a structure.
type DecodeError struct {
	Target     string
	Field      string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding %s (status %d): field %q: %v", e.Target, e.StatusCode, e.Field, e.Err)
	}

	return fmt.Sprintf("decoding %s (status %d): %v", e.Target, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError is returned by typed methods that require a 2xx.
type UnexpectedStatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	TraceID    string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %s %s got %d, message: %q (trace ID: %s)", e.Method, e.Path, e.StatusCode, e.Message, e.TraceID)
}

func newUnexpectedStatusError(r *Response) *UnexpectedStatusError {
	return &UnexpectedStatusError{
		Method:     r.Method,
		Path:       r.Path,
		StatusCode: r.StatusCode,
		Message:    r.Message(),
		TraceID:    r.TraceID,
	}
}

// decodeSuccess requires a 2xx before decoding into T.
func decodeSuccess[T any](r *Response) (*T, error) {
	if !r.IsSuccess() {
		return nil, newUnexpectedStatusError(r)
	}

	return decode[T](r)
}

func decode[T any](r *Response) (*T, error) {
	var out T
	if err := r.Decode(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Name()
}

// missingRequiredField reports the first top level field tagged required
// that the body does not carry.
func missingRequiredField(body []byte, out any) (string, bool) {
	t := reflect.TypeOf(out)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", false
	}

	for i := range t.NumField() {
		f := t.Field(i)

		if f.Tag.Get("required") != "true" {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" {
			name = f.Name
		}

		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			return name, true
		}
	}

	return "", false
}
