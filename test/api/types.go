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
	"time"
)

// Fields tagged required:"true" must be present in a response body for
// Response.Decode to succeed, anything else is optional.  Unknown fields
// in the response are always ignored.

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

// LoginResponse is the user and token pair returned by a successful login.
type LoginResponse struct {
	ID           int    `json:"id" required:"true"`
	Username     string `json:"username" required:"true"`
	Email        string `json:"email" required:"true"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Image        string `json:"image,omitempty"`
	AccessToken  string `json:"accessToken" required:"true"`
	RefreshToken string `json:"refreshToken" required:"true"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken  string `json:"refreshToken"`
	ExpiresInMins int    `json:"expiresInMins,omitempty"`
}

// RefreshResponse is a rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken" required:"true"`
	RefreshToken string `json:"refreshToken" required:"true"`
}

// User is returned by GET /auth/me.
type User struct {
	ID        int    `json:"id" required:"true"`
	Username  string `json:"username" required:"true"`
	Email     string `json:"email" required:"true"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Product is both the catalog entry and the payload of POST /products/add.
type Product struct {
	ID                 int        `json:"id,omitempty" required:"true"`
	Title              string     `json:"title,omitempty"`
	Description        string     `json:"description,omitempty"`
	Category           string     `json:"category,omitempty"`
	Brand              string     `json:"brand,omitempty"`
	Price              float64    `json:"price,omitempty"`
	DiscountPercentage float64    `json:"discountPercentage,omitempty"`
	Rating             float64    `json:"rating,omitempty"`
	Stock              int        `json:"stock,omitempty"`
	IsDeleted          bool       `json:"isDeleted,omitempty"`
	DeletedOn          *time.Time `json:"deletedOn,omitempty"`
}

// ProductsResponse is the paginated listing envelope.
type ProductsResponse struct {
	Products []Product `json:"products" required:"true"`
	Total    int       `json:"total" required:"true"`
	Skip     int       `json:"skip" required:"true"`
	Limit    int       `json:"limit" required:"true"`
}

// UpdateProductRequest is a partial update, only set fields are sent.
type UpdateProductRequest struct {
	Title string  `json:"title,omitempty"`
	Price float64 `json:"price,omitempty"`
}

// ErrorResponse is the envelope the API uses for every 4xx.
type ErrorResponse struct {
	Message string `json:"message"`
}
