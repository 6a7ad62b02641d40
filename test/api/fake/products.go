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

package fake

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultLimit = 30

type productsResponse struct {
	Products []product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// queryInt returns a non-negative integer query parameter or the fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value < 0 {
		return fallback
	}

	return value
}

// paginate applies skip and limit, the returned limit is the number of
// products actually in the page and a limit of 0 means everything.
func paginate(r *http.Request, products []product) *productsResponse {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", defaultLimit)

	start := min(skip, len(products))

	end := len(products)
	if limit > 0 {
		end = min(start+limit, len(products))
	}

	page := products[start:end]
	if page == nil {
		page = []product{}
	}

	return &productsResponse{
		Products: page,
		Total:    len(products),
		Skip:     skip,
		Limit:    len(page),
	}
}

func (s *Server) filter(keep func(p product) bool) []product {
	out := []product{}

	for _, p := range s.catalog {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

// lookup resolves the id path parameter, writing the error response itself
// when there is no such product.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*product, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid product id '%s'", raw))
		return nil, false
	}

	if id < 1 || id > len(s.catalog) {
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("Product with id '%s' not found", raw))
		return nil, false
	}

	p := s.catalog[id-1]

	return &p, true
}

// toObject converts a product to a generic object so request fields the
// catalog doesn't model can be echoed back.
func toObject(p *product) map[string]any {
	data, _ := json.Marshal(p)

	object := map[string]any{}
	_ = json.Unmarshal(data, &object)

	return object
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, paginate(r, s.catalog))
}

func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))

	matches := s.filter(func(p product) bool {
		return strings.Contains(strings.ToLower(p.Title), query) || strings.Contains(strings.ToLower(p.Description), query)
	})

	writeJSON(w, http.StatusOK, paginate(r, matches))
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	matches := s.filter(func(p product) bool {
		return p.Category == category
	})

	writeJSON(w, http.StatusOK, paginate(r, matches))
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// addProduct echoes the body with the id the product would have been given.
func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out := maps.Clone(body)
	out["id"] = len(s.catalog) + 1

	writeJSON(w, http.StatusCreated, out)
}

// updateProduct merges the body over the stored product, the id is immutable.
func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	body, err := readObject(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	out := toObject(p)
	maps.Copy(out, body)
	out["id"] = p.ID

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}

	out := toObject(p)
	out["isDeleted"] = true
	out["deletedOn"] = s.now().UTC().Format(time.RFC3339Nano)

	writeJSON(w, http.StatusOK, out)
}
