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
	"fmt"
	"math"
)

type product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand,omitempty"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
}

// categories mirrors the shape of the real catalog: the same categories,
// in the same order, with the same number of products in each, so ids
// line up with the live service.
//
//nolint:gochecknoglobals
var categories = []struct {
	name  string
	count int
	stem  string
	brand string
}{
	{"beauty", 5, "Essence Mascara", "Essence"},
	{"fragrances", 5, "Eau de Parfum", "Chanel"},
	{"furniture", 5, "Annibale Colombo Bed", "Annibale Colombo"},
	{"groceries", 27, "Fresh Produce", ""},
	{"home-decoration", 5, "Decoration Swing", ""},
	{"kitchen-accessories", 30, "Kitchen Utensil", ""},
	{"laptops", 5, "MacBook Pro", "Apple"},
	{"mens-shirts", 5, "Men Check Shirt", "Fashion Trends"},
	{"mens-shoes", 5, "Nike Air Jordan", "Nike"},
	{"mens-watches", 6, "Brown Leather Belt Watch", "Fashion Timepieces"},
	{"mobile-accessories", 14, "Phone Case", "Apple"},
	{"motorcycle", 5, "Kawasaki Z800", "Kawasaki"},
	{"skin-care", 3, "Attitude Super Leaves Hand Soap", "Attitude"},
	{"smartphones", 16, "iPhone", "Apple"},
	{"sports-accessories", 17, "American Football", ""},
	{"sunglasses", 5, "Black Sun Glasses", ""},
	{"tablets", 3, "iPad Mini", "Apple"},
	{"tops", 5, "Blue Frock", ""},
	{"vehicle", 5, "Dodge Hornet GT Plus", "Dodge"},
	{"womens-bags", 5, "Blue Women's Handbag", "Fashion Accessories"},
	{"womens-dresses", 5, "Black Women's Gown", ""},
	{"womens-jewellery", 3, "Green Crystal Earring", ""},
	{"womens-shoes", 5, "Black & Brown Slipper", "Comfort Trends"},
	{"womens-watches", 5, "IWC Ingenieur Automatic Steel", "IWC"},
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// seedCatalog deterministically builds the catalog, ids start at 1.
func seedCatalog() []product {
	var out []product

	for _, c := range categories {
		for i := range c.count {
			id := len(out) + 1

			out = append(out, product{
				ID:                 id,
				Title:              fmt.Sprintf("%s %d", c.stem, i+1),
				Description:        fmt.Sprintf("The %s %d, part of the %s range.", c.stem, i+1, c.name),
				Category:           c.name,
				Brand:              c.brand,
				Price:              round2(9.99 + float64(id)*3.5),
				DiscountPercentage: round2(float64(id%20) + 0.48),
				Rating:             round2(2.5 + float64(id%25)/10),
				Stock:              (id * 7) % 100,
			})
		}
	}

	return out
}
