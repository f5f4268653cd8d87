// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

package weather

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Locate reverse-geocodes the coordinates to a named place.
func (c *Client) Locate(lat, long float64) (Place, error) {
	body, err := c.fetchPlace(lat, long)
	if err != nil {
		return Place{}, err
	}
	name := gjson.Get(body, "name")
	if !name.Exists() {
		return Place{}, fmt.Errorf("geocode response has no name")
	}
	return Place{
		Name:     name.String(),
		Category: gjson.Get(body, "category").String(),
	}, nil
}
