// Copyright (c) 2026 Phil Davis <phildavis17@gmail.com>.
// SPDX-License-Identifier: MIT

// Package weather fetches conditions from OpenWeatherMap and reverse-geocodes
// coordinates with OpenStreetMap. Both lookups are memoized on disk, so
// repeated calls inside the cache window never touch the network.
package weather
