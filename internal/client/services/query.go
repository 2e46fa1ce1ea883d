// Package services contains the application services of the client: one per
// backend resource area, each a thin typed layer over the api client that
// knows the endpoints, query parameters and response envelopes.
package services

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Direction orders list results.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// setCSV sets key to the comma-joined values, omitting the parameter when
// the slice is empty. The backend expects multi-valued filters this way
// (species=dog,cat), not as repeated parameters.
func setCSV[T ~string](q url.Values, key string, values []T) {
	if len(values) == 0 {
		return
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	q.Set(key, strings.Join(parts, ","))
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIntPtr(q url.Values, key string, value *int) {
	if value != nil {
		q.Set(key, strconv.Itoa(*value))
	}
}

func setInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

// decodeList tolerates both response shapes the backend produces for
// listings: a bare JSON array, or an envelope object holding the array under
// key. Anything else decodes to an empty slice.
func decodeList[T any](raw json.RawMessage, key string) []T {
	if len(raw) == 0 {
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	if inner, ok := envelope[key]; ok {
		if err := json.Unmarshal(inner, &items); err == nil {
			return items
		}
	}
	return nil
}
