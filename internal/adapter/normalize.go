// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/MKhiriev/storefront-gateway/models"
)

// listKeys are the keys under which a wrapped list may appear inside "data".
var listKeys = []string{"items", "data", "content"}

// identityKeys mark a bare object as a domain entity.
var identityKeys = []string{"_id", "id", "name"}

// Normalize maps a backend payload onto [models.Envelope]. Accepted shapes:
//
//	[...]                                   list
//	{"data": [...]}                         list
//	{"data": {"items"|"data"|"content": [...]}}
//	{"data": {...}}                         single object
//	{"product": {...}}                      single object
//	{"_id"|"id"|"name": ...}                bare object
//	{"success": ..., "message": ..., "data": ...}
//
// Pagination is read from "pagination", "data.pagination", a "data" object
// carrying counters, or top-level counters, in that order. Counters are
// page, size or limit, total or totalElements, totalPages or pages.
//
// A body that is not JSON, or JSON of any other shape, yields an empty
// Envelope. Normalize never fails.
func Normalize(raw []byte) models.Envelope {
	var env models.Envelope

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return env
	}

	switch raw[0] {
	case '[':
		env.Items = decodeArray(raw)
		return env
	case '{':
	default:
		return env
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return env
	}

	if v, ok := top["success"]; ok {
		var b bool
		if json.Unmarshal(v, &b) == nil {
			env.Success = &b
		}
	}
	if v, ok := top["message"]; ok {
		_ = json.Unmarshal(v, &env.Message)
	}

	var inner map[string]json.RawMessage
	if data, ok := top["data"]; ok {
		data = bytes.TrimSpace(data)
		switch {
		case isArray(data):
			env.Items = decodeArray(data)
		case isObject(data):
			_ = json.Unmarshal(data, &inner)
			if items, found := firstArray(inner, listKeys...); found {
				env.Items = items
			} else {
				env.Item = data
			}
		}
	}

	if env.Items == nil && env.Item == nil {
		if product, ok := top["product"]; ok && isObject(bytes.TrimSpace(product)) {
			env.Item = bytes.TrimSpace(product)
		} else if hasAny(top, identityKeys...) {
			env.Item = raw
		}
	}

	env.Pagination, env.HasPagination = readPagination(top, inner)
	return env
}

func readPagination(top, inner map[string]json.RawMessage) (models.Pagination, bool) {
	var sources []map[string]json.RawMessage

	if block := objectAt(top, "pagination"); block != nil {
		sources = append(sources, block)
	}
	if block := objectAt(inner, "pagination"); block != nil {
		sources = append(sources, block)
	}
	if hasAny(inner, "page", "size", "total", "totalElements", "totalPages") {
		sources = append(sources, inner)
	}
	sources = append(sources, top)

	for _, src := range sources {
		p, ok := countersFrom(src)
		if ok {
			return p, true
		}
	}
	return models.Pagination{}, false
}

func countersFrom(m map[string]json.RawMessage) (models.Pagination, bool) {
	var p models.Pagination
	var found bool

	read := func(dst *int, keys ...string) {
		for _, k := range keys {
			if n, ok := intAt(m, k); ok {
				*dst = n
				found = true
				return
			}
		}
	}

	read(&p.Page, "page")
	read(&p.Size, "size", "limit")
	read(&p.TotalElements, "total", "totalElements")
	read(&p.TotalPages, "totalPages", "pages")

	if p.TotalPages == 0 && p.TotalElements > 0 && p.Size > 0 {
		p.TotalPages = int(math.Ceil(float64(p.TotalElements) / float64(p.Size)))
	}
	return p, found
}

func intAt(m map[string]json.RawMessage, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}

	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	if f, err := n.Float64(); err == nil {
		return int(f), true
	}
	return 0, false
}

func objectAt(m map[string]json.RawMessage, key string) map[string]json.RawMessage {
	v, ok := m[key]
	if !ok || !isObject(bytes.TrimSpace(v)) {
		return nil
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(v, &out); err != nil {
		return nil
	}
	return out
}

func firstArray(m map[string]json.RawMessage, keys ...string) ([]json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && isArray(bytes.TrimSpace(v)) {
			return decodeArray(v), true
		}
	}
	return nil, false
}

func decodeArray(raw []byte) []json.RawMessage {
	items := make([]json.RawMessage, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return make([]json.RawMessage, 0)
	}
	return items
}

func hasAny(m map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func isArray(raw []byte) bool {
	return len(raw) > 0 && raw[0] == '['
}

func isObject(raw []byte) bool {
	return len(raw) > 0 && raw[0] == '{'
}
