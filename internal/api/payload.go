package api

import (
	"math"
	"strconv"
)

// Payload is a decoded JSON response. The backend is inconsistent about
// shapes (bare arrays vs wrapped objects, camelCase vs snake_case keys), so
// all coalescing happens here, at the client boundary, and workflow code
// only ever sees canonical values.
type Payload struct {
	value any
}

func (p Payload) IsNil() bool { return p.value == nil }

// Bool reads a bare boolean, or a boolean wrapped under any of the given
// keys. The second return reports whether a boolean was found at all.
func (p Payload) Bool(keys ...string) (bool, bool) {
	if b, ok := p.value.(bool); ok {
		return b, true
	}
	if m, ok := p.value.(map[string]any); ok {
		for _, key := range keys {
			if b, ok := m[key].(bool); ok {
				return b, true
			}
		}
	}
	return false, false
}

func (p Payload) Map() Record {
	if m, ok := p.value.(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// List reads a bare array, or an array wrapped under any of the given keys.
func (p Payload) List(wrapperKeys ...string) []Record {
	raw, ok := p.value.([]any)
	if !ok {
		if m, isMap := p.value.(map[string]any); isMap {
			for _, key := range wrapperKeys {
				if arr, isArr := m[key].([]any); isArr {
					raw, ok = arr, true
					break
				}
			}
		}
	}
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(raw))
	for _, element := range raw {
		if m, isMap := element.(map[string]any); isMap {
			records = append(records, Record(m))
		}
	}
	return records
}

// Field descends into the first present key of an object payload.
func (p Payload) Field(keys ...string) Payload {
	if m, ok := p.value.(map[string]any); ok {
		for _, key := range keys {
			if v, present := m[key]; present {
				return Payload{value: v}
			}
		}
	}
	return Payload{}
}

// Record is one JSON object with field access that coalesces across the
// backend's key variants.
type Record map[string]any

func (r Record) lookup(keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r Record) String(keys ...string) string {
	v, ok := r.lookup(keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return formatNumber(s)
	}
	return ""
}

func (r Record) Float(keys ...string) float64 {
	return r.FloatDefault(0, keys...)
}

func (r Record) FloatDefault(def float64, keys ...string) float64 {
	v, ok := r.lookup(keys)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return def
}

func (r Record) Int(keys ...string) int64 {
	return int64(r.Float(keys...))
}

func (r Record) IntDefault(def int64, keys ...string) int64 {
	return int64(r.FloatDefault(float64(def), keys...))
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
