package jsondb

import (
	"encoding/json"
	"maps"
	"math"
)

// ID identifies a record. It is persisted as a JSON number; values derive
// from creation time in milliseconds, which keeps them far below 2^53 so
// they survive float64 round-trips exactly.
type ID int64

// Record is a single open-ended record. Persisted records carry an "id"
// field holding a numeric ID; every other field is caller-defined. Values
// follow encoding/json defaults, so numbers loaded from disk are float64.
type Record map[string]any

// ID returns the record identifier, coercing the numeric representations
// the field holds depending on whether the record was built in memory or
// decoded from disk. ok is false when the field is missing or not a whole
// number.
func (r Record) ID() (ID, bool) {
	switch v := r["id"].(type) {
	case ID:
		return v, true
	case int64:
		return ID(v), true
	case int:
		return ID(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return ID(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return ID(n), true
	}
	return 0, false
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// merge returns a copy of r with fields laid over it. Same-named fields
// are overwritten, including "id" when present. Neither map is modified.
func (r Record) merge(fields Record) Record {
	out := r.Clone()
	if out == nil {
		out = Record{}
	}
	maps.Copy(out, fields)
	return out
}

// Document is the ordered sequence of records held by a store file.
type Document []Record

// contains reports whether any record carries the given id.
func (d Document) contains(id ID) bool {
	for _, r := range d {
		if got, ok := r.ID(); ok && got == id {
			return true
		}
	}
	return false
}
