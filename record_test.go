package jsondb

import (
	"encoding/json"
	"testing"
)

// TestRecord tests the Record helpers.
func TestRecord(t *testing.T) {
	t.Run("ID", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			tests := []struct {
				name string
				rec  Record
				want ID
				ok   bool
			}{
				{"ID value", Record{"id": ID(42)}, 42, true},
				{"int64", Record{"id": int64(7)}, 7, true},
				{"int", Record{"id": 7}, 7, true},
				{"float64 from JSON", Record{"id": float64(99)}, 99, true},
				{"json.Number", Record{"id": json.Number("123")}, 123, true},
				{"missing field", Record{}, 0, false},
				{"string id", Record{"id": "abc"}, 0, false},
				{"fractional json.Number", Record{"id": json.Number("1.5")}, 0, false},
				{"fractional float64", Record{"id": 1.5}, 0, false},
				{"nil record", nil, 0, false},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					got, ok := tt.rec.ID()
					if got != tt.want || ok != tt.ok {
						t.Errorf("ID() = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
					}
				})
			}
		})
	})

	t.Run("Clone", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			original := Record{"id": ID(1), "name": "a"}
			cloned := original.Clone()

			cloned["name"] = "modified"
			if original["name"] == "modified" {
				t.Error("modifying clone affected original")
			}
		})
	})

	t.Run("merge", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			base := Record{"id": ID(1), "name": "old", "keep": true}
			fields := Record{"name": "new", "extra": 2}

			merged := base.merge(fields)
			if merged["name"] != "new" {
				t.Errorf("name = %v, want new", merged["name"])
			}
			if merged["keep"] != true {
				t.Errorf("keep = %v, want true", merged["keep"])
			}
			if merged["extra"] != 2 {
				t.Errorf("extra = %v, want 2", merged["extra"])
			}

			// Neither input is modified.
			if base["name"] != "old" {
				t.Error("merge modified the base record")
			}
			if _, ok := fields["keep"]; ok {
				t.Error("merge modified the fields map")
			}
		})
	})
}

// TestDocumentContains tests id lookup across a document.
func TestDocumentContains(t *testing.T) {
	doc := Document{
		{"id": float64(10)},
		{"name": "no id"},
		{"id": ID(20)},
	}

	tests := []struct {
		name string
		id   ID
		want bool
	}{
		{"float64 id", 10, true},
		{"ID id", 20, true},
		{"absent", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.contains(tt.id); got != tt.want {
				t.Errorf("contains(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
