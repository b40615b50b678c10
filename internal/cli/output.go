package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	jsondb "github.com/githubrepob/local-json-db"
)

// renderDocument writes doc to w in the requested format.
func renderDocument(w io.Writer, format string, doc jsondb.Document) error {
	if doc == nil {
		doc = jsondb.Document{}
	}
	return render(w, format, doc)
}

// renderRecord writes a single record to w in the requested format.
func renderRecord(w io.Writer, format string, rec jsondb.Record) error {
	return render(w, format, rec)
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown format: %q", format)
}

// filter is one field=value equality constraint.
type filter struct {
	field string
	value string
}

type filterList []filter

// parseFilters parses repeated field=value expressions.
func parseFilters(exprs []string) (filterList, error) {
	out := make(filterList, 0, len(exprs))
	for _, expr := range exprs {
		field, value, ok := strings.Cut(expr, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid filter %q, want field=value", expr)
		}
		out = append(out, filter{field: field, value: value})
	}
	return out, nil
}

// match reports whether rec satisfies every filter. Field values are
// compared through their canonical string form so numeric and boolean
// fields can be matched from the command line.
func (fl filterList) match(rec jsondb.Record) bool {
	for _, f := range fl {
		v, ok := rec[f.field]
		if !ok || fieldString(v) != f.value {
			return false
		}
	}
	return true
}

func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case jsondb.ID:
		return strconv.FormatInt(int64(t), 10)
	case nil:
		return "null"
	}
	return fmt.Sprint(v)
}

// parseID parses a numeric record id from the command line.
func parseID(s string) (jsondb.ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return jsondb.ID(n), nil
}
