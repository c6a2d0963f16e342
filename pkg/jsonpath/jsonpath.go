// Package jsonpath extracts values from JSON documents using JSONPath
// expressions, backed by gjson.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Lookup extracts a single value from a JSON document. The path uses
// JSONPath syntax ($.users[0].name); the result is rendered as a string.
func Lookup(doc []byte, path string) (string, error) {
	if len(doc) == 0 {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.GetBytes(doc, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// LookupAll extracts named values from a JSON document. All paths are
// attempted; a combined error reports the ones that failed alongside the
// values that succeeded.
func LookupAll(doc []byte, paths map[string]string) (map[string]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no JSONPath expressions provided")
	}

	values := make(map[string]string)
	var failed []string

	for name, path := range paths {
		value, err := Lookup(doc, path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		values[name] = value
	}

	if len(failed) > 0 {
		return values, fmt.Errorf("extraction errors: %s", strings.Join(failed, "; "))
	}
	return values, nil
}

// toGjsonPath converts a JSONPath expression into gjson syntax:
// $.users[0].name becomes users.0.name. Bracketed keys with single or
// double quotes are supported; filter expressions are not.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return "@this"
	}

	var b strings.Builder
	i := 0
	for i < len(path) {
		c := path[i]
		switch c {
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				// Unterminated bracket, keep the rest as-is.
				b.WriteString(path[i:])
				return b.String()
			}
			key := path[i+1 : i+end]
			key = strings.Trim(key, `'"`)
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(key)
			i += end + 1
		case '.':
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
