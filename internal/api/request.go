package api

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Query holds query parameters. Values may be strings, integers, floats,
// booleans, string slices, or nil (dropped). Pointers are dereferenced.
type Query map[string]any

// Request is one logical API call.
type Request struct {
	Method string
	Path   string
	Query  Query
	// Body is encoded as JSON when non-nil.
	Body   any
	Header http.Header
}

// Encode renders q as a canonical query string: keys sorted, slices as
// repeated keys, nil values dropped, RFC 3986 escaping.
func (q Query) Encode() (string, error) {
	if len(q) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		values, err := queryValues(q[k])
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", k, err)
		}
		for _, v := range values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(escape(k))
			b.WriteByte('=')
			b.WriteString(escape(v))
		}
	}
	return b.String(), nil
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func queryValues(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case bool:
		return []string{strconv.FormatBool(val)}, nil
	case int:
		return []string{strconv.Itoa(val)}, nil
	case int64:
		return []string{strconv.FormatInt(val, 10)}, nil
	case float64:
		return []string{strconv.FormatFloat(val, 'f', -1, 64)}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return queryValues(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return []string{strconv.FormatInt(rv.Int(), 10)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []string{strconv.FormatUint(rv.Uint(), 10)}, nil
	case reflect.Float32:
		return []string{strconv.FormatFloat(rv.Float(), 'f', -1, 32)}, nil
	case reflect.String:
		return []string{rv.String()}, nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.String {
			break
		}
		out := make([]string, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).String()
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}
