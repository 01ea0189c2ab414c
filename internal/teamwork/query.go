package teamwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPageSize is the largest pageSize any list endpoint accepts.
const MaxPageSize = 250

// checkPageSize rejects page sizes above MaxPageSize.
func checkPageSize(pageSize int) error {
	if pageSize > MaxPageSize {
		return fmt.Errorf("pageSize is more than max number of items allowed: %d", MaxPageSize)
	}
	return nil
}

// queryFrom flattens an argument struct into query parameters. Keys come
// from the json tags; omit lists keys that belong in the path instead.
// Arrays are comma-joined and fieldsX keys become fields[x].
func queryFrom(args any, omit ...string) (url.Values, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	skip := make(map[string]bool, len(omit))
	for _, k := range omit {
		skip[k] = true
	}

	q := url.Values{}
	for k, v := range fields {
		if skip[k] || v == nil {
			continue
		}
		key := queryKey(k)
		switch val := v.(type) {
		case []any:
			if len(val) == 0 {
				continue
			}
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, scalar(item))
			}
			q.Set(key, strings.Join(parts, ","))
		default:
			q.Set(key, scalar(val))
		}
	}
	return q, nil
}

// queryKey maps fieldsTaskSequences to fields[taskSequences].
// fieldsProjectPermissions keeps its capital, as the API expects.
func queryKey(k string) string {
	rest, ok := strings.CutPrefix(k, "fields")
	if !ok || rest == "" {
		return k
	}
	r, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return k
	}
	if rest == "ProjectPermissions" {
		return "fields[ProjectPermissions]"
	}
	return "fields[" + string(unicode.ToLower(r)) + rest[size:] + "]"
}

func scalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		data, _ := json.Marshal(val)
		return string(data)
	}
}

// joinIDs renders integer ids as a comma list.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
