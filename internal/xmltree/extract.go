package xmltree

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const productKey = "product"

var textKeys = []string{TextKey, CDataKey, AltTextKey}

// Text returns trimmed scalar text of any tree node. It never panics.
// Lists resolve to the text of their first element only.
func Text(node any) string {
	switch v := node.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return Text(v[0])
	case []string:
		if len(v) == 0 {
			return ""
		}
		return strings.TrimSpace(v[0])
	case map[string]any:
		for _, key := range textKeys {
			if value, ok := v[key]; ok {
				return Text(value)
			}
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return strings.TrimSpace(v.String())
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Texts returns non-empty texts of every element of a list node.
// Single nodes are treated as one-element lists.
func Texts(node any) []string {
	var items []any
	switch v := node.(type) {
	case nil:
		return nil
	case []any:
		items = v
	default:
		items = []any{v}
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		if text := Text(item); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

// Child returns value of the first of provided child names present in node, matching names case-insensitively.
// Lists resolve to their first element. It returns nil when no child exists.
func Child(node any, names ...string) any {
	if list, ok := node.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		node = list[0]
	}

	m, ok := node.(map[string]any)
	if !ok {
		return nil
	}

	for _, name := range names {
		if value, ok := m[name]; ok {
			return value
		}
		for key, value := range m {
			if strings.EqualFold(key, name) {
				return value
			}
		}
	}
	return nil
}

// Attr returns attribute value of node or empty string.
func Attr(node any, name string) string {
	return Text(Child(node, AttributePrefix+name))
}

// FindProductArray searches document depth-first for a key named "product" in any casing.
// A matched list is returned as is, a matched single element is wrapped in a list.
// Keys on each level are visited in sorted order. Empty list is returned when nothing matches.
func FindProductArray(doc any) []any {
	if products, ok := findProducts(doc); ok {
		return products
	}
	return []any{}
}

func findProducts(node any) ([]any, bool) {
	switch v := node.(type) {
	case map[string]any:
		keys := lo.Keys(v)
		sort.Strings(keys)
		for _, key := range keys {
			value := v[key]
			if strings.EqualFold(key, productKey) {
				switch products := value.(type) {
				case []any:
					return products, true
				case map[string]any:
					return []any{products}, true
				}
			}
			if products, ok := findProducts(value); ok {
				return products, true
			}
		}
	case []any:
		for _, item := range v {
			if products, ok := findProducts(item); ok {
				return products, true
			}
		}
	}
	return nil, false
}
