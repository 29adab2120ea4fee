package format

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteText writes one "key: value" line per scalar, flattening nested maps
// with dotted keys and slices with numeric indexes (options.0.name). A bare
// scalar is written on its own line.
//
// A map holding exactly {name, value} is flattened to "prefix.<name>: <value>"
// so option lists read naturally.
func WriteText(w io.Writer, v any) error {
	x, err := toGeneric(v)
	if err != nil {
		return err
	}
	var lines []string
	flattenText(&lines, "", x)
	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return err
		}
	}
	return nil
}

func flattenText(out *[]string, prefix string, v any) {
	switch t := v.(type) {
	case map[string]any:
		if name, ok := t["name"].(string); ok && len(t) == 2 {
			if val, ok := t["value"]; ok {
				flattenText(out, joinKey(parentKey(prefix), name), val)
				return
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenText(out, joinKey(prefix, k), t[k])
		}
	case []any:
		for i, it := range t {
			flattenText(out, joinKey(prefix, strconv.Itoa(i)), it)
		}
	default:
		s := scalarText(t)
		if prefix == "" {
			*out = append(*out, s)
			return
		}
		*out = append(*out, prefix+": "+s)
	}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if float64(int64(t)) == t {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func joinKey(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + "." + k
}

// parentKey drops a trailing slice index ("options.1" -> "options").
func parentKey(k string) string {
	i := strings.LastIndex(k, ".")
	if i < 0 {
		if _, err := strconv.Atoi(k); err == nil {
			return ""
		}
		return k
	}
	if _, err := strconv.Atoi(k[i+1:]); err == nil {
		return k[:i]
	}
	return k
}
