package format

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes a strict EDN representation of the safe subset our payloads
// use (maps, vectors, strings, numbers, booleans, nil). Map keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := toGeneric(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.writeAny(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) writeAny(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.writeSeq(buf, '[', ']', len(t), level, func(i int) {
			e.writeAny(buf, t[i], level+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.writeSeq(buf, '{', '}', len(keys), level, func(i int) {
			buf.WriteByte(':')
			buf.WriteString(ednKeyword(keys[i]))
			buf.WriteByte(' ')
			e.writeAny(buf, t[keys[i]], level+1)
		})
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

// writeSeq writes n elements between open/close, one per line when pretty.
func (e ednEncoder) writeSeq(buf *bytes.Buffer, open, close byte, n, level int, elem func(i int)) {
	buf.WriteByte(open)
	if n == 0 {
		buf.WriteByte(close)
		return
	}
	if e.pretty {
		buf.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		if e.pretty {
			buf.WriteString(strings.Repeat(" ", (level+1)*e.indent))
		}
		elem(i)
		if i == n-1 {
			break
		}
		if e.pretty {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	if e.pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*e.indent))
	}
	buf.WriteByte(close)
}

func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}
