package rpcvalue

import (
	"strconv"
	"strings"
)

// String implements fmt.Stringer with a debug rendering: undefined, null,
// quoted strings, {k: v} objects and [a, b] arrays. It is meant for logs and
// test output, not for the wire; use Write for that. Object member order is
// unspecified.
func (v *Value) String() string {
	var sb strings.Builder
	v.debug(&sb)
	return sb.String()
}

func (v *Value) debug(sb *strings.Builder) {
	switch v.kind {
	case KindUndefined:
		sb.WriteString("undefined")
	case KindNull:
		sb.WriteString("null")
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindDouble:
		sb.WriteString(formatDouble(v.f64))
	case KindInt32:
		sb.WriteString(strconv.FormatInt(int64(v.i32), 10))
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindObject:
		sb.WriteByte('{')
		first := true
		for k := range v.obj {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			e := v.obj[k]
			sb.WriteString(k)
			sb.WriteString(": ")
			e.debug(sb)
		}
		sb.WriteByte('}')
	case KindArray:
		sb.WriteByte('[')
		for i := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			v.arr[i].debug(sb)
		}
		sb.WriteByte(']')
	}
}
