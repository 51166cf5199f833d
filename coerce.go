package rpcvalue

import (
	"math"
	"strconv"
	"strings"
)

// ToBool coerces the Value to a boolean using JSON-like truthiness:
// undefined, null, false, numeric zero and the empty string are false,
// everything else (including empty objects and arrays) is true.
func (v *Value) ToBool() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindInt32:
		return v.i32 != 0
	case KindDouble:
		return v.f64 != 0
	case KindString:
		return v.str != ""
	case KindObject, KindArray:
		return true
	default:
		return false
	}
}

// ToDouble coerces the Value to a double. Strings go through ParseDouble; an
// array coerces to 0 when empty, to its single element when of length one,
// and to NaN otherwise; undefined and objects are NaN.
func (v *Value) ToDouble() float64 {
	switch v.kind {
	case KindDouble:
		return v.f64
	case KindInt32:
		return float64(v.i32)
	case KindBoolean:
		if v.b {
			return 1
		}
		return 0
	case KindNull:
		return 0
	case KindString:
		return ParseDouble(v.str)
	case KindArray:
		switch len(v.arr) {
		case 0:
			return 0
		case 1:
			return v.arr[0].ToDouble()
		default:
			return math.NaN()
		}
	default:
		return math.NaN()
	}
}

// ToInt32 coerces the Value to a 32-bit integer: an Int32 is returned as is,
// anything else goes through ToDouble and is truncated toward zero. A
// non-finite double coerces to 0; out-of-range finite doubles saturate at
// the int32 bounds.
func (v *Value) ToInt32() int32 {
	if v.kind == KindInt32 {
		return v.i32
	}
	d := v.ToDouble()
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	d = math.Trunc(d)
	switch {
	case d >= math.MaxInt32:
		return math.MaxInt32
	case d <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(d)
	}
}

// ToString coerces the Value to a string. Doubles render in the shortest
// form that round-trips, with NaN, Infinity and -Infinity spelled out;
// arrays render as their elements' string forms joined by commas. There is
// no string form of an object: that is a CoercionError.
func (v *Value) ToString() (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindUndefined:
		return "undefined", nil
	case KindNull:
		return "null", nil
	case KindBoolean:
		if v.b {
			return "true", nil
		}
		return "false", nil
	case KindInt32:
		return strconv.FormatInt(int64(v.i32), 10), nil
	case KindDouble:
		return formatDouble(v.f64), nil
	case KindArray:
		var sb strings.Builder
		for i := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			s, err := v.arr[i].ToString()
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
		}
		return sb.String(), nil
	default:
		return "", &CoercionError{Kind: v.kind, To: "string"}
	}
}

func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// ParseDouble parses s as a decimal number. The empty string parses to 0;
// surrounding whitespace is tolerated; anything else trailing the numeric
// token, or an unparsable token, yields NaN.
func ParseDouble(s string) float64 {
	if s == "" {
		return 0
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ParseInt32 parses s as an integer (base prefixes accepted). The empty
// string, an unparsable token or trailing garbage yield 0.
func ParseInt32(s string) int32 {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	n, err := strconv.ParseInt(t, 0, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
