package rpcvalue

import (
	"iter"
	"strings"
)

// Entry is a single keyed member of an Object, used when building a Value
// from a range of members.
type Entry struct {
	Key   string
	Value Value
}

// RangeElem constrains the element types a Value can be built from:
// characters become a string, entries become an object, values become an
// array. Anything else is rejected at compile time.
type RangeElem interface {
	byte | rune | Entry | Value
}

// ClassifyRange reports which kind a range with element type E builds.
func ClassifyRange[E RangeElem]() Kind {
	switch any(*new(E)).(type) {
	case Entry:
		return KindObject
	case Value:
		return KindArray
	default:
		return KindString
	}
}

// FromRange builds a Value by consuming a slice of range elements. The
// target kind is chosen by ClassifyRange: characters yield a string, entries
// an object, values an array. An empty range yields an empty payload of the
// target kind, never an error.
//
// Elements are taken over by the result; clone them first to keep a copy.
func FromRange[E RangeElem](elems []E) Value {
	switch ClassifyRange[E]() {
	case KindObject:
		obj := make(Object, len(elems))
		for _, e := range elems {
			m := any(e).(Entry)
			obj[m.Key] = m.Value
		}
		return NewObject(obj)
	case KindArray:
		arr := make(Array, 0, len(elems))
		for _, e := range elems {
			arr = append(arr, any(e).(Value))
		}
		return NewArray(arr)
	default:
		var sb strings.Builder
		sb.Grow(len(elems))
		for _, e := range elems {
			switch c := any(e).(type) {
			case byte:
				sb.WriteByte(c)
			case rune:
				sb.WriteRune(c)
			}
		}
		return Str(sb.String())
	}
}

// FromSeq builds a Value by consuming an iterator, with the same
// classification rules as FromRange.
func FromSeq[E RangeElem](seq iter.Seq[E]) Value {
	switch ClassifyRange[E]() {
	case KindObject:
		obj := Object{}
		for e := range seq {
			m := any(e).(Entry)
			obj[m.Key] = m.Value
		}
		return NewObject(obj)
	case KindArray:
		var arr Array
		for e := range seq {
			arr = append(arr, any(e).(Value))
		}
		return NewArray(arr)
	default:
		var sb strings.Builder
		for e := range seq {
			switch c := any(e).(type) {
			case byte:
				sb.WriteByte(c)
			case rune:
				sb.WriteRune(c)
			}
		}
		return Str(sb.String())
	}
}
