package rpcvalue

import (
	"slices"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func TestClassifyRange(t *testing.T) {
	a := require.New(t)
	a.Equal(KindString, ClassifyRange[byte]())
	a.Equal(KindString, ClassifyRange[rune]())
	a.Equal(KindObject, ClassifyRange[Entry]())
	a.Equal(KindArray, ClassifyRange[Value]())
}

func TestFromRange(t *testing.T) {
	a := require.New(t)

	s := FromRange([]byte("hello"))
	a.Equal(KindString, s.Kind())
	a.Equal("hello", errors.Must(s.AsString()))

	r := FromRange([]rune("héllo"))
	a.Equal("héllo", errors.Must(r.AsString()))

	o := FromRange([]Entry{
		{Key: "a", Value: Int32(1)},
		{Key: "b", Value: Str("x")},
	})
	a.Equal(KindObject, o.Kind())
	m := errors.Must(o.AsObject())
	a.Len(m, 2)
	av := m["a"]
	a.Equal(int32(1), errors.Must(av.AsInt32()))

	v := FromRange([]Value{Int32(1), Str("two")})
	a.Equal(KindArray, v.Kind())
	a.Len(errors.Must(v.AsArray()), 2)
}

func TestFromRangeEmpty(t *testing.T) {
	a := require.New(t)

	s := FromRange([]byte{})
	a.Equal(KindString, s.Kind())
	a.Equal("", errors.Must(s.AsString()))

	o := FromRange([]Entry{})
	a.Equal(KindObject, o.Kind())
	a.Empty(errors.Must(o.AsObject()))

	v := FromRange([]Value{})
	a.Equal(KindArray, v.Kind())
	a.Empty(errors.Must(v.AsArray()))
}

func TestFromSeq(t *testing.T) {
	a := require.New(t)

	s := FromSeq(slices.Values([]rune("abc")))
	a.Equal("abc", errors.Must(s.AsString()))

	o := FromSeq(slices.Values([]Entry{{Key: "k", Value: Null()}}))
	a.Equal(KindObject, o.Kind())

	v := FromSeq(slices.Values([]Value{Bool(true), Null()}))
	a.Equal(KindArray, v.Kind())
	a.Len(errors.Must(v.AsArray()), 2)

	empty := FromSeq(slices.Values([]Value(nil)))
	a.Equal(KindArray, empty.Kind())
	a.Empty(errors.Must(empty.AsArray()))
}

func TestFromRangeDuplicateKeys(t *testing.T) {
	// Keys are unique: a later entry replaces an earlier one.
	o := FromRange([]Entry{
		{Key: "a", Value: Int32(1)},
		{Key: "a", Value: Int32(2)},
	})
	m := errors.Must(o.AsObject())
	require.Len(t, m, 1)
	av := m["a"]
	require.Equal(t, int32(2), errors.Must(av.AsInt32()))
}
