package rpcvalue

import (
	"fmt"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

func TestConstructorKinds(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
	}{
		{Undefined(), KindUndefined},
		{Null(), KindNull},
		{Bool(true), KindBoolean},
		{Int32(42), KindInt32},
		{Int64(1 << 40), KindDouble},
		{Double(3.14), KindDouble},
		{Str("hello"), KindString},
		{NewObject(Object{"a": Int32(1)}), KindObject},
		{NewObject(nil), KindObject},
		{NewArray(Array{Int32(1)}), KindArray},
		{NewArray(nil), KindArray},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			require.Equal(t, tt.kind, tt.value.Kind())
		})
	}
}

func TestZeroValueIsUndefined(t *testing.T) {
	a := require.New(t)
	var v Value
	a.True(v.IsUndefined())
	a.False(v.Frozen())
}

func TestAccessors(t *testing.T) {
	a := require.New(t)

	v := Str("hello")
	s, err := v.AsString()
	a.NoError(err)
	a.Equal("hello", s)

	_, err = v.AsInt32()
	var mismatch *TypeMismatchError
	a.ErrorAs(err, &mismatch)
	a.Equal(KindInt32, mismatch.Want)
	a.Equal(KindString, mismatch.Got)

	b := Bool(true)
	a.True(errors.Must(b.AsBool()))
	a.True(b.IsTrue())
	a.False(b.IsFalse())

	n := Int32(7)
	a.Equal(int32(7), errors.Must(n.AsInt32()))

	d := Double(2.5)
	a.Equal(2.5, errors.Must(d.AsDouble()))

	obj := NewObject(Object{"a": Int32(1)})
	m, err := obj.AsObject()
	a.NoError(err)
	a.Len(m, 1)

	arr := NewArray(Array{Int32(1), Int32(2)})
	e, err := arr.AsArray()
	a.NoError(err)
	a.Len(e, 2)
}

func TestFreezeGate(t *testing.T) {
	a := require.New(t)

	v := Str("hello")
	a.True(v.CanChangeKind())
	a.True(v.CanChangeKindTo(KindInt32))

	v.Freeze()
	a.True(v.Frozen())
	a.False(v.CanChangeKind())
	a.False(v.CanChangeKindTo(KindInt32))
	// Changing into the same kind is always legal.
	a.True(v.CanChangeKindTo(KindString))

	// Freezing does not change the kind.
	a.Equal(KindString, v.Kind())

	v.Unfreeze()
	a.True(v.CanChangeKind())
}

func TestReset(t *testing.T) {
	a := require.New(t)

	v := NewArray(Array{Int32(1)})
	a.NoError(v.Reset())
	a.True(v.IsUndefined())

	w := Str("keep")
	w.Freeze()
	err := w.Reset()
	var frozen *FrozenError
	a.ErrorAs(err, &frozen)
	a.Equal(KindString, frozen.Kind)
	a.Equal(KindUndefined, frozen.Attempted)
	a.Equal("keep", errors.Must(w.AsString()))

	// A frozen Undefined resets freely.
	u := Undefined()
	u.Freeze()
	a.NoError(u.Reset())
}
