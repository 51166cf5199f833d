package rpcvalue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Undefined(), Undefined(), true},
		{Null(), Null(), true},
		{Undefined(), Null(), false},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{Int32(1), Int32(1), true},
		{Int32(1), Int32(2), false},
		// No cross-kind coercion.
		{Int32(1), Double(1), false},
		{Str("1"), Int32(1), false},
		{Str("a"), Str("a"), true},
		{Str("a"), Str("b"), false},
		{NewArray(Array{Int32(1), Int32(2)}), NewArray(Array{Int32(1), Int32(2)}), true},
		{NewArray(Array{Int32(1), Int32(2)}), NewArray(Array{Int32(2), Int32(1)}), false},
		{NewArray(Array{Int32(1)}), NewArray(Array{Int32(1), Int32(2)}), false},
		{NewArray(nil), NewArray(nil), true},
		{NewObject(Object{"a": Int32(1)}), NewObject(Object{"a": Int32(1)}), true},
		{NewObject(Object{"a": Int32(1)}), NewObject(Object{"a": Int32(1), "b": Int32(2)}), false},
		{NewObject(Object{"a": Int32(1)}), NewObject(Object{"b": Int32(1)}), false},
		{NewObject(nil), NewObject(nil), true},
		{NewObject(nil), NewArray(nil), false},
		{
			NewObject(Object{"deep": NewArray(Array{Str("x")})}),
			NewObject(Object{"deep": NewArray(Array{Str("x")})}),
			true,
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			a.Equal(tt.want, Equal(&tt.a, &tt.b))
			a.Equal(tt.want, Equal(&tt.b, &tt.a))
		})
	}
}

func TestEqualIdentity(t *testing.T) {
	v := Str("same")
	require.True(t, v.Equal(&v))
}

func TestEqualIgnoresFrozen(t *testing.T) {
	a := Str("x")
	b := Str("x")
	b.Freeze()
	require.True(t, Equal(&a, &b))
}

func TestCloneRoundTrip(t *testing.T) {
	values := []Value{
		Undefined(),
		Null(),
		Bool(true),
		Int32(-5),
		Double(2.5),
		Str("hello"),
		NewObject(Object{"a": NewArray(Array{Int32(1), Undefined()})}),
		NewArray(Array{NewObject(Object{"b": Null()})}),
	}
	for i := range values {
		v := &values[i]
		c := v.Clone()
		require.Truef(t, Equal(&c, v), "clone of %s", v.Kind())
	}
}
