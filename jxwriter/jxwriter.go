// Package jxwriter provides a JSON implementation of the rpcvalue.Writer
// sink using the github.com/go-faster/jx encoder.
package jxwriter

import (
	"github.com/go-faster/jx"

	"github.com/leanrpc/rpcvalue"
)

var _ rpcvalue.Writer = (*Writer)(nil)

// Writer encodes values as JSON. The zero Writer is ready to use.
type Writer struct {
	e jx.Encoder
}

// Bytes returns the encoded JSON.
func (w *Writer) Bytes() []byte {
	return w.e.Bytes()
}

// Reset clears the output buffer.
func (w *Writer) Reset() {
	w.e.Reset()
}

// WriteNull implements rpcvalue.Writer.
func (w *Writer) WriteNull() error {
	w.e.Null()
	return nil
}

// WriteBool implements rpcvalue.Writer.
func (w *Writer) WriteBool(v bool) error {
	w.e.Bool(v)
	return nil
}

// WriteDouble implements rpcvalue.Writer.
func (w *Writer) WriteDouble(v float64) error {
	w.e.Float64(v)
	return nil
}

// WriteInt32 implements rpcvalue.Writer.
func (w *Writer) WriteInt32(v int32) error {
	w.e.Int32(v)
	return nil
}

// WriteString implements rpcvalue.Writer.
func (w *Writer) WriteString(v string) error {
	w.e.Str(v)
	return nil
}

// StartStruct implements rpcvalue.Writer.
func (w *Writer) StartStruct() error {
	w.e.ObjStart()
	return nil
}

// EndStruct implements rpcvalue.Writer.
func (w *Writer) EndStruct() error {
	w.e.ObjEnd()
	return nil
}

// StartStructElement implements rpcvalue.Writer.
func (w *Writer) StartStructElement(key string) error {
	w.e.FieldStart(key)
	return nil
}

// EndStructElement implements rpcvalue.Writer.
func (w *Writer) EndStructElement() error {
	return nil
}

// StartArray implements rpcvalue.Writer.
func (w *Writer) StartArray() error {
	w.e.ArrStart()
	return nil
}

// EndArray implements rpcvalue.Writer.
func (w *Writer) EndArray() error {
	w.e.ArrEnd()
	return nil
}

// Encode serializes v as JSON.
func Encode(v *rpcvalue.Value) ([]byte, error) {
	var w Writer
	if err := v.Write(&w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
