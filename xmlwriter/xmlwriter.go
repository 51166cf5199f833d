// Package xmlwriter provides an XML-RPC implementation of the
// rpcvalue.Writer sink, emitting <value> markup as described by the XML-RPC
// specification.
package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/leanrpc/rpcvalue"
)

var _ rpcvalue.Writer = (*Writer)(nil)

// Writer emits XML-RPC value markup. The zero Writer is ready to use.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the emitted markup.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// String returns the emitted markup.
func (w *Writer) String() string {
	return w.buf.String()
}

// Reset clears the output buffer.
func (w *Writer) Reset() {
	w.buf.Reset()
}

func (w *Writer) escape(s string) error {
	return xml.EscapeText(&w.buf, []byte(s))
}

// WriteNull implements rpcvalue.Writer.
func (w *Writer) WriteNull() error {
	w.buf.WriteString("<value><nil/></value>")
	return nil
}

// WriteBool implements rpcvalue.Writer.
func (w *Writer) WriteBool(v bool) error {
	if v {
		w.buf.WriteString("<value><boolean>1</boolean></value>")
	} else {
		w.buf.WriteString("<value><boolean>0</boolean></value>")
	}
	return nil
}

// WriteDouble implements rpcvalue.Writer. XML-RPC has no lexical form for
// non-finite doubles.
func (w *Writer) WriteDouble(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Errorf("double %v has no XML-RPC form", v)
	}
	w.buf.WriteString("<value><double>")
	w.buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	w.buf.WriteString("</double></value>")
	return nil
}

// WriteInt32 implements rpcvalue.Writer.
func (w *Writer) WriteInt32(v int32) error {
	w.buf.WriteString("<value><i4>")
	w.buf.WriteString(strconv.FormatInt(int64(v), 10))
	w.buf.WriteString("</i4></value>")
	return nil
}

// WriteString implements rpcvalue.Writer.
func (w *Writer) WriteString(v string) error {
	w.buf.WriteString("<value><string>")
	if err := w.escape(v); err != nil {
		return err
	}
	w.buf.WriteString("</string></value>")
	return nil
}

// StartStruct implements rpcvalue.Writer.
func (w *Writer) StartStruct() error {
	w.buf.WriteString("<value><struct>")
	return nil
}

// EndStruct implements rpcvalue.Writer.
func (w *Writer) EndStruct() error {
	w.buf.WriteString("</struct></value>")
	return nil
}

// StartStructElement implements rpcvalue.Writer.
func (w *Writer) StartStructElement(key string) error {
	w.buf.WriteString("<member><name>")
	if err := w.escape(key); err != nil {
		return err
	}
	w.buf.WriteString("</name>")
	return nil
}

// EndStructElement implements rpcvalue.Writer.
func (w *Writer) EndStructElement() error {
	w.buf.WriteString("</member>")
	return nil
}

// StartArray implements rpcvalue.Writer.
func (w *Writer) StartArray() error {
	w.buf.WriteString("<value><array><data>")
	return nil
}

// EndArray implements rpcvalue.Writer.
func (w *Writer) EndArray() error {
	w.buf.WriteString("</data></array></value>")
	return nil
}

// Encode serializes v as XML-RPC value markup.
func Encode(v *rpcvalue.Value) ([]byte, error) {
	var w Writer
	if err := v.Write(&w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
