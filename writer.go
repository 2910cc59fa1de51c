package geopack

import (
	"encoding/binary"
	"math"
)

// Writer appends big-endian encoded fields to an in-memory buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with a small pre-allocated buffer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// Bytes returns the written data. The slice is only valid until the
// next write and must be copied if retained.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reset truncates the buffer, retaining capacity.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// WriteBool appends a bool as a single byte.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteByte appends a single byte. The error is always nil, the
// signature satisfies io.ByteWriter.
func (w *Writer) WriteByte(v byte) error {
	w.buf = append(w.buf, v)
	return nil
}

// WriteInt32 appends a big-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteInt64 appends a big-endian int64.
func (w *Writer) WriteInt64(v int64) {
	w.buf = append(w.buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteFloat32 appends a big-endian IEEE-754 single.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteInt32(int32(math.Float32bits(v)))
}

// WriteFloat64 appends a big-endian IEEE-754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteInt64(int64(math.Float64bits(v)))
}

// WriteString appends a length-prefixed UTF-8 string.
func (w *Writer) WriteString(v string) error {
	if len(v) > math.MaxInt32 {
		return encodeErrf(nil, "string of %d bytes exceeds length prefix", len(v))
	}
	w.WriteInt32(int32(len(v)))
	w.buf = append(w.buf, v...)
	return nil
}

// WriteBytes appends a length-prefixed byte array.
func (w *Writer) WriteBytes(v []byte) error {
	if len(v) > math.MaxInt32 {
		return encodeErrf(nil, "byte array of %d bytes exceeds length prefix", len(v))
	}
	w.WriteInt32(int32(len(v)))
	w.buf = append(w.buf, v...)
	return nil
}

// WriteStorable appends obj framed by its schema version and body size.
// A failed nested write leaves the buffer unchanged.
func (w *Writer) WriteStorable(obj Storable) error {
	start := len(w.buf)
	w.WriteInt32(int32(obj.Version()))

	sizeOff := len(w.buf)
	w.WriteInt32(0) // size, patched below

	if err := obj.Write(w); err != nil {
		w.buf = w.buf[:start]
		return err
	}

	size := len(w.buf) - sizeOff - 4
	if size > math.MaxInt32 {
		w.buf = w.buf[:start]
		return encodeErrf(nil, "object body of %d bytes exceeds size prefix", size)
	}
	binary.BigEndian.PutUint32(w.buf[sizeOff:], uint32(size))
	return nil
}
