package geopack

import (
	"encoding/binary"
	"math"
)

// Reader consumes big-endian encoded fields from an in-memory buffer.
// Any malformed input, including negative or overlong length prefixes,
// fails with a *DecodeError; arbitrary input never panics.
type Reader struct {
	data []byte
	off  int
	lim  int
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, lim: len(data)}
}

// Pos returns the current buffer offset.
func (r *Reader) Pos() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return r.lim - r.off }

// ReadBool consumes a single byte, reporting true for any non-zero
// value.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

// ReadByte consumes a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

// ReadInt32 consumes a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v, nil
}

// ReadInt64 consumes a big-endian int64.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.BigEndian.Uint64(r.data[r.off:]))
	r.off += 8
	return v, nil
}

// ReadFloat32 consumes a big-endian IEEE-754 single.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	return math.Float32frombits(uint32(v)), err
}

// ReadFloat64 consumes a big-endian IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	return math.Float64frombits(uint64(v)), err
}

// ReadString consumes a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.readBlob("string")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes consumes a length-prefixed byte array. The result does not
// alias the input buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.readBlob("byte array")
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return decodeErrf(r.off, errNegativeLength, "skip of %d bytes", n)
	}
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// ReadStorable consumes a version-and-size framed object, populating
// obj. Data between what obj consumes and the end of the frame is
// skipped, which lets older readers accept blobs written by newer
// schema versions of a type.
func (r *Reader) ReadStorable(obj Storable) error {
	version, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if version < 0 {
		return decodeErrf(r.off-4, nil, "invalid object version %d", version)
	}

	size, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if size < 0 {
		return decodeErrf(r.off-4, errNegativeLength, "object size %d", size)
	}
	if int(size) > r.lim-r.off {
		return decodeErrf(r.off-4, errDataTruncated, "object size %d exceeds remaining %d bytes", size, r.lim-r.off)
	}

	end := r.off + int(size)
	lim := r.lim
	r.lim = end
	err = obj.Read(int(version), r)
	r.lim = lim
	if err != nil {
		return err
	}

	r.off = end
	return nil
}

func (r *Reader) readBlob(kind string) ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, decodeErrf(r.off-4, errNegativeLength, "%s length %d", kind, n)
	}
	if err := r.need(int(n)); err != nil {
		return nil, err
	}
	b := r.data[r.off : r.off+int(n)]
	r.off += int(n)
	return b, nil
}

func (r *Reader) need(n int) error {
	if r.lim-r.off < n {
		return decodeErrf(r.off, errDataTruncated, "need %d bytes, have %d", n, r.lim-r.off)
	}
	return nil
}
