package geopack

import "math"

// maxPrealloc caps slice pre-allocation during decode. Counts are
// attacker-controlled and must not drive allocations before the
// corresponding data has actually been read.
const maxPrealloc = 1 << 12

// Storable is the serialization contract shared by all persisted types.
// Instances travel as version-and-size framed blobs, see Writer.WriteStorable
// and Reader.ReadStorable for the framing rules.
type Storable interface {
	// Version returns the current schema version of the type. Schema
	// evolution is append-only: newer versions append fields, older
	// readers skip the unknown tail.
	Version() int

	// Read populates the object from r, which is positioned at the
	// start of the object body and bounded by its size. The version
	// identifies the schema the blob was written with.
	Read(version int, r *Reader) error

	// Write appends the object body to w. It must be deterministic
	// given the same field values.
	Write(w *Writer) error
}

// StorablePtr constrains a pointer to a Storable implementation, used
// by the list helpers to construct elements during decode.
type StorablePtr[T any] interface {
	*T
	Storable
}

// Marshal encodes a single framed object.
func Marshal(obj Storable) ([]byte, error) {
	w := NewWriter()
	if err := w.WriteStorable(obj); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes a single framed object from data. Trailing bytes
// after the frame are rejected.
func Unmarshal(data []byte, obj Storable) error {
	r := NewReader(data)
	if err := r.ReadStorable(obj); err != nil {
		return err
	}
	if n := r.Remaining(); n != 0 {
		return decodeErrf(r.Pos(), nil, "%d trailing bytes after object", n)
	}
	return nil
}

// MarshalList encodes a batch as a count followed by the framed
// elements, with no separators.
func MarshalList[T any, P StorablePtr[T]](items []P) ([]byte, error) {
	if len(items) > math.MaxInt32 {
		return nil, encodeErrf(nil, "batch of %d items exceeds count prefix", len(items))
	}

	w := NewWriter()
	w.WriteInt32(int32(len(items)))
	for i, item := range items {
		if item == nil {
			return nil, encodeErrf(nil, "nil item at index %d", i)
		}
		if err := w.WriteStorable(item); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// UnmarshalList decodes a batch written by MarshalList, preserving
// element order. Any malformed element aborts the whole batch, a
// partial batch is never returned.
func UnmarshalList[T any, P StorablePtr[T]](data []byte) ([]P, error) {
	r := NewReader(data)
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, decodeErrf(0, errNegativeLength, "batch count %d", n)
	}

	items := make([]P, 0, min(int(n), maxPrealloc))
	for i := 0; i < int(n); i++ {
		item := P(new(T))
		if err := r.ReadStorable(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if rem := r.Remaining(); rem != 0 {
		return nil, decodeErrf(r.Pos(), nil, "%d trailing bytes after batch", rem)
	}
	return items, nil
}
