package geopack

import (
	"github.com/golang/snappy"
)

// PackOptions define pack specific options.
type PackOptions struct {
	// The compression codec to use.
	// Default: SnappyCompression.
	Compression Compression
}

func (o *PackOptions) norm() *PackOptions {
	var oo PackOptions
	if o != nil {
		oo = *o
	}

	if !oo.Compression.isValid() {
		oo.Compression = SnappyCompression
	}

	return &oo
}

// Pack encodes a batch of entities into a single transportable blob:
// the list encoding of MarshalList followed by a one-byte compression
// tag. With SnappyCompression the payload is compressed only when that
// actually saves space, incompressible batches are stored plain.
func Pack[T any, P StorablePtr[T]](items []P, o *PackOptions) ([]byte, error) {
	opts := o.norm()

	buf, err := MarshalList[T, P](items)
	if err != nil {
		return nil, err
	}

	var blob []byte
	switch opts.Compression {
	case SnappyCompression:
		snp := snappy.Encode(nil, buf)
		if len(snp) < len(buf)-len(buf)/4 {
			blob = append(snp, packSnappyCompression)
		} else {
			blob = append(buf, packNoCompression)
		}
	default:
		blob = append(buf, packNoCompression)
	}
	return blob, nil
}

// Unpack decodes a blob created by Pack, preserving entity order.
func Unpack[T any, P StorablePtr[T]](data []byte) ([]P, error) {
	if len(data) == 0 {
		return nil, decodeErrf(0, errDataTruncated, "empty pack")
	}

	var buf []byte
	switch tagPos := len(data) - 1; data[tagPos] {
	case packNoCompression:
		buf = data[:tagPos]
	case packSnappyCompression:
		plain, err := snappy.Decode(nil, data[:tagPos])
		if err != nil {
			return nil, decodeErrf(tagPos, err, "snappy payload")
		}
		buf = plain
	default:
		return nil, decodeErrf(tagPos, errBadCompression, "pack tag %d", data[tagPos])
	}

	return UnmarshalList[T, P](buf)
}
