package geopack

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	packNoCompression     = 0
	packSnappyCompression = 1
)

var (
	errDataTruncated  = errors.New("unexpected end of data")
	errNegativeLength = errors.New("negative length prefix")
	errBadCompression = errors.New("bad compression codec")
)

// DecodeError is returned when a blob cannot be decoded. It carries the
// buffer offset at which decoding failed.
type DecodeError struct {
	Off int
	Msg string
	Err error
}

func decodeErrf(off int, err error, format string, args ...any) error {
	return &DecodeError{off, fmt.Sprintf(format, args...), err}
}

// Unwrap returns the underlying cause, if any.
func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geopack: %s at offset %d: %v", e.Msg, e.Off, e.Err)
	}
	return fmt.Sprintf("geopack: %s at offset %d", e.Msg, e.Off)
}

// EncodeError is returned when an object cannot be encoded.
type EncodeError struct {
	Msg string
	Err error
}

func encodeErrf(err error, format string, args ...any) error {
	return &EncodeError{fmt.Sprintf(format, args...), err}
}

// Unwrap returns the underlying cause, if any.
func (e *EncodeError) Unwrap() error { return e.Err }

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geopack: %s: %v", e.Msg, e.Err)
	}
	return "geopack: " + e.Msg
}

// --------------------------------------------------------------------

// Compression is the compression codec used by Pack.
type Compression byte

func (c Compression) isValid() bool {
	return c >= SnappyCompression && c <= unknownCompression
}

// Supported compression codecs.
const (
	SnappyCompression Compression = iota
	NoCompression
	unknownCompression
)

// --------------------------------------------------------------------

// Source codes identify the subsystem an entity originates from,
// stored under AttrSource.
const (
	SourceUnknown byte = iota
	SourceImport
	SourceUserInterface
	SourceAPI
	SourceRoutePlanner
)

// --------------------------------------------------------------------

var logger *slog.Logger

// SetLogger replaces the diagnostic logger, defaulting to slog.Default.
// The logger is used only where an error is deliberately swallowed, e.g.
// when a corrupt auxiliary block is dropped. Logging never affects
// decode results.
func SetLogger(l *slog.Logger) { logger = l }

func logWarn(msg string, args ...any) {
	l := logger
	if l == nil {
		l = slog.Default()
	}
	l.Warn(msg, args...)
}
