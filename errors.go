// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import (
	"errors"
	"fmt"
)

// Tag-level errors are fatal: they are returned by Open before any frame
// is produced and abort parsing entirely.
var (
	// ErrNoTag is returned when the source does not begin with the
	// three-byte "ID3" marker.
	ErrNoTag = errors.New("id3v2: no ID3 tag found")

	// ErrUnsupportedFeature is returned when the tag header declares
	// unsynchronisation or a trailing footer, neither of which this
	// decoder implements.
	ErrUnsupportedFeature = errors.New("id3v2: unsupported tag feature")

	// ErrMalformedExtendedHeader is returned when an extended header
	// is present but its mandatory flag-bytes count is not 1.
	ErrMalformedExtendedHeader = errors.New("id3v2: malformed extended header")

	// ErrFrameBufferTooLarge is returned when a tag declares a frame
	// buffer size larger than the Parser's configured maximum.
	ErrFrameBufferTooLarge = errors.New("id3v2: declared frame buffer exceeds configured maximum")
)

// UnsupportedVersionError is returned when the tag header declares a
// major version other than 4. ID3v2.2 and ID3v2.3 are recognized well
// enough to be reported by name, not silently misparsed.
type UnsupportedVersionError struct {
	Major byte
}

func (e *UnsupportedVersionError) Error() string {
	switch e.Major {
	case 2:
		return "id3v2: ID3v2.2 tags are not supported"
	case 3:
		return "id3v2: ID3v2.3 tags are not supported"
	default:
		return fmt.Sprintf("id3v2: unsupported ID3v2 major version %d", e.Major)
	}
}

// FrameParseError is the error type yielded for a single frame emission.
// It never aborts iteration: the frame stream advances past the
// offending frame's declared size regardless of whether decoding it
// succeeded.
type FrameParseError struct {
	// ID is the four-byte identifier of the frame that failed to
	// decode, rendered by FrameID.String as its four raw bytes.
	ID     string
	Reason error
}

func (e *FrameParseError) Error() string {
	return fmt.Sprintf("id3v2: frame %s: %v", e.ID, e.Reason)
}

func (e *FrameParseError) Unwrap() error {
	return e.Reason
}

func newFrameError(id FrameID, reason error) *FrameParseError {
	return &FrameParseError{ID: id.String(), Reason: reason}
}

// Sentinel reasons wrapped by FrameParseError.
var (
	// ErrEmptyFrame is the reason when a frame declares a zero byte
	// size. The identifier is still reported; no body is decoded.
	ErrEmptyFrame = errors.New("frame declares zero size")

	// ErrUnsupportedFrameFeature is the reason when a frame sets the
	// compression, encryption, or unsynchronisation format flag.
	ErrUnsupportedFrameFeature = errors.New("frame uses an unsupported format flag")

	// ErrFrameTooSmall is the reason when a frame body is shorter
	// than the minimum size its shape requires.
	ErrFrameTooSmall = errors.New("frame body is smaller than its minimum size")

	// ErrMissingNullTerminator is the reason when a required
	// null-terminated field (PRIV owner, COMM/USLT/TXXX description)
	// runs to the end of the body without a terminator.
	ErrMissingNullTerminator = errors.New("missing required null terminator")

	// ErrMissingValueInMapFrame is the reason when a TIPL/TMCL frame
	// has an odd number of segments (empty segments included), leaving
	// its final key with no value to pair against.
	ErrMissingValueInMapFrame = errors.New("map frame has a key with no paired value")
)

// TextDecodeErrorKind distinguishes the ways text-encoding decode can
// fail.
type TextDecodeErrorKind int

const (
	// InvalidUTF8 means the payload was declared UTF-8 but contained
	// a malformed byte sequence.
	InvalidUTF8 TextDecodeErrorKind = iota
	// InvalidUTF16 means a UTF-16 payload had an odd byte length or a
	// missing/unrecognised BOM. An unpaired surrogate is not an error:
	// it decodes to U+FFFD.
	InvalidUTF16
	// UnknownEncoding means the leading encoding byte was not one of
	// the four defined values (0-3).
	UnknownEncoding
)

func (k TextDecodeErrorKind) String() string {
	switch k {
	case InvalidUTF8:
		return "invalid UTF-8"
	case InvalidUTF16:
		return "invalid UTF-16"
	case UnknownEncoding:
		return "unknown encoding"
	default:
		return "text decode error"
	}
}

// TextDecodeError reports a failure in the text-encoding engine.
type TextDecodeError struct {
	Kind TextDecodeErrorKind
	// Value holds the offending encoding byte when Kind is
	// UnknownEncoding; it is zero otherwise.
	Value byte
}

func (e *TextDecodeError) Error() string {
	if e.Kind == UnknownEncoding {
		return fmt.Sprintf("%s: 0x%02x", e.Kind, e.Value)
	}
	return e.Kind.String()
}

// ParseTrackError reports a failure parsing a TPOS/TRCK "n[/m]" body.
type ParseTrackError struct {
	Input string
	Err   error
}

func (e *ParseTrackError) Error() string {
	return fmt.Sprintf("id3v2: invalid track number %q: %v", e.Input, e.Err)
}

func (e *ParseTrackError) Unwrap() error { return e.Err }

// ParseDateErrorKind distinguishes the ways Date parsing can fail.
type ParseDateErrorKind int

const (
	// MissingYear means the four-character year slice was absent
	// from the input (the input was shorter than 4 bytes).
	MissingYear ParseDateErrorKind = iota
	// BadComponent means a present date/time component failed
	// integer parsing.
	BadComponent
)

// ParseDateError reports a failure parsing a TDEN/TDOR/TDRC/TDRL/TDTG
// segment.
type ParseDateError struct {
	Kind  ParseDateErrorKind
	Input string
	Err   error
}

func (e *ParseDateError) Error() string {
	if e.Kind == MissingYear {
		return fmt.Sprintf("id3v2: date %q is missing a year", e.Input)
	}
	return fmt.Sprintf("id3v2: date %q: %v", e.Input, e.Err)
}

func (e *ParseDateError) Unwrap() error { return e.Err }
