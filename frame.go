// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import "encoding/binary"

// FrameID is a four-byte ASCII frame identifier packed into a single
// uint32.
type FrameID uint32

// String renders the identifier as its four ASCII characters.
func (id FrameID) String() string {
	buf := [4]byte{
		byte(id >> 24),
		byte(id >> 16),
		byte(id >> 8),
		byte(id),
	}
	return string(buf[:])
}

func frameID(data []byte) FrameID {
	return FrameID(binary.BigEndian.Uint32(data))
}

// FrameFlags are the per-frame status and format flags of an ID3v2.4
// frame header.
type FrameFlags uint16

const (
	FrameFlagTagAlterPreservation  FrameFlags = 1 << 14
	FrameFlagFileAlterPreservation FrameFlags = 1 << 13
	FrameFlagReadOnly              FrameFlags = 1 << 12

	FrameFlagGroupingIdentity    FrameFlags = 1 << 6
	FrameFlagCompression         FrameFlags = 1 << 3
	FrameFlagEncryption          FrameFlags = 1 << 2
	FrameFlagUnsynchronisation   FrameFlags = 1 << 1
	FrameFlagDataLengthIndicator FrameFlags = 1 << 0
)

// unsupportedFormatFlags are the frame format flags this decoder does
// not implement: compression, encryption, and per-frame
// unsynchronisation. A frame carrying any of these is reported rather
// than silently misparsed.
const unsupportedFormatFlags = FrameFlagCompression | FrameFlagEncryption | FrameFlagUnsynchronisation

// Frame is one decoded ID3v2.4 frame: its identifier, optional group
// byte, and typed body.
type Frame struct {
	ID    FrameID
	Flags FrameFlags
	// Group is non-nil when the frame's GROUPING_IDENTITY format flag
	// was set; it carries the raw grouping byte.
	Group *byte
	Data  FrameData
}

// FrameData is the sealed set of recognized frame body shapes. The
// interface is satisfied only by types defined in this package: new
// frame shapes are added by extending this file, not by external
// implementations, so callers can exhaustively type-switch over it.
type FrameData interface {
	frameData()
}

// TextFrame is a single-value text frame carrying one or more
// null-separated strings (TALB, TIT2, TPE1, ...).
type TextFrame struct {
	Text []string
}

func (TextFrame) frameData() {}

// NumericTextFrame is a text frame whose values are parsed as
// unsigned integers (TBPM, TDLY, TLEN).
type NumericTextFrame struct {
	Values []uint64
}

func (NumericTextFrame) frameData() {}

// DateTextFrame is a text frame whose values are parsed as Date
// (TDEN, TDOR, TDRC, TDRL, TDTG).
type DateTextFrame struct {
	Dates []Date
}

func (DateTextFrame) frameData() {}

// TrackFrame is the "number[/max]" shape (TPOS, TRCK).
type TrackFrame struct {
	Track
}

func (TrackFrame) frameData() {}

// CopyrightFrame is the year+message shape (TCOP, TPRO).
type CopyrightFrame struct {
	Copyright
}

func (CopyrightFrame) frameData() {}

// PeopleMapFrame is a key/value listing (TIPL, TMCL).
type PeopleMapFrame struct {
	Entries []PeopleEntry
}

func (PeopleMapFrame) frameData() {}

// GenreFrame is TCON, with numeric codes and "RX"/"CR" expanded to
// canonical names.
type GenreFrame struct {
	Genres []string
}

func (GenreFrame) frameData() {}

// URLFrame is a bare ISO-8859-1 URL with no encoding byte (WCOM,
// WCOP, WOAF, WOAR, WOAS, WORS, WPAY, WPUB).
type URLFrame struct {
	URL string
}

func (URLFrame) frameData() {}

// UserURLFrame is WXXX: a user-labelled URL, with an encoded
// description but an ISO-8859-1 URL per the URL frame convention.
type UserURLFrame struct {
	Description string
	URL         string
}

func (UserURLFrame) frameData() {}

// LangDescriptionTextFrame is the COMM/USLT shape: a three-letter
// ISO-639-2 language code, an encoded description, and encoded text.
type LangDescriptionTextFrame struct {
	Language    string
	Description string
	Text        []string
}

func (LangDescriptionTextFrame) frameData() {}

// UserTextFrame is TXXX: a user-labelled text value.
type UserTextFrame struct {
	Description string
	Text        []string
}

func (UserTextFrame) frameData() {}

// PrivateFrame is PRIV: an application-private owner identifier and
// opaque binary payload.
type PrivateFrame struct {
	Owner string
	Data  []byte
}

func (PrivateFrame) frameData() {}

// ReverbFrame is RVRB.
type ReverbFrame struct {
	Reverb
}

func (ReverbFrame) frameData() {}

// UnknownFrame carries the raw body of any frame identifier this
// decoder does not recognize.
type UnknownFrame struct {
	Data []byte
}

func (UnknownFrame) frameData() {}
