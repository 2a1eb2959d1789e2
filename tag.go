// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

// Package id3v2 decodes ID3v2.4 tags: the header, the optional
// extended header, and the frames they contain.
//
// This is an implementation of v2.4.0 of the ID3v2 tagging format,
// defined in: http://id3.org/id3v2.4.0-structure. ID3v2.2 and
// ID3v2.3 tags are detected and reported as unsupported rather than
// decoded.
package id3v2

import (
	"fmt"
	"io"
	"sync"
)

const (
	tagFlagUnsynchronised = 1 << 7
	tagFlagExtendedHeader = 1 << 6
	tagFlagExperimental   = 1 << 5
	tagFlagFooter         = 1 << 4
)

const (
	extHeaderFlagCRCDataPresent  = 1 << 5
	extHeaderFlagTagRestrictions = 1 << 4
)

// Version24 is the only major version this decoder parses past the
// header. ID3v2.2 and ID3v2.3 headers are recognized well enough to
// be reported as UnsupportedVersionError.
const Version24 = 4

var headerBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 10)
		return &buf
	},
}

// Parser owns the frame buffer for the lifetime of iteration. Frame
// bodies are decoded lazily: Next returns one frame (or a
// FrameParseError for just that frame) per call, and never reads from
// the underlying source again after Open returns — the whole tag body
// was already read into an owned buffer.
type Parser struct {
	cfg      Config
	stream   *frameStream
	warnings []string
}

// Open reads and validates an ID3v2.4 tag header from r, consumes any
// extended header, and reads the tag's declared frame buffer into
// memory. It returns before any frame is decoded: errors returned by
// Open are always fatal, while errors later returned by Next are
// scoped to a single frame.
func Open(r io.Reader, opts ...Option) (*Parser, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.withDefaults()

	hdr := headerBufPool.Get().(*[]byte)
	defer headerBufPool.Put(hdr)

	if _, err := io.ReadFull(r, *hdr); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrNoTag
		}
		return nil, fmt.Errorf("id3v2: reading tag header: %w", err)
	}
	header := *hdr

	if string(header[:3]) != "ID3" {
		return nil, ErrNoTag
	}

	major := header[3]
	revision := header[4]
	flags := header[5]

	if major != Version24 {
		return nil, &UnsupportedVersionError{Major: major}
	}

	if flags&(tagFlagUnsynchronised|tagFlagFooter) != 0 {
		return nil, ErrUnsupportedFeature
	}

	size := decodeSynchsafe32(header[6:10])
	if size == synchsafeInvalid {
		return nil, fmt.Errorf("id3v2: invalid tag size")
	}

	p := &Parser{cfg: cfg}

	if revision > 0 {
		p.warnings = append(p.warnings, fmt.Sprintf("id3v2: unrecognized revision %d, proceeding anyway", revision))
	}
	if flags&tagFlagExperimental != 0 {
		p.warnings = append(p.warnings, "id3v2: experimental tag flag set")
	}

	if flags&tagFlagExtendedHeader != 0 {
		consumed, err := p.skipExtendedHeader(r)
		if err != nil {
			return nil, err
		}
		if uint32(consumed) > size {
			return nil, fmt.Errorf("id3v2: extended header larger than declared tag size")
		}
		size -= uint32(consumed)
	}

	if size > uint32(cfg.MaxFrameBuffer) {
		return nil, ErrFrameBufferTooLarge
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("id3v2: reading frame buffer: %w", err)
	}

	p.stream = newFrameStream(buf)
	return p, nil
}

// skipExtendedHeader reads and discards the v2.4 extended header,
// returning the total number of bytes consumed from r (the 4-byte
// size field plus the size it declares).
func (p *Parser) skipExtendedHeader(r io.Reader) (int, error) {
	var sizeBuf [4]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return 0, fmt.Errorf("id3v2: reading extended header size: %w", err)
	}

	ehSize := decodeSynchsafe32(sizeBuf[:])
	if ehSize == synchsafeInvalid || ehSize < 2 {
		return 0, ErrMalformedExtendedHeader
	}

	body := make([]byte, ehSize)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, fmt.Errorf("id3v2: reading extended header: %w", err)
	}

	if body[0] != 0x01 {
		return 0, ErrMalformedExtendedHeader
	}
	ehFlags := body[1]

	i := 2
	if ehFlags&extHeaderFlagCRCDataPresent != 0 {
		if i+5 > len(body) {
			return 0, ErrMalformedExtendedHeader
		}
		i += 5
	}
	if ehFlags&extHeaderFlagTagRestrictions != 0 {
		if i+1 > len(body) {
			return 0, ErrMalformedExtendedHeader
		}
		i++
	}

	return 4 + int(ehSize), nil
}

// Warnings returns non-fatal conditions noted while reading the tag
// header: an unrecognized revision, or the experimental-indicator
// flag being set. Neither prevents decoding from proceeding.
func (p *Parser) Warnings() []string {
	return p.warnings
}

// Next decodes and returns the next frame in the tag. It returns
// ok=false once the frame stream reaches padding or is exhausted; no
// further calls to Next are valid at that point. A non-nil err is
// scoped to the single frame whose identifier it names — the cursor
// has already advanced past that frame's declared size, and
// subsequent Next calls proceed normally.
func (p *Parser) Next() (frame Frame, err error, ok bool) {
	return p.stream.next()
}

// All drains the parser into a slice, following the public-iterator
// convenience most of the pack's consumers reach for instead of a
// manual Next loop. Per-frame errors are collected rather than
// aborting the drain.
func (p *Parser) All() ([]Frame, []error) {
	var frames []Frame
	var errs []error
	for {
		frame, err, ok := p.Next()
		if !ok {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		frames = append(frames, frame)
	}
	return frames, errs
}
