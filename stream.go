// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import "encoding/binary"

// frameStream is the cursor over a tag's frame buffer. It owns no
// I/O: the entire buffer is already resident, so each step runs to
// completion synchronously.
type frameStream struct {
	buf []byte
	pos int
	// done is set once padding, a truncated header, or a frame whose
	// declared size would run past the end of buf is encountered.
	done bool
}

func newFrameStream(buf []byte) *frameStream {
	return &frameStream{buf: buf}
}

// next advances the cursor by exactly one frame and returns its
// decode result. ok is false once the stream is exhausted (padding
// reached, fewer than 10 bytes remain, or the declared data would run
// past the buffer), at which point next must not be called again.
func (s *frameStream) next() (frame Frame, err error, ok bool) {
	if s.done {
		return Frame{}, nil, false
	}

	if len(s.buf)-s.pos < 10 {
		s.done = true
		return Frame{}, nil, false
	}

	header := s.buf[s.pos : s.pos+10]
	if isTerminator(header[:4]) {
		s.done = true
		return Frame{}, nil, false
	}

	id := frameID(header[:4])
	size := decodeSynchsafe32(header[4:8])
	if size == synchsafeInvalid {
		s.done = true
		return Frame{}, nil, false
	}
	flags := FrameFlags(binary.BigEndian.Uint16(header[8:10]))

	s.pos += 10
	remaining := size

	var group *byte
	if flags&FrameFlagGroupingIdentity != 0 {
		if uint32(len(s.buf)-s.pos) < 1 || remaining < 1 {
			s.done = true
			return Frame{}, nil, false
		}
		g := s.buf[s.pos]
		group = &g
		s.pos++
		remaining--
	}

	if flags&FrameFlagDataLengthIndicator != 0 {
		if uint32(len(s.buf)-s.pos) < 4 || remaining < 4 {
			s.done = true
			return Frame{}, nil, false
		}
		// The declared data-length-indicator value is informational
		// only; the frame body is still bounded by remaining, the
		// size field adjusted for the bytes consumed so far.
		_ = decodeSynchsafe32(s.buf[s.pos : s.pos+4])
		s.pos += 4
		remaining -= 4
	}

	if uint32(len(s.buf)-s.pos) < remaining {
		s.done = true
		return Frame{}, nil, false
	}

	frame = Frame{ID: id, Flags: flags, Group: group}

	if flags&unsupportedFormatFlags != 0 {
		s.pos += int(remaining)
		return frame, newFrameError(id, ErrUnsupportedFrameFeature), true
	}

	if remaining == 0 {
		return frame, newFrameError(id, ErrEmptyFrame), true
	}

	body := s.buf[s.pos : s.pos+int(remaining)]
	s.pos += int(remaining)

	data, derr := decodeFrameBody(id, body)
	if derr != nil {
		return frame, newFrameError(id, derr), true
	}

	frame.Data = data
	return frame, nil, true
}
