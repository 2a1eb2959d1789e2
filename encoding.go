// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies one of the four text encodings a frame body's
// leading byte can declare.
type Encoding byte

const (
	EncodingISO88591 Encoding = 0
	EncodingUTF16    Encoding = 1
	EncodingUTF16BE  Encoding = 2
	EncodingUTF8     Encoding = 3
)

func parseEncoding(b byte) (Encoding, error) {
	switch Encoding(b) {
	case EncodingISO88591, EncodingUTF16, EncodingUTF16BE, EncodingUTF8:
		return Encoding(b), nil
	default:
		return 0, &TextDecodeError{Kind: UnknownEncoding, Value: b}
	}
}

// terminatorWidth is the byte width of this encoding's null terminator:
// one byte for the single-byte encodings, two for either UTF-16 form.
func (e Encoding) terminatorWidth() int {
	switch e {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

// decodeSegment decodes a single already-isolated (terminator-stripped)
// run of bytes under the given encoding. Decoders are constructed per
// call: an encoding.Decoder carries transform state and must not be
// shared between parsers on different goroutines.
func decodeSegment(enc Encoding, b []byte) (string, error) {
	switch enc {
	case EncodingISO88591:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("id3v2: ISO-8859-1 decode: %w", err)
		}
		return string(out), nil
	case EncodingUTF8:
		if !utf8.Valid(b) {
			return "", &TextDecodeError{Kind: InvalidUTF8}
		}
		return string(b), nil
	case EncodingUTF16:
		if len(b) == 0 {
			return "", nil
		}
		if len(b) < 2 {
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		switch {
		case b[0] == 0xff && b[1] == 0xfe, b[0] == 0xfe && b[1] == 0xff:
		default:
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		if len(b)%2 != 0 {
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		out, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		return string(out), nil
	case EncodingUTF16BE:
		if len(b)%2 != 0 {
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", &TextDecodeError{Kind: InvalidUTF16}
		}
		return string(out), nil
	default:
		return "", &TextDecodeError{Kind: UnknownEncoding, Value: byte(enc)}
	}
}

// isTerminator reports whether chunk (of the encoding's terminator
// width) is entirely zero bytes.
func isTerminator(chunk []byte) bool {
	for _, b := range chunk {
		if b != 0 {
			return false
		}
	}
	return true
}

// splitRaw walks payload in width-byte chunks from offset zero,
// cutting a new segment at each terminator chunk. It returns the
// terminator-delimited segments and whatever bytes remain after the
// last terminator (possibly empty, possibly a partial trailing chunk
// for malformed input).
func splitRaw(payload []byte, width int) (segs [][]byte, tail []byte) {
	start := 0
	i := 0
	for i+width <= len(payload) {
		if isTerminator(payload[i : i+width]) {
			segs = append(segs, payload[start:i])
			i += width
			start = i
			continue
		}
		i += width
	}
	return segs, payload[start:]
}

// scanSegments splits payload into the sequence of values a
// multi-value text frame carries: every terminator-delimited segment,
// plus one implicit final segment for any non-empty residue that
// never reached a terminator.
func scanSegments(payload []byte, width int) [][]byte {
	segs, tail := splitRaw(payload, width)
	if len(tail) > 0 {
		segs = append(segs, tail)
	}
	return segs
}

// decodeMultiValue decodes every segment of payload under enc,
// returning them in encounter order.
func decodeMultiValue(enc Encoding, payload []byte) ([]string, error) {
	segs := scanSegments(payload, enc.terminatorWidth())
	out := make([]string, len(segs))
	for i, s := range segs {
		v, err := decodeSegment(enc, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// decodeTextFrame decodes a text frame body: an encoding byte
// followed by the payload. An empty payload yields a single empty
// string, matching frames that carry only the encoding byte.
func decodeTextFrame(body []byte) ([]string, error) {
	if len(body) == 0 {
		return nil, ErrFrameTooSmall
	}

	enc, err := parseEncoding(body[0])
	if err != nil {
		return nil, err
	}

	payload := body[1:]
	if len(payload) == 0 {
		return []string{""}, nil
	}

	return decodeMultiValue(enc, payload)
}

// decodeDescriptionText implements the COMM/USLT/TXXX decomposer: the
// first terminator in data splits a description from a following
// multi-value text block.
func decodeDescriptionText(enc Encoding, data []byte) (description string, texts []string, err error) {
	width := enc.terminatorWidth()

	i := 0
	found := -1
	for i+width <= len(data) {
		if isTerminator(data[i : i+width]) {
			found = i
			break
		}
		i += width
	}
	if found < 0 {
		return "", nil, ErrMissingNullTerminator
	}

	description, err = decodeSegment(enc, data[:found])
	if err != nil {
		return "", nil, err
	}

	rest := data[found+width:]
	if len(rest) == 0 {
		return description, []string{""}, nil
	}

	texts, err = decodeMultiValue(enc, rest)
	if err != nil {
		return "", nil, err
	}
	return description, texts, nil
}

// PeopleEntry is one key/value pair decoded from a TIPL/TMCL frame.
type PeopleEntry struct {
	Key   string
	Value string
}

// decodeTextMapFrame pairs a TIPL/TMCL body's segments into key/value
// entries.
func decodeTextMapFrame(body []byte) ([]PeopleEntry, error) {
	if len(body) == 0 {
		return nil, ErrFrameTooSmall
	}

	enc, err := parseEncoding(body[0])
	if err != nil {
		return nil, err
	}

	payload := body[1:]
	if len(payload) == 0 {
		return nil, nil
	}

	// The unterminated tail counts as a final segment here, so a key
	// whose value simply runs to the end of the body still pairs up;
	// any remaining odd segment is a key with nothing to pair against.
	segs := scanSegments(payload, enc.terminatorWidth())
	if len(segs)%2 != 0 {
		return nil, ErrMissingValueInMapFrame
	}

	entries := make([]PeopleEntry, 0, len(segs)/2)
	for i := 0; i < len(segs); i += 2 {
		key, err := decodeSegment(enc, segs[i])
		if err != nil {
			return nil, err
		}
		value, err := decodeSegment(enc, segs[i+1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, PeopleEntry{Key: key, Value: value})
	}
	return entries, nil
}
