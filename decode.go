// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import "strconv"

// decodeFrameBody routes a frame's raw body to its identifier's
// decoder. Unrecognized identifiers decode to UnknownFrame.
func decodeFrameBody(id FrameID, body []byte) (FrameData, error) {
	switch id {
	case FrameTALB, FrameTCOM, FrameTENC, FrameTEXT, FrameTIT1, FrameTIT2,
		FrameTIT3, FrameTMOO, FrameTOAL, FrameTOFN, FrameTOLY, FrameTOPE,
		FrameTOWN, FrameTPE1, FrameTPE2, FrameTPE3, FrameTPE4, FrameTPUB,
		FrameTRSN, FrameTRSO, FrameTSOA, FrameTSOP, FrameTSOT, FrameTSRC,
		FrameTSSE, FrameTSST:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		return TextFrame{Text: text}, nil

	case FrameTBPM, FrameTDLY, FrameTLEN:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		values := make([]uint64, len(text))
		for i, s := range text {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return NumericTextFrame{Values: values}, nil

	case FrameTDEN, FrameTDOR, FrameTDRC, FrameTDRL, FrameTDTG:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		dates := make([]Date, len(text))
		for i, s := range text {
			d, err := parseDate(s)
			if err != nil {
				return nil, err
			}
			dates[i] = d
		}
		return DateTextFrame{Dates: dates}, nil

	case FrameTPOS, FrameTRCK:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		if len(text) == 0 {
			return nil, ErrFrameTooSmall
		}
		t, err := parseTrack(text[0])
		if err != nil {
			return nil, err
		}
		return TrackFrame{Track: t}, nil

	case FrameTCOP, FrameTPRO:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		if len(text) == 0 {
			return nil, ErrFrameTooSmall
		}
		return CopyrightFrame{Copyright: parseCopyright(text[0])}, nil

	case FrameTIPL, FrameTMCL:
		entries, err := decodeTextMapFrame(body)
		if err != nil {
			return nil, err
		}
		return PeopleMapFrame{Entries: entries}, nil

	case FrameTCON:
		text, err := decodeTextFrame(body)
		if err != nil {
			return nil, err
		}
		genres := make([]string, len(text))
		for i, s := range text {
			genres[i] = expandGenre(s)
		}
		return GenreFrame{Genres: genres}, nil

	case FrameWCOM, FrameWCOP, FrameWOAF, FrameWOAR, FrameWOAS, FrameWORS,
		FrameWPAY, FrameWPUB:
		url, err := decodeURLBody(body)
		if err != nil {
			return nil, err
		}
		return URLFrame{URL: url}, nil

	case FrameWXXX:
		return decodeUserURLFrame(body)

	case FrameCOMM, FrameUSLT:
		return decodeLangDescriptionText(body)

	case FrameTXXX:
		return decodeUserTextFrame(body)

	case FramePRIV:
		return decodePrivateFrame(body)

	case FrameRVRB:
		rv, err := parseReverb(body)
		if err != nil {
			return nil, err
		}
		return ReverbFrame{Reverb: rv}, nil

	default:
		return UnknownFrame{Data: body}, nil
	}
}

// decodeURLBody decodes a URL frame's whole body as ISO-8859-1 with
// no leading encoding byte; a single trailing null is stripped if
// present.
func decodeURLBody(body []byte) (string, error) {
	if len(body) > 0 && body[len(body)-1] == 0x00 {
		body = body[:len(body)-1]
	}
	return decodeSegment(EncodingISO88591, body)
}

func decodeUserURLFrame(body []byte) (FrameData, error) {
	if len(body) < 2 {
		return nil, ErrFrameTooSmall
	}

	enc, err := parseEncoding(body[0])
	if err != nil {
		return nil, err
	}

	width := enc.terminatorWidth()
	payload := body[1:]

	i := 0
	found := -1
	for i+width <= len(payload) {
		if isTerminator(payload[i : i+width]) {
			found = i
			break
		}
		i += width
	}
	if found < 0 {
		return nil, ErrMissingNullTerminator
	}

	description, err := decodeSegment(enc, payload[:found])
	if err != nil {
		return nil, err
	}

	url, err := decodeURLBody(payload[found+width:])
	if err != nil {
		return nil, err
	}

	return UserURLFrame{Description: description, URL: url}, nil
}

// decodeLangDescriptionText implements the COMM/USLT body: encoding,
// a 3-byte ISO-639-2 language code, then the description+text
// decomposition shared with TXXX.
func decodeLangDescriptionText(body []byte) (FrameData, error) {
	if len(body) < 5 {
		return nil, ErrFrameTooSmall
	}

	enc, err := parseEncoding(body[0])
	if err != nil {
		return nil, err
	}

	language := string(body[1:4])

	description, text, err := decodeDescriptionText(enc, body[4:])
	if err != nil {
		return nil, err
	}

	return LangDescriptionTextFrame{
		Language:    language,
		Description: description,
		Text:        text,
	}, nil
}

// decodeUserTextFrame implements TXXX: encoding, then a
// description+text decomposition.
func decodeUserTextFrame(body []byte) (FrameData, error) {
	if len(body) < 2 {
		return nil, ErrFrameTooSmall
	}

	enc, err := parseEncoding(body[0])
	if err != nil {
		return nil, err
	}

	description, text, err := decodeDescriptionText(enc, body[1:])
	if err != nil {
		return nil, err
	}

	return UserTextFrame{Description: description, Text: text}, nil
}

// decodePrivateFrame implements PRIV: an ISO-8859-1 owner string up
// to a 0x00 terminator, followed by an opaque binary payload.
func decodePrivateFrame(body []byte) (FrameData, error) {
	i := 0
	for i < len(body) && body[i] != 0x00 {
		i++
	}
	if i == len(body) {
		return nil, ErrMissingNullTerminator
	}

	owner, err := decodeSegment(EncodingISO88591, body[:i])
	if err != nil {
		return nil, err
	}

	data := append([]byte(nil), body[i+1:]...)
	return PrivateFrame{Owner: owner, Data: data}, nil
}
