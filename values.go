// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Date is the ID3v2.4 timestamp format: a required year and
// progressively more precise optional components, laid out by fixed
// character position in "YYYY-MM-DDTHH:MM:SS".
type Date struct {
	Year    uint16
	Month   *uint8
	Day     *uint8
	Hour    *uint8
	Minutes *uint8
	Seconds *uint8
}

// dateField is one fixed-position slice of a Date string.
type dateField struct {
	start, end int
}

var dateFields = [...]dateField{
	{0, 4},   // year
	{5, 7},   // month
	{8, 10},  // day
	{11, 13}, // hour
	{14, 16}, // minutes
	{17, 19}, // seconds
}

// parseDate parses one ISO-8601-subset timestamp segment.
func parseDate(s string) (Date, error) {
	yf := dateFields[0]
	if len(s) < yf.end {
		return Date{}, &ParseDateError{Kind: MissingYear, Input: s}
	}

	year, err := strconv.ParseUint(s[yf.start:yf.end], 10, 16)
	if err != nil {
		return Date{}, &ParseDateError{Kind: BadComponent, Input: s, Err: err}
	}

	d := Date{Year: uint16(year)}

	slots := []**uint8{&d.Month, &d.Day, &d.Hour, &d.Minutes, &d.Seconds}
	for i, slot := range slots {
		f := dateFields[i+1]
		if len(s) < f.end {
			break
		}

		v, err := strconv.ParseUint(s[f.start:f.end], 10, 8)
		if err != nil {
			return Date{}, &ParseDateError{Kind: BadComponent, Input: s, Err: err}
		}

		u8 := uint8(v)
		*slot = &u8
	}

	return d, nil
}

// Track is the "number[/max]" body of a TPOS/TRCK frame.
type Track struct {
	Number uint64
	Max    *uint64
}

// parseTrack parses a TPOS/TRCK body.
func parseTrack(s string) (Track, error) {
	num, max, found := strings.Cut(s, "/")

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return Track{}, &ParseTrackError{Input: s, Err: err}
	}

	t := Track{Number: n}
	if found {
		m, err := strconv.ParseUint(max, 10, 64)
		if err != nil {
			return Track{}, &ParseTrackError{Input: s, Err: err}
		}
		t.Max = &m
	}

	return t, nil
}

// Copyright is the year+message body of a TCOP/TPRO frame.
type Copyright struct {
	Year    string
	Message string
}

// parseCopyright parses a copyright frame value: a leading four-digit
// year, an optional single space, and the remainder as the message.
func parseCopyright(s string) Copyright {
	if len(s) < 4 {
		return Copyright{Message: s}
	}

	year, rest := s[:4], s[4:]
	rest = strings.TrimPrefix(rest, " ")
	return Copyright{Year: year, Message: rest}
}

// Reverb is the fixed 12-byte RVRB frame body.
type Reverb struct {
	ReverbLeftMs, ReverbRightMs                uint16
	BouncesLeft, BouncesRight                  uint8
	FeedbackLeftToLeft, FeedbackLeftToRight    uint8
	FeedbackRightToRight, FeedbackRightToLeft  uint8
	PremixLeftToRight, PremixRightToLeft       uint8
}

// parseReverb parses the fixed 12-byte RVRB frame body.
func parseReverb(body []byte) (Reverb, error) {
	if len(body) < 12 {
		return Reverb{}, ErrFrameTooSmall
	}

	return Reverb{
		ReverbLeftMs:          binary.BigEndian.Uint16(body[0:2]),
		ReverbRightMs:         binary.BigEndian.Uint16(body[2:4]),
		BouncesLeft:           body[4],
		BouncesRight:          body[5],
		FeedbackLeftToLeft:    body[6],
		FeedbackLeftToRight:   body[7],
		FeedbackRightToRight:  body[8],
		FeedbackRightToLeft:   body[9],
		PremixLeftToRight:     body[10],
		PremixRightToLeft:     body[11],
	}, nil
}

// genreNames is the legacy ID3v1 genre table TCON numeric codes index
// into. ID3v2 adds the literals "RX" (Remix) and "CR" (Cover) on top.
var genreNames = [...]string{
	"Blues", "Classic Rock", "Country", "Dance", "Disco", "Funk", "Grunge",
	"Hip-Hop", "Jazz", "Metal", "New Age", "Oldies", "Other", "Pop", "R&B",
	"Rap", "Reggae", "Rock", "Techno", "Industrial", "Alternative", "Ska",
	"Death Metal", "Pranks", "Soundtrack", "Euro-Techno", "Ambient",
	"Trip-Hop", "Vocal", "Jazz+Funk", "Fusion", "Trance", "Classical",
	"Instrumental", "Acid", "House", "Game", "Sound Clip", "Gospel",
	"Noise", "AlternRock", "Bass", "Soul", "Punk", "Space", "Meditative",
	"Instrumental Pop", "Instrumental Rock", "Ethnic", "Gothic",
	"Darkwave", "Techno-Industrial", "Electronic", "Pop-Folk", "Eurodance",
	"Dream", "Southern Rock", "Comedy", "Cult", "Gangsta", "Top 40",
	"Christian Rap", "Pop/Funk", "Jungle", "Native American", "Cabaret",
	"New Wave", "Psychedelic", "Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka", "Retro", "Musical",
	"Rock & Roll", "Hard Rock",
}

// expandGenre maps one TCON segment to its canonical name. Numeric
// codes 0-79 and the literals "RX"/"CR" map to fixed names; anything
// else passes through unchanged.
func expandGenre(s string) string {
	switch s {
	case "RX":
		return "Remix"
	case "CR":
		return "Cover"
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(genreNames) {
		return genreNames[n]
	}

	return s
}
