// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

package id3v2

// These are the recognized ID3v2.4 frame identifiers, grouped by the
// frame body shape each decodes to. tools/genids regenerates a flat
// version of this table, in the order of its own v2.4.0 frame list;
// the shape grouping and comments below are curated by hand on top of
// it.
const (
	// single-value text
	FrameTALB FrameID = 'T'<<24 | 'A'<<16 | 'L'<<8 | 'B'<<0
	FrameTCOM FrameID = 'T'<<24 | 'C'<<16 | 'O'<<8 | 'M'<<0
	FrameTENC FrameID = 'T'<<24 | 'E'<<16 | 'N'<<8 | 'C'<<0
	FrameTEXT FrameID = 'T'<<24 | 'E'<<16 | 'X'<<8 | 'T'<<0
	FrameTIT1 FrameID = 'T'<<24 | 'I'<<16 | 'T'<<8 | '1'<<0
	FrameTIT2 FrameID = 'T'<<24 | 'I'<<16 | 'T'<<8 | '2'<<0
	FrameTIT3 FrameID = 'T'<<24 | 'I'<<16 | 'T'<<8 | '3'<<0
	FrameTMOO FrameID = 'T'<<24 | 'M'<<16 | 'O'<<8 | 'O'<<0
	FrameTOAL FrameID = 'T'<<24 | 'O'<<16 | 'A'<<8 | 'L'<<0
	FrameTOFN FrameID = 'T'<<24 | 'O'<<16 | 'F'<<8 | 'N'<<0
	FrameTOLY FrameID = 'T'<<24 | 'O'<<16 | 'L'<<8 | 'Y'<<0
	FrameTOPE FrameID = 'T'<<24 | 'O'<<16 | 'P'<<8 | 'E'<<0
	FrameTOWN FrameID = 'T'<<24 | 'O'<<16 | 'W'<<8 | 'N'<<0
	FrameTPE1 FrameID = 'T'<<24 | 'P'<<16 | 'E'<<8 | '1'<<0
	FrameTPE2 FrameID = 'T'<<24 | 'P'<<16 | 'E'<<8 | '2'<<0
	FrameTPE3 FrameID = 'T'<<24 | 'P'<<16 | 'E'<<8 | '3'<<0
	FrameTPE4 FrameID = 'T'<<24 | 'P'<<16 | 'E'<<8 | '4'<<0
	FrameTPUB FrameID = 'T'<<24 | 'P'<<16 | 'U'<<8 | 'B'<<0
	FrameTRSN FrameID = 'T'<<24 | 'R'<<16 | 'S'<<8 | 'N'<<0
	FrameTRSO FrameID = 'T'<<24 | 'R'<<16 | 'S'<<8 | 'O'<<0
	FrameTSOA FrameID = 'T'<<24 | 'S'<<16 | 'O'<<8 | 'A'<<0
	FrameTSOP FrameID = 'T'<<24 | 'S'<<16 | 'O'<<8 | 'P'<<0
	FrameTSOT FrameID = 'T'<<24 | 'S'<<16 | 'O'<<8 | 'T'<<0
	FrameTSRC FrameID = 'T'<<24 | 'S'<<16 | 'R'<<8 | 'C'<<0
	FrameTSSE FrameID = 'T'<<24 | 'S'<<16 | 'S'<<8 | 'E'<<0
	FrameTSST FrameID = 'T'<<24 | 'S'<<16 | 'S'<<8 | 'T'<<0

	// numeric text
	FrameTBPM FrameID = 'T'<<24 | 'B'<<16 | 'P'<<8 | 'M'<<0
	FrameTDLY FrameID = 'T'<<24 | 'D'<<16 | 'L'<<8 | 'Y'<<0
	FrameTLEN FrameID = 'T'<<24 | 'L'<<16 | 'E'<<8 | 'N'<<0

	// date text
	FrameTDEN FrameID = 'T'<<24 | 'D'<<16 | 'E'<<8 | 'N'<<0
	FrameTDOR FrameID = 'T'<<24 | 'D'<<16 | 'O'<<8 | 'R'<<0
	FrameTDRC FrameID = 'T'<<24 | 'D'<<16 | 'R'<<8 | 'C'<<0
	FrameTDRL FrameID = 'T'<<24 | 'D'<<16 | 'R'<<8 | 'L'<<0
	FrameTDTG FrameID = 'T'<<24 | 'D'<<16 | 'T'<<8 | 'G'<<0

	// track-shaped
	FrameTPOS FrameID = 'T'<<24 | 'P'<<16 | 'O'<<8 | 'S'<<0
	FrameTRCK FrameID = 'T'<<24 | 'R'<<16 | 'C'<<8 | 'K'<<0

	// copyright
	FrameTCOP FrameID = 'T'<<24 | 'C'<<16 | 'O'<<8 | 'P'<<0
	FrameTPRO FrameID = 'T'<<24 | 'P'<<16 | 'R'<<8 | 'O'<<0

	// people map
	FrameTIPL FrameID = 'T'<<24 | 'I'<<16 | 'P'<<8 | 'L'<<0
	FrameTMCL FrameID = 'T'<<24 | 'M'<<16 | 'C'<<8 | 'L'<<0

	// genre
	FrameTCON FrameID = 'T'<<24 | 'C'<<16 | 'O'<<8 | 'N'<<0

	// url
	FrameWCOM FrameID = 'W'<<24 | 'C'<<16 | 'O'<<8 | 'M'<<0
	FrameWCOP FrameID = 'W'<<24 | 'C'<<16 | 'O'<<8 | 'P'<<0
	FrameWOAF FrameID = 'W'<<24 | 'O'<<16 | 'A'<<8 | 'F'<<0
	FrameWOAR FrameID = 'W'<<24 | 'O'<<16 | 'A'<<8 | 'R'<<0
	FrameWOAS FrameID = 'W'<<24 | 'O'<<16 | 'A'<<8 | 'S'<<0
	FrameWORS FrameID = 'W'<<24 | 'O'<<16 | 'R'<<8 | 'S'<<0
	FrameWPAY FrameID = 'W'<<24 | 'P'<<16 | 'A'<<8 | 'Y'<<0
	FrameWPUB FrameID = 'W'<<24 | 'P'<<16 | 'U'<<8 | 'B'<<0

	// user-defined url
	FrameWXXX FrameID = 'W'<<24 | 'X'<<16 | 'X'<<8 | 'X'<<0

	// language + description + text
	FrameCOMM FrameID = 'C'<<24 | 'O'<<16 | 'M'<<8 | 'M'<<0
	FrameUSLT FrameID = 'U'<<24 | 'S'<<16 | 'L'<<8 | 'T'<<0

	// user-defined text
	FrameTXXX FrameID = 'T'<<24 | 'X'<<16 | 'X'<<8 | 'X'<<0

	// private
	FramePRIV FrameID = 'P'<<24 | 'R'<<16 | 'I'<<8 | 'V'<<0

	// reverb
	FrameRVRB FrameID = 'R'<<24 | 'V'<<16 | 'R'<<8 | 'B'<<0
)
