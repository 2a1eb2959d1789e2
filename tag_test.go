package id3v2

import (
	"bytes"
	"reflect"
	"testing"
)

// synchsafeBytes encodes v as a 4-byte synchsafe integer for use in
// hand-built test fixtures.
func synchsafeBytes(v uint32) [4]byte {
	return encodeSynchsafe32(v)
}

// appendFrame appends one frame header plus body to buf.
func appendFrame(buf []byte, id string, flags uint16, body []byte) []byte {
	buf = append(buf, id...)
	size := synchsafeBytes(uint32(len(body)))
	buf = append(buf, size[:]...)
	buf = append(buf, byte(flags>>8), byte(flags))
	buf = append(buf, body...)
	return buf
}

// buildTag wraps frameBuf in a minimal ID3v2.4 header declaring its
// exact length, with no extended header.
func buildTag(frameBuf []byte) []byte {
	var buf []byte
	buf = append(buf, 'I', 'D', '3', 4, 0, 0)
	size := synchsafeBytes(uint32(len(frameBuf)))
	buf = append(buf, size[:]...)
	buf = append(buf, frameBuf...)
	return buf
}

func TestOpenMinimalTIT2UTF8(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "Song Title"...)
	frames := appendFrame(nil, "TIT2", 0, body)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	frame, ferr, ok := p.Next()
	if !ok {
		t.Fatalf("expected one frame")
	}
	if ferr != nil {
		t.Fatalf("unexpected frame error: %v", ferr)
	}
	if frame.ID != FrameTIT2 {
		t.Errorf("ID = %v, want TIT2", frame.ID)
	}
	want := TextFrame{Text: []string{"Song Title"}}
	if !reflect.DeepEqual(frame.Data, want) {
		t.Errorf("Data = %+v, want %+v", frame.Data, want)
	}

	if _, _, ok := p.Next(); ok {
		t.Errorf("expected stream to be exhausted after one frame")
	}
}

func TestOpenGenreCodeMapping(t *testing.T) {
	body := []byte{byte(EncodingISO88591), '1', '7', 0}
	frames := appendFrame(nil, "TCON", 0, body)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	want := GenreFrame{Genres: []string{"Rock"}}
	if !reflect.DeepEqual(frame.Data, want) {
		t.Errorf("Data = %+v, want %+v", frame.Data, want)
	}
}

func TestOpenTrackWithMax(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "3/12"...)
	frames := appendFrame(nil, "TRCK", 0, body)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	tf, ok := frame.Data.(TrackFrame)
	if !ok {
		t.Fatalf("Data is %T, want TrackFrame", frame.Data)
	}
	if tf.Number != 3 || tf.Max == nil || *tf.Max != 12 {
		t.Errorf("got %+v, want {Number: 3, Max: 12}", tf)
	}
}

func TestOpenDatePrecision(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "2021-06"...)
	frames := appendFrame(nil, "TDRC", 0, body)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	want := DateTextFrame{Dates: []Date{{Year: 2021, Month: u8(6)}}}
	if !reflect.DeepEqual(frame.Data, want) {
		t.Errorf("Data = %+v, want %+v", frame.Data, want)
	}
}

func TestOpenCommentUTF16WithBOM(t *testing.T) {
	// encoding=1, language "eng", then UTF-16LE (with BOM) "desc"\0\0"hello"\0\0
	var body []byte
	body = append(body, byte(EncodingUTF16))
	body = append(body, "eng"...)
	body = append(body, 0xff, 0xfe) // BOM for description
	body = append(body, utf16LE("desc")...)
	body = append(body, 0x00, 0x00)
	body = append(body, 0xff, 0xfe) // BOM for text
	body = append(body, utf16LE("hello")...)
	body = append(body, 0x00, 0x00)

	frames := appendFrame(nil, "COMM", 0, body)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	want := LangDescriptionTextFrame{
		Language:    "eng",
		Description: "desc",
		Text:        []string{"hello"},
	}
	if !reflect.DeepEqual(frame.Data, want) {
		t.Errorf("Data = %+v, want %+v", frame.Data, want)
	}
}

func TestOpenPaddingTerminatesStream(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "Title"...)
	frames := appendFrame(nil, "TIT2", 0, body)
	frames = append(frames, make([]byte, 16)...) // padding
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	if frame.ID != FrameTIT2 {
		t.Fatalf("ID = %v, want TIT2", frame.ID)
	}

	if _, _, ok := p.Next(); ok {
		t.Errorf("expected padding to terminate the stream")
	}
}

func TestOpenNoTag(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("not an id3 tag at all")))
	if err != ErrNoTag {
		t.Fatalf("got %v, want ErrNoTag", err)
	}
}

func TestOpenUnsupportedVersion(t *testing.T) {
	var buf []byte
	buf = append(buf, 'I', 'D', '3', 3, 0, 0, 0, 0, 0, 0)
	_, err := Open(bytes.NewReader(buf))
	var uv *UnsupportedVersionError
	if !asUnsupportedVersionError(err, &uv) || uv.Major != 3 {
		t.Fatalf("got %v, want UnsupportedVersionError{Major: 3}", err)
	}
}

func TestOpenFrameBufferTooLarge(t *testing.T) {
	var buf []byte
	buf = append(buf, 'I', 'D', '3', 4, 0, 0)
	size := synchsafeBytes(1000)
	buf = append(buf, size[:]...)

	_, err := Open(bytes.NewReader(buf), WithMaxFrameBuffer(10))
	if err != ErrFrameBufferTooLarge {
		t.Fatalf("got %v, want ErrFrameBufferTooLarge", err)
	}
}

func TestOpenExtendedHeaderWithCRCAndRestrictions(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "Song Title"...)
	frames := appendFrame(nil, "TIT2", 0, body)

	var eh []byte
	eh = append(eh, 0x01)          // number of flag bytes
	eh = append(eh, 0x30)          // CRC present + restrictions present
	eh = append(eh, 0, 0, 0, 0, 0) // 5-byte CRC
	eh = append(eh, 0x00)          // restrictions byte

	var buf []byte
	buf = append(buf, 'I', 'D', '3', 4, 0, tagFlagExtendedHeader)
	total := len(eh) + 4 + len(frames)
	size := synchsafeBytes(uint32(total))
	buf = append(buf, size[:]...)

	ehSize := synchsafeBytes(uint32(len(eh)))
	buf = append(buf, ehSize[:]...)
	buf = append(buf, eh...)
	buf = append(buf, frames...)

	p, err := Open(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	if frame.ID != FrameTIT2 {
		t.Errorf("ID = %v, want TIT2", frame.ID)
	}
}

func TestOpenZeroSizeFrameIsEmptyFrameError(t *testing.T) {
	frames := appendFrame(nil, "TIT2", 0, nil)
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	frame, ferr, ok := p.Next()
	if !ok {
		t.Fatalf("expected a frame emission even on error")
	}
	if frame.ID != FrameTIT2 {
		t.Errorf("ID = %v, want TIT2", frame.ID)
	}
	var fpe *FrameParseError
	if !asFrameParseError(ferr, &fpe) || fpe.Reason != ErrEmptyFrame {
		t.Fatalf("got %v, want FrameParseError{Reason: ErrEmptyFrame}", ferr)
	}
}

func TestOpenUnrecognizedIDDecodesAsUnknownFrame(t *testing.T) {
	frames := appendFrame(nil, "ZZZZ", 0, []byte{1, 2, 3})
	tag := buildTag(frames)

	p, err := Open(bytes.NewReader(tag))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	frame, ferr, ok := p.Next()
	if !ok || ferr != nil {
		t.Fatalf("Next: ok=%v err=%v", ok, ferr)
	}
	want := UnknownFrame{Data: []byte{1, 2, 3}}
	if !reflect.DeepEqual(frame.Data, want) {
		t.Errorf("Data = %+v, want %+v", frame.Data, want)
	}
}

// utf16LE encodes an ASCII string as little-endian UTF-16 code units,
// for building COMM/USLT/TXXX test fixtures.
func utf16LE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0x00)
	}
	return out
}

func asUnsupportedVersionError(err error, target **UnsupportedVersionError) bool {
	uv, ok := err.(*UnsupportedVersionError)
	if !ok {
		return false
	}
	*target = uv
	return true
}

func asFrameParseError(err error, target **FrameParseError) bool {
	fpe, ok := err.(*FrameParseError)
	if !ok {
		return false
	}
	*target = fpe
	return true
}
