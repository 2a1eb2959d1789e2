package id3v2

import (
	"bytes"
	"reflect"
	"testing"
)

func TestDecodeURLBody(t *testing.T) {
	cases := []struct {
		name string
		body []byte
		want string
	}{
		{"plain", []byte("http://example.com"), "http://example.com"},
		{"trailing null stripped", []byte("http://example.com\x00"), "http://example.com"},
		{"empty", []byte{}, ""},
		{"only null", []byte{0x00}, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := decodeURLBody(c.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("decodeURLBody(%q) = %q, want %q", c.body, got, c.want)
			}
		})
	}
}

func TestDecodeFrameBodyURLFrame(t *testing.T) {
	data, err := decodeFrameBody(FrameWOAF, []byte("http://example.com/song\x00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := URLFrame{URL: "http://example.com/song"}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeUserURLFrame(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "store\x00http://example.com/buy"...)
	data, err := decodeFrameBody(FrameWXXX, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := UserURLFrame{Description: "store", URL: "http://example.com/buy"}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeUserURLFrameMissingTerminator(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "no terminator"...)
	_, err := decodeFrameBody(FrameWXXX, body)
	if err != ErrMissingNullTerminator {
		t.Fatalf("got %v, want ErrMissingNullTerminator", err)
	}
}

func TestDecodeUserTextFrame(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "replaygain_track_gain\x00-6.1 dB"...)
	data, err := decodeFrameBody(FrameTXXX, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := UserTextFrame{Description: "replaygain_track_gain", Text: []string{"-6.1 dB"}}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeUserTextFrameTooSmall(t *testing.T) {
	_, err := decodeFrameBody(FrameTXXX, []byte{byte(EncodingUTF8)})
	if err != ErrFrameTooSmall {
		t.Fatalf("got %v, want ErrFrameTooSmall", err)
	}
}

func TestDecodeLyricsFrame(t *testing.T) {
	var body []byte
	body = append(body, byte(EncodingUTF8))
	body = append(body, "deu"...)
	body = append(body, "\x00Erste Zeile\nZweite Zeile"...)

	data, err := decodeFrameBody(FrameUSLT, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := LangDescriptionTextFrame{
		Language:    "deu",
		Description: "",
		Text:        []string{"Erste Zeile\nZweite Zeile"},
	}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeCommentTooSmall(t *testing.T) {
	_, err := decodeFrameBody(FrameCOMM, []byte{byte(EncodingUTF8), 'e', 'n'})
	if err != ErrFrameTooSmall {
		t.Fatalf("got %v, want ErrFrameTooSmall", err)
	}
}

func TestDecodePrivateFrame(t *testing.T) {
	body := append([]byte("com.example.app\x00"), 0xde, 0xad, 0xbe, 0xef)
	data, err := decodeFrameBody(FramePRIV, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	priv, ok := data.(PrivateFrame)
	if !ok {
		t.Fatalf("got %T, want PrivateFrame", data)
	}
	if priv.Owner != "com.example.app" {
		t.Errorf("Owner = %q, want %q", priv.Owner, "com.example.app")
	}
	if !bytes.Equal(priv.Data, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("Data = %v, want de ad be ef", priv.Data)
	}
}

func TestDecodePrivateFrameMissingTerminator(t *testing.T) {
	_, err := decodeFrameBody(FramePRIV, []byte("com.example.app"))
	if err != ErrMissingNullTerminator {
		t.Fatalf("got %v, want ErrMissingNullTerminator", err)
	}
}

func TestDecodeNumericTextFrame(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "128"...)
	data, err := decodeFrameBody(FrameTBPM, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NumericTextFrame{Values: []uint64{128}}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeNumericTextFrameNonNumeric(t *testing.T) {
	body := append([]byte{byte(EncodingUTF8)}, "fast"...)
	if _, err := decodeFrameBody(FrameTBPM, body); err == nil {
		t.Fatal("expected an error for a non-numeric TBPM value")
	}
}

func TestDecodeCopyrightFrame(t *testing.T) {
	body := append([]byte{byte(EncodingISO88591)}, "2021 Example Records"...)
	data, err := decodeFrameBody(FrameTCOP, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := CopyrightFrame{Copyright: Copyright{Year: "2021", Message: "Example Records"}}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

func TestDecodeReverbFrame(t *testing.T) {
	body := []byte{0x00, 0x10, 0x00, 0x20, 1, 2, 3, 4, 5, 6, 7, 8}
	data, err := decodeFrameBody(FrameRVRB, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rv, ok := data.(ReverbFrame)
	if !ok {
		t.Fatalf("got %T, want ReverbFrame", data)
	}
	if rv.ReverbLeftMs != 0x10 || rv.ReverbRightMs != 0x20 {
		t.Errorf("got %+v, want ReverbLeftMs=0x10 ReverbRightMs=0x20", rv.Reverb)
	}
}

func TestDecodePeopleMapFrameMultiEncoding(t *testing.T) {
	// UTF-16BE key/value pairs with two-byte terminators.
	var payload []byte
	payload = append(payload, utf16BE("producer")...)
	payload = append(payload, 0x00, 0x00)
	payload = append(payload, utf16BE("Jane Doe")...)
	payload = append(payload, 0x00, 0x00)

	body := append([]byte{byte(EncodingUTF16BE)}, payload...)
	data, err := decodeFrameBody(FrameTIPL, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := PeopleMapFrame{Entries: []PeopleEntry{{Key: "producer", Value: "Jane Doe"}}}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("got %+v, want %+v", data, want)
	}
}

// utf16BE encodes an ASCII string as big-endian UTF-16 code units.
func utf16BE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, 0x00, byte(r))
	}
	return out
}
