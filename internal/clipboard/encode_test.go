package clipboard

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestEncodeAppendsTerminator(t *testing.T) {
	buf := Encode("ab")
	if want := []uint16{'a', 'b', 0}; !reflect.DeepEqual(buf.Units(), want) {
		t.Fatalf("Units() = %v, want %v", buf.Units(), want)
	}
	if buf.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", buf.Len())
	}

	empty := Encode("")
	if want := []uint16{0}; !reflect.DeepEqual(empty.Units(), want) {
		t.Fatalf("Units() = %v, want %v", empty.Units(), want)
	}
}

func TestEncodeSurrogatePairs(t *testing.T) {
	// U+1D504 MATHEMATICAL FRAKTUR CAPITAL A
	buf := Encode("\U0001D504")
	if want := []uint16{0xD835, 0xDD04, 0}; !reflect.DeepEqual(buf.Units(), want) {
		t.Fatalf("Units() = %#v, want %#v", buf.Units(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"abcdef",
		"Hello, World!",
		"ｆｕｌｌ　ｗｉｄｔｈ",
		"𝔉𝔯𝔞𝔨𝔱𝔲𝔯 ℭℌℑℜℨ",
		"ꜱᴍᴀʟʟ ᴄᴀᴘꜱ 𝘅",
		"line one\r\nline two",
		"\u2002en space",
	}
	for _, s := range tests {
		if got := Decode(Encode(s).Units()); got != s {
			t.Errorf("Decode(Encode(%q)) = %q", s, got)
		}
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	got := Decode(Encode("a\xffb").Units())
	if got != "a�b" {
		t.Fatalf("got %q, want replacement character", got)
	}
}

func TestDecodeStopsAtTerminator(t *testing.T) {
	if got := Decode([]uint16{'h', 'i', 0, 'x'}); got != "hi" {
		t.Fatalf("Decode() = %q, want %q", got, "hi")
	}
	if got := Decode([]uint16{'n', 'o', 'n', 'u', 'l'}); got != "nonul" {
		t.Fatalf("Decode() without terminator = %q", got)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if got := Decode(nil); got != "" {
		t.Fatalf("Decode(nil) = %q", got)
	}
	if got := Decode([]uint16{}); got != "" {
		t.Fatalf("Decode(empty) = %q", got)
	}
	if got := Decode([]uint16{0}); got != "" {
		t.Fatalf("Decode(terminator only) = %q", got)
	}
}

func TestDecodeLoneSurrogate(t *testing.T) {
	got := Decode([]uint16{'a', 0xD835, 'b', 0})
	if !utf8.ValidString(got) {
		t.Fatalf("Decode produced invalid UTF-8: %q", got)
	}
	if got != "a�b" {
		t.Fatalf("Decode() = %q, want %q", got, "a�b")
	}
}

func TestReleaseAndHandoff(t *testing.T) {
	released := Encode("abc")
	units := released.Units()
	released.Release()
	if released.Owned() || released.HandedOff() {
		t.Fatal("released buffer should be neither owned nor handed off")
	}
	if released.Units() != nil || released.Len() != 0 {
		t.Fatal("released buffer should expose no units")
	}
	for _, u := range units {
		if u != 0 {
			t.Fatalf("released memory not cleared: %v", units)
		}
	}

	handed := Encode("abc")
	units = handed.Units()
	handed.Handoff()
	handed.Release()
	if !handed.HandedOff() {
		t.Fatal("Release after Handoff must not change ownership")
	}
	if got := Decode(units); got != "abc" {
		t.Fatalf("handed off memory was modified: %q", got)
	}
}
