package w2apb

import (
	"bytes"
	"testing"
)

func TestRequestWireLayout(t *testing.T) {
	got, err := Codec{}.Marshal(&GetAnimalRequest{Text: "moo"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// field 1, wire type 2 (len-delimited), then "moo"
	want := []byte{0x0a, 0x03, 'm', 'o', 'o'}
	if !bytes.Equal(got, want) {
		t.Fatalf("wire bytes = %x, want %x", got, want)
	}
}

func TestResponseWireLayout(t *testing.T) {
	got, err := Codec{}.Marshal(&GetAnimalResponse{Animal: "cow", Confidence: 0.75})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// field 1 "cow", then field 2 as little-endian fixed32 of float32(0.75)
	want := []byte{0x0a, 0x03, 'c', 'o', 'w', 0x15, 0x00, 0x00, 0x40, 0x3f}
	if !bytes.Equal(got, want) {
		t.Fatalf("wire bytes = %x, want %x", got, want)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	in := &GetAnimalResponse{Animal: "duck", Confidence: 0.5}
	b, err := Codec{}.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out GetAnimalResponse
	if err := (Codec{}).Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != *in {
		t.Fatalf("round trip = %+v, want %+v", out, *in)
	}
}

func TestZeroValuesOmitted(t *testing.T) {
	b, err := Codec{}.Marshal(&GetAnimalResponse{Animal: "bird"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Zero confidence must not be encoded (proto3 semantics: absent == 0).
	want := []byte{0x0a, 0x04, 'b', 'i', 'r', 'd'}
	if !bytes.Equal(b, want) {
		t.Fatalf("wire bytes = %x, want %x", b, want)
	}
	var empty GetAnimalRequest
	if b, _ := (Codec{}).Marshal(&empty); len(b) != 0 {
		t.Fatalf("empty request encoded to %x, want no bytes", b)
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	// Response with an extra varint field 9 a newer server might send.
	b := []byte{0x0a, 0x03, 'c', 'a', 't', 0x48, 0x01}
	var out GetAnimalResponse
	if err := (Codec{}).Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Animal != "cat" || out.Confidence != 0 {
		t.Fatalf("decoded %+v", out)
	}
}

func TestTruncatedInputRejected(t *testing.T) {
	// Length prefix claims 5 bytes but only 2 follow.
	b := []byte{0x0a, 0x05, 'c', 'o'}
	var out GetAnimalRequest
	if err := (Codec{}).Unmarshal(b, &out); err == nil {
		t.Fatal("expected parse error for truncated input")
	}
}

func TestCodecRejectsForeignTypes(t *testing.T) {
	if _, err := (Codec{}).Marshal("not a message"); err == nil {
		t.Fatal("expected marshal error for foreign type")
	}
	if err := (Codec{}).Unmarshal(nil, &struct{}{}); err == nil {
		t.Fatal("expected unmarshal error for foreign type")
	}
}
