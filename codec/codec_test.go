// Copyright (C) 2026 PSForever Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/psforever/psnet/bitio"
)

func TestConstantRoundTrip(t *testing.T) {
	c := Constant(0x1, 1, "advanced")
	w := bitio.NewWriter()
	if err := c.Encode(w, struct{}{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x80}) {
		t.Fatalf("got % 02x", w.Bytes())
	}
	r := bitio.NewReader(w.Bytes())
	if _, err := c.Decode(r); err != nil {
		t.Fatal(err)
	}
}

func TestConstantMismatch(t *testing.T) {
	c := Constant(0x1, 1, "advanced")
	r := bitio.NewReader([]byte{0x00})
	_, err := c.Decode(r)
	var mismatch *ConstantMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ConstantMismatchError, got %v", err)
	}
}

func TestSeq2RoundTrip(t *testing.T) {
	c := Seq2(Uint[uint32](4, bitio.BigEndian), Bool)
	w := bitio.NewWriter()
	v := Pair[uint32, bool]{First: 9, Second: true}
	if err := c.Encode(w, v); err != nil {
		t.Fatal(err)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := c.Decode(r)
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("got %+v, want %+v", got, v)
	}
	if c.Size.Min != 5 {
		t.Fatalf("combined size = %d, want 5", c.Size.Min)
	}
}

// evenNumberCodec narrows a uint8 codec down to the even numbers only, a
// minimal stand-in for the kind of domain predicate Narrow is meant for.
func evenNumberCodec() Codec[uint8] {
	base := Uint[uint8](8, bitio.BigEndian)
	return Narrow(base,
		func(raw uint8) (uint8, error) {
			if raw%2 != 0 {
				return 0, &InvalidFormatError{Reason: fmt.Sprintf("%d is not even", raw)}
			}
			return raw, nil
		},
		func(v uint8) uint8 { return v },
	)
}

func TestNarrowRejectsInvalid(t *testing.T) {
	c := evenNumberCodec()
	r := bitio.NewReader([]byte{0x03})
	if _, err := c.Decode(r); err == nil {
		t.Fatal("expected an error decoding an odd number")
	}
	r = bitio.NewReader([]byte{0x04})
	v, err := c.Decode(r)
	if err != nil || v != 4 {
		t.Fatalf("got (%v, %v), want (4, nil)", v, err)
	}
}

func TestEitherSelectsBranchByTag(t *testing.T) {
	short := Uint[uint32](7, bitio.LittleEndian)
	long := Uint[uint32](15, bitio.LittleEndian)
	either := Either(Bool, long, short, func(v uint32) bool { return v > 127 })

	for _, v := range []uint32{5, 127, 128, 32767} {
		w := bitio.NewWriter()
		if err := either.Encode(w, v); err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		r := bitio.NewReader(w.Bytes())
		got, err := either.Decode(r)
		if err != nil || got != v {
			t.Fatalf("value %d: got (%v, %v)", v, got, err)
		}
		wantBits := 8
		if v > 127 {
			wantBits = 16
		}
		if w.BitLen() != wantBits {
			t.Errorf("value %d: encoded %d bits, want %d", v, w.BitLen(), wantBits)
		}
	}
}

func TestVariableSizeBytesRoundTrip(t *testing.T) {
	sizeCodec := Uint[uint32](8, bitio.BigEndian)
	bytesCodec := Codec[[]byte]{
		Decode: func(r *bitio.Reader) ([]byte, error) {
			n := r.Remaining() / 8
			buf := make([]byte, n)
			for i := range buf {
				v, err := bitio.ReadUint[uint32](r, 8, bitio.BigEndian)
				if err != nil {
					return nil, err
				}
				buf[i] = byte(v)
			}
			return buf, nil
		},
		Encode: func(w *bitio.Writer, v []byte) error {
			for _, b := range v {
				if err := bitio.WriteUint(w, uint32(b), 8, bitio.BigEndian); err != nil {
					return err
				}
			}
			return nil
		},
	}
	vsb := VariableSizeBytes(sizeCodec, bytesCodec,
		func(size uint32) int { return int(size) },
		func(nbytes int) uint32 { return uint32(nbytes) },
	)
	w := bitio.NewWriter()
	payload := []byte("Hello")
	if err := vsb.Encode(w, payload); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 'H', 'e', 'l', 'l', 'o'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got % x, want % x", w.Bytes(), want)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := vsb.Decode(r)
	if err != nil || !bytes.Equal(got, payload) {
		t.Fatalf("got (%q, %v)", got, err)
	}
}

func TestIgnoreSkipsAndEmitsZeros(t *testing.T) {
	c := Ignore(3)
	w := bitio.NewWriter()
	if err := c.Encode(w, struct{}{}); err != nil {
		t.Fatal(err)
	}
	if w.BitLen() != 3 {
		t.Fatalf("wrote %d bits, want 3", w.BitLen())
	}
	r := bitio.NewReader([]byte{0xFF})
	if _, err := c.Decode(r); err != nil {
		t.Fatal(err)
	}
	if r.BitOffset() != 3 {
		t.Fatalf("consumed %d bits, want 3", r.BitOffset())
	}
}

func TestDiscriminatedByDispatchesAndRejectsUnknown(t *testing.T) {
	type msg struct {
		kind uint8
		body uint32
	}
	tagCodec := Uint[uint8](8, bitio.BigEndian)
	branches := map[uint8]Codec[msg]{
		1: {
			Decode: func(r *bitio.Reader) (msg, error) {
				v, err := bitio.ReadUint[uint32](r, 16, bitio.BigEndian)
				return msg{kind: 1, body: v}, err
			},
			Encode: func(w *bitio.Writer, v msg) error {
				return bitio.WriteUint(w, v.body, 16, bitio.BigEndian)
			},
		},
	}
	unknownErr := errors.New("unknown tag")
	c := DiscriminatedBy(tagCodec, branches,
		func(v msg) (uint8, error) { return v.kind, nil },
		func(tag uint8, offset int) error { return unknownErr },
	)

	w := bitio.NewWriter()
	if err := c.Encode(w, msg{kind: 1, body: 0xBEEF}); err != nil {
		t.Fatal(err)
	}
	r := bitio.NewReader(w.Bytes())
	got, err := c.Decode(r)
	if err != nil || got.body != 0xBEEF {
		t.Fatalf("got (%+v, %v)", got, err)
	}

	r = bitio.NewReader([]byte{0x02, 0x00, 0x00})
	if _, err := c.Decode(r); !errors.Is(err, unknownErr) {
		t.Fatalf("expected unknownErr, got %v", err)
	}
}
