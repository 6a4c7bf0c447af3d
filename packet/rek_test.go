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

package packet

import (
	"errors"
	"testing"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

func TestDetailedREKDataRoundTrip(t *testing.T) {
	v := DetailedREKData{Unk1: 0xA, Unk2: 0x1234}
	w := bitio.NewWriter()
	if err := DetailedREKDataCodec.Encode(w, v); err != nil {
		t.Fatal(err)
	}
	if w.BitLen() != 67 {
		t.Fatalf("wrote %d bits, want 67", w.BitLen())
	}
	r := bitio.NewReader(w.Bytes())
	got, err := DetailedREKDataCodec.Decode(r)
	if err != nil || got != v {
		t.Fatalf("got (%+v, %v)", got, err)
	}
}

func TestDetailedREKDataConstantMismatch(t *testing.T) {
	v := DetailedREKData{Unk1: 0xA, Unk2: 0x1234}
	w := bitio.NewWriter()
	if err := DetailedREKDataCodec.Encode(w, v); err != nil {
		t.Fatal(err)
	}
	corrupt := append([]byte(nil), w.Bytes()...)
	corrupt[0] ^= 0x01 // flip a bit inside the first reserved-8 field

	r := bitio.NewReader(corrupt)
	_, err := DetailedREKDataCodec.Decode(r)
	var mismatch *codec.ConstantMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *ConstantMismatchError, got %v", err)
	}
}

func TestBoomerTriggerDataRoundTrip(t *testing.T) {
	v := BoomerTriggerData{DelayMillis: 2500}
	w := bitio.NewWriter()
	if err := BoomerTriggerDataCodec.Encode(w, v); err != nil {
		t.Fatal(err)
	}
	if w.BitLen() != 24 {
		t.Fatalf("wrote %d bits, want 24", w.BitLen())
	}
	r := bitio.NewReader(w.Bytes())
	got, err := BoomerTriggerDataCodec.Decode(r)
	if err != nil || got != v {
		t.Fatalf("got (%+v, %v)", got, err)
	}
}
