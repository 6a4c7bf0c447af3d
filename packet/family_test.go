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
	"testing"

	"github.com/psforever/psnet/bitio"
)

func TestResolveFamilyCryptoNeverPeeksOpcode(t *testing.T) {
	r := bitio.NewReader(nil) // no bytes at all: a peek would fail EndOfStream
	family, err := resolveFamily(r, PacketTypeCrypto)
	if err != nil {
		t.Fatal(err)
	}
	if family != FamilyCrypto {
		t.Fatalf("got %v, want crypto", family)
	}
}

func TestResolveFamilyControlOpcodeZero(t *testing.T) {
	r := bitio.NewReader([]byte{0x00, 0xFF})
	family, err := resolveFamily(r, PacketTypeNormal)
	if err != nil {
		t.Fatal(err)
	}
	if family != FamilyControl {
		t.Fatalf("got %v, want control", family)
	}
	if r.BitOffset() != 0 {
		t.Fatalf("resolveFamily must not consume the opcode byte, offset = %d", r.BitOffset())
	}
}

func TestResolveFamilyGameForAnyOtherOpcode(t *testing.T) {
	for _, ptype := range []PacketType{PacketTypeNormal, PacketTypeResetSequence, PacketTypeUnknown2} {
		r := bitio.NewReader([]byte{0x11})
		family, err := resolveFamily(r, ptype)
		if err != nil {
			t.Fatal(err)
		}
		if family != FamilyGame {
			t.Fatalf("ptype %v: got %v, want game", ptype, family)
		}
	}
}

func TestFamilyString(t *testing.T) {
	cases := map[Family]string{FamilyGame: "game", FamilyControl: "control", FamilyCrypto: "crypto"}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Fatalf("%d: got %q, want %q", f, got, want)
		}
	}
}
