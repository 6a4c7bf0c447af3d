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

import "github.com/psforever/psnet/bitio"

// Family is one of the three disjoint top-level packet namespaces.
type Family int

const (
	FamilyGame Family = iota + 1
	FamilyControl
	FamilyCrypto
)

func (f Family) String() string {
	switch f {
	case FamilyGame:
		return "game"
	case FamilyControl:
		return "control"
	case FamilyCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// controlOpcodeByte is the single opcode value, within the non-crypto
// path, that selects the control family rather than the game family.
const controlOpcodeByte = 0x00

// resolveFamily applies the dispatch rules following the flags header:
// Crypto packet types always resolve to the crypto family; the other
// three types resolve to either control (opcode byte 0x00) or game (any
// other opcode byte), decided by peeking the opcode byte without
// consuming it. The caller's dispatcher consumes the opcode itself.
func resolveFamily(r *bitio.Reader, ptype PacketType) (Family, error) {
	if ptype == PacketTypeCrypto {
		return FamilyCrypto, nil
	}
	op, err := bitio.PeekUint[uint8](r, 8, bitio.LittleEndian)
	if err != nil {
		return 0, err
	}
	if op == controlOpcodeByte {
		return FamilyControl, nil
	}
	return FamilyGame, nil
}
