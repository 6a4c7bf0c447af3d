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
	"fmt"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
	"github.com/psforever/psnet/proto"
)

// PacketType is the 4-bit enumeration at the head of every framed
// packet's flags byte.
type PacketType int

const (
	PacketTypeResetSequence PacketType = 1
	PacketTypeUnknown2      PacketType = 2
	PacketTypeCrypto        PacketType = 3
	PacketTypeNormal        PacketType = 4
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeResetSequence:
		return "ResetSequence"
	case PacketTypeUnknown2:
		return "Unknown2"
	case PacketTypeCrypto:
		return "Crypto"
	case PacketTypeNormal:
		return "Normal"
	default:
		return fmt.Sprintf("PacketType(%d)", int(t))
	}
}

var packetTypeEnum = proto.Enum[PacketType]{
	Name:    "PacketType",
	Width:   4,
	FirstID: 1,
	MaxID:   4,
	ToID:    func(t PacketType) int { return int(t) },
	FromID: func(id int) (PacketType, bool) {
		switch PacketType(id) {
		case PacketTypeResetSequence, PacketTypeUnknown2, PacketTypeCrypto, PacketTypeNormal:
			return PacketType(id), true
		default:
			return 0, false
		}
	},
}

var packetTypeCodec = packetTypeEnum.Codec()

// Flags is the 8-bit header present at the start of every framed packet:
// a 4-bit packet type, a reserved bit, the "secured" flag, and two
// constant bits ("advanced" = 1, "length specified" = 0). Secured is
// carried through unchanged by this layer; what it means is a concern of
// the encryption layer upstream, not of the codec.
type Flags struct {
	Type    PacketType
	Secured bool
}

// FlagsCodec decodes/encodes the flags byte. The two constant bits are
// verified on decode and always emitted on encode; a mismatch is
// ConstantMismatch at the bit offset of the offending bit, per spec
// scenario 8 (advanced bit cleared -> ConstantMismatch at offset 6).
var FlagsCodec = codec.Codec[Flags]{
	Decode: func(r *bitio.Reader) (Flags, error) {
		ptype, err := packetTypeCodec.Decode(r)
		if err != nil {
			return Flags{}, err
		}
		if _, err := codec.Ignore(1).Decode(r); err != nil { // reserved
			return Flags{}, err
		}
		secured, err := codec.Bool.Decode(r)
		if err != nil {
			return Flags{}, err
		}
		if _, err := advancedConstant.Decode(r); err != nil {
			return Flags{}, err
		}
		if _, err := lengthSpecifiedConstant.Decode(r); err != nil {
			return Flags{}, err
		}
		return Flags{Type: ptype, Secured: secured}, nil
	},
	Encode: func(w *bitio.Writer, v Flags) error {
		if err := packetTypeCodec.Encode(w, v.Type); err != nil {
			return err
		}
		if err := codec.Ignore(1).Encode(w, struct{}{}); err != nil {
			return err
		}
		if err := codec.Bool.Encode(w, v.Secured); err != nil {
			return err
		}
		if err := advancedConstant.Encode(w, struct{}{}); err != nil {
			return err
		}
		return lengthSpecifiedConstant.Encode(w, struct{}{})
	},
	Size: codec.ExactSize(8),
}

var (
	advancedConstant        = codec.Constant(1, 1, "advanced")
	lengthSpecifiedConstant = codec.Constant(0, 1, "length specified")
)
