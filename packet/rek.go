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
	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

// ClassREK is the object-creation class id for DetailedREKData (Remote
// Electronics Kit). Class ids in this catalogue are assigned by this
// registry, not by any external authority.
const ClassREK uint8 = 0x01

// DetailedREKData is the 67-bit Remote Electronics Kit constructor
// payload: two free fields (Unk1, Unk2) interleaved with five reserved
// constant sub-fields (8, 0, 2, 0, 8), every field little-endian.
// Altering any constant on the wire fails decode with ConstantMismatch.
type DetailedREKData struct {
	Unk1 uint8  // 4 bits
	Unk2 uint16 // 15 bits
}

var (
	rekUnk1     = codec.Uint[uint8](4, bitio.LittleEndian)
	rekConst8a  = codec.Constant(8, 4, "REK reserved (8)")
	rekConst0a  = codec.Constant(0, 20, "REK reserved (0, 20-bit)")
	rekConst2   = codec.Constant(2, 4, "REK reserved (2)")
	rekConst0b  = codec.Constant(0, 16, "REK reserved (0, 16-bit)")
	rekConst8b  = codec.Constant(8, 4, "REK reserved (8, trailing)")
	rekUnk2     = codec.Uint[uint16](15, bitio.LittleEndian)
	rekBitWidth = 4 + 4 + 20 + 4 + 16 + 4 + 15
)

// DetailedREKDataCodec is the concrete, exact-size (67 bit) codec for
// DetailedREKData, registered under ClassREK.
var DetailedREKDataCodec = codec.Codec[DetailedREKData]{
	Decode: func(r *bitio.Reader) (DetailedREKData, error) {
		var v DetailedREKData
		var err error
		if v.Unk1, err = rekUnk1.Decode(r); err != nil {
			return v, err
		}
		if _, err = rekConst8a.Decode(r); err != nil {
			return v, err
		}
		if _, err = rekConst0a.Decode(r); err != nil {
			return v, err
		}
		if _, err = rekConst2.Decode(r); err != nil {
			return v, err
		}
		if _, err = rekConst0b.Decode(r); err != nil {
			return v, err
		}
		if _, err = rekConst8b.Decode(r); err != nil {
			return v, err
		}
		if v.Unk2, err = rekUnk2.Decode(r); err != nil {
			return v, err
		}
		return v, nil
	},
	Encode: func(w *bitio.Writer, v DetailedREKData) error {
		if err := rekUnk1.Encode(w, v.Unk1); err != nil {
			return err
		}
		if err := rekConst8a.Encode(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConst0a.Encode(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConst2.Encode(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConst0b.Encode(w, struct{}{}); err != nil {
			return err
		}
		if err := rekConst8b.Encode(w, struct{}{}); err != nil {
			return err
		}
		return rekUnk2.Encode(w, v.Unk2)
	},
	Size: codec.ExactSize(rekBitWidth),
}

// rekAnyCodec boxes DetailedREKDataCodec for registration.
var rekAnyCodec = asAny(DetailedREKDataCodec)
