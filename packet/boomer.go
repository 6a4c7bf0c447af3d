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

// ClassBoomerTrigger is the object-creation class id for
// BoomerTriggerData, a second constructor kept alongside DetailedREKData
// to prove the class-id dispatch mechanism generalizes beyond one
// worked example.
const ClassBoomerTrigger uint8 = 0x02

// BoomerTriggerData is a small constructor payload: a one-byte reserved
// constant followed by a 16-bit little-endian trigger delay, 24 bits
// total.
type BoomerTriggerData struct {
	DelayMillis uint16
}

var (
	boomerConstZero  = codec.Constant(0, 8, "Boomer reserved (0)")
	boomerDelay      = codec.Uint[uint16](16, bitio.LittleEndian)
	boomerBitWidth   = 8 + 16
)

// BoomerTriggerDataCodec is the exact-size (24 bit) codec for
// BoomerTriggerData, registered under ClassBoomerTrigger.
var BoomerTriggerDataCodec = codec.Codec[BoomerTriggerData]{
	Decode: func(r *bitio.Reader) (BoomerTriggerData, error) {
		var v BoomerTriggerData
		if _, err := boomerConstZero.Decode(r); err != nil {
			return v, err
		}
		delay, err := boomerDelay.Decode(r)
		if err != nil {
			return v, err
		}
		v.DelayMillis = delay
		return v, nil
	},
	Encode: func(w *bitio.Writer, v BoomerTriggerData) error {
		if err := boomerConstZero.Encode(w, struct{}{}); err != nil {
			return err
		}
		return boomerDelay.Encode(w, v.DelayMillis)
	},
	Size: codec.ExactSize(boomerBitWidth),
}

var boomerAnyCodec = asAny(BoomerTriggerDataCodec)
