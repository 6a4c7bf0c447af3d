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

package proto

import (
	"fmt"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

// GUID is a wire-level object identifier: an opaque fixed-width unsigned
// integer scoped to a single zone/continent, not a UUID. The name
// follows the client's own terminology; it has nothing to do with
// RFC 4122 and is never backed by package uuid (see GUIDWidth for the
// field's bit width on the wire).
type GUID uint16

// GUIDWidth is the bit width of a GUID field as it appears packed into
// object-creation payloads.
const GUIDWidth = 16

func (g GUID) String() string {
	return fmt.Sprintf("GUID(%d)", uint16(g))
}

// GUIDCodec reads/writes a GUID at its native width, little-endian
// (matching every other multi-bit field in an object-creation payload).
var GUIDCodec = codec.Narrow(
	codec.Uint[uint16](GUIDWidth, bitio.LittleEndian),
	func(raw uint16) (GUID, error) { return GUID(raw), nil },
	func(g GUID) uint16 { return uint16(g) },
)
