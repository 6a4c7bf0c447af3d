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

package bitio

import "fmt"

// EndOfStreamError is returned when a read or skip needs more bits than
// remain in the stream.
type EndOfStreamError struct {
	Offset int // bit offset at which the read was attempted
	Wanted int
	Have   int
}

func (e *EndOfStreamError) Error() string {
	return fmt.Sprintf("bitio: end of stream at bit offset %d: wanted %d bits, have %d", e.Offset, e.Wanted, e.Have)
}

// ValueOutOfRangeError is returned by WriteUint when a value does not fit
// in its declared bit width.
type ValueOutOfRangeError struct {
	Value uint64
	Width int
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("bitio: value %d does not fit in %d bits", e.Value, e.Width)
}
