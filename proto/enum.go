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

// Package proto implements the protocol atoms built on top of package
// codec: bounded enumerations, length-prefixed strings (ASCII and wide),
// and GUIDs. Nothing here knows about packet framing or opcode dispatch;
// those live in package packet.
package proto

import (
	"fmt"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

// EnumOutOfRangeError is returned when a decoded integer does not map to
// any enumerator of the named enumeration.
type EnumOutOfRangeError struct {
	Name    string
	FirstID int
	MaxID   int
	Got     int
}

func (e *EnumOutOfRangeError) Error() string {
	return fmt.Sprintf("proto: expected %s with ID between [%d, %d], but got %d", e.Name, e.FirstID, e.MaxID, e.Got)
}

// Enum describes a closed, contiguous-range wire enumeration: a base
// width-bit integer whose valid values span [FirstID, MaxID]. Codec
// panics at construction if MaxID does not fit in Width bits, per the
// invariant in spec §3 ("Enumerations as wire values").
type Enum[T any] struct {
	Name    string
	Width   int
	Endian  bitio.Endian
	FirstID int
	MaxID   int
	ToID    func(T) int
	FromID  func(int) (T, bool)
}

// Codec builds the Codec[T] for this enumeration.
func (e Enum[T]) Codec() codec.Codec[T] {
	if e.Width < 32 {
		limit := (1 << uint(e.Width)) - 1
		if e.MaxID > limit {
			panic(fmt.Sprintf("proto: enum %s: maxId %d does not fit in %d bits", e.Name, e.MaxID, e.Width))
		}
	}
	base := codec.Uint[uint32](e.Width, e.Endian)
	return codec.Narrow(base,
		func(raw uint32) (T, error) {
			id := int(raw)
			if id < e.FirstID || id > e.MaxID {
				var zero T
				return zero, &EnumOutOfRangeError{Name: e.Name, FirstID: e.FirstID, MaxID: e.MaxID, Got: id}
			}
			v, ok := e.FromID(id)
			if !ok {
				var zero T
				return zero, &EnumOutOfRangeError{Name: e.Name, FirstID: e.FirstID, MaxID: e.MaxID, Got: id}
			}
			return v, nil
		},
		func(v T) uint32 { return uint32(e.ToID(v)) },
	)
}
