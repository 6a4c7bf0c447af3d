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

import "fmt"

// ConstantMismatchError is returned when a reserved or "magic" field
// does not hold its expected value.
type ConstantMismatchError struct {
	Offset int
	Name   string
	Want   uint64
	Got    uint64
}

func (e *ConstantMismatchError) Error() string {
	return fmt.Sprintf("codec: constant mismatch at bit offset %d: %s wanted %#x, got %#x", e.Offset, e.Name, e.Want, e.Got)
}

// SizeMismatchError is returned when a size-prefixed region's declared
// size disagrees with what its inner codec actually consumed or
// produced.
type SizeMismatchError struct {
	Offset   int
	Declared int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("codec: size mismatch at bit offset %d: declared %d bits, inner codec used %d", e.Offset, e.Declared, e.Actual)
}

// InvalidFormatError is the catch-all for a domain-level predicate
// rejecting an otherwise well-formed value, as produced by Narrow's
// from function.
type InvalidFormatError struct {
	Offset int
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("codec: invalid format at bit offset %d: %s", e.Offset, e.Reason)
}
