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

import "fmt"

// UnknownOpcodeError is returned by a family dispatcher when no codec is
// registered for the observed opcode.
type UnknownOpcodeError struct {
	Family Family
	Opcode uint8
	Offset int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("packet: unknown %s opcode 0x%02x at offset %d", e.Family, e.Opcode, e.Offset)
}

// DuplicateOpcodeError is returned by Registry.Register when an opcode
// already has a codec registered in that family; registration is a
// startup-time operation and a duplicate is a fatal configuration error,
// not a recoverable decode-time one.
type DuplicateOpcodeError struct {
	Family Family
	Opcode uint8
}

func (e *DuplicateOpcodeError) Error() string {
	return fmt.Sprintf("packet: opcode 0x%02x already registered for family %s", e.Opcode, e.Family)
}

// DuplicateClassError is returned by ConstructorRegistry.Register when an
// object-creation class id is registered twice.
type DuplicateClassError struct {
	ClassID uint8
}

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("packet: object-creation class 0x%02x already registered", e.ClassID)
}

// UnknownClassError is returned when an object-creation payload names a
// class id with no registered constructor.
type UnknownClassError struct {
	ClassID uint8
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("packet: unknown object-creation class 0x%02x", e.ClassID)
}
