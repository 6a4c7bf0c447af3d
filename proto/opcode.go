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

import "fmt"

// GameOpcode, ControlOpcode and CryptoOpcode name the three disjoint
// opcode namespaces, one per packet family. Unlike Enum, these are not
// closed contiguous ranges: the catalogue of registered opcodes grows as
// packet's Registry.Register calls add to it, so dispatch goes
// through a registry lookup (package packet) rather than a bounded
// range check. An unregistered value is UnknownOpcode, a different
// error kind from EnumOutOfRangeError.
type GameOpcode uint8
type ControlOpcode uint8
type CryptoOpcode uint8

func (o GameOpcode) String() string    { return fmt.Sprintf("GameOpcode(0x%02X)", uint8(o)) }
func (o ControlOpcode) String() string { return fmt.Sprintf("ControlOpcode(0x%02X)", uint8(o)) }
func (o CryptoOpcode) String() string  { return fmt.Sprintf("CryptoOpcode(0x%02X)", uint8(o)) }

// Control-family opcodes named by this specification. ControlLogin and
// friends are left to the catalogue; 0x00 is singled out here because
// the flags dispatcher (package packet) treats it specially: within the
// non-crypto path, opcode byte 0x00 always means "control", any other
// byte means "game".
const ControlOpcodeHello ControlOpcode = 0x00
