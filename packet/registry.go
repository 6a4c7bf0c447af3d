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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

// Packet is a fully decoded, tagged wire message: which family it came
// from, its opcode within that family, and the family-specific payload
// value produced by whatever codec was registered for that opcode.
type Packet struct {
	Family  Family
	Opcode  uint8
	Payload any
}

var opcodeTagCodec = codec.Uint[uint8](8, bitio.LittleEndian)

// Registry is an explicit, mutable-at-startup map from opcode to payload
// codec for one packet family, the concrete form of "register once at
// startup" (spec.md §6/§9). It is built once per family and is safe to
// read from many goroutines afterward, the same lifecycle the codec
// layer gives every other codec value; Register itself is not
// goroutine-safe and is expected to run during process initialization,
// mirroring how the teacher's symbol table (ion/symtab.go) is built up
// before being shared read-only.
type Registry struct {
	family   Family
	branches map[uint8]codec.Codec[Packet]
	dispatch codec.Codec[Packet]
}

// NewRegistry creates an empty registry for one packet family.
func NewRegistry(family Family) *Registry {
	reg := &Registry{
		family:   family,
		branches: make(map[uint8]codec.Codec[Packet]),
	}
	reg.dispatch = codec.DiscriminatedBy(opcodeTagCodec, reg.branches,
		func(p Packet) (uint8, error) { return p.Opcode, nil },
		func(op uint8, offset int) error {
			return &UnknownOpcodeError{Family: reg.family, Opcode: op, Offset: offset}
		},
	)
	return reg
}

// Register adds a codec for opcode's payload. Duplicate registration of
// the same opcode is a fatal configuration error, not a recoverable
// decode-time one (spec.md §6).
func (reg *Registry) Register(opcode uint8, payload codec.Codec[any]) error {
	if _, exists := reg.branches[opcode]; exists {
		return &DuplicateOpcodeError{Family: reg.family, Opcode: opcode}
	}
	reg.branches[opcode] = codec.Codec[Packet]{
		Decode: func(r *bitio.Reader) (Packet, error) {
			v, err := payload.Decode(r)
			if err != nil {
				return Packet{}, err
			}
			return Packet{Family: reg.family, Opcode: opcode, Payload: v}, nil
		},
		Encode: func(w *bitio.Writer, v Packet) error {
			return payload.Encode(w, v.Payload)
		},
	}
	return nil
}

// Opcodes returns every registered opcode in ascending order, used by
// LoadCatalogue (and so by cmd/psdump's -catalogue check) to look up
// the opcodes a catalogue document expects.
func (reg *Registry) Opcodes() []uint8 {
	keys := maps.Keys(reg.branches)
	slices.Sort(keys)
	return keys
}

// Decode reads one opcode byte and dispatches to its registered codec.
// The opcode byte is left in place for the crypto/control/game family
// decision (resolveFamily); Decode consumes it as part of normal
// dispatch.
func (reg *Registry) Decode(r *bitio.Reader) (Packet, error) {
	return reg.dispatch.Decode(r)
}

// Encode dispatches to the codec registered for p.Opcode and writes the
// opcode byte followed by the payload.
func (reg *Registry) Encode(w *bitio.Writer, p Packet) error {
	return reg.dispatch.Encode(w, p)
}
