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
)

// ConstructorRegistry maps an object-creation class id to the codec for
// its constructor payload. Every registered codec must declare an exact
// bit size (spec.md §3: "each constructor payload declares its own exact
// bit size"), since that size is what an outer ObjectCreateMessage uses
// to delimit the payload.
type ConstructorRegistry struct {
	classes map[uint8]codec.Codec[any]
}

// NewConstructorRegistry creates an empty constructor registry.
func NewConstructorRegistry() *ConstructorRegistry {
	return &ConstructorRegistry{classes: make(map[uint8]codec.Codec[any])}
}

// Register adds the constructor codec for classID. c.Size must be known
// and exact; this is a programmer error in the codec definition, not a
// runtime condition, so it panics rather than returning an error.
func (cr *ConstructorRegistry) Register(classID uint8, c codec.Codec[any]) error {
	if !c.Size.Known || !c.Size.Exact {
		panic(fmt.Sprintf("packet: constructor for class 0x%02x must declare an exact bit size", classID))
	}
	if _, exists := cr.classes[classID]; exists {
		return &DuplicateClassError{ClassID: classID}
	}
	cr.classes[classID] = c
	return nil
}

// Decode looks up classID's constructor and runs it, failing with
// SizeMismatchError if the caller's declaredBits disagrees with what the
// constructor actually declares, or UnknownClassError if classID has no
// registration.
func (cr *ConstructorRegistry) Decode(r *bitio.Reader, classID uint8, declaredBits int) (any, error) {
	c, ok := cr.classes[classID]
	if !ok {
		return nil, &UnknownClassError{ClassID: classID}
	}
	if c.Size.Min != declaredBits {
		return nil, &codec.SizeMismatchError{Offset: r.BitOffset(), Declared: declaredBits, Actual: c.Size.Min}
	}
	return c.Decode(r)
}

// SizeOf reports the exact declared bit size of classID's constructor,
// which an ObjectCreateMessage encoder needs up front to fill in the
// length field that precedes the payload on the wire.
func (cr *ConstructorRegistry) SizeOf(classID uint8) (int, bool) {
	c, ok := cr.classes[classID]
	if !ok {
		return 0, false
	}
	return c.Size.Min, true
}

// Encode looks up classID's constructor and writes payload with it,
// returning the exact bit size written (for the outer length field).
func (cr *ConstructorRegistry) Encode(w *bitio.Writer, classID uint8, payload any) (int, error) {
	c, ok := cr.classes[classID]
	if !ok {
		return 0, &UnknownClassError{ClassID: classID}
	}
	if err := c.Encode(w, payload); err != nil {
		return 0, err
	}
	return c.Size.Min, nil
}
