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

	"github.com/psforever/psnet/codec"
)

// asAny boxes a concretely-typed payload codec into the any-typed form
// Registry and ConstructorRegistry store, so every registered opcode or
// class can share one dispatch table regardless of its payload's Go
// type.
func asAny[T any](c codec.Codec[T]) codec.Codec[any] {
	return codec.Narrow(c,
		func(v T) (any, error) { return v, nil },
		func(v any) T {
			t, ok := v.(T)
			if !ok {
				panic(fmt.Sprintf("packet: expected payload of type %T, got %T", t, v))
			}
			return t
		},
	)
}
