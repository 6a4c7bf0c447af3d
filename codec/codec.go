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

// Package codec implements the composable decoder/encoder layer on top
// of package bitio: fixed-width primitives, sequencing, narrowing,
// either-tagged unions, size-prefixed containers, padding, and
// discriminated dispatch. Every combinator returns a Codec[T] value;
// values of this type are immutable and safe to share across goroutines
// once built, since building one does no I/O.
package codec

import (
	"golang.org/x/exp/constraints"

	"github.com/psforever/psnet/bitio"
)

// Size describes how many bits a Codec consumes. Known is false for
// codecs that declare no bound (e.g. VariableSizeBytes, DiscriminatedBy);
// Exact is true when Min == Max, and false for a bounded range such as
// Either joining branches of different width.
type Size struct {
	Known bool
	Exact bool
	Min   int
	Max   int
}

// ExactSize returns a Size for a codec that always consumes exactly
// bits.
func ExactSize(bits int) Size {
	return Size{Known: true, Exact: true, Min: bits, Max: bits}
}

// BoundedSize returns a Size for a codec whose consumption varies
// between min and max bits.
func BoundedSize(min, max int) Size {
	return Size{Known: true, Exact: min == max, Min: min, Max: max}
}

func addSize(a, b Size) Size {
	if !a.Known || !b.Known {
		return Size{}
	}
	return Size{Known: true, Exact: a.Exact && b.Exact, Min: a.Min + b.Min, Max: a.Max + b.Max}
}

// Codec pairs a decoder and an encoder for values of type T, plus an
// optional declared Size. It is the unit of composition for the whole
// layer: every combinator in this package takes one or more Codec values
// and returns a new one.
type Codec[T any] struct {
	Decode func(r *bitio.Reader) (T, error)
	Encode func(w *bitio.Writer, v T) error
	Size   Size
}

// Uint returns a codec for a width-bit unsigned integer using the given
// byte order.
func Uint[T constraints.Unsigned](width int, endian bitio.Endian) Codec[T] {
	return Codec[T]{
		Decode: func(r *bitio.Reader) (T, error) {
			return bitio.ReadUint[T](r, width, endian)
		},
		Encode: func(w *bitio.Writer, v T) error {
			return bitio.WriteUint(w, v, width, endian)
		},
		Size: ExactSize(width),
	}
}

// Bool is a codec for a single bit.
var Bool = Codec[bool]{
	Decode: func(r *bitio.Reader) (bool, error) { return r.ReadBool() },
	Encode: func(w *bitio.Writer, v bool) error { w.WriteBool(v); return nil },
	Size:   ExactSize(1),
}

// Constant is a zero-information codec over a reserved or "magic"
// bit pattern: decode verifies the stream holds exactly pattern (as a
// width-bit big-endian value) and fails with ConstantMismatchError
// otherwise; encode always emits pattern. name is used only to make the
// mismatch error readable.
func Constant(pattern uint64, width int, name string) Codec[struct{}] {
	return Codec[struct{}]{
		Decode: func(r *bitio.Reader) (struct{}, error) {
			offset := r.BitOffset()
			got, err := bitio.ReadUint[uint64](r, width, bitio.BigEndian)
			if err != nil {
				return struct{}{}, err
			}
			if got != pattern {
				return struct{}{}, &ConstantMismatchError{Offset: offset, Name: name, Want: pattern, Got: got}
			}
			return struct{}{}, nil
		},
		Encode: func(w *bitio.Writer, _ struct{}) error {
			w.WriteBits(pattern, width)
			return nil
		},
		Size: ExactSize(width),
	}
}

// Ignore is a padding codec: decode skips n bits, encode emits n zero
// bits. Used for reserved regions and for the pad-bits parameter of
// aligned string variants.
func Ignore(n int) Codec[struct{}] {
	return Codec[struct{}]{
		Decode: func(r *bitio.Reader) (struct{}, error) {
			return struct{}{}, r.Skip(n)
		},
		Encode: func(w *bitio.Writer, _ struct{}) error {
			w.WriteBits(0, n)
			return nil
		},
		Size: ExactSize(n),
	}
}
