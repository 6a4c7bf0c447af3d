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

import "github.com/psforever/psnet/bitio"

// Pair is a fixed-arity product of two independently-codec'd values, the
// idiomatic stand-in for the heterogeneous tuple a type-level sequencing
// combinator would produce (see Seq2).
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq2 sequences two codecs into a codec for their product. Decode runs
// left-to-right, threading the stream; encode concatenates. Wider
// sequences are built per-packet as plain structs decoded field-by-field
// (see package packet), rather than via deeper generic tuples: a
// hand-written product type reads better than Pair[Pair[A,B],C] nesting
// and carries the same information.
func Seq2[A, B any](ca Codec[A], cb Codec[B]) Codec[Pair[A, B]] {
	return Codec[Pair[A, B]]{
		Decode: func(r *bitio.Reader) (Pair[A, B], error) {
			a, err := ca.Decode(r)
			if err != nil {
				return Pair[A, B]{}, err
			}
			b, err := cb.Decode(r)
			if err != nil {
				return Pair[A, B]{}, err
			}
			return Pair[A, B]{First: a, Second: b}, nil
		},
		Encode: func(w *bitio.Writer, v Pair[A, B]) error {
			if err := ca.Encode(w, v.First); err != nil {
				return err
			}
			return cb.Encode(w, v.Second)
		},
		Size: addSize(ca.Size, cb.Size),
	}
}

// Narrow builds a codec for D from a codec for R given mutually inverse
// partial mappings: from may reject a decoded R (returning an error,
// typically *InvalidFormatError or a domain-specific error such as
// proto's EnumOutOfRangeError); to must be total over D.
func Narrow[R, D any](base Codec[R], from func(R) (D, error), to func(D) R) Codec[D] {
	return Codec[D]{
		Decode: func(r *bitio.Reader) (D, error) {
			raw, err := base.Decode(r)
			if err != nil {
				var zero D
				return zero, err
			}
			return from(raw)
		},
		Encode: func(w *bitio.Writer, v D) error {
			return base.Encode(w, to(v))
		},
		Size: base.Size,
	}
}

// Either is a tag-discriminated union of two codecs that share a single
// decoded Go type T: a false tag selects right, true selects left.
// isLeft reports, for an encodable value, which branch it belongs to, so
// Encode can emit the matching tag.
func Either[T any](tag Codec[bool], left, right Codec[T], isLeft func(T) bool) Codec[T] {
	return Codec[T]{
		Decode: func(r *bitio.Reader) (T, error) {
			var zero T
			selectLeft, err := tag.Decode(r)
			if err != nil {
				return zero, err
			}
			if selectLeft {
				return left.Decode(r)
			}
			return right.Decode(r)
		},
		Encode: func(w *bitio.Writer, v T) error {
			l := isLeft(v)
			if err := tag.Encode(w, l); err != nil {
				return err
			}
			if l {
				return left.Encode(w, v)
			}
			return right.Encode(w, v)
		},
		Size: branchSize(tag.Size, left.Size, right.Size),
	}
}

func branchSize(tag, left, right Size) Size {
	if !tag.Known || !left.Known || !right.Known {
		return Size{}
	}
	min, max := left.Min, left.Max
	if right.Min < min {
		min = right.Min
	}
	if right.Max > max {
		max = right.Max
	}
	return BoundedSize(tag.Min+min, tag.Max+max)
}

// VariableSizeBytes decodes a byte size with sizeCodec, then decodes
// inner constrained to exactly that many bytes of input; encoding
// buffers the inner encoding, measures its byte length, and prefixes the
// size. toBytes/fromBytes translate between the wire size and the
// physical byte count inner consumes, which are equal for a plain
// byte-oriented inner codec (ASCIIString) and differ by a factor of two
// for a symbol-counted one (WideString).
func VariableSizeBytes[T any](sizeCodec Codec[uint32], inner Codec[T], toBytes func(size uint32) int, fromBytes func(nbytes int) uint32) Codec[T] {
	return Codec[T]{
		Decode: func(r *bitio.Reader) (T, error) {
			var zero T
			size, err := sizeCodec.Decode(r)
			if err != nil {
				return zero, err
			}
			nbytes := toBytes(size)
			sub, err := r.Sub(nbytes * 8)
			if err != nil {
				return zero, err
			}
			return inner.Decode(sub)
		},
		Encode: func(w *bitio.Writer, v T) error {
			sub := bitio.NewWriter()
			if err := inner.Encode(sub, v); err != nil {
				return err
			}
			if sub.BitLen()%8 != 0 {
				return &SizeMismatchError{Offset: w.BitLen(), Declared: sub.BitLen(), Actual: sub.BitLen()}
			}
			nbytes := sub.BitLen() / 8
			size := fromBytes(nbytes)
			if err := sizeCodec.Encode(w, size); err != nil {
				return err
			}
			w.AppendBytes(sub.Bytes())
			return nil
		},
	}
}

// DiscriminatedBy decodes a tag with tagCodec, looks up a branch codec
// for that tag in branches, and runs it; the tag itself is not part of
// the decoded value. encodeTag recovers the tag to emit for an
// encodable value; unknown is called (and its error returned) when
// either side encounters a tag with no registered branch. This is the
// concrete form of the "explicit registry populated at startup" design
// note: the registry (see package packet) builds the branches map once,
// and DiscriminatedBy does the dispatching.
func DiscriminatedBy[Tag comparable, T any](tagCodec Codec[Tag], branches map[Tag]Codec[T], encodeTag func(T) (Tag, error), unknown func(tag Tag, offset int) error) Codec[T] {
	return Codec[T]{
		Decode: func(r *bitio.Reader) (T, error) {
			var zero T
			offset := r.BitOffset()
			tag, err := tagCodec.Decode(r)
			if err != nil {
				return zero, err
			}
			branch, ok := branches[tag]
			if !ok {
				return zero, unknown(tag, offset)
			}
			return branch.Decode(r)
		},
		Encode: func(w *bitio.Writer, v T) error {
			tag, err := encodeTag(v)
			if err != nil {
				return err
			}
			branch, ok := branches[tag]
			if !ok {
				return unknown(tag, w.BitLen())
			}
			if err := tagCodec.Encode(w, tag); err != nil {
				return err
			}
			return branch.Encode(w, v)
		},
	}
}
