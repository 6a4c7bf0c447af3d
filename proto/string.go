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

import (
	"fmt"
	"unicode/utf16"

	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
)

// StringSizeCodec is the self-describing length prefix shared by every
// string codec in this package: a tag bit picks between a 7-bit short
// form (length 0..127) and a 15-bit long form (length 128..32767), both
// little-endian. Encode always picks the short form when it fits;
// decode accepts either without caring which was used.
var StringSizeCodec = codec.Either(
	codec.Bool,
	codec.Uint[uint32](15, bitio.LittleEndian),
	codec.Uint[uint32](7, bitio.LittleEndian),
	func(length uint32) bool { return length > 127 },
)

func decodeASCII(sub *bitio.Reader, n int) (string, error) {
	raw, err := sub.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

var asciiBytes = codec.Codec[string]{
	Decode: func(r *bitio.Reader) (string, error) {
		return decodeASCII(r, r.Remaining()/8)
	},
	Encode: func(w *bitio.Writer, v string) error {
		w.AppendBytes([]byte(v))
		return nil
	},
}

// ASCIIString decodes/encodes a length-prefixed, one-byte-per-character
// string: StringSizeCodec followed by exactly that many ASCII bytes.
var ASCIIString = codec.VariableSizeBytes(StringSizeCodec, asciiBytes,
	func(size uint32) int { return int(size) },
	func(nbytes int) uint32 { return uint32(nbytes) },
)

// AlignedASCIIString is ASCIIString with padBits zero bits inserted
// between the length prefix and the character data, re-aligning the
// stream to a byte boundary when the length prefix ended mid-byte.
// padBits must be in [0,7].
func AlignedASCIIString(padBits int) codec.Codec[string] {
	if padBits < 0 || padBits > 7 {
		panic(fmt.Sprintf("proto: pad bits %d out of range [0,7]", padBits))
	}
	pad := codec.Ignore(padBits)
	return codec.Codec[string]{
		Decode: func(r *bitio.Reader) (string, error) {
			size, err := StringSizeCodec.Decode(r)
			if err != nil {
				return "", err
			}
			if _, err := pad.Decode(r); err != nil {
				return "", err
			}
			sub, err := r.Sub(int(size) * 8)
			if err != nil {
				return "", err
			}
			return decodeASCII(sub, int(size))
		},
		Encode: func(w *bitio.Writer, v string) error {
			if err := StringSizeCodec.Encode(w, uint32(len(v))); err != nil {
				return err
			}
			if err := pad.Encode(w, struct{}{}); err != nil {
				return err
			}
			w.AppendBytes([]byte(v))
			return nil
		},
	}
}

// decodeWide reads n bytes as UTF-16LE code units and assembles them
// back into a Go string.
func decodeWide(sub *bitio.Reader, n int) (string, error) {
	raw, err := sub.ReadBytes(n)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n/2)
	for i := range units {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return string(utf16.Decode(units)), nil
}

func encodeWide(w *bitio.Writer, v string) {
	units := utf16.Encode([]rune(v))
	raw := make([]byte, len(units)*2)
	for i, u := range units {
		raw[2*i] = byte(u)
		raw[2*i+1] = byte(u >> 8)
	}
	w.AppendBytes(raw)
}

var wideBytes = codec.Codec[string]{
	Decode: func(r *bitio.Reader) (string, error) {
		return decodeWide(r, r.Remaining()/8)
	},
	Encode: func(w *bitio.Writer, v string) error {
		encodeWide(w, v)
		return nil
	},
}

// WideString decodes/encodes a length-prefixed UTF-16LE string. The
// wire length counts symbols (UTF-16 code units), while the underlying
// variable_size_bytes container works in bytes, so the two are related
// by a factor of two in both directions.
var WideString = codec.VariableSizeBytes(StringSizeCodec, wideBytes,
	func(size uint32) int { return int(size) * 2 },
	func(nbytes int) uint32 { return uint32(nbytes / 2) },
)

// AlignedWideString is WideString with padBits zero bits inserted
// between the length prefix and the character data, mirroring
// AlignedASCIIString.
func AlignedWideString(padBits int) codec.Codec[string] {
	if padBits < 0 || padBits > 7 {
		panic(fmt.Sprintf("proto: pad bits %d out of range [0,7]", padBits))
	}
	pad := codec.Ignore(padBits)
	return codec.Codec[string]{
		Decode: func(r *bitio.Reader) (string, error) {
			size, err := StringSizeCodec.Decode(r)
			if err != nil {
				return "", err
			}
			if _, err := pad.Decode(r); err != nil {
				return "", err
			}
			sub, err := r.Sub(int(size) * 2 * 8)
			if err != nil {
				return "", err
			}
			return decodeWide(sub, int(size)*2)
		},
		Encode: func(w *bitio.Writer, v string) error {
			units := utf16.Encode([]rune(v))
			if err := StringSizeCodec.Encode(w, uint32(len(units))); err != nil {
				return err
			}
			if err := pad.Encode(w, struct{}{}); err != nil {
				return err
			}
			encodeWide(w, v)
			return nil
		},
	}
}
