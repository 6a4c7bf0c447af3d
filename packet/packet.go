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

// Package packet implements packet framing and opcode dispatch on top of
// package proto: the flags header, the game/control/crypto family split,
// the opcode registries, and the object-creation constructor payloads.
package packet

import (
	"fmt"

	"github.com/psforever/psnet/bitio"
)

// Frame is a complete framed packet: the flags header plus the
// dispatched, family-tagged payload.
type Frame struct {
	Flags  Flags
	Packet Packet
}

func registryFor(family Family) (*Registry, error) {
	switch family {
	case FamilyGame:
		return GameOpcodes, nil
	case FamilyControl:
		return ControlOpcodes, nil
	case FamilyCrypto:
		return CryptoOpcodes, nil
	default:
		return nil, fmt.Errorf("packet: unknown family %v", family)
	}
}

// DecodePacket decodes one framed packet from buf: the flags header,
// the family dispatch rules of spec.md §4.4, and the matching family's
// registered opcode codec.
func DecodePacket(buf []byte) (Frame, error) {
	r := bitio.NewReader(buf)
	flags, err := FlagsCodec.Decode(r)
	if err != nil {
		return Frame{}, err
	}
	family, err := resolveFamily(r, flags.Type)
	if err != nil {
		return Frame{}, err
	}
	reg, err := registryFor(family)
	if err != nil {
		return Frame{}, err
	}
	pkt, err := reg.Decode(r)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Flags: flags, Packet: pkt}, nil
}

// EncodePacket reverses DecodePacket, producing bit-identical output for
// any frame that round-tripped through it.
func EncodePacket(f Frame) ([]byte, error) {
	w := bitio.NewWriter()
	if err := FlagsCodec.Encode(w, f.Flags); err != nil {
		return nil, err
	}
	reg, err := registryFor(f.Packet.Family)
	if err != nil {
		return nil, err
	}
	if err := reg.Encode(w, f.Packet); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
