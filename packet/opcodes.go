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
	"github.com/psforever/psnet/bitio"
	"github.com/psforever/psnet/codec"
	"github.com/psforever/psnet/proto"
)

// GameOpcodes, ControlOpcodes and CryptoOpcodes are the process-wide,
// populated-once-at-startup dispatch tables for their respective
// families. cmd/psdump and DecodePacket/EncodePacket use these three,
// rather than constructing private registries, so a single catalogue is
// shared across every entry point in the process (spec.md §5: "no global
// mutable state beyond the immutable codec registry").
var (
	GameOpcodes    = NewRegistry(FamilyGame)
	ControlOpcodes = NewRegistry(FamilyControl)
	CryptoOpcodes  = NewRegistry(FamilyCrypto)
)

// Concrete opcodes registered against the three families. Real
// deployments would grow these into a full catalogue through further Go
// call sites (LoadCatalogue only checks a document against what is
// registered); these four exist to exercise Family dispatch and Registry
// end-to-end.
const (
	OpcodeServerHello      uint8 = uint8(proto.ControlOpcodeHello)
	OpcodePlayerStateShift uint8 = 0x11
	OpcodeObjectCreateMsg  uint8 = 0x12
	OpcodeCryptoHandshake  uint8 = 0x01
)

// ServerHello is the control-family greeting sent at session start,
// carrying a wide-string server banner.
type ServerHello struct {
	Banner string
}

var ServerHelloCodec = codec.Codec[ServerHello]{
	Decode: func(r *bitio.Reader) (ServerHello, error) {
		banner, err := proto.WideString.Decode(r)
		return ServerHello{Banner: banner}, err
	},
	Encode: func(w *bitio.Writer, v ServerHello) error {
		return proto.WideString.Encode(w, v.Banner)
	},
}

// PlayerStateShift reports a player's updated position/orientation; a
// deliberately small slice of the real message, enough to exercise a
// multi-field little-endian game opcode.
type PlayerStateShift struct {
	Guid          proto.GUID
	PositionX     uint16
	PositionY     uint16
	FacingDegrees uint8 // 0..255 mapped onto 0..360
}

var (
	pssCoord  = codec.Uint[uint16](16, bitio.LittleEndian)
	pssFacing = codec.Uint[uint8](8, bitio.LittleEndian)
)

var PlayerStateShiftCodec = codec.Codec[PlayerStateShift]{
	Decode: func(r *bitio.Reader) (PlayerStateShift, error) {
		var v PlayerStateShift
		var err error
		if v.Guid, err = proto.GUIDCodec.Decode(r); err != nil {
			return v, err
		}
		if v.PositionX, err = pssCoord.Decode(r); err != nil {
			return v, err
		}
		if v.PositionY, err = pssCoord.Decode(r); err != nil {
			return v, err
		}
		if v.FacingDegrees, err = pssFacing.Decode(r); err != nil {
			return v, err
		}
		return v, nil
	},
	Encode: func(w *bitio.Writer, v PlayerStateShift) error {
		if err := proto.GUIDCodec.Encode(w, v.Guid); err != nil {
			return err
		}
		if err := pssCoord.Encode(w, v.PositionX); err != nil {
			return err
		}
		if err := pssCoord.Encode(w, v.PositionY); err != nil {
			return err
		}
		return pssFacing.Encode(w, v.FacingDegrees)
	},
	Size: codec.ExactSize(16 + 16 + 16 + 8),
}

// CryptoHandshake is a minimal stand-in for the crypto family's initial
// key-exchange message: an algorithm tag and an opaque nonce string.
type CryptoHandshake struct {
	Algorithm uint8
	Nonce     string
}

var chAlgorithm = codec.Uint[uint8](8, bitio.LittleEndian)

var CryptoHandshakeCodec = codec.Codec[CryptoHandshake]{
	Decode: func(r *bitio.Reader) (CryptoHandshake, error) {
		var v CryptoHandshake
		var err error
		if v.Algorithm, err = chAlgorithm.Decode(r); err != nil {
			return v, err
		}
		v.Nonce, err = proto.ASCIIString.Decode(r)
		return v, err
	},
	Encode: func(w *bitio.Writer, v CryptoHandshake) error {
		if err := chAlgorithm.Encode(w, v.Algorithm); err != nil {
			return err
		}
		return proto.ASCIIString.Encode(w, v.Nonce)
	},
}

func init() {
	mustRegisterOpcode(ControlOpcodes, OpcodeServerHello, asAny(ServerHelloCodec))
	mustRegisterOpcode(GameOpcodes, OpcodePlayerStateShift, asAny(PlayerStateShiftCodec))
	mustRegisterOpcode(GameOpcodes, OpcodeObjectCreateMsg, asAny(ObjectCreateMessageCodec))
	mustRegisterOpcode(CryptoOpcodes, OpcodeCryptoHandshake, asAny(CryptoHandshakeCodec))
}

func mustRegisterOpcode(reg *Registry, opcode uint8, c codec.Codec[any]) {
	if err := reg.Register(opcode, c); err != nil {
		panic(err)
	}
}
