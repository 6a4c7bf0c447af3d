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

// Constructors is the process-wide class-id registry for object-creation
// constructor payloads, populated once at startup (see init below) the
// same way GameOpcodes/ControlOpcodes/CryptoOpcodes are.
var Constructors = NewConstructorRegistry()

func init() {
	mustRegisterConstructor(ClassREK, rekAnyCodec)
	mustRegisterConstructor(ClassBoomerTrigger, boomerAnyCodec)
}

func mustRegisterConstructor(classID uint8, c codec.Codec[any]) {
	if err := Constructors.Register(classID, c); err != nil {
		panic(err)
	}
}

var classIDCodec = codec.Uint[uint8](8, bitio.LittleEndian)
var lengthCodec = codec.Uint[uint16](16, bitio.LittleEndian)

// ObjectCreateMessage names a new live object by GUID and carries its
// class-specific constructor payload. ClassID picks the constructor from
// Constructors. The wire length field (not kept in this struct) is the
// declared bit size of Payload and must match what that constructor
// reports.
type ObjectCreateMessage struct {
	Guid    proto.GUID
	ClassID uint8
	Payload any
}

// ObjectCreateMessageCodec decodes/encodes the GUID, class id and length
// fields, then delegates the payload to Constructors.
var ObjectCreateMessageCodec = codec.Codec[ObjectCreateMessage]{
	Decode: func(r *bitio.Reader) (ObjectCreateMessage, error) {
		var v ObjectCreateMessage
		classID, err := classIDCodec.Decode(r)
		if err != nil {
			return v, err
		}
		guid, err := proto.GUIDCodec.Decode(r)
		if err != nil {
			return v, err
		}
		length, err := lengthCodec.Decode(r)
		if err != nil {
			return v, err
		}
		payload, err := Constructors.Decode(r, classID, int(length))
		if err != nil {
			return v, err
		}
		v.ClassID = classID
		v.Guid = guid
		v.Payload = payload
		return v, nil
	},
	Encode: func(w *bitio.Writer, v ObjectCreateMessage) error {
		size, ok := Constructors.SizeOf(v.ClassID)
		if !ok {
			return &UnknownClassError{ClassID: v.ClassID}
		}
		if err := classIDCodec.Encode(w, v.ClassID); err != nil {
			return err
		}
		if err := proto.GUIDCodec.Encode(w, v.Guid); err != nil {
			return err
		}
		if err := lengthCodec.Encode(w, uint16(size)); err != nil {
			return err
		}
		_, err := Constructors.Encode(w, v.ClassID, v.Payload)
		return err
	},
}
