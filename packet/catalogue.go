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

	"sigs.k8s.io/yaml"
)

// CatalogueEntry names one opcode in a declarative catalogue document:
// which family it belongs to and which already-registered payload codec
// (by name) handles it. LoadCatalogue doesn't construct new codecs from
// the document; it only cross-checks that the Go call sites in this
// package (opcodes.go's init) have in fact registered every opcode the
// document expects, the same "table definition lives in a file, codec
// lives in code" split the teacher's db package uses for its own
// definition.json/definition.yaml table definitions.
type CatalogueEntry struct {
	Family string `json:"family"`
	Opcode uint8  `json:"opcode"`
	Name   string `json:"name"`
}

// Catalogue is the top-level shape of a catalogue document: a single
// entry list covering all families, each entry naming its own family.
type Catalogue struct {
	Entries []CatalogueEntry `json:"entries"`
}

// LoadCatalogue parses a YAML or JSON catalogue document (sigs.k8s.io/yaml
// accepts both, routing YAML through its JSON struct tags) and verifies
// every named opcode is already registered in the matching family
// registry. It returns an error naming the first entry whose family is
// unrecognized or whose opcode has no registered codec; it does not
// register anything itself; registration happens only through Go call
// sites (Registry.Register), matching spec.md §6's "register once at
// startup" contract.
func LoadCatalogue(doc []byte) (Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(doc, &cat); err != nil {
		return Catalogue{}, fmt.Errorf("packet: parsing catalogue: %w", err)
	}
	for _, entry := range cat.Entries {
		var reg *Registry
		switch entry.Family {
		case "game":
			reg = GameOpcodes
		case "control":
			reg = ControlOpcodes
		case "crypto":
			reg = CryptoOpcodes
		default:
			return cat, fmt.Errorf("packet: catalogue entry %q: unknown family %q", entry.Name, entry.Family)
		}
		found := false
		for _, op := range reg.Opcodes() {
			if op == entry.Opcode {
				found = true
				break
			}
		}
		if !found {
			return cat, fmt.Errorf("packet: catalogue entry %q: opcode 0x%02x not registered in family %q", entry.Name, entry.Opcode, entry.Family)
		}
	}
	return cat, nil
}
