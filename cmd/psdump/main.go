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

// Command psdump reads framed packets, one hex-encoded line per packet,
// and prints their decoded form to stdout, one JSON-ish line per packet.
// It exists to exercise the registry/dispatcher end to end outside of
// unit tests.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/psforever/psnet/packet"
)

func main() {
	catalogue := flag.String("catalogue", "", "optional YAML/JSON opcode catalogue to validate against the compiled-in registry")
	flag.Parse()

	if *catalogue != "" {
		if err := checkCatalogue(*catalogue); err != nil {
			fmt.Fprintf(os.Stderr, "catalogue %q: %s\n", *catalogue, err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	o := bufio.NewWriter(os.Stdout)
	for _, arg := range args {
		if err := dumpFile(o, arg); err != nil {
			fmt.Fprintf(os.Stderr, "input %s: %s\n", arg, err)
			os.Exit(1)
		}
	}
	if err := o.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCatalogue(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = packet.LoadCatalogue(doc)
	return err
}

func dumpFile(o *bufio.Writer, arg string) error {
	var in *os.File
	if arg == "-" {
		in = os.Stdin
	} else {
		var err error
		in, err = os.Open(arg)
		if err != nil {
			return fmt.Errorf("can't open %q: %w", arg, err)
		}
		defer in.Close()
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			return fmt.Errorf("line %d: not valid hex: %w", lineNo, err)
		}
		frame, err := packet.DecodePacket(raw)
		if err != nil {
			fmt.Fprintf(o, "line %d: decode error: %s\n", lineNo, err)
			continue
		}
		id := uuid.New()
		fmt.Fprintf(o, "{\"id\":%q,\"family\":%q,\"opcode\":%d,\"secured\":%v,\"payload\":%+v}\n",
			id.String(), frame.Packet.Family, frame.Packet.Opcode, frame.Flags.Secured, frame.Packet.Payload)
	}
	return scanner.Err()
}
