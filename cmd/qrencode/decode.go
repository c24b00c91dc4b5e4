/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qr-core/qrencode"
)

var decodeCompressionFlag string

// decodeCmd inspects a serialized matrix container (spec §4.10) and prints
// its version, side, and ECC-agnostic module grid - it does not attempt
// message decoding, which spec §1 names as a Non-goal for this module.
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Inspect a serialized matrix container",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeCompressionFlag, "compression", "c", "none", "compression applied to the input: none, deflate, or gzip")
}

func parseCompression(s string) (qrencode.CompressionMode, error) {
	switch s {
	case "none":
		return qrencode.Uncompressed, nil
	case "deflate":
		return qrencode.Deflate, nil
	case "gzip":
		return qrencode.GZip, nil
	default:
		return 0, fmt.Errorf("unknown compression mode %q (want none, deflate, or gzip)", s)
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	mode, err := parseCompression(decodeCompressionFlag)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	code, err := qrencode.Deserialize(data, mode)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	fmt.Printf("version: %d\nside: %d\n", code.Version(), code.Side())
	for y := 0; y < code.Side(); y++ {
		for x := 0; x < code.Side(); x++ {
			if code.IsDark(y, x) {
				fmt.Print("##")
			} else {
				fmt.Print("  ")
			}
		}
		fmt.Println()
	}
	return nil
}
