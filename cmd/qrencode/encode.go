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

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/qr-core/qrencode"
)

var (
	eccFlag     string
	outFlag     string
	svgFlag     bool
	openFlag    bool
	borderFlag  int
	utf8Flag    bool
	boostECLOff bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR Code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&eccFlag, "ecc", "e", "M", "error correction level: L, M, Q, or H")
	encodeCmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (defaults to stdout)")
	encodeCmd.Flags().BoolVar(&svgFlag, "svg", false, "write an SVG preview instead of the serialized matrix")
	encodeCmd.Flags().BoolVar(&openFlag, "open", false, "open the SVG preview in a browser (implies --svg)")
	encodeCmd.Flags().IntVar(&borderFlag, "border", 4, "quiet-zone border width in modules, SVG output only")
	encodeCmd.Flags().BoolVar(&utf8Flag, "force-utf8", false, "force Byte-mode UTF-8 encoding even for ASCII-safe text")
	encodeCmd.Flags().BoolVar(&boostECLOff, "no-boost-ecc", false, "disable automatic ECC-level boosting")
}

func parseECC(s string) (qrencode.ECCLevel, error) {
	switch s {
	case "L", "l":
		return qrencode.ECCLow, nil
	case "M", "m":
		return qrencode.ECCMedium, nil
	case "Q", "q":
		return qrencode.ECCQuartile, nil
	case "H", "h":
		return qrencode.ECCHigh, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q (want L, M, Q, or H)", s)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	ecc, err := parseECC(eccFlag)
	if err != nil {
		return err
	}

	opts := []qrencode.Option{qrencode.WithForceUTF8(utf8Flag)}
	if boostECLOff {
		opts = append(opts, qrencode.WithBoostECL(false))
	}

	code, err := qrencode.EncodeText(args[0], ecc, opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if openFlag {
		svgFlag = true
	}

	var payload []byte
	if svgFlag {
		svg, err := code.ToSVGString(borderFlag)
		if err != nil {
			return fmt.Errorf("rendering SVG: %w", err)
		}
		payload = []byte(svg)
	} else {
		payload, err = code.Serialize(qrencode.Uncompressed)
		if err != nil {
			return fmt.Errorf("serializing: %w", err)
		}
	}

	dest := outFlag
	if openFlag && dest == "" {
		f, err := os.CreateTemp("", "qrencode-*.svg")
		if err != nil {
			return fmt.Errorf("creating preview file: %w", err)
		}
		dest = f.Name()
		if _, err := f.Write(payload); err != nil {
			f.Close()
			return fmt.Errorf("writing preview file: %w", err)
		}
		f.Close()
		return browser.OpenFile(dest)
	}

	if dest == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return err
	}
	if openFlag {
		return browser.OpenFile(dest)
	}
	return nil
}
