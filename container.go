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

package qrencode

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
)

// Code is the matrix container (spec §4.10, §6 "MatrixContainer"): the
// finished module grid plus the version it was built for. It is the only
// thing a renderer needs.
type Code struct {
	version Version
	ecc     ECCLevel
	mask    Mask
	side    int
	modules [][]bool

	// isFunction is only needed while construction is in progress (masking
	// must skip function modules); it is dropped once encodeSegments finishes, the
	// same way the teacher nils out IsFunction at the end of
	// EncodeSegments.
	isFunction [][]bool
}

func newCode(version Version, ecc ECCLevel) *Code {
	side := version.Side()
	c := &Code{
		version:    version,
		ecc:        ecc,
		mask:       maskAuto,
		side:       side,
		modules:    make([][]bool, side),
		isFunction: make([][]bool, side),
	}
	for i := range c.modules {
		c.modules[i] = make([]bool, side)
		c.isFunction[i] = make([]bool, side)
	}
	return c
}

// Version returns the QR version, in [1, 40].
func (c *Code) Version() Version { return c.version }

// ECCLevel returns the error-correction level actually used (which may be
// higher than requested if ECL boosting kicked in, spec SPEC_FULL.md
// "SUPPLEMENTED FEATURES"). A Code returned by Deserialize reports ECCLow,
// since the serialized form does not carry the level.
func (c *Code) ECCLevel() ECCLevel { return c.ecc }

// Mask returns the selected mask pattern, in [0, 7]. A Code returned by
// Deserialize reports -1, since the serialized form does not carry the mask.
func (c *Code) Mask() Mask { return c.mask }

// Side returns the module width/height of the symbol: 21 + 4*(version-1).
func (c *Code) Side() int { return c.side }

// IsDark reports whether the module at (row, col) is dark. This, Side, and
// Version are the entire renderer-facing contract (spec §6).
func (c *Code) IsDark(row, col int) bool {
	return c.modules[row][col]
}

// CompressionMode selects the optional wrapping applied to a serialized
// matrix (spec §4.10, §6).
type CompressionMode int

const (
	Uncompressed CompressionMode = iota
	Deflate
	GZip
)

const (
	serializationSignatureLen = 4
	serializationMaxInflated  = 10 << 20 // 10 MiB decompression-bomb ceiling.
)

var serializationSignature = [serializationSignatureLen]byte{0x51, 0x52, 0x52, 0x00}

// Serialize writes the bit-exact wire format from spec §6 "Serialized
// matrix format": a 4-byte signature, one side-length byte, then the
// modules packed row-major MSB-first, optionally wrapped in DEFLATE or
// GZIP.
func (c *Code) Serialize(mode CompressionMode) ([]byte, error) {
	if c.side < 21 || c.side > 177 {
		return nil, fmt.Errorf("qrencode: side %d out of range: %w", c.side, ErrInternalInvariant)
	}

	var raw bytes.Buffer
	raw.Write(serializationSignature[:])
	raw.WriteByte(byte(c.side))

	bitBuf := make(bitBuffer, 0, c.side*c.side)
	for y := 0; y < c.side; y++ {
		for x := 0; x < c.side; x++ {
			bitBuf.appendBits(bToI(c.modules[y][x]), 1)
		}
	}
	raw.Write(bitBuf.packBytes())

	switch mode {
	case Uncompressed:
		return raw.Bytes(), nil
	case Deflate:
		var out bytes.Buffer
		w, err := flate.NewWriter(&out, flate.DefaultCompression)
		if err != nil {
			return nil, fmt.Errorf("qrencode: deflate: %w", err)
		}
		if _, err := w.Write(raw.Bytes()); err != nil {
			return nil, fmt.Errorf("qrencode: deflate: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("qrencode: deflate: %w", err)
		}
		return out.Bytes(), nil
	case GZip:
		var out bytes.Buffer
		w := gzip.NewWriter(&out)
		if _, err := w.Write(raw.Bytes()); err != nil {
			return nil, fmt.Errorf("qrencode: gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("qrencode: gzip: %w", err)
		}
		return out.Bytes(), nil
	default:
		return nil, fmt.Errorf("qrencode: unknown compression mode %d: %w", mode, ErrInternalInvariant)
	}
}

// Deserialize parses the wire format written by Serialize, validating the
// signature, side bounds, stream length, and (for compressed input) the
// 10MiB decompression-bomb ceiling (spec §4.10, §5, §7).
func Deserialize(data []byte, mode CompressionMode) (*Code, error) {
	raw, err := inflate(data, mode)
	if err != nil {
		return nil, err
	}

	if len(raw) < serializationSignatureLen+1 {
		return nil, fmt.Errorf("qrencode: truncated header: %w", ErrCorruptSerialization)
	}
	if !bytes.Equal(raw[:serializationSignatureLen], serializationSignature[:]) {
		return nil, fmt.Errorf("qrencode: bad signature: %w", ErrCorruptSerialization)
	}

	side := int(raw[serializationSignatureLen])
	if side < 21 || side > 177 {
		return nil, fmt.Errorf("qrencode: implausible side %d: %w", side, ErrCorruptSerialization)
	}
	if (side-21)%4 != 0 {
		return nil, fmt.Errorf("qrencode: side %d is not a valid QR dimension: %w", side, ErrCorruptSerialization)
	}
	version := Version((side-21)/4 + 1)

	body := raw[serializationSignatureLen+1:]
	needBits := side * side
	if len(body)*8 < needBits {
		return nil, fmt.Errorf("qrencode: truncated module data: %w", ErrCorruptSerialization)
	}

	c := &Code{version: version, ecc: ECCLow, mask: maskAuto, side: side}
	c.modules = make([][]bool, side)
	for y := 0; y < side; y++ {
		c.modules[y] = make([]bool, side)
		for x := 0; x < side; x++ {
			i := y*side + x
			c.modules[y][x] = getBitAsBool(int(body[i>>3]), 7-(i&7))
		}
	}
	return c, nil
}

// inflate reverses the optional DEFLATE/GZIP wrapping applied by Serialize,
// enforcing the 10MiB decompression ceiling from spec §5/§7.
func inflate(data []byte, mode CompressionMode) ([]byte, error) {
	switch mode {
	case Uncompressed:
		return data, nil
	case Deflate:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return readLimited(r)
	case GZip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("qrencode: gzip header: %w: %v", ErrCorruptSerialization, err)
		}
		defer gr.Close()
		return readLimited(gr)
	default:
		return nil, fmt.Errorf("qrencode: unknown compression mode %d: %w", mode, ErrInternalInvariant)
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, serializationMaxInflated+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("qrencode: decompressing: %w: %v", ErrCorruptSerialization, err)
	}
	if len(out) > serializationMaxInflated {
		return nil, fmt.Errorf("qrencode: decompressed payload exceeds 10MiB: %w", ErrCorruptSerialization)
	}
	return out, nil
}
