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

import "fmt"

// EncodeText is the primary text entry point (spec §6 "encode(payload:
// text, ...)"). It classifies the payload into Numeric, Alphanumeric, or
// Byte mode (optionally transcoded and ECI-tagged), picks the smallest
// version that fits, and produces the finished, masked matrix.
func EncodeText(text string, ecc ECCLevel, opts ...Option) (code *Code, err error) {
	cfg := defaultEncodeConfig()
	for _, o := range opts {
		o(&cfg)
	}

	segs, err := buildSegmentsForText(cfg, text)
	if err != nil {
		return nil, err
	}
	return encodeSegments(segs, ecc, cfg)
}

// EncodeBytes is the explicit-byte-buffer entry point (spec §4.3 "Inputs:
// ... or explicit byte buffer + ECI"). The payload is always Byte mode; an
// ECI header is prefixed only if WithECI was passed.
func EncodeBytes(data []byte, ecc ECCLevel, opts ...Option) (code *Code, err error) {
	cfg := defaultEncodeConfig()
	for _, o := range opts {
		o(&cfg)
	}

	var segs []segment
	if !cfg.eci.IsDefault() {
		eciSeg, err := encodeECISegment(cfg.eci.value)
		if err != nil {
			return nil, err
		}
		segs = append(segs, eciSeg)
	}
	if len(data) > 0 {
		segs = append(segs, encodeByteSegment(data))
	}
	return encodeSegments(segs, ecc, cfg)
}

// buildSegmentsForText implements spec §4.3's mode analyzer: an empty
// payload produces zero segments (boundary case, spec §8); otherwise the
// smallest-capacity mode is chosen unless UTF-8/ECI forcing routes straight
// to Byte mode (SPEC_FULL.md Open Question decision #1).
func buildSegmentsForText(cfg encodeConfig, text string) ([]segment, error) {
	if text == "" {
		return nil, nil
	}

	forceByte := cfg.forceUTF8 || !cfg.eci.IsDefault()
	if !forceByte {
		if isNumeric(text) {
			return []segment{encodeNumericSegment(text)}, nil
		}
		if isAlphanumeric(text) {
			return []segment{encodeAlphanumericSegment(text)}, nil
		}
	}

	data, eciValue, err := prepareByteData(cfg, text)
	if err != nil {
		return nil, err
	}

	var segs []segment
	if eciValue >= 0 {
		eciSeg, err := encodeECISegment(eciValue)
		if err != nil {
			return nil, err
		}
		segs = append(segs, eciSeg)
	}
	segs = append(segs, encodeByteSegment(data))
	return segs, nil
}

// encodeSegments is the shared tail of every public entry point: version
// search, ECL boosting, bit-stream assembly (§4.4), RS + interleaving
// (§4.5-4.6), matrix layout (§4.7), and mask selection + format/version
// writing (§4.8-4.9).
func encodeSegments(segs []segment, ecc ECCLevel, cfg encodeConfig) (code *Code, err error) {
	defer recoverInvariant(&err)

	minV, maxV := cfg.minVersion, MaxVersion
	if cfg.forcedVersion != 0 {
		minV, maxV = cfg.forcedVersion, cfg.forcedVersion
	}
	if minV < MinVersion || maxV > MaxVersion || minV > maxV {
		return nil, fmt.Errorf("qrencode: invalid version range [%d,%d]: %w", minV, maxV, ErrInvalidInput)
	}

	version := minV
	var usedBits int
	for {
		capacityBits := dataCodewords(ecc, version) * 8
		usedBits = totalBits(segs, version)
		if usedBits != -1 && usedBits <= capacityBits {
			break
		}
		if version >= maxV {
			if usedBits != -1 {
				return nil, fmt.Errorf("qrencode: data length = %d bits, max capacity = %d bits: %w", usedBits, capacityBits, ErrCapacityExceeded)
			}
			return nil, fmt.Errorf("qrencode: data too long for version range [%d,%d]: %w", minV, maxV, ErrCapacityExceeded)
		}
		version++
	}
	assertInvariant(usedBits >= 0, "capacity search exited with an unresolved bit count")

	if cfg.boostECL {
		for newECC := ecc + 1; newECC <= ECCHigh; newECC++ {
			if usedBits <= dataCodewords(newECC, version)*8 {
				ecc = newECC
			}
		}
	}

	capacityBits := dataCodewords(ecc, version) * 8

	bb := make(bitBuffer, 0, capacityBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.mode.indicator), 4)
		bb.appendBits(seg.numChars, seg.mode.charCountBits(version))
		bb = append(bb, seg.data...)
	}
	assertInvariant(len(bb) == usedBits, "assembled bit stream length does not match the computed size")
	assertInvariant(len(bb) <= capacityBits, "assembled bit stream exceeds data capacity")

	// Terminator (spec §4.4 step 5): up to 4 zero bits, never past capacity.
	bb.appendBits(0, int8(minInt(4, capacityBits-len(bb))))
	// Byte alignment (step 6).
	bb.appendBits(0, int8((8-len(bb)%8)%8))
	assertInvariant(len(bb)%8 == 0, "bit stream is not byte-aligned after padding")

	// Pad codewords (step 7): alternate 0xEC, 0x11 until full.
	for padByte := 0xec; len(bb) < capacityBits; padByte ^= 0xec ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	dataWords := bb.packBytes()
	assertInvariant(len(dataWords) == dataCodewords(ecc, version), "packed data codeword count mismatch")

	code = newCode(version, ecc)
	code.drawFunctionPatterns()
	allCodewords := addECCAndInterleave(dataWords, ecc, version)
	code.drawCodewords(allCodewords)
	code.mask = code.selectMask(cfg.forceMask)
	code.isFunction = nil

	return code, nil
}
