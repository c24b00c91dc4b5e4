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
	"fmt"
	"math"
	"strconv"
)

const eciValueUTF8 = 26

// isPureASCII reports whether every byte of s is in the 7-bit ASCII range.
func isPureASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// prepareByteData implements spec §4.3 step 2: decide whether the payload
// needs UTF-8 transcoding (or an explicit ECI transcoding) before it is
// wrapped in a Byte-mode segment, and which ECI designator (if any) should
// prefix it. Returns eciValue == -1 when no ECI header is needed.
func prepareByteData(cfg encodeConfig, text string) (data []byte, eciValue int, err error) {
	switch {
	case !cfg.eci.IsDefault():
		data, err = transcode(text, cfg.eci.value)
		if err != nil {
			return nil, -1, err
		}
		eciValue = cfg.eci.value
	case !isPureASCII(text) || cfg.forceUTF8:
		data = []byte(text) // Go strings are already UTF-8.
		eciValue = eciValueUTF8
	default:
		// Pure ASCII with no ECI requested: every ASCII byte is also valid
		// Latin-1, so no code-page header is needed.
		return []byte(text), -1, nil
	}

	if cfg.utf8BOM && eciValue == eciValueUTF8 {
		data = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	}
	return data, eciValue, nil
}

// segment is one chunk of the eventual bit stream: a mode, the unencoded
// character/byte count, and the already mode-specific-encoded data bits
// (not yet prefixed with the mode indicator or character-count indicator;
// that happens when segments are assembled into a bit stream).
type segment struct {
	mode     Mode
	numChars int
	data     bitBuffer
}

// totalBits returns the number of bits segs would occupy at the given
// version (4-bit mode indicator + char-count indicator + data, per
// segment), or -1 if any segment's character count overflows its
// count-indicator field width.
func totalBits(segs []segment, version Version) int {
	total := int64(0)
	for _, seg := range segs {
		ccBits := seg.mode.charCountBits(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return -1
		}
		total += int64(4 + int(ccBits) + len(seg.data))
		if total > math.MaxInt32 {
			return -1
		}
	}
	return int(total)
}

// encodeNumericSegment builds a Numeric-mode segment (spec §4.4 step 4):
// groups of 3 digits become 10 bits, a 2-digit tail becomes 7 bits, a
// 1-digit tail becomes 4 bits.
func encodeNumericSegment(digits string) segment {
	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			panic("qrencode: non-digit in numeric segment: " + err.Error())
		}
		bb.appendBits(d, int8(n*3+1))
		i += n
	}
	return segment{mode: ModeNumeric, numChars: len(digits), data: bb}
}

// encodeAlphanumericSegment builds an Alphanumeric-mode segment: each pair of
// characters becomes 11 bits (45*val(a)+val(b)), a single leftover character
// becomes 6 bits.
func encodeAlphanumericSegment(text string) segment {
	bb := make(bitBuffer, 0, len(text)*6)
	i := 0
	for ; i+1 < len(text); i += 2 {
		v := indexOfAlphanumeric(text[i])*45 + indexOfAlphanumeric(text[i+1])
		bb.appendBits(v, 11)
	}
	if i < len(text) {
		bb.appendBits(indexOfAlphanumeric(text[i]), 6)
	}
	return segment{mode: ModeAlphanumeric, numChars: len(text), data: bb}
}

// encodeByteSegment builds a Byte-mode segment: each byte becomes 8 bits,
// MSB first.
func encodeByteSegment(data []byte) segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return segment{mode: ModeByte, numChars: len(data), data: bb}
}

// encodeECISegment builds the 4-bit ECI mode indicator's payload: 8, 16, or
// 24 bits naming the code page, whichever is smallest for the value (spec
// §3 "ECI").
func encodeECISegment(value int) (segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case value < 0:
		return segment{}, fmt.Errorf("qrencode: negative ECI designator %d: %w", value, ErrUnsupportedECI)
	case value < 1<<7:
		bb.appendBits(value, 8)
	case value < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(value, 14)
	case value < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(value, 21)
	default:
		return segment{}, fmt.Errorf("qrencode: ECI designator %d out of range: %w", value, ErrUnsupportedECI)
	}
	return segment{mode: modeECI, numChars: 0, data: bb}, nil
}
