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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("0123456789"))
	assert.True(t, isNumeric(""))
	assert.False(t, isNumeric("12a"))
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, isAlphanumeric("ABC 123:$%*+-./"))
	assert.False(t, isAlphanumeric("abc")) // Lowercase is not in the 45-char set.
}

func TestEncodeNumericSegmentBitWidths(t *testing.T) {
	// Groups of 3/2/1 digits encode as 10/7/4 bits respectively (spec §4.4).
	seg := encodeNumericSegment("1")
	assert.Equal(t, 4, len(seg.data))

	seg = encodeNumericSegment("12")
	assert.Equal(t, 7, len(seg.data))

	seg = encodeNumericSegment("123")
	assert.Equal(t, 10, len(seg.data))

	seg = encodeNumericSegment("12345")
	assert.Equal(t, 17, len(seg.data)) // 10 + 7
	assert.Equal(t, ModeNumeric, seg.mode)
	assert.Equal(t, 5, seg.numChars)
}

func TestEncodeAlphanumericSegmentBitWidths(t *testing.T) {
	seg := encodeAlphanumericSegment("A")
	assert.Equal(t, 6, len(seg.data))

	seg = encodeAlphanumericSegment("AB")
	assert.Equal(t, 11, len(seg.data))

	seg = encodeAlphanumericSegment("ABC")
	assert.Equal(t, 17, len(seg.data)) // 11 + 6
	assert.Equal(t, ModeAlphanumeric, seg.mode)
}

func TestEncodeByteSegment(t *testing.T) {
	seg := encodeByteSegment([]byte{0x00, 0xff, 0x42})
	assert.Equal(t, ModeByte, seg.mode)
	assert.Equal(t, 3, seg.numChars)
	assert.Equal(t, 24, len(seg.data))
}

func TestEncodeECISegmentWidthByValue(t *testing.T) {
	seg, err := encodeECISegment(3)
	assert.NoError(t, err)
	assert.Equal(t, 8, len(seg.data))

	seg, err = encodeECISegment(1000)
	assert.NoError(t, err)
	assert.Equal(t, 16, len(seg.data))

	seg, err = encodeECISegment(999_999)
	assert.NoError(t, err)
	assert.Equal(t, 24, len(seg.data))

	_, err = encodeECISegment(-1)
	assert.ErrorIs(t, err, ErrUnsupportedECI)

	_, err = encodeECISegment(1_000_000)
	assert.ErrorIs(t, err, ErrUnsupportedECI)
}

func TestIsPureASCII(t *testing.T) {
	assert.True(t, isPureASCII("hello 123"))
	assert.False(t, isPureASCII("héllo"))
}

func TestPrepareByteDataPureASCIINoECI(t *testing.T) {
	cfg := defaultEncodeConfig()
	data, eci, err := prepareByteData(cfg, "hello")
	assert.NoError(t, err)
	assert.Equal(t, -1, eci)
	assert.Equal(t, []byte("hello"), data)
}

func TestPrepareByteDataForceUTF8(t *testing.T) {
	cfg := defaultEncodeConfig()
	cfg.forceUTF8 = true
	data, eci, err := prepareByteData(cfg, "hello")
	assert.NoError(t, err)
	assert.Equal(t, eciValueUTF8, eci)
	assert.Equal(t, []byte("hello"), data)
}

func TestPrepareByteDataUTF8BOMAppliesForAutoDetectedUTF8(t *testing.T) {
	cfg := defaultEncodeConfig()
	cfg.utf8BOM = true
	data, eci, err := prepareByteData(cfg, "héllo")
	assert.NoError(t, err)
	assert.Equal(t, eciValueUTF8, eci)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestPrepareByteDataUTF8BOMAppliesForExplicitECIUTF8(t *testing.T) {
	cfg := defaultEncodeConfig()
	cfg.utf8BOM = true
	cfg.eci = ECIUTF8
	data, eci, err := prepareByteData(cfg, "hello")
	assert.NoError(t, err)
	assert.Equal(t, eciValueUTF8, eci)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestPrepareByteDataExplicitLatin1(t *testing.T) {
	cfg := defaultEncodeConfig()
	cfg.eci = ECIISO88591
	data, eci, err := prepareByteData(cfg, "café")
	assert.NoError(t, err)
	assert.Equal(t, 3, eci)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, data)
}

func TestTotalBitsDetectsCharCountOverflow(t *testing.T) {
	seg := segment{mode: ModeNumeric, numChars: 1 << 20, data: make(bitBuffer, 0)}
	assert.Equal(t, -1, totalBits([]segment{seg}, 1))
}

func TestTotalBitsSumsModeHeaderAndData(t *testing.T) {
	seg := encodeNumericSegment("123")
	// 4-bit mode indicator + 10-bit char count (version <=9) + 10 data bits.
	assert.Equal(t, 4+10+10, totalBits([]segment{seg}, 1))
}
