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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrencode

// Specification tables reproduced verbatim from ISO/IEC 18004. These are
// data, not logic: any deviation from the published tables breaks bit-exact
// compatibility with every other QR Code implementation.
var (
	// eccCodewordsPerBlock[ecc][version] is the number of error-correction
	// codewords contained in each block.
	eccCodewordsPerBlock = [4][41]int{
		//       0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // L
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // M
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Q
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // H
	}

	// numErrorCorrectionBlocks[ecc][version] is the total number of blocks
	// (group 1 + group 2) the data codewords are split across.
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // L
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // M
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Q
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // H
	}

	// numDataCodewords[ecc][version] is the total number of data (non-EC)
	// codewords in a symbol of that version/ECC, remainder bits discarded.
	// Derived once at init time from numRawDataModules.
	numDataCodewords [4][41]int

	// numRawDataModules[version] is the number of data-region module slots
	// (data + EC + remainder bits) available after all function patterns and
	// reserved regions are excluded. Range: [208, 29648].
	numRawDataModules [41]int

	// alignmentPatternPositionsTable[version] holds the ascending list of
	// alignment-pattern center coordinates (shared by both axes) for that
	// version. Empty for version 1.
	alignmentPatternPositionsTable [41][]int
)

func init() {
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("qrencode: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := ECCLow; e <= ECCHigh; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositionsTable[v] = computeAlignmentPatternPositions(Version(v))
	}
}

// dataCodewords returns the total number of data codewords available for the
// given (version, ECC) combination.
func dataCodewords(ecc ECCLevel, v Version) int {
	return numDataCodewords[ecc][v]
}

// remainderBits returns the number of zero-padding bits left over after the
// interleaved data+EC codeword stream has been streamed into the matrix
// (spec §3 "Codeword Stream", §4.6 step 5). It is derived, not hardcoded,
// from the same numRawDataModules table the rest of the layout uses, which
// keeps it impossible for the two to disagree.
func remainderBits(v Version) int {
	return numRawDataModules[v] % 8
}

// blockLayout is the per-(version,ECC) block structure described in spec §3
// "Block Layout": group 1 and group 2 block counts and their data lengths,
// plus the shared EC length per block.
type blockLayout struct {
	ECPerBlock  int
	G1Blocks    int
	G1DataBytes int
	G2Blocks    int
	G2DataBytes int
}

// computeBlockLayout derives the group/block split the same way the
// teacher's addECCAndInterleave does it inline, but exposes it as data so
// the interleaver and capacity tables can both read it.
func computeBlockLayout(ecc ECCLevel, v Version) blockLayout {
	numBlocks := numErrorCorrectionBlocks[ecc][v]
	ecPerBlock := eccCodewordsPerBlock[ecc][v]
	rawCodewords := numRawDataModules[v] / 8
	shortBlockLen := rawCodewords / numBlocks
	numShortBlocks := numBlocks - rawCodewords%numBlocks

	layout := blockLayout{
		ECPerBlock:  ecPerBlock,
		G1Blocks:    numShortBlocks,
		G1DataBytes: shortBlockLen - ecPerBlock,
		G2Blocks:    numBlocks - numShortBlocks,
	}
	if layout.G2Blocks > 0 {
		layout.G2DataBytes = layout.G1DataBytes + 1
	}
	return layout
}

// computeAlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (shared between rows and columns) for a
// version, in the range [0, 177).
func computeAlignmentPatternPositions(version Version) []int {
	if version == 1 {
		return nil
	}

	numAlign := int(version)/7 + 2
	var step int
	if version == 32 {
		step = 26
	} else {
		step = (int(version)*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, int(version)*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

func abs(a int) int {
	if a >= 0 {
		return a
	}
	return -a
}

func bToI(b bool) int {
	if b {
		return 1
	}
	return 0
}

func getBit(x, i int) int {
	return x >> i & 1
}

func getBitAsBool(x, i int) bool {
	return x>>i&1 == 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
