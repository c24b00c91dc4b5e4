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

// addECCAndInterleave splits data into the (version, ecc) block layout,
// computes Reed-Solomon EC codewords per block, and interleaves data then
// EC bytes by column (spec §4.6). data must already be exactly
// dataCodewords(ecc, version) bytes long.
func addECCAndInterleave(data []byte, ecc ECCLevel, version Version) []byte {
	layout := computeBlockLayout(ecc, version)
	assertInvariant(len(data) == layout.G1Blocks*layout.G1DataBytes+layout.G2Blocks*layout.G2DataBytes,
		"data length does not match block layout")

	type block struct {
		data []byte
		ec   []byte
	}
	numBlocks := layout.G1Blocks + layout.G2Blocks
	blocks := make([]block, numBlocks)

	pos := 0
	for i := 0; i < layout.G1Blocks; i++ {
		d := data[pos : pos+layout.G1DataBytes]
		pos += layout.G1DataBytes
		blocks[i] = block{data: d, ec: reedSolomonRemainder(d, layout.ECPerBlock)}
	}
	for i := 0; i < layout.G2Blocks; i++ {
		d := data[pos : pos+layout.G2DataBytes]
		pos += layout.G2DataBytes
		blocks[layout.G1Blocks+i] = block{data: d, ec: reedSolomonRemainder(d, layout.ECPerBlock)}
	}
	assertInvariant(pos == len(data), "block split did not consume all data codewords")

	maxDataLen := layout.G1DataBytes
	if layout.G2DataBytes > maxDataLen {
		maxDataLen = layout.G2DataBytes
	}

	result := make([]byte, 0, numBlocks*maxDataLen+numBlocks*layout.ECPerBlock)
	for i := 0; i < maxDataLen; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				result = append(result, b.data[i])
			}
		}
	}
	for i := 0; i < layout.ECPerBlock; i++ {
		for _, b := range blocks {
			result = append(result, b.ec[i])
		}
	}

	assertInvariant(len(result) == numRawDataModules[version]/8, "interleaved codeword count mismatch")
	return result
}
