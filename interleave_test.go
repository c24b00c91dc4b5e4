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

func TestAddECCAndInterleaveLengthMatchesRawModules(t *testing.T) {
	for ecc := ECCLow; ecc <= ECCHigh; ecc++ {
		for _, v := range []Version{1, 2, 5, 7, 20, 40} {
			data := make([]byte, dataCodewords(ecc, v))
			for i := range data {
				data[i] = byte(i)
			}
			out := addECCAndInterleave(data, ecc, v)
			assert.Equal(t, numRawDataModules[v]/8, len(out), "ecc=%v version=%d", ecc, v)
		}
	}
}

func TestAddECCAndInterleavePanicsOnWrongLength(t *testing.T) {
	assert.Panics(t, func() {
		addECCAndInterleave([]byte{1, 2, 3}, ECCLow, Version(5))
	})
}

func TestAddECCAndInterleaveSingleBlockIsDataThenECC(t *testing.T) {
	// Version 1-L has exactly one block, so interleaving degenerates to a
	// straight concatenation of data codewords followed by EC codewords.
	ecc, v := ECCLow, Version(1)
	layout := computeBlockLayout(ecc, v)
	assert.Equal(t, 1, layout.G1Blocks+layout.G2Blocks)

	data := make([]byte, dataCodewords(ecc, v))
	for i := range data {
		data[i] = byte(i + 1)
	}
	out := addECCAndInterleave(data, ecc, v)
	assert.Equal(t, data, out[:len(data)])

	wantECC := reedSolomonRemainder(data, layout.ECPerBlock)
	assert.Equal(t, wantECC, out[len(data):])
}
