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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{9, 1, 182},
		{12, 3, 158},
		{15, 0, 523},
		{16, 2, 325},
		{19, 3, 341},
		{21, 0, 932},
		{22, 0, 1006},
		{22, 1, 782},
		{22, 3, 442},
		{24, 0, 1174},
		{24, 3, 514},
		{28, 0, 1531},
		{30, 3, 745},
		{32, 3, 845},
		{33, 0, 2071},
		{33, 3, 901},
		{35, 0, 2306},
		{35, 1, 1812},
		{35, 2, 1286},
		{36, 3, 1054},
		{37, 3, 1096},
		{39, 1, 2216},
		{40, 1, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumDataCodewords %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], dataCodewords(ECCLevel(tc[1]), Version(tc[0])))
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{18, 7211},
		{22, 10068},
		{26, 13652},
		{32, 19723},
		{37, 25568},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumRawDataModules %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestRemainderBitsMatchesRawModules(t *testing.T) {
	for v := 1; v <= 40; v++ {
		assert.Equal(t, numRawDataModules[v]%8, remainderBits(Version(v)))
	}
}

func TestComputeBlockLayoutConsumesAllDataCodewords(t *testing.T) {
	for ecc := ECCLow; ecc <= ECCHigh; ecc++ {
		for v := 1; v <= 40; v++ {
			layout := computeBlockLayout(ecc, Version(v))
			total := layout.G1Blocks*layout.G1DataBytes + layout.G2Blocks*layout.G2DataBytes
			assert.Equal(t, dataCodewords(ecc, Version(v)), total, "ecc=%v version=%d", ecc, v)
		}
	}
}

func TestAlignmentPatternPositionsVersion1IsEmpty(t *testing.T) {
	assert.Empty(t, computeAlignmentPatternPositions(1))
}

func TestAlignmentPatternPositionsAreAscending(t *testing.T) {
	for v := 2; v <= 40; v++ {
		positions := computeAlignmentPatternPositions(Version(v))
		for i := 1; i < len(positions); i++ {
			assert.Less(t, positions[i-1], positions[i], "version %d", v)
		}
		assert.Equal(t, 6, positions[0], "version %d", v)
	}
}
