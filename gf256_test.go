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

func TestGfExpLogRoundTrip(t *testing.T) {
	for k := 0; k < 255; k++ {
		x := gfExp(k)
		assert.NotZero(t, x)
		assert.Equal(t, k, gfLog(x))
	}
}

func TestGfExpWrapsNegativeAndLargeExponents(t *testing.T) {
	assert.Equal(t, gfExp(0), gfExp(255))
	assert.Equal(t, gfExp(3), gfExp(3-255))
	assert.Equal(t, gfExp(10), gfExp(10+255*4))
}

func TestGfMulIdentityAndZero(t *testing.T) {
	assert.EqualValues(t, 0, gfMul(0, 0x53))
	assert.EqualValues(t, 0, gfMul(0x53, 0))
	assert.EqualValues(t, 0x53, gfMul(1, 0x53))
}

func TestGfMulMatchesLogExpDefinition(t *testing.T) {
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			want := gfExp(gfLog(byte(a)) + gfLog(byte(b)))
			assert.Equal(t, want, gfMul(byte(a), byte(b)))
		}
	}
}

func TestGfPolyMultiplyByOneIsIdentity(t *testing.T) {
	p := []byte{1, 0x0f, 0x03}
	got := gfPolyMultiply(p, []byte{1})
	assert.Equal(t, p, got)
}

func TestGfPolyMultiplyDegrees(t *testing.T) {
	// (x + a^0) * (x + a^1): degree-1 times degree-1 gives degree-2 (3 coeffs).
	got := gfPolyMultiply([]byte{1, gfExp(0)}, []byte{1, gfExp(1)})
	assert.Len(t, got, 3)
	assert.EqualValues(t, 1, got[0])
}
