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

// Galois Field GF(256) arithmetic kernel, built over the QR Code primitive
// polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with generator element 2.
//
// The exponent/log tables and poly_multiply operation are kept as a
// standalone layer (rather than folded into the Reed-Solomon code, the way
// the original Nayuki/grkuntzmd port does it) so the generator-polynomial
// construction in reedsolomon.go reads as the textbook product
// G(x) = prod_{i=0}^{k-1} (x - a^i) instead of a hand-rolled multiply loop.

const gfPrimitivePoly = 0x11D

var (
	gfExpTable [256]byte // gfExpTable[k] == 2^k in GF(256), k in [0, 254]; index 255 mirrors index 0.
	gfLogTable [256]byte // gfLogTable[x] == k such that 2^k == x, for x in [1, 255]. gfLogTable[0] is unused.
)

func init() {
	x := 1
	for k := 0; k < 255; k++ {
		gfExpTable[k] = byte(x)
		gfLogTable[byte(x)] = byte(k)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPrimitivePoly
		}
	}
	gfExpTable[255] = gfExpTable[0]
}

// gfExp returns 2^k in GF(256) for any integer k, positive or negative.
func gfExp(k int) byte {
	k %= 255
	if k < 0 {
		k += 255
	}
	return gfExpTable[k]
}

// gfLog returns k such that 2^k == x. x must be non-zero.
func gfLog(x byte) int {
	if x == 0 {
		panic("qrencode: gfLog of zero")
	}
	return int(gfLogTable[x])
}

// gfMul returns a*b in GF(256).
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExpTable[(int(gfLogTable[a])+int(gfLogTable[b]))%255]
}

// gfPolyMultiply multiplies two polynomials whose coefficients are given in
// descending-degree order, returning the product in the same order.
func gfPolyMultiply(p, q []byte) []byte {
	result := make([]byte, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			if qc == 0 {
				continue
			}
			result[i+j] ^= gfMul(pc, qc)
		}
	}
	return result
}
