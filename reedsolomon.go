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

import "sync"

// Reed-Solomon encoder over GF(256), spec §4.5. Generator polynomials are
// process-wide memoized by degree: the computation is deterministic, so a
// mutex-guarded compute-or-lookup gives every caller (racing or not) the
// identical polynomial for a given degree (spec §5, §9 "Generator-polynomial
// cache").
var (
	generatorCacheMu sync.Mutex
	generatorCache   = make(map[int][]byte)
)

// generatorPolynomial returns G(x) = prod_{i=0}^{degree-1} (x - a^i) for the
// QR field, degree+1 coefficients in descending degree order starting with
// the leading 1, cached by degree.
func generatorPolynomial(degree int) []byte {
	generatorCacheMu.Lock()
	defer generatorCacheMu.Unlock()

	if g, ok := generatorCache[degree]; ok {
		return g
	}
	g := computeGeneratorPolynomial(degree)
	generatorCache[degree] = g
	return g
}

func computeGeneratorPolynomial(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("qrencode: RS degree out of range")
	}

	// result starts as the monomial x^0 == [1], then each iteration
	// multiplies in (x - a^i) == [1, a^i] (subtraction is XOR in GF(2^8)).
	result := []byte{1}
	for i := 0; i < degree; i++ {
		result = gfPolyMultiply(result, []byte{1, gfExp(i)})
	}
	return result
}

// reedSolomonRemainder computes the degree EC codewords for a data block:
// the remainder of data*x^degree divided by the generator polynomial, in
// descending-degree order.
func reedSolomonRemainder(data []byte, degree int) []byte {
	divisor := generatorPolynomial(degree)
	result := make([]byte, degree)
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, d := range divisor[1:] {
			result[i] ^= gfMul(d, factor)
		}
	}
	return result
}
