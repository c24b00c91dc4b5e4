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

// ECCLevel is the error-correction level of a QR code symbol.
type ECCLevel int8

// ECC level values, in increasing order of redundancy. Their 2-bit format
// codes (see formatBits) follow a different order.
const (
	ECCLow      ECCLevel = iota // Recovers ~7% of the symbol.
	ECCMedium                   // Recovers ~15% of the symbol.
	ECCQuartile                 // Recovers ~25% of the symbol.
	ECCHigh                     // Recovers ~30% of the symbol.
)

func (e ECCLevel) String() string {
	switch e {
	case ECCLow:
		return "L"
	case ECCMedium:
		return "M"
	case ECCQuartile:
		return "Q"
	case ECCHigh:
		return "H"
	default:
		return "?"
	}
}

// formatBits returns the 2-bit ECC code used in the 15-bit format
// information word (spec §4.9): L=01, M=00, Q=11, H=10.
func (e ECCLevel) formatBits() int {
	switch e {
	case ECCLow:
		return 1
	case ECCMedium:
		return 0
	case ECCQuartile:
		return 3
	case ECCHigh:
		return 2
	default:
		panic("qrencode: unknown ECC level")
	}
}
