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

// Format and version information writer, spec §4.9: BCH(15,5) for the
// (ECC, mask) pair, BCH(18,6) for the version number (V >= 7).

const (
	formatBCHGenerator  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	formatXORMask       = 0x5412 // Applied to the whole 15-bit format word.
	versionBCHGenerator = 0x1F25 // 13-bit generator for the 18-bit version word.
)

// drawFormatBits writes both copies of the 15-bit format information word
// for the given mask, and the single always-dark module at (4V+9, 8).
func (c *Code) drawFormatBits(mask Mask) {
	data := c.ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*formatBCHGenerator
	}
	bits := data<<10 | rem
	bits ^= formatXORMask
	assertInvariant(bits>>15 == 0, "format bits overflow 15 bits")

	for i := 0; i <= 5; i++ {
		c.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	c.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	c.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	c.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		c.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		c.setFunctionModule(c.side-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		c.setFunctionModule(8, c.side-15+i, getBitAsBool(bits, i))
	}
	c.setFunctionModule(8, c.side-8, true) // The dark module, always set.
}

// drawVersionInfo writes both copies of the 18-bit version information
// block. A no-op below version 7, which carries no version-information
// region.
func (c *Code) drawVersionInfo() {
	if c.version < 7 {
		return
	}

	rem := int(c.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*versionBCHGenerator
	}
	bits := int(c.version)<<12 | rem
	assertInvariant(bits>>18 == 0, "version bits overflow 18 bits")

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := c.side - 11 + i%3
		b := i / 3
		c.setFunctionModule(a, b, bit)
		c.setFunctionModule(b, a, bit)
	}
}
