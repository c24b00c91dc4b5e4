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

// Matrix layout engine, spec §4.7: function-pattern placement, reserved
// regions, and the zig-zag codeword streaming order.

// setFunctionModule sets a module that is part of a function pattern (finder,
// timing, alignment, dark module, or a reserved format/version placeholder)
// and marks it in the reserved mask so the data-streaming pass and the
// masking pass both skip it.
func (c *Code) setFunctionModule(x, y int, isDark bool) {
	c.modules[y][x] = isDark
	c.isFunction[y][x] = true
}

// drawFinderPattern draws the 7x7 finder ring plus its 1-module separator
// (a 9x9 footprint), centered at (x, y).
func (c *Code) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < c.side && 0 <= yy && yy < c.side {
				dist := maxInt(abs(dx), abs(dy))
				c.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (c *Code) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			c.setFunctionModule(x+dx, y+dy, maxInt(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFunctionPatterns lays down every function pattern and reserves the
// format/version-information regions (spec §4.7 steps 1-6), in the order:
// timing, finders, alignment patterns, then format/version placeholders.
// The dark module at (4V+9, 8) falls out of drawFormatBits's second copy.
func (c *Code) drawFunctionPatterns() {
	for i := 0; i < c.side; i++ {
		c.setFunctionModule(6, i, i%2 == 0)
		c.setFunctionModule(i, 6, i%2 == 0)
	}

	c.drawFinderPattern(3, 3)
	c.drawFinderPattern(c.side-4, 3)
	c.drawFinderPattern(3, c.side-4)

	positions := alignmentPatternPositionsTable[c.version]
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // Overlaps a finder pattern; skip.
			}
			c.drawAlignmentPattern(positions[i], positions[j])
		}
	}

	// Reserve format info with a placeholder mask (0); the real value is
	// written once the mask is chosen (spec §4.9).
	c.drawFormatBits(0)
	c.drawVersionInfo()
}

// drawCodewords streams the interleaved data+EC codeword stream (spec §4.6
// output) into every non-function module in the standard zig-zag order
// (spec §4.7 "Data streaming order"): column pairs right to left skipping
// column 6, alternating upward/downward sweep, right column of the pair
// before the left.
func (c *Code) drawCodewords(data []byte) {
	assertInvariant(len(data) == numRawDataModules[c.version]/8, "codeword stream length mismatch")

	i := 0 // bit index into data
	for right := c.side - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < c.side; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0
				var y int
				if upward {
					y = c.side - 1 - vert
				} else {
					y = vert
				}
				if !c.isFunction[y][x] && i < len(data)*8 {
					c.modules[y][x] = getBitAsBool(int(data[i>>3]), 7-(i&7))
					i++
				}
				// Remainder bits (0-7 trailing cells) are left light/false,
				// matching their zero value in the bit stream.
			}
		}
	}

	assertInvariant(i == len(data)*8, "codeword stream was not fully consumed")
}
