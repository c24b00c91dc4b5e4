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

import "math"

// Mask scorer and selector, spec §4.8: 8 candidate mask patterns scored by
// four penalty terms, minimum wins (ties go to the lowest mask index).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the inversion condition for
// the given mask. Applying the same mask twice is a no-op.
func (c *Code) applyMask(mask Mask) {
	for y := 0; y < c.side; y++ {
		for x := 0; x < c.side; x++ {
			if c.isFunction[y][x] {
				continue
			}
			if maskInvert(mask, x, y) {
				c.modules[y][x] = !c.modules[y][x]
			}
		}
	}
}

func maskInvert(mask Mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrencode: illegal mask value")
	}
}

// selectMask picks the best mask automatically (mask == maskAuto) or
// applies a forced one, writing the final format-information bits either
// way. It is the only place a Mask other than maskAuto reaches the public
// encoder path; a forced mask is only ever used by this package's own
// tests, since spec §6 states mask selection is automatic from the
// caller's point of view.
func (c *Code) selectMask(mask Mask) Mask {
	if mask == maskAuto {
		best := Mask(0)
		bestPenalty := math.MaxInt32
		for m := Mask(0); m < 8; m++ {
			c.applyMask(m)
			c.drawFormatBits(m)
			penalty := c.penaltyScore()
			if penalty < bestPenalty {
				best = m
				bestPenalty = penalty
			}
			c.applyMask(m) // Undo: XOR is its own inverse.
		}
		mask = best
	}

	assertInvariant(mask >= 0 && mask < 8, "mask value out of range")
	c.applyMask(mask)
	c.drawFormatBits(mask)
	return mask
}

// penaltyScore computes the sum of the four standard penalty terms (spec
// §4.8) over the matrix's current state.
func (c *Code) penaltyScore() int {
	result := 0

	for y := 0; y < c.side; y++ {
		result += c.rowRunPenalty(y)
	}
	for x := 0; x < c.side; x++ {
		result += c.columnRunPenalty(x)
	}

	for y := 0; y < c.side-1; y++ {
		for x := 0; x < c.side-1; x++ {
			color := c.modules[y][x]
			if color == c.modules[y][x+1] && color == c.modules[y+1][x] && color == c.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, row := range c.modules {
		for _, m := range row {
			if m {
				dark++
			}
		}
	}
	total := c.side * c.side
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func (c *Code) rowRunPenalty(y int) int {
	result := 0
	runColor := false
	runLen := 0
	var history [7]int
	for x := 0; x < c.side; x++ {
		if c.modules[y][x] == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runLen, &history, c.side)
			if !runColor {
				result += finderPenaltyCountPatterns(&history, c.side) * penaltyN3
			}
			runColor = c.modules[y][x]
			runLen = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runLen, &history, c.side) * penaltyN3
	return result
}

func (c *Code) columnRunPenalty(x int) int {
	result := 0
	runColor := false
	runLen := 0
	var history [7]int
	for y := 0; y < c.side; y++ {
		if c.modules[y][x] == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runLen, &history, c.side)
			if !runColor {
				result += finderPenaltyCountPatterns(&history, c.side) * penaltyN3
			}
			runColor = c.modules[y][x]
			runLen = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runLen, &history, c.side) * penaltyN3
	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the run
// history, dropping the oldest entry (spec §4.8 P3).
func finderPenaltyAddHistory(currentRunLength int, history *[7]int, side int) {
	if history[0] == 0 {
		currentRunLength += side // First run: count the implicit white border.
	}
	copy(history[1:], history[:6])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns detects the 1:1:3:1:1 finder-like ratio in the
// run history, searching for the 11-cell patterns 10111010000/00001011101.
func finderPenaltyCountPatterns(history *[7]int, side int) int {
	n := history[1]
	assertInvariant(n <= side*3, "run history overflowed symbol side")
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n
	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

func finderPenaltyTerminateAndCount(runColor bool, runLen int, history *[7]int, side int) int {
	if runColor { // Terminate a dark run before accounting for the border.
		finderPenaltyAddHistory(runLen, history, side)
		runLen = 0
	}
	runLen += side // Trailing white border.
	finderPenaltyAddHistory(runLen, history, side)
	return finderPenaltyCountPatterns(history, side)
}
