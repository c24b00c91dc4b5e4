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

func TestAppendBitsToBuffer(t *testing.T) {
	bb := make(bitBuffer, 0)

	bb.appendBits(0, 0)
	assert.Equal(t, 0, len(bb))

	bb.appendBits(1, 1)
	assert.Equal(t, 1, len(bb))
	assert.Equal(t, []byte{1}, []byte(bb))

	bb.appendBits(0, 1)
	assert.Equal(t, 2, len(bb))
	assert.Equal(t, []byte{1, 0}, []byte(bb))

	bb.appendBits(5, 3)
	assert.Equal(t, 5, len(bb))
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(bb))

	bb.appendBits(6, 3)
	assert.Equal(t, 8, len(bb))
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 1, 1, 0}, []byte(bb))
}

func TestAppendBitsPanicsOnOversizedValue(t *testing.T) {
	bb := make(bitBuffer, 0)
	assert.Panics(t, func() { bb.appendBits(4, 2) })
}

func TestPackBytesMSBFirst(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0xA5, 8)
	packed := bb.packBytes()
	assert.Equal(t, []byte{0xA5}, packed)
}

func TestPackBytesPadsFinalByte(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0x3, 3) // 011
	packed := bb.packBytes()
	assert.Equal(t, []byte{0x60}, packed) // 011 followed by five zero bits.
}
