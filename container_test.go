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
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	for _, mode := range []CompressionMode{Uncompressed, Deflate, GZip} {
		t.Run(modeName(mode), func(t *testing.T) {
			code, err := EncodeText("HELLO WORLD 123", ECCQuartile)
			assert.NoError(t, err)

			blob, err := code.Serialize(mode)
			assert.NoError(t, err)

			decoded, err := Deserialize(blob, mode)
			assert.NoError(t, err)
			assert.Equal(t, code.Version(), decoded.Version())
			assert.Equal(t, code.Side(), decoded.Side())
			for y := 0; y < code.Side(); y++ {
				for x := 0; x < code.Side(); x++ {
					assert.Equal(t, code.IsDark(y, x), decoded.IsDark(y, x), "(%d,%d)", x, y)
				}
			}
		})
	}
}

func TestDeserializeRejectsBadSignature(t *testing.T) {
	blob := []byte{0, 0, 0, 0, 21}
	_, err := Deserialize(blob, Uncompressed)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func TestDeserializeRejectsTruncatedHeader(t *testing.T) {
	_, err := Deserialize([]byte{0x51, 0x52}, Uncompressed)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func TestDeserializeRejectsImplausibleSide(t *testing.T) {
	blob := append(append([]byte{}, serializationSignature[:]...), 19)
	_, err := Deserialize(blob, Uncompressed)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func TestDeserializeRejectsNonStandardSide(t *testing.T) {
	blob := append(append([]byte{}, serializationSignature[:]...), 22)
	_, err := Deserialize(blob, Uncompressed)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func TestDeserializeRejectsTruncatedBody(t *testing.T) {
	blob := append(append([]byte{}, serializationSignature[:]...), 21)
	blob = append(blob, 0x00) // Far short of the 21*21 bits required.
	_, err := Deserialize(blob, Uncompressed)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func TestInflateRejectsDecompressionBomb(t *testing.T) {
	// A GZip stream of 11MiB of zeros compresses down to a tiny blob but
	// must not be allowed to fully inflate past the 10MiB ceiling.
	var raw bytes.Buffer
	gw := gzip.NewWriter(&raw)
	_, err := gw.Write(make([]byte, serializationMaxInflated+(1<<20)))
	assert.NoError(t, err)
	assert.NoError(t, gw.Close())

	_, err = inflate(raw.Bytes(), GZip)
	assert.ErrorIs(t, err, ErrCorruptSerialization)
}

func modeName(m CompressionMode) string {
	switch m {
	case Uncompressed:
		return "uncompressed"
	case Deflate:
		return "deflate"
	case GZip:
		return "gzip"
	default:
		return "unknown"
	}
}
