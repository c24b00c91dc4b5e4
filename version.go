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

// Version identifies a QR Code symbol size, in the range [1, 40].
type Version int

// MinVersion and MaxVersion bound the legal Version range.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Side returns the module width/height of a symbol of this version:
// 21 + 4*(version-1).
func (v Version) Side() int {
	return int(v)*4 + 17
}

// Mask identifies one of the 8 standard data-masking patterns, or -1 to mean
// "not yet chosen" / "choose automatically".
type Mask int8

// maskAuto requests automatic mask selection (spec §4.8); a Code returned
// by the encoder never carries it (Deserialize leaves it in place).
const maskAuto Mask = -1
