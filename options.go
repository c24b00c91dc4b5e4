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

// encodeConfig holds the resolved options for one EncodeText/EncodeBytes
// call. forceMask is
// intentionally unexported and untouched by any exported Option: spec §6
// states mask selection is automatic and the caller cannot override it. The
// package's own tests reach it directly (same package) to exercise all 8
// masks deterministically; that is not part of the public contract.
type encodeConfig struct {
	forceUTF8     bool
	utf8BOM       bool
	eci           ECI
	forcedVersion Version // 0 means "automatic".
	minVersion    Version
	boostECL      bool
	forceMask     Mask
}

func defaultEncodeConfig() encodeConfig {
	return encodeConfig{
		eci:        ECIDefault,
		minVersion: MinVersion,
		boostECL:   true,
		forceMask:  maskAuto,
	}
}

// Option configures an EncodeText/EncodeBytes call (spec §6).
type Option func(*encodeConfig)

// WithForceUTF8 forces Byte-mode payloads through UTF-8 transcoding (and an
// ECI=26 header) even when the text is pure ASCII and would otherwise be
// classified Numeric/Alphanumeric. See SPEC_FULL.md's Open Question
// decision: forcing UTF-8 always selects Byte mode outright, it does not
// merely change how an already-Byte-mode payload is transcoded.
func WithForceUTF8(force bool) Option {
	return func(c *encodeConfig) { c.forceUTF8 = force }
}

// WithUTF8BOM prepends EF BB BF to UTF-8-transcoded Byte-mode data.
func WithUTF8BOM(bom bool) Option {
	return func(c *encodeConfig) { c.utf8BOM = bom }
}

// WithECI requests an explicit ECI code page, forcing Byte mode the same
// way WithForceUTF8 does.
func WithECI(eci ECI) Option {
	return func(c *encodeConfig) { c.eci = eci }
}

// WithForcedVersion pins the symbol to an exact version instead of
// searching for the smallest one that fits; ErrCapacityExceeded is
// returned if the payload does not fit at that version.
func WithForcedVersion(v Version) Option {
	return func(c *encodeConfig) { c.forcedVersion = v }
}

// WithMinVersion sets a floor on the searched version range without
// pinning an exact version (kept from the teacher's segmentEncoder).
func WithMinVersion(v Version) Option {
	return func(c *encodeConfig) { c.minVersion = v }
}

// WithBoostECL controls whether the ECC level is silently raised when the
// chosen version has spare capacity at a higher level (default true,
// matching the teacher's WithBoostECL). A payload builder that hard-requires
// a specific ECC (spec §9, e.g. Swiss-QR's ECC=M) should pass
// WithBoostECL(false) so its requested level is never overridden.
func WithBoostECL(boost bool) Option {
	return func(c *encodeConfig) { c.boostECL = boost }
}
