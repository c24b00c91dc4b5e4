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
	"errors"
	"fmt"
)

// Sentinel error kinds, spec §7. All encoder failures are returned, never
// thrown through a panic that escapes the package boundary - see the
// recover() in encodeSegments (shared by EncodeText and EncodeBytes) that
// turns an internal assertion failure into ErrInternalInvariant.
var (
	// ErrCapacityExceeded: the payload does not fit at version 40 for the
	// requested ECC level, or does not fit at an explicitly forced version.
	ErrCapacityExceeded = errors.New("qrencode: payload exceeds capacity")

	// ErrInvalidInput: the version options describe an empty or out-of-range
	// version range. No option forces an encoding mode, so payload
	// characters never cause this error.
	ErrInvalidInput = errors.New("qrencode: input invalid for requested mode")

	// ErrUnsupportedECI: an ECI designator names a code page this module
	// does not carry a transcoding table for.
	ErrUnsupportedECI = errors.New("qrencode: unsupported ECI designator")

	// ErrCorruptSerialization: deserialization found a bad signature, an
	// implausible side length, a truncated stream, or a decompressed
	// payload over the 10MiB ceiling.
	ErrCorruptSerialization = errors.New("qrencode: corrupt serialized matrix")

	// ErrInternalInvariant: a post-condition the encoder itself is
	// supposed to guarantee did not hold. This indicates a bug in this
	// package, not a caller error.
	ErrInternalInvariant = errors.New("qrencode: internal invariant violated")
)

// invariantPanic is the payload of panics raised by assertInvariant. It is
// recovered and converted to ErrInternalInvariant in encodeSegments, the
// shared tail of EncodeText and EncodeBytes, and nowhere else, so that a
// genuinely unexpected panic (e.g. a nil pointer bug not anticipated by an
// assertInvariant call) still propagates instead of being silently
// swallowed.
type invariantPanic struct{ msg string }

func (p invariantPanic) Error() string { return p.msg }

// assertInvariant panics with an invariantPanic if cond is false. Used for
// post-conditions the encoder computes and should never violate (bit-stream
// length mismatches, unpopulated non-reserved cells, etc.) - see spec §7.
func assertInvariant(cond bool, msg string) {
	if !cond {
		panic(invariantPanic{msg: msg})
	}
}

// recoverInvariant turns a recovered invariantPanic into an
// ErrInternalInvariant-wrapped error and stores it through errp. Any other
// recovered value is re-panicked so unrelated bugs are not masked.
func recoverInvariant(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ip, ok := r.(invariantPanic); ok {
		*errp = errorfInvariant(ip.msg)
		return
	}
	panic(r)
}

func errorfInvariant(msg string) error {
	return fmt.Errorf("qrencode: %s: %w", msg, ErrInternalInvariant)
}
