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
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// eciKind distinguishes "caller didn't ask for ECI" from an explicit code
// page request.
type eciKind int8

const (
	eciDefault eciKind = iota
	eciExplicit
)

// ECI selects the Extended Channel Interpretation code page for Byte-mode
// payloads (spec §3 "ECI"). The zero value, ECIDefault, means "no ECI
// header; interpret Byte mode as Latin-1."
type ECI struct {
	kind  eciKind
	value int
}

// ECIDefault requests no ECI header (the classic Byte-mode/Latin-1
// behavior).
var ECIDefault = ECI{kind: eciDefault}

// Well-known ECI designators used by QR Code producers in the wild.
var (
	ECIISO88591 = ECI{kind: eciExplicit, value: 3}
	ECIISO88592 = ECI{kind: eciExplicit, value: 4}
	ECIUTF8     = ECI{kind: eciExplicit, value: 26}
)

// ECIExplicit builds an ECI value for any registered ECI designator number.
func ECIExplicit(value int) ECI {
	return ECI{kind: eciExplicit, value: value}
}

// IsDefault reports whether this is the zero/"no ECI" value.
func (e ECI) IsDefault() bool {
	return e.kind == eciDefault
}

// eciEncoding resolves an explicit ECI designator to a text encoding able to
// transcode a UTF-8 Go string into that code page's byte sequence. Returns
// ErrUnsupportedECI for designators this module doesn't carry a table for.
func eciEncoding(value int) (encoding.Encoding, error) {
	switch value {
	case 3:
		return charmap.ISO8859_1, nil
	case 4:
		return charmap.ISO8859_2, nil
	case 26:
		return unicode.UTF8, nil
	default:
		return nil, fmt.Errorf("qrencode: ECI designator %d: %w", value, ErrUnsupportedECI)
	}
}

// transcode re-encodes text (Go's native UTF-8) into the byte sequence for
// the requested ECI designator.
func transcode(text string, value int) ([]byte, error) {
	enc, err := eciEncoding(value)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, fmt.Errorf("qrencode: transcoding to ECI %d: %w", value, ErrUnsupportedECI)
	}
	return []byte(out), nil
}
