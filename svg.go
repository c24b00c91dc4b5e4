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
	"strings"
)

// ToSVGString is a single convenience rendering kept from the teacher
// library. It is not the renderer subsystem spec §1 scopes out (no PNG,
// BMP, PDF, PostScript or image-library integration lives here) - just the
// one cheap vector preview cmd/qrencode uses for its --open flag.
func (c *Code) ToSVGString(border int) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("qrencode: border must be non-negative")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", c.side+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < c.side; y++ {
		for x := 0; x < c.side; x++ {
			if c.modules[y][x] {
				if x != 0 || y != 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
