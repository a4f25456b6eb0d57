// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package jscanvas

import (
	"fmt"
	"image/color"
	"strconv"
)

// CSSColor formats c as a CSS color. Opaque colors use the #rrggbb form,
// translucent ones rgba(). A nil color is black.
func CSSColor(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	alpha := strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, alpha)
}
