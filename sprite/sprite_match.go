/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
  "image/color"
)

// TargetColor defines a single background color to remove, together with a matching tolerance.
// Tolerance is expected to be in range [0, 150].
type TargetColor struct {
  Color     color.RGBA
  Tolerance int
}

// Matcher decides whether a pixel belongs to the background. MatchMask and Compositor accept custom
// implementations for keying strategies beyond the built-in color window test.
type Matcher interface {
  // Matches returns whether the given pixel color is considered background.
  Matches(r, g, b byte) bool
}

// windowMatcher is the built-in Matcher. It tests pixels against a set of target colors using a per-channel
// RGB window, optionally combined with an HSV window. Used internally.
type windowMatcher struct {
  targets []TargetColor
  useHSV  bool
}

// NewMatcher returns a Matcher that marks a pixel as background if it falls within the tolerance window of any
// of the given target colors. If useHSV is enabled a pixel matches when either the RGB window or the HSV window
// of a target color contains it.
func NewMatcher(targets []TargetColor, useHSV bool) Matcher {
  m := windowMatcher{targets: make([]TargetColor, len(targets)), useHSV: useHSV}
  copy(m.targets, targets)
  return &m
}

// Matches returns whether the given pixel color is considered background.
func (m *windowMatcher) Matches(r, g, b byte) bool {
  for _, t := range m.targets {
    if matchRGB(r, g, b, t) { return true }
    if m.useHSV && matchHSV(r, g, b, t) { return true }
  }
  return false
}

// matchRGB tests the pixel against the per-channel window [c - tolerance, c + tolerance] of the target color.
func matchRGB(r, g, b byte, t TargetColor) bool {
  if absInt(int(r) - int(t.Color.R)) > t.Tolerance { return false }
  if absInt(int(g) - int(t.Color.G)) > t.Tolerance { return false }
  if absInt(int(b) - int(t.Color.B)) > t.Tolerance { return false }
  return true
}

// matchHSV tests the pixel against a window in HSV space. Hue distance is circular, so hues close to the 0/180
// wrap point still match. The hue window is scaled down since hue covers only half the value range, with a
// lower limit of 15 degrees.
func matchHSV(r, g, b byte, t TargetColor) bool {
  h1, s1, v1 := rgbToHSV(r, g, b)
  h2, s2, v2 := rgbToHSV(t.Color.R, t.Color.G, t.Color.B)

  dh := absInt(h1 - h2)
  if dh > 90 { dh = 180 - dh }

  hueTol := t.Tolerance / 5
  if hueTol < 15 { hueTol = 15 }
  if dh > hueTol { return false }
  if absInt(s1 - s2) > t.Tolerance { return false }
  if absInt(v1 - v2) > t.Tolerance { return false }
  return true
}

// MatchMask computes a background mask for the given frame. A mask value of 255 indicates a background pixel,
// 0 indicates a foreground pixel. The frame itself is not modified. Returns nil for a nil frame or matcher.
func MatchMask(frame *image.NRGBA, matcher Matcher) *image.Gray {
  if frame == nil || matcher == nil { return nil }

  b := frame.Bounds()
  mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
  for y := 0; y < b.Dy(); y++ {
    srcOfs := y * frame.Stride
    dstOfs := y * mask.Stride
    for x := 0; x < b.Dx(); x++ {
      if matcher.Matches(frame.Pix[srcOfs], frame.Pix[srcOfs+1], frame.Pix[srcOfs+2]) {
        mask.Pix[dstOfs] = 255
      }
      srcOfs += 4
      dstOfs++
    }
  }
  return mask
}

// rgbToHSV converts a RGB color into HSV space. Hue is returned in range [0, 180), saturation and value in
// range [0, 255].
func rgbToHSV(r, g, b byte) (h, s, v int) {
  cmax := int(r)
  if int(g) > cmax { cmax = int(g) }
  if int(b) > cmax { cmax = int(b) }
  cmin := int(r)
  if int(g) < cmin { cmin = int(g) }
  if int(b) < cmin { cmin = int(b) }
  delta := cmax - cmin

  v = cmax
  if cmax > 0 { s = delta * 255 / cmax }
  if delta > 0 {
    switch cmax {
      case int(r): h = 30 * (int(g) - int(b)) / delta
      case int(g): h = 60 + 30 * (int(b) - int(r)) / delta
      default:     h = 120 + 30 * (int(r) - int(g)) / delta
    }
    if h < 0 { h += 180 }
  }
  return
}

// Used internally.
func absInt(v int) int {
  if v < 0 { return -v }
  return v
}
