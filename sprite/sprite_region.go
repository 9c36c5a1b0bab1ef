/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
)

// Region defines a rectangular frame area whose pixels are forced to full transparency, regardless of color
// matching results. Coordinates are in pixels, relative to the top-left frame corner. Width and Height may
// extend past the frame bounds; the affected area is clamped during application.
type Region struct {
  X, Y          int
  Width, Height int
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
  return image.Rect(r.X, r.Y, r.X + r.Width, r.Y + r.Height)
}

// IsEmpty returns whether the region covers no pixels.
func (r Region) IsEmpty() bool {
  return r.Width <= 0 || r.Height <= 0
}

// ApplyRegions sets the alpha value of all pixels inside the given regions to 0. Regions outside the frame
// bounds are ignored, partially overlapping regions are clamped. Color channels remain unchanged. The frame is
// modified in place. Does nothing for a nil frame.
func ApplyRegions(frame *image.NRGBA, regions []Region) {
  if frame == nil { return }

  b := image.Rect(0, 0, frame.Bounds().Dx(), frame.Bounds().Dy())
  for _, region := range regions {
    if region.IsEmpty() { continue }
    r := region.Rect().Intersect(b)
    for y := r.Min.Y; y < r.Max.Y; y++ {
      ofs := y * frame.Stride + r.Min.X * 4 + 3
      for x := r.Min.X; x < r.Max.X; x++ {
        frame.Pix[ofs] = 0
        ofs += 4
      }
    }
  }
}
