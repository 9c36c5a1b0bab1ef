/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
)

// SuppressBleed reduces background color fringes along sprite edges. For each pass, semi-transparent pixels
// (alpha below 200) take over the color of the most opaque pixel in their 3x3 neighborhood, provided that
// neighbor is more opaque than the pixel itself. Alpha values remain unchanged throughout, only color channels
// are replaced. Fully transparent and fully opaque areas are unaffected aside from serving as color donors.
//
// passes specifies how often the dilation is applied. Specify 0 to skip bleed suppression. The frame is modified
// in place. Does nothing for a nil frame.
func SuppressBleed(frame *image.NRGBA, passes int) {
  if frame == nil || passes <= 0 { return }

  w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
  src := frame.Pix
  tmp := make([]byte, len(src))

  for pass := 0; pass < passes; pass++ {
    copy(tmp, src)
    for y := 0; y < h; y++ {
      ofs := y * frame.Stride
      for x := 0; x < w; x++ {
        a := tmp[ofs + 3]
        if a < bleedAlphaThreshold {
          // locate the most opaque neighbor
          best := int(a)
          bestOfs := -1
          for dy := -1; dy <= 1; dy++ {
            sy := y + dy
            if sy < 0 || sy >= h { continue }
            for dx := -1; dx <= 1; dx++ {
              sx := x + dx
              if sx < 0 || sx >= w { continue }
              nofs := sy * frame.Stride + sx * 4
              if int(tmp[nofs + 3]) > best { best = int(tmp[nofs + 3]); bestOfs = nofs }
            }
          }
          if bestOfs >= 0 {
            src[ofs] = tmp[bestOfs]
            src[ofs + 1] = tmp[bestOfs + 1]
            src[ofs + 2] = tmp[bestOfs + 2]
          }
        }
        ofs += 4
      }
    }
  }
}
