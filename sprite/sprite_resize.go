/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"

  xdraw "golang.org/x/image/draw"
)

// ResizeFrame scales the given frame to the specified dimensions. Catmull-Rom interpolation is used for
// downscaling and moderate upscaling. The source frame is not modified. Returns the source frame unchanged if
// the dimensions already match. Returns nil for a nil frame or non-positive dimensions.
func ResizeFrame(frame *image.NRGBA, width, height int) *image.NRGBA {
  if frame == nil { return nil }
  if width < 1 || height < 1 { return nil }
  if frame.Bounds().Dx() == width && frame.Bounds().Dy() == height { return frame }

  out := image.NewNRGBA(image.Rect(0, 0, width, height))
  xdraw.CatmullRom.Scale(out, out.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
  return out
}

// ResizeFrameFit scales the given frame to fit within the specified width while preserving the aspect ratio.
// Returns the source frame unchanged if the width already matches. Returns nil for a nil frame or non-positive
// width.
func ResizeFrameFit(frame *image.NRGBA, width int) *image.NRGBA {
  if frame == nil { return nil }
  if width < 1 { return nil }
  if frame.Bounds().Dx() == width { return frame }

  height := frame.Bounds().Dy() * width / frame.Bounds().Dx()
  if height < 1 { height = 1 }
  return ResizeFrame(frame, width, height)
}
