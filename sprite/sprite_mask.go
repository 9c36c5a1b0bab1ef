/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
  "math"
)

// RefineMask converts a background mask into an alpha mask and optionally smoothes mask edges.
// A mask value of 255 in the input indicates a background pixel. The returned alpha mask stores 0 for fully
// transparent and 255 for fully opaque pixels, with graded values along smoothed edges.
//
// radius specifies the blur radius used for edge smoothing. The effective blur kernel size is radius*2+1.
// Specify 0 to skip smoothing entirely. The smoothed mask is additionally closed with a 3x3 morphological
// operation to remove isolated speckles inside opaque areas. The input mask is not modified.
// Returns nil for a nil mask.
func RefineMask(mask *image.Gray, radius int) *image.Gray {
  if mask == nil { return nil }
  if radius < 0 { radius = 0 }

  b := mask.Bounds()
  alpha := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
  for ofs := 0; ofs < len(mask.Pix); ofs++ {
    alpha.Pix[ofs] = 255 - mask.Pix[ofs]
  }
  if radius == 0 { return alpha }

  kernel := gaussKernel(radius)
  alpha = blurSeparable(alpha, kernel)
  alpha = closeGray(alpha)
  return alpha
}

// gaussKernel computes a normalized one-dimensional Gaussian kernel of size radius*2+1. Sigma is derived from the
// kernel size. Used internally.
func gaussKernel(radius int) []float64 {
  size := radius * 2 + 1
  sigma := 0.3 * (float64(size - 1) * 0.5 - 1.0) + 0.8
  if sigma < 0.5 { sigma = 0.5 }

  kernel := make([]float64, size)
  sum := 0.0
  for i := 0; i < size; i++ {
    d := float64(i - radius)
    kernel[i] = math.Exp(-d * d / (2.0 * sigma * sigma))
    sum += kernel[i]
  }
  for i := 0; i < size; i++ {
    kernel[i] /= sum
  }
  return kernel
}

// blurSeparable applies the given one-dimensional kernel horizontally and vertically. Border pixels are handled
// by clamping sample coordinates to the mask bounds. Used internally.
func blurSeparable(src *image.Gray, kernel []float64) *image.Gray {
  radius := len(kernel) / 2
  w, h := src.Bounds().Dx(), src.Bounds().Dy()

  tmp := image.NewGray(image.Rect(0, 0, w, h))
  for y := 0; y < h; y++ {
    ofs := y * src.Stride
    for x := 0; x < w; x++ {
      sum := 0.0
      for k := -radius; k <= radius; k++ {
        sx := x + k
        if sx < 0 { sx = 0 }
        if sx >= w { sx = w - 1 }
        sum += float64(src.Pix[ofs + sx]) * kernel[k + radius]
      }
      tmp.Pix[ofs + x] = clampByte(sum)
    }
  }

  dst := image.NewGray(image.Rect(0, 0, w, h))
  for y := 0; y < h; y++ {
    for x := 0; x < w; x++ {
      sum := 0.0
      for k := -radius; k <= radius; k++ {
        sy := y + k
        if sy < 0 { sy = 0 }
        if sy >= h { sy = h - 1 }
        sum += float64(tmp.Pix[sy * tmp.Stride + x]) * kernel[k + radius]
      }
      dst.Pix[y * dst.Stride + x] = clampByte(sum)
    }
  }
  return dst
}

// closeGray applies a 3x3 grayscale closing (dilation followed by erosion). Used internally.
func closeGray(src *image.Gray) *image.Gray {
  return morph3x3(morph3x3(src, true), false)
}

// morph3x3 applies a 3x3 grayscale dilation (max == true) or erosion (max == false). Sample coordinates are
// clamped to the mask bounds. Used internally.
func morph3x3(src *image.Gray, max bool) *image.Gray {
  w, h := src.Bounds().Dx(), src.Bounds().Dy()
  dst := image.NewGray(image.Rect(0, 0, w, h))
  for y := 0; y < h; y++ {
    for x := 0; x < w; x++ {
      v := src.Pix[y * src.Stride + x]
      for dy := -1; dy <= 1; dy++ {
        sy := y + dy
        if sy < 0 { sy = 0 }
        if sy >= h { sy = h - 1 }
        for dx := -1; dx <= 1; dx++ {
          sx := x + dx
          if sx < 0 { sx = 0 }
          if sx >= w { sx = w - 1 }
          p := src.Pix[sy * src.Stride + sx]
          if max && p > v { v = p }
          if !max && p < v { v = p }
        }
      }
      dst.Pix[y * dst.Stride + x] = v
    }
  }
  return dst
}

// Used internally.
func clampByte(v float64) byte {
  if v <= 0.0 { return 0 }
  if v >= 255.0 { return 255 }
  return byte(v + 0.5)
}
