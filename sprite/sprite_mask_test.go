/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
  "math"
  "testing"
)

func TestRefineMaskInvert(t *testing.T) {
  mask := image.NewGray(image.Rect(0, 0, 2, 1))
  mask.Pix[0] = 255
  mask.Pix[1] = 0

  alpha := RefineMask(mask, 0)
  if alpha == nil { t.Fatal("RefineMask returned nil") }
  if alpha.Pix[0] != 0 { t.Errorf("Background pixel alpha = %d, want 0", alpha.Pix[0]) }
  if alpha.Pix[1] != 255 { t.Errorf("Foreground pixel alpha = %d, want 255", alpha.Pix[1]) }

  // input mask must remain unchanged
  if mask.Pix[0] != 255 || mask.Pix[1] != 0 { t.Error("Input mask was modified") }
}

func TestRefineMaskNil(t *testing.T) {
  if alpha := RefineMask(nil, 2); alpha != nil { t.Error("RefineMask(nil) should return nil") }
}

func TestRefineMaskUniform(t *testing.T) {
  // A uniform mask must stay uniform through blur and morphology.
  tests := []struct {
    name     string
    value    byte
    expected byte
  }{
    {"all background", 255, 0},
    {"all foreground", 0, 255},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      mask := image.NewGray(image.Rect(0, 0, 8, 8))
      for i := range mask.Pix { mask.Pix[i] = tt.value }
      alpha := RefineMask(mask, 3)
      for i, v := range alpha.Pix {
        if v != tt.expected {
          t.Fatalf("Pixel %d = %d, want %d", i, v, tt.expected)
        }
      }
    })
  }
}

func TestRefineMaskSmoothing(t *testing.T) {
  // A hard edge produces graded alpha values after smoothing.
  mask := image.NewGray(image.Rect(0, 0, 8, 8))
  for y := 0; y < 8; y++ {
    for x := 0; x < 4; x++ {
      mask.Pix[y * mask.Stride + x] = 255
    }
  }

  alpha := RefineMask(mask, 2)
  graded := false
  for _, v := range alpha.Pix {
    if v > 0 && v < 255 { graded = true; break }
  }
  if !graded { t.Error("Expected graded alpha values along the smoothed edge") }
}

func TestGaussKernel(t *testing.T) {
  for radius := 1; radius <= 4; radius++ {
    kernel := gaussKernel(radius)
    if len(kernel) != radius * 2 + 1 {
      t.Fatalf("Kernel size = %d, want %d", len(kernel), radius * 2 + 1)
    }

    sum := 0.0
    for _, v := range kernel { sum += v }
    if math.Abs(sum - 1.0) > 1e-9 { t.Errorf("Kernel sum = %v, want 1.0", sum) }

    for i := 0; i < radius; i++ {
      if kernel[i] != kernel[len(kernel) - 1 - i] { t.Errorf("Kernel is not symmetric at index %d", i) }
    }
    if kernel[radius] < kernel[0] { t.Error("Kernel peak should be at the center") }
  }
}

func TestMorph3x3(t *testing.T) {
  src := image.NewGray(image.Rect(0, 0, 3, 3))
  src.Pix[4] = 255  // single bright center pixel

  dilated := morph3x3(src, true)
  for i, v := range dilated.Pix {
    if v != 255 { t.Errorf("Dilated pixel %d = %d, want 255", i, v) }
  }

  eroded := morph3x3(dilated, false)
  if eroded.Pix[4] != 255 { t.Errorf("Closed center pixel = %d, want 255", eroded.Pix[4]) }
}

func TestClampByte(t *testing.T) {
  tests := []struct {
    in  float64
    out byte
  }{
    {-10.0, 0}, {0.0, 0}, {127.4, 127}, {127.5, 128}, {255.0, 255}, {400.0, 255},
  }
  for _, tt := range tests {
    if v := clampByte(tt.in); v != tt.out {
      t.Errorf("clampByte(%v) = %d, want %d", tt.in, v, tt.out)
    }
  }
}
