/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "image"
  "image/color"
  "testing"

  "github.com/InfinityTools/go-logging"
)

func init() {
  logging.SetVerbosity(logging.ERROR)
}

// Returns a test frame filled with the given colors in row order.
func makeFrameColors(w, h int, cols []color.NRGBA) *image.NRGBA {
  frame := image.NewNRGBA(image.Rect(0, 0, w, h))
  for i, col := range cols {
    frame.SetNRGBA(i % w, i / w, col)
  }
  return frame
}

// Returns a uniformly colored test frame.
func makeFrame(w, h int, col color.NRGBA) *image.NRGBA {
  frame := image.NewNRGBA(image.Rect(0, 0, w, h))
  for ofs := 0; ofs < len(frame.Pix); ofs += 4 {
    frame.Pix[ofs] = col.R
    frame.Pix[ofs+1] = col.G
    frame.Pix[ofs+2] = col.B
    frame.Pix[ofs+3] = col.A
  }
  return frame
}

func TestCreateNewDefaults(t *testing.T) {
  s := CreateNew()
  if s.Error() != nil { t.Fatalf("Unexpected error state: %v", s.Error()) }
  if s.GetFrameLength() != 0 { t.Errorf("GetFrameLength() = %d, want 0", s.GetFrameLength()) }
  if s.GetFrameStride() != 1 { t.Errorf("GetFrameStride() = %d, want 1", s.GetFrameStride()) }
  if s.GetFrameDuration() != 100 { t.Errorf("GetFrameDuration() = %d, want 100", s.GetFrameDuration()) }
  if s.GetBleedPasses() != 2 { t.Errorf("GetBleedPasses() = %d, want 2", s.GetBleedPasses()) }
  if s.GetSpeed() != 3 { t.Errorf("GetSpeed() = %d, want 3", s.GetSpeed()) }
  if s.GetQuantizer() != QUANTIZER_QUALITY { t.Errorf("GetQuantizer() = %d, want %d", s.GetQuantizer(), QUANTIZER_QUALITY) }
  if min, max := s.GetQuality(); min != 80 || max != 100 {
    t.Errorf("GetQuality() = (%d, %d), want (80, 100)", min, max)
  }
}

func TestSetterValidation(t *testing.T) {
  tests := []struct {
    name string
    op   func(s *Sprite)
  }{
    {"SetEdgeSmoothing negative", func(s *Sprite) { s.SetEdgeSmoothing(-1) }},
    {"SetBleedPasses negative", func(s *Sprite) { s.SetBleedPasses(-1) }},
    {"SetOutputSize mixed zero", func(s *Sprite) { s.SetOutputSize(100, 0) }},
    {"SetOutputSize too big", func(s *Sprite) { s.SetOutputSize(65536, 100) }},
    {"SetFrameStride zero", func(s *Sprite) { s.SetFrameStride(0) }},
    {"SetMaxFrames negative", func(s *Sprite) { s.SetMaxFrames(-1) }},
    {"SetTrim negative", func(s *Sprite) { s.SetTrim(-1, 0) }},
    {"SetFrameDuration zero", func(s *Sprite) { s.SetFrameDuration(0) }},
    {"SetLoopCount negative", func(s *Sprite) { s.SetLoopCount(-1) }},
    {"SetQuantizer unsupported", func(s *Sprite) { s.SetQuantizer(42) }},
    {"SetQuality out of range", func(s *Sprite) { s.SetQuality(-1, 50) }},
    {"SetSpeed out of range", func(s *Sprite) { s.SetSpeed(11) }},
    {"SetDither out of range", func(s *Sprite) { s.SetDither(1.5) }},
    {"AddTargetColor tolerance", func(s *Sprite) { s.AddTargetColor(color.NRGBA{0, 255, 0, 255}, 151) }},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      s := CreateNew()
      tt.op(s)
      if s.Error() == nil { t.Error("Expected error state") }
      s.ClearError()
      if s.Error() != nil { t.Errorf("Error state persists after ClearError: %v", s.Error()) }
    })
  }
}

func TestSetQualitySwap(t *testing.T) {
  s := CreateNew()
  s.SetQuality(90, 40)
  if s.Error() != nil { t.Fatalf("Unexpected error state: %v", s.Error()) }
  if min, max := s.GetQuality(); min != 40 || max != 90 {
    t.Errorf("GetQuality() = (%d, %d), want (40, 90)", min, max)
  }
}

func TestErrorStateSkipsOperations(t *testing.T) {
  s := CreateNew()
  s.SetSpeed(0)
  if s.Error() == nil { t.Fatal("Expected error state") }

  if idx := s.AddFrame(makeFrame(2, 2, color.NRGBA{255, 0, 0, 255})); idx != 0 {
    t.Errorf("AddFrame() = %d, want 0", idx)
  }
  if s.GetFrameLength() != 0 { t.Errorf("GetFrameLength() = %d, want 0", s.GetFrameLength()) }

  s.ClearError()
  if s.GetFrameLength() != 0 { t.Error("Frame was added despite error state") }
}

func TestFrameManagement(t *testing.T) {
  s := CreateNew()
  colors := []color.NRGBA{ {255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255} }
  for i, col := range colors {
    if idx := s.AddFrame(makeFrame(2, 2, col)); idx != i {
      t.Fatalf("AddFrame() = %d, want %d", idx, i)
    }
  }
  if s.GetFrameLength() != 3 { t.Fatalf("GetFrameLength() = %d, want 3", s.GetFrameLength()) }

  s.DeleteFrame(1)
  if s.Error() != nil { t.Fatalf("Unexpected error state: %v", s.Error()) }
  if s.GetFrameLength() != 2 { t.Fatalf("GetFrameLength() = %d, want 2", s.GetFrameLength()) }

  // remaining frames are red and blue
  if f := s.GetFrameImage(0); f.Pix[0] != 255 || f.Pix[2] != 0 {
    t.Error("Frame 0 should be red")
  }
  if f := s.GetFrameImage(1); f.Pix[0] != 0 || f.Pix[2] != 255 {
    t.Error("Frame 1 should be blue")
  }

  s.DeleteFrame(5)
  if s.Error() == nil { t.Error("Expected error state for out of range index") }
}

func TestTargetColors(t *testing.T) {
  s := CreateNew()
  s.AddTargetColor(color.NRGBA{0, 255, 0, 255}, 40)
  s.AddTargetColor(color.NRGBA{255, 0, 255, 255}, 0)
  if s.Error() != nil { t.Fatalf("Unexpected error state: %v", s.Error()) }
  if s.GetTargetColorLength() != 2 { t.Fatalf("GetTargetColorLength() = %d, want 2", s.GetTargetColorLength()) }

  tc := s.GetTargetColor(0)
  if tc.Color.G != 255 || tc.Tolerance != 40 {
    t.Errorf("GetTargetColor(0) = %v, want green with tolerance 40", tc)
  }

  s.ClearTargetColors()
  if s.GetTargetColorLength() != 0 { t.Error("ClearTargetColors left entries behind") }
}

func TestToNRGBA(t *testing.T) {
  // image.NRGBA input is passed through unchanged
  src := makeFrame(2, 2, color.NRGBA{1, 2, 3, 4})
  if out := ToNRGBA(src); out != src {
    t.Error("ToNRGBA should return NRGBA input unchanged")
  }
  if out := ToNRGBA(nil); out != nil {
    t.Error("ToNRGBA(nil) should return nil")
  }

  // premultiplied input is converted
  rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
  rgba.SetRGBA(0, 0, color.RGBA{128, 0, 0, 128})
  out := ToNRGBA(rgba)
  if out.Pix[3] != 128 { t.Errorf("Alpha = %d, want 128", out.Pix[3]) }
  if out.Pix[0] < 250 { t.Errorf("Red = %d, want unpremultiplied value near 255", out.Pix[0]) }
}

func TestNRGBAConversion(t *testing.T) {
  r, g, b, a := NRGBA(color.NRGBA{10, 20, 30, 40})
  if r != 10 || g != 20 || b != 30 || a != 40 {
    t.Errorf("NRGBA() = (%d, %d, %d, %d), want (10, 20, 30, 40)", r, g, b, a)
  }

  r, _, _, a = NRGBA(color.RGBA{128, 0, 0, 128})
  if a != 128 { t.Errorf("Alpha = %d, want 128", a) }
  if r < 250 { t.Errorf("Red = %d, want unpremultiplied value near 255", r) }
}
