/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package graphics

import (
  "bytes"
  "image"
  "image/color"
  "image/gif"
  "image/png"
  "testing"

  "github.com/InfinityTools/go-logging"
  "golang.org/x/image/bmp"
)

func init() {
  logging.SetVerbosity(logging.ERROR)
}

func TestImportPNG(t *testing.T) {
  img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
  for i := range img.Pix { img.Pix[i] = 0xff }
  var buf bytes.Buffer
  if err := png.Encode(&buf, img); err != nil { t.Fatal(err) }

  g := Import(bytes.NewReader(buf.Bytes()))
  if g.Error() != nil { t.Fatalf("Import() error: %v", g.Error()) }
  if g.GetImageType() != TYPE_PNG { t.Errorf("GetImageType() = %d, want TYPE_PNG", g.GetImageType()) }
  if g.FrameCount() != 1 { t.Errorf("FrameCount() = %d, want 1", g.FrameCount()) }

  frame, err := g.Frame(0)
  if err != nil { t.Fatalf("Frame(0) error: %v", err) }
  if frame.Bounds().Dx() != 4 || frame.Bounds().Dy() != 3 {
    t.Errorf("Frame bounds = %v, want 4x3", frame.Bounds())
  }
  if _, ok := frame.(*image.RGBA); !ok {
    t.Errorf("Frame(0) should return *image.RGBA, got %T", frame)
  }
}

func TestImportBMP(t *testing.T) {
  img := image.NewRGBA(image.Rect(0, 0, 2, 2))
  var buf bytes.Buffer
  if err := bmp.Encode(&buf, img); err != nil { t.Fatal(err) }

  g := Import(bytes.NewReader(buf.Bytes()))
  if g.Error() != nil { t.Fatalf("Import() error: %v", g.Error()) }
  if g.GetImageType() != TYPE_BMP { t.Errorf("GetImageType() = %d, want TYPE_BMP", g.GetImageType()) }
  if g.FrameCount() != 1 { t.Errorf("FrameCount() = %d, want 1", g.FrameCount()) }
}

func TestImportGIFAnimated(t *testing.T) {
  pal := color.Palette{color.RGBA{0, 0, 0, 0}, color.RGBA{255, 0, 0, 255}, color.RGBA{0, 255, 0, 255}}
  frame0 := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
  frame1 := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
  for i := range frame0.Pix { frame0.Pix[i] = 1 }
  for i := range frame1.Pix { frame1.Pix[i] = 2 }

  var buf bytes.Buffer
  data := &gif.GIF{
    Image:    []*image.Paletted{frame0, frame1},
    Delay:    []int{10, 10},
    Disposal: []byte{gif.DisposalBackground, gif.DisposalBackground},
    Config:   image.Config{ColorModel: pal, Width: 4, Height: 4},
  }
  if err := gif.EncodeAll(&buf, data); err != nil { t.Fatal(err) }

  g := Import(bytes.NewReader(buf.Bytes()))
  if g.Error() != nil { t.Fatalf("Import() error: %v", g.Error()) }
  if g.GetImageType() != TYPE_GIF { t.Errorf("GetImageType() = %d, want TYPE_GIF", g.GetImageType()) }
  if g.FrameCount() != 2 { t.Fatalf("FrameCount() = %d, want 2", g.FrameCount()) }

  f0, err := g.Frame(0)
  if err != nil { t.Fatal(err) }
  if r, _, _, _ := f0.At(1, 1).RGBA(); r >> 8 < 250 { t.Error("Frame 0 should be red") }

  // disposal mode clears the canvas between frames
  f1, err := g.Frame(1)
  if err != nil { t.Fatal(err) }
  if _, gr, _, _ := f1.At(1, 1).RGBA(); gr >> 8 < 250 { t.Error("Frame 1 should be green") }
}

func TestImportUnknownFormat(t *testing.T) {
  g := Import(bytes.NewReader([]byte("this is not an image format......")))
  if g.Error() == nil { t.Error("Import() should fail on unrecognized data") }
  if g.GetImageType() != TYPE_UNKNOWN { t.Error("GetImageType() should return TYPE_UNKNOWN") }
  if g.FrameCount() != 0 { t.Errorf("FrameCount() = %d, want 0", g.FrameCount()) }

  // error state blocks frame access until cleared
  if _, err := g.Frame(0); err == nil { t.Error("Frame(0) should fail in error state") }
  g.ClearError()
  if g.Error() != nil { t.Error("ClearError() should reset the error state") }
}

func TestFrameIndexOutOfRange(t *testing.T) {
  img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
  var buf bytes.Buffer
  if err := png.Encode(&buf, img); err != nil { t.Fatal(err) }

  g := Import(bytes.NewReader(buf.Bytes()))
  if _, err := g.Frame(1); err == nil { t.Error("Frame(1) should fail for single-frame image") }
  if _, err := g.Frame(-1); err == nil { t.Error("Frame(-1) should fail") }
}

func TestImportTruncated(t *testing.T) {
  g := Import(bytes.NewReader([]byte{0x42, 0x4d}))
  if g.Error() == nil { t.Error("Import() should fail on truncated input") }
}
