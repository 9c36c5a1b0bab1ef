/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "archive/zip"
  "bytes"
  "image/color"
  "image/png"
  "testing"
)

func TestExportArchive(t *testing.T) {
  s := CreateNew()
  s.AddFrame(makeFrame(2, 2, color.NRGBA{255, 0, 0, 255}))
  s.AddFrame(makeFrame(2, 2, color.NRGBA{0, 255, 0, 255}))
  s.AddFrame(makeFrame(2, 2, color.NRGBA{0, 0, 255, 255}))

  var buf bytes.Buffer
  s.ExportArchive(&buf)
  if s.Error() != nil { t.Fatalf("ExportArchive: %v", s.Error()) }

  zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
  if err != nil { t.Fatalf("zip.NewReader: %v", err) }
  if len(zr.File) != 3 { t.Fatalf("File count = %d, want 3", len(zr.File)) }

  wantNames := []string{"frame_000.png", "frame_001.png", "frame_002.png"}
  for i, f := range zr.File {
    if f.Name != wantNames[i] { t.Errorf("File %d = %q, want %q", i, f.Name, wantNames[i]) }
  }

  // the archived frames decode back to the source images
  rc, err := zr.File[1].Open()
  if err != nil { t.Fatalf("Open: %v", err) }
  defer rc.Close()
  img, err := png.Decode(rc)
  if err != nil { t.Fatalf("Decode: %v", err) }
  if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
    t.Errorf("Size = %dx%d, want 2x2", img.Bounds().Dx(), img.Bounds().Dy())
  }
  if _, g, _, _ := img.At(0, 0).RGBA(); g != 0xffff {
    t.Error("Second frame should be green")
  }
}

func TestExportArchiveNoFrames(t *testing.T) {
  s := CreateNew()
  var buf bytes.Buffer
  s.ExportArchive(&buf)
  if s.Error() == nil { t.Error("Expected error without frames") }
}
