/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "testing"
)

// A frame source producing single-pixel frames with the frame index stored in the red channel.
type fakeSource struct {
  frames int
}

func (f fakeSource) FrameCount() int {
  return f.frames
}

func (f fakeSource) Frame(index int) (image.Image, error) {
  if index < 0 || index >= f.frames { return nil, fmt.Errorf("Index out of range: %d", index) }
  img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
  img.Pix[0] = byte(index)
  img.Pix[3] = 255
  return img, nil
}

// Returns the source frame indices stored in the sprite's frames.
func frameIndices(s *Sprite) []int {
  indices := make([]int, s.GetFrameLength())
  for i := range indices {
    indices[i] = int(s.GetFrameImage(i).Pix[0])
  }
  return indices
}

func TestExtract(t *testing.T) {
  s := CreateNew()
  s.Extract(fakeSource{frames: 4})
  if s.Error() != nil { t.Fatalf("Extract: %v", s.Error()) }
  if got := frameIndices(s); len(got) != 4 || got[0] != 0 || got[3] != 3 {
    t.Errorf("Extracted frames = %v, want [0 1 2 3]", got)
  }
}

func TestExtractTrim(t *testing.T) {
  s := CreateNew()
  s.SetTrim(1, 2)
  s.Extract(fakeSource{frames: 6})
  if s.Error() != nil { t.Fatalf("Extract: %v", s.Error()) }
  want := []int{1, 2, 3}
  got := frameIndices(s)
  if len(got) != len(want) { t.Fatalf("Extracted frames = %v, want %v", got, want) }
  for i := range want {
    if got[i] != want[i] { t.Errorf("Extracted frames = %v, want %v", got, want); break }
  }
}

func TestExtractStride(t *testing.T) {
  s := CreateNew()
  s.SetTrim(1, 1)
  s.SetFrameStride(2)
  s.Extract(fakeSource{frames: 6})
  if s.Error() != nil { t.Fatalf("Extract: %v", s.Error()) }
  // frames 1 to 4 remain after trimming, stride keeps 1 and 3
  want := []int{1, 3}
  got := frameIndices(s)
  if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
    t.Errorf("Extracted frames = %v, want %v", got, want)
  }
}

func TestExtractMaxFrames(t *testing.T) {
  s := CreateNew()
  s.SetMaxFrames(3)
  s.Extract(fakeSource{frames: 10})
  if s.Error() != nil { t.Fatalf("Extract: %v", s.Error()) }
  if s.GetFrameLength() != 3 { t.Errorf("GetFrameLength() = %d, want 3", s.GetFrameLength()) }
}

func TestExtractTrimExceedsFrames(t *testing.T) {
  s := CreateNew()
  s.SetTrim(3, 3)
  s.Extract(fakeSource{frames: 6})
  if s.Error() == nil { t.Error("Expected error when trim settings leave no frames") }
}

func TestExtractInvalidSource(t *testing.T) {
  s := CreateNew()
  s.Extract(nil)
  if s.Error() == nil { t.Error("Expected error for nil source") }

  s = CreateNew()
  s.Extract(fakeSource{frames: 0})
  if s.Error() == nil { t.Error("Expected error for empty source") }
}

func TestExtractAppends(t *testing.T) {
  // consecutive Extract calls append to the existing frame list
  s := CreateNew()
  s.Extract(fakeSource{frames: 2})
  s.Extract(fakeSource{frames: 3})
  if s.Error() != nil { t.Fatalf("Extract: %v", s.Error()) }
  if s.GetFrameLength() != 5 { t.Errorf("GetFrameLength() = %d, want 5", s.GetFrameLength()) }
}
