/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "bytes"
  "image/color"
  "testing"

  "github.com/kettek/apng"
)

func TestEncodeApng(t *testing.T) {
  s := CreateNew()
  s.SetFrameDuration(80)
  s.SetLoopCount(5)
  s.AddFrame(makeFrame(2, 2, color.NRGBA{255, 0, 0, 255}))
  s.AddFrame(makeFrame(2, 2, color.NRGBA{0, 255, 0, 120}))

  var buf bytes.Buffer
  s.EncodeApng(&buf)
  if s.Error() != nil { t.Fatalf("EncodeApng: %v", s.Error()) }

  anim, err := apng.DecodeAll(&buf)
  if err != nil { t.Fatalf("DecodeAll: %v", err) }
  if len(anim.Frames) != 2 { t.Fatalf("Frame count = %d, want 2", len(anim.Frames)) }
  if anim.LoopCount != 5 { t.Errorf("LoopCount = %d, want 5", anim.LoopCount) }
  if anim.Frames[0].DelayNumerator != 80 || anim.Frames[0].DelayDenominator != 1000 {
    t.Errorf("Delay = %d/%d, want 80/1000", anim.Frames[0].DelayNumerator, anim.Frames[0].DelayDenominator)
  }

  // partial transparency survives the round trip
  _, _, _, a := anim.Frames[1].Image.At(0, 0).RGBA()
  if a >> 8 != 120 { t.Errorf("Alpha = %d, want 120", a >> 8) }
}

func TestEncodeApngBoomerang(t *testing.T) {
  s := CreateNew()
  s.SetBoomerang(true)
  s.AddFrame(makeFrame(1, 1, color.NRGBA{255, 0, 0, 255}))
  s.AddFrame(makeFrame(1, 1, color.NRGBA{0, 255, 0, 255}))
  s.AddFrame(makeFrame(1, 1, color.NRGBA{0, 0, 255, 255}))

  var buf bytes.Buffer
  s.EncodeApng(&buf)
  if s.Error() != nil { t.Fatalf("EncodeApng: %v", s.Error()) }

  anim, err := apng.DecodeAll(&buf)
  if err != nil { t.Fatalf("DecodeAll: %v", err) }
  if len(anim.Frames) != 4 { t.Errorf("Frame count = %d, want 4", len(anim.Frames)) }
}

func TestEncodeApngNoFrames(t *testing.T) {
  s := CreateNew()
  var buf bytes.Buffer
  s.EncodeApng(&buf)
  if s.Error() == nil { t.Error("Expected error without frames") }
}
