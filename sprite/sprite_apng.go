/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "io"

  "github.com/InfinityTools/go-logging"
  "github.com/kettek/apng"
)

// EncodeApng encodes all frames of the sprite into an animated PNG and writes the result to the given Writer.
// Unlike the GIF format, APNG preserves the full 8 bit alpha channel of the frames. Frame duration and loop
// count use the same settings as GIF export. Operation is skipped if error state is set.
func (s *Sprite) EncodeApng(w io.Writer) {
  if s.err != nil { return }
  if w == nil { s.err = fmt.Errorf("EncodeApng: Writer is undefined"); return }
  if len(s.frames) == 0 { s.err = fmt.Errorf("EncodeApng: No frames available"); return }

  frames := s.frames
  if s.anim.boomerang { frames = ExpandBoomerang(frames) }

  anim := apng.APNG{ Frames: make([]apng.Frame, len(frames)), LoopCount: uint(s.anim.loopCount) }
  for i, frame := range frames {
    anim.Frames[i].Image = frame
    anim.Frames[i].DelayNumerator = uint16(s.anim.durationMS)
    anim.Frames[i].DelayDenominator = 1000
    anim.Frames[i].DisposeOp = apng.DISPOSE_OP_BACKGROUND
    anim.Frames[i].BlendOp = apng.BLEND_OP_SOURCE
  }

  logging.Logf("Encoding APNG animation (%d frames)\n", len(frames))
  s.err = apng.Encode(w, anim)
}
