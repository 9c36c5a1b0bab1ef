/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "image/gif"
  "io"

  "github.com/InfinityTools/go-logging"
)

// EncodeGif encodes all frames of the sprite into an animated GIF and writes the result to the given Writer.
// All frames share a single palette, quantized by the configured quantizer. Palette index 0 is reserved for the
// transparent entry; pixels with an alpha value of 128 or below are written as transparent. Partial transparency
// is not representable in the GIF format, more opaque pixels are written fully opaque.
// Operation is skipped if error state is set.
func (s *Sprite) EncodeGif(w io.Writer) {
  if s.err != nil { return }
  if w == nil { s.err = fmt.Errorf("EncodeGif: Writer is undefined"); return }
  if len(s.frames) == 0 { s.err = fmt.Errorf("EncodeGif: No frames available"); return }

  frames := s.frames
  if s.anim.boomerang { frames = ExpandBoomerang(frames) }

  // Removing partial transparency before quantization. The GIF format only supports binary transparency.
  flat := make([]*image.NRGBA, len(frames))
  for i, f := range frames {
    flat[i] = flattenFrame(f)
  }

  imgList, _, err := s.generatePalette(flat)
  if err != nil { s.err = err; return }

  anim := gif.GIF{ Image: imgList,
                   Delay: make([]int, len(imgList)),
                   Disposal: make([]byte, len(imgList)),
                   LoopCount: gifLoopCount(s.anim.loopCount),
                 }
  delay := (s.anim.durationMS + 5) / 10
  if delay < 1 { delay = 1 }
  for i := range imgList {
    anim.Delay[i] = delay
    anim.Disposal[i] = gif.DisposalBackground
  }

  logging.Logf("Encoding GIF animation (%d frames)\n", len(imgList))
  s.err = gif.EncodeAll(w, &anim)
}


// ExpandBoomerang returns the frame sequence extended by the reversed sequence, excluding the first and last
// frame of the input to avoid duplicated frames at the loop boundaries. Sequences shorter than 3 frames are
// returned unchanged. The input slice is not modified.
func ExpandBoomerang(frames []*image.NRGBA) []*image.NRGBA {
  if len(frames) < 3 { return frames }
  out := make([]*image.NRGBA, 0, len(frames) * 2 - 2)
  out = append(out, frames...)
  for idx := len(frames) - 2; idx > 0; idx-- {
    out = append(out, frames[idx])
  }
  return out
}


// Used internally. Returns a copy of the frame with alpha reduced to fully transparent or fully opaque.
// Transparent pixels have their color channels zeroed out so they collapse into a single palette entry.
func flattenFrame(frame *image.NRGBA) *image.NRGBA {
  out := cloneFrame(frame)
  for ofs := 0; ofs < len(out.Pix); ofs += 4 {
    if out.Pix[ofs + 3] <= gifAlphaThreshold {
      out.Pix[ofs] = 0
      out.Pix[ofs + 1] = 0
      out.Pix[ofs + 2] = 0
      out.Pix[ofs + 3] = 0
    } else {
      out.Pix[ofs + 3] = 255
    }
  }
  return out
}


// Used internally. Translates the repetition count into the GIF loop count convention, where 0 loops forever
// and -1 plays the animation only once.
func gifLoopCount(count int) int {
  switch {
    case count == 0: return 0
    case count == 1: return -1
    default:         return count - 1
  }
}
