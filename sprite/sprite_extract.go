/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"

  "github.com/InfinityTools/go-logging"
)

// FrameSource provides sequential access to the frames of an animation or image sequence. Implementations
// exist for image files, animated GIF files and video files (see graphics and video packages).
type FrameSource interface {
  // FrameCount returns the total number of frames provided by the source.
  FrameCount() int
  // Frame returns the frame image at the given index.
  Frame(index int) (image.Image, error)
}

// Extract pulls frames from the given source and appends them to the sprite's frame list, honoring the
// configured start and end trim, frame stride and frame limit. Trimmed frames are skipped entirely, the stride
// is applied to the remaining range. Returns an error state if trimming leaves no frames to extract.
// Operation is skipped if error state is set.
func (s *Sprite) Extract(src FrameSource) {
  if s.err != nil { return }
  if src == nil { s.err = fmt.Errorf("Extract: Source is undefined"); return }

  total := src.FrameCount()
  if total <= 0 { s.err = fmt.Errorf("Extract: Source contains no frames"); return }
  if s.extract.startTrim + s.extract.endTrim >= total {
    s.err = fmt.Errorf("Extract: Trim settings exceed available frames (%d + %d >= %d)",
                       s.extract.startTrim, s.extract.endTrim, total)
    return
  }

  first, last := s.extract.startTrim, total - s.extract.endTrim
  msg := fmt.Sprintf("Extracting frames %d to %d", first, last - 1)
  logging.Log(msg)
  added := 0
  for idx := first; idx < last; idx++ {
    if (idx - first) % s.extract.frameStride != 0 { continue }
    if s.extract.maxFrames > 0 && added >= s.extract.maxFrames { break }
    img, err := src.Frame(idx)
    if err != nil {
      logging.OverridePrefix(false, false, false).Logln("")
      s.err = fmt.Errorf("Extract: Frame %d: %v", idx, err)
      return
    }
    s.frames = append(s.frames, ToNRGBA(img))
    logging.LogProgressDot(idx - first, last - first, 79 - len(msg))
    added++
  }
  logging.OverridePrefix(false, false, false).Logln("")
}
