/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "runtime"
  "sync"

  "github.com/InfinityTools/go-logging"
  "github.com/pbenner/threadpool"
)

// Compositor applies the full background removal pipeline to individual frames. All stages are optional and
// driven by the associated configuration: color matching, mask refinement, edge bleed suppression, region
// masking and resizing.
type Compositor struct {
  key     KeyConfig
  matcher Matcher
}

// NewCompositor returns a Compositor for the given keying configuration, using the built-in color window
// matcher. See NewCompositorWith for supplying a custom Matcher.
func NewCompositor(key KeyConfig) *Compositor {
  return NewCompositorWith(key, NewMatcher(key.targetColors, key.useHSV))
}

// NewCompositorWith returns a Compositor that uses the given Matcher for background detection. The target color
// set of the configuration is ignored in that case.
func NewCompositorWith(key KeyConfig, matcher Matcher) *Compositor {
  return &Compositor{key: key, matcher: matcher}
}

// Process applies the background removal pipeline to a single frame and returns the resulting frame.
// The input frame is not modified. Pipeline stages are applied in this order:
//   1. Region masking. Erased regions don't contribute colors to later stages.
//   2. Background detection over the color channels, producing a mask.
//   3. Mask refinement (edge smoothing).
//   4. Alpha combination: resulting alpha is the minimum of mask alpha and the frame's existing alpha.
//   5. Edge bleed suppression.
//   6. Resizing to the output dimensions, if set.
func (c *Compositor) Process(frame *image.NRGBA) (*image.NRGBA, error) {
  if frame == nil { return nil, fmt.Errorf("Frame is undefined") }

  out := cloneFrame(frame)
  ApplyRegions(out, c.key.regions)
  if c.matcher != nil && (len(c.key.targetColors) > 0 || !isWindowMatcher(c.matcher)) {
    mask := MatchMask(out, c.matcher)
    alpha := RefineMask(mask, c.key.edgeSmoothing)
    combineAlpha(out, alpha)
    SuppressBleed(out, c.key.bleedPasses)
  }

  if c.key.outputWidth > 0 && c.key.outputHeight > 0 {
    out = ResizeFrame(out, c.key.outputWidth, c.key.outputHeight)
  }
  return out, nil
}

// Used internally. Returns whether the matcher is the built-in window matcher, which is a no-op without targets.
func isWindowMatcher(m Matcher) bool {
  _, ok := m.(*windowMatcher)
  return ok
}

// combineAlpha merges the given alpha mask into the frame's alpha channel, keeping the smaller of the two
// values per pixel. Used internally.
func combineAlpha(frame *image.NRGBA, alpha *image.Gray) {
  if frame == nil || alpha == nil { return }
  w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
  for y := 0; y < h; y++ {
    srcOfs := y * alpha.Stride
    dstOfs := y * frame.Stride + 3
    for x := 0; x < w; x++ {
      if alpha.Pix[srcOfs] < frame.Pix[dstOfs] { frame.Pix[dstOfs] = alpha.Pix[srcOfs] }
      srcOfs++
      dstOfs += 4
    }
  }
}

// cloneFrame returns a deep copy of the given frame. Used internally.
func cloneFrame(frame *image.NRGBA) *image.NRGBA {
  out := image.NewNRGBA(image.Rect(0, 0, frame.Bounds().Dx(), frame.Bounds().Dy()))
  if out.Stride == frame.Stride {
    copy(out.Pix, frame.Pix)
  } else {
    for y := 0; y < frame.Bounds().Dy(); y++ {
      copy(out.Pix[y * out.Stride:y * out.Stride + out.Stride], frame.Pix[y * frame.Stride:])
    }
  }
  return out
}


// ProcessAll applies the background removal pipeline to all frames of the sprite, using the current keying
// settings. Frames are replaced by their processed versions. Operation is skipped if error state is set.
func (s *Sprite) ProcessAll() {
  s.ProcessAllWith(NewMatcher(s.key.targetColors, s.key.useHSV))
}


// ProcessAllWith applies the background removal pipeline to all frames of the sprite, using the given Matcher
// for background detection. Frames are replaced by their processed versions. Operation is skipped if error
// state is set.
func (s *Sprite) ProcessAllWith(matcher Matcher) {
  if s.err != nil { return }
  if len(s.frames) == 0 { return }

  comp := NewCompositorWith(s.key, matcher)
  tmp := make([]*image.NRGBA, len(s.frames))

  msg := fmt.Sprintf("Processing %d frame(s)", len(s.frames))
  logging.Log(msg)
  if GetMultiThreaded() {
    // Multi-threaded operation
    numThreads := runtime.NumCPU()
    pool := threadpool.New(numThreads, len(s.frames))
    g := pool.NewJobGroup()
    var m sync.Mutex
    progressIdx := 0
    for frameIdx, inFrame := range s.frames {
      idx := frameIdx
      frm := inFrame
      err := pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
        if erf() != nil { return nil }
        outFrame, err := comp.Process(frm)
        if err != nil { return fmt.Errorf("Frame %d: %v", idx, err) }
        tmp[idx] = outFrame
        func() {
          m.Lock()
          defer m.Unlock()
          logging.LogProgressDot(progressIdx, len(s.frames), 79 - len(msg))
          progressIdx++
        }()
        return nil
      })
      if err != nil { s.err = err; break }
    }
    if s.err == nil { s.err = pool.Wait(g) }
    pool.Stop()
    if s.err != nil { logging.OverridePrefix(false, false, false).Logln(""); return }
  } else {
    // Single-threaded operation
    for frameIdx, inFrame := range s.frames {
      outFrame, err := comp.Process(inFrame)
      if err != nil {
        logging.OverridePrefix(false, false, false).Logln("")
        s.err = fmt.Errorf("Frame %d: %v", frameIdx, err)
        return
      }
      tmp[frameIdx] = outFrame
      logging.LogProgressDot(frameIdx, len(s.frames), 79 - len(msg))
    }
  }
  logging.OverridePrefix(false, false, false).Logln("")
  copy(s.frames, tmp)
}
