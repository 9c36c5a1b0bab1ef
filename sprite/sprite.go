/*
Package sprite implements the frame processing pipeline that turns raw video or image frames
into transparent-background sprite sheets and animations.

Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "image/color"
  "image/draw"
)

const (
  // Available palette quantizer types for GIF export
  QUANTIZER_QUALITY = 0    // libimagequant-based quantization (higher quality, tunable)
  QUANTIZER_FAST    = 1    // median cut quantization (pure Go, deterministic)

  // Alpha threshold below which a pixel is treated as transparent during GIF export
  gifAlphaThreshold = 128

  // Alpha threshold below which edge bleed suppression replaces pixel color
  bleedAlphaThreshold = 200
)

// Stores chroma keying and compositing settings for a processing run.
type KeyConfig struct {
  targetColors  []TargetColor // set of background colors to remove
  useHSV        bool          // whether HSV matching augments the RGB window test
  edgeSmoothing int           // blur kernel radius for mask refinement
  bleedPasses   int           // number of dilation passes for edge bleed suppression
  regions       []Region      // rectangular regions whose alpha is forced to 0
  outputWidth   int           // optional output width override (0: keep source size)
  outputHeight  int           // optional output height override (0: keep source size)
}

// Stores frame extraction settings for a processing run.
type ExtractConfig struct {
  frameStride int       // keep every n-th eligible frame
  maxFrames   int       // stop after this many kept frames (0: unlimited)
  startTrim   int       // number of frames to skip at the start
  endTrim     int       // number of frames to skip at the end
}

// Stores sprite sheet layout settings.
type SheetConfig struct {
  columns int           // number of grid columns (0: single row)
  padding int           // padding between cells in pixels
}

// Stores animation export settings (GIF and APNG).
type AnimConfig struct {
  durationMS  int       // per-frame duration in milliseconds
  loopCount   int       // number of repetitions (0: infinite)
  boomerang   bool      // whether to append the reversed frame sequence for a seamless loop
  quantizer   int       // see QUANTIZER_xxx constants
  qualityMin  int       // imagequant minimum quality [0, 100]
  qualityMax  int       // imagequant maximum quality [0, 100]
  speed       int       // imagequant speed setting [1, 10]
  dither      float32   // dither value [0.0, 1.0]
  sortFlags   int       // palette sorting type and options (see palette package)
}

// Main sprite structure. Holds processed frames and all export settings.
type Sprite struct {
  frames  []*image.NRGBA

  // internal settings
  err     error         // stores error from last sprite-related operation
  key     KeyConfig
  extract ExtractConfig
  sheet   SheetConfig
  anim    AnimConfig
}


// CreateNew initializes an empty Sprite structure and returns a pointer to it.
func CreateNew() *Sprite {
  s := Sprite{ frames: make([]*image.NRGBA, 0),
               err: nil,
               key: KeyConfig{ targetColors: make([]TargetColor, 0), useHSV: false, edgeSmoothing: 0,
                               bleedPasses: 2, regions: make([]Region, 0), outputWidth: 0, outputHeight: 0 },
               extract: ExtractConfig{ frameStride: 1, maxFrames: 0, startTrim: 0, endTrim: 0 },
               sheet: SheetConfig{ columns: 0, padding: 0 },
               anim: AnimConfig{ durationMS: 100, loopCount: 0, boomerang: false, quantizer: QUANTIZER_QUALITY,
                                 qualityMin: 80, qualityMax: 100, speed: 3, dither: 0.0, sortFlags: 0 },
             }
  return &s
}


// Error returns the error state of the most recent operation on the Sprite. Use ClearError() function to clear the
// current error state.
func (s *Sprite) Error() error {
  return s.err
}


// ClearError clears the error state from the last Sprite operation. This function must be called for subsequent
// operations to work correctly.
//
// Use this function with care. Functions may leave the Sprite object in an incomplete state after returning
// unsuccessfully.
func (s *Sprite) ClearError() {
  s.err = nil
}


// GetFrameLength returns the number of frames in the current sprite structure. Operation is skipped if error state
// is set.
func (s *Sprite) GetFrameLength() int {
  if s.err != nil { return 0 }
  return len(s.frames)
}


// GetFrameImage returns the image attached to the frame at the given index. Operation is skipped if error state
// is set.
func (s *Sprite) GetFrameImage(index int) *image.NRGBA {
  if s.err != nil { return nil }
  if index < 0 || index >= len(s.frames) { s.err = fmt.Errorf("GetFrameImage: Index out of range (%d)", index); return nil }
  return s.frames[index]
}


// SetFrame replaces the frame at the given frame index with the provided image. Operation is skipped if error state
// is set.
func (s *Sprite) SetFrame(index int, img image.Image) {
  if s.err != nil { return }
  if index < 0 || index >= len(s.frames) { s.err = fmt.Errorf("SetFrame: Index out of range (%d)", index); return }
  if img == nil { s.err = fmt.Errorf("SetFrame: Frame is undefined"); return }
  s.frames[index] = ToNRGBA(img)
}


// AddFrame appends a new frame to the list of frames. Returns the index of the added frame.
// Operation is skipped if error state is set.
func (s *Sprite) AddFrame(img image.Image) int {
  if s.err != nil { return 0 }
  if img == nil { s.err = fmt.Errorf("AddFrame: Frame is undefined"); return 0 }
  retVal := len(s.frames)
  s.frames = append(s.frames, ToNRGBA(img))
  return retVal
}


// DeleteFrame removes the frame entry at the given index. Operation is skipped if error state is set.
func (s *Sprite) DeleteFrame(index int) {
  if s.err != nil { return }
  if index < 0 || index >= len(s.frames) { s.err = fmt.Errorf("DeleteFrame: Index out of range (%d)", index); return }

  for idx := index + 1; idx < len(s.frames); idx++ {
    s.frames[idx - 1] = s.frames[idx]
  }
  s.frames = s.frames[:len(s.frames) - 1]
}


// GetTargetColorLength returns the current number of target background colors. Operation is skipped if error state
// is set.
func (s *Sprite) GetTargetColorLength() int {
  if s.err != nil { return 0 }
  return len(s.key.targetColors)
}


// GetTargetColor returns the target background color definition at the specified index. Operation is skipped if
// error state is set.
func (s *Sprite) GetTargetColor(index int) TargetColor {
  if s.err != nil { return TargetColor{} }
  if index < 0 || index >= len(s.key.targetColors) { s.err = fmt.Errorf("GetTargetColor: Index out of range (%d)", index); return TargetColor{} }
  return s.key.targetColors[index]
}


// AddTargetColor appends a new target background color. Tolerance must be in range [0, 150].
// Returns the index of the added color definition. Operation is skipped if error state is set.
func (s *Sprite) AddTargetColor(col color.Color, tolerance int) int {
  if s.err != nil { return 0 }
  if col == nil { s.err = fmt.Errorf("AddTargetColor: Color is undefined"); return 0 }
  if tolerance < 0 || tolerance > 150 { s.err = fmt.Errorf("AddTargetColor: Tolerance out of range (%d)", tolerance); return 0 }

  r, g, b, _ := NRGBA(col)
  retVal := len(s.key.targetColors)
  s.key.targetColors = append(s.key.targetColors, TargetColor{Color: color.RGBA{r, g, b, 255}, Tolerance: tolerance})
  return retVal
}


// ClearTargetColors removes all target background color definitions. Operation is skipped if error state is set.
func (s *Sprite) ClearTargetColors() {
  if s.err != nil { return }
  s.key.targetColors = s.key.targetColors[:0]
}


// GetHSVMatching returns whether target colors are additionally matched in HSV space. Operation is skipped if error
// state is set.
func (s *Sprite) GetHSVMatching() bool {
  if s.err != nil { return false }
  return s.key.useHSV
}


// SetHSVMatching sets whether target colors are additionally matched in HSV space. Operation is skipped if error
// state is set.
func (s *Sprite) SetHSVMatching(set bool) {
  if s.err != nil { return }
  s.key.useHSV = set
}


// GetEdgeSmoothing returns the blur radius used when refining the keying mask. Operation is skipped if error state
// is set.
func (s *Sprite) GetEdgeSmoothing() int {
  if s.err != nil { return 0 }
  return s.key.edgeSmoothing
}


// SetEdgeSmoothing sets the blur radius used when refining the keying mask. The effective blur kernel size is
// radius*2+1. Operation is skipped if error state is set.
func (s *Sprite) SetEdgeSmoothing(radius int) {
  if s.err != nil { return }
  if radius < 0 { s.err = fmt.Errorf("SetEdgeSmoothing: Radius out of range (%d)", radius); return }
  s.key.edgeSmoothing = radius
}


// GetBleedPasses returns the number of dilation passes applied during edge bleed suppression. Operation is skipped
// if error state is set.
func (s *Sprite) GetBleedPasses() int {
  if s.err != nil { return 0 }
  return s.key.bleedPasses
}


// SetBleedPasses sets the number of dilation passes applied during edge bleed suppression. Specify 0 to disable
// bleed suppression. Operation is skipped if error state is set.
func (s *Sprite) SetBleedPasses(passes int) {
  if s.err != nil { return }
  if passes < 0 { s.err = fmt.Errorf("SetBleedPasses: Value out of range (%d)", passes); return }
  s.key.bleedPasses = passes
}


// GetRegionLength returns the current number of masked regions. Operation is skipped if error state is set.
func (s *Sprite) GetRegionLength() int {
  if s.err != nil { return 0 }
  return len(s.key.regions)
}


// GetRegion returns the masked region at the specified index. Operation is skipped if error state is set.
func (s *Sprite) GetRegion(index int) Region {
  if s.err != nil { return Region{} }
  if index < 0 || index >= len(s.key.regions) { s.err = fmt.Errorf("GetRegion: Index out of range (%d)", index); return Region{} }
  return s.key.regions[index]
}


// AddRegion appends a new masked region. Region coordinates may exceed frame bounds and are clamped during
// processing. Returns the index of the added region. Operation is skipped if error state is set.
func (s *Sprite) AddRegion(region Region) int {
  if s.err != nil { return 0 }
  retVal := len(s.key.regions)
  s.key.regions = append(s.key.regions, region)
  return retVal
}


// ClearRegions removes all masked region definitions. Operation is skipped if error state is set.
func (s *Sprite) ClearRegions() {
  if s.err != nil { return }
  s.key.regions = s.key.regions[:0]
}


// GetOutputSize returns the output frame dimension override. Both values are 0 if frames retain their source size.
// Operation is skipped if error state is set.
func (s *Sprite) GetOutputSize() (width, height int) {
  if s.err != nil { return }
  width, height = s.key.outputWidth, s.key.outputHeight
  return
}


// SetOutputSize sets an output frame dimension override. Set both values to 0 to retain the source size.
// Operation is skipped if error state is set.
func (s *Sprite) SetOutputSize(width, height int) {
  if s.err != nil { return }
  if width < 0 || height < 0 || (width == 0) != (height == 0) { s.err = fmt.Errorf("SetOutputSize: Size out of range (w=%d,h=%d)", width, height); return }
  if width > 65535 || height > 65535 { s.err = fmt.Errorf("SetOutputSize: Size too big (w=%d,h=%d)", width, height); return }
  s.key.outputWidth, s.key.outputHeight = width, height
}


// GetFrameStride returns the stride applied when extracting frames from a frame source. Operation is skipped if
// error state is set.
func (s *Sprite) GetFrameStride() int {
  if s.err != nil { return 0 }
  return s.extract.frameStride
}


// SetFrameStride sets the stride applied when extracting frames from a frame source. A stride of n keeps every
// n-th eligible frame. Operation is skipped if error state is set.
func (s *Sprite) SetFrameStride(stride int) {
  if s.err != nil { return }
  if stride < 1 { s.err = fmt.Errorf("SetFrameStride: Stride out of range (%d)", stride); return }
  s.extract.frameStride = stride
}


// GetMaxFrames returns the maximum number of frames kept during extraction. 0 indicates no limit.
// Operation is skipped if error state is set.
func (s *Sprite) GetMaxFrames() int {
  if s.err != nil { return 0 }
  return s.extract.maxFrames
}


// SetMaxFrames sets the maximum number of frames kept during extraction. Specify 0 to remove the limit.
// Operation is skipped if error state is set.
func (s *Sprite) SetMaxFrames(max int) {
  if s.err != nil { return }
  if max < 0 { s.err = fmt.Errorf("SetMaxFrames: Value out of range (%d)", max); return }
  s.extract.maxFrames = max
}


// GetTrim returns the number of frames skipped at the start and end of a frame source during extraction.
// Operation is skipped if error state is set.
func (s *Sprite) GetTrim() (start, end int) {
  if s.err != nil { return }
  start, end = s.extract.startTrim, s.extract.endTrim
  return
}


// SetTrim sets the number of frames skipped at the start and end of a frame source during extraction.
// Operation is skipped if error state is set.
func (s *Sprite) SetTrim(start, end int) {
  if s.err != nil { return }
  if start < 0 { s.err = fmt.Errorf("SetTrim: Start trim out of range (%d)", start); return }
  if end < 0 { s.err = fmt.Errorf("SetTrim: End trim out of range (%d)", end); return }
  s.extract.startTrim, s.extract.endTrim = start, end
}


// GetSheetLayout returns the sprite sheet grid layout. columns of 0 indicates a single row.
// Operation is skipped if error state is set.
func (s *Sprite) GetSheetLayout() (columns, padding int) {
  if s.err != nil { return }
  columns, padding = s.sheet.columns, s.sheet.padding
  return
}


// SetSheetLayout sets the sprite sheet grid layout. Specify columns of 0 to arrange all frames in a single row.
// Operation is skipped if error state is set.
func (s *Sprite) SetSheetLayout(columns, padding int) {
  if s.err != nil { return }
  if columns < 0 { columns = 0 }
  if padding < 0 { s.err = fmt.Errorf("SetSheetLayout: Padding out of range (%d)", padding); return }
  s.sheet.columns, s.sheet.padding = columns, padding
}


// GetFrameDuration returns the per-frame duration in milliseconds used for animated exports. Operation is skipped
// if error state is set.
func (s *Sprite) GetFrameDuration() int {
  if s.err != nil { return 0 }
  return s.anim.durationMS
}


// SetFrameDuration sets the per-frame duration in milliseconds used for animated exports. Note that the GIF format
// stores durations in centiseconds. The value is rounded to the nearest 10 ms on GIF export.
// Operation is skipped if error state is set.
func (s *Sprite) SetFrameDuration(ms int) {
  if s.err != nil { return }
  if ms < 1 { s.err = fmt.Errorf("SetFrameDuration: Duration out of range (%d)", ms); return }
  s.anim.durationMS = ms
}


// GetLoopCount returns the number of animation repetitions. 0 indicates infinite looping. Operation is skipped if
// error state is set.
func (s *Sprite) GetLoopCount() int {
  if s.err != nil { return 0 }
  return s.anim.loopCount
}


// SetLoopCount sets the number of animation repetitions. Specify 0 for infinite looping. Operation is skipped if
// error state is set.
func (s *Sprite) SetLoopCount(count int) {
  if s.err != nil { return }
  if count < 0 { s.err = fmt.Errorf("SetLoopCount: Value out of range (%d)", count); return }
  s.anim.loopCount = count
}


// GetBoomerang returns whether animated exports append the reversed frame sequence to produce a seamless
// forward-backward loop. Operation is skipped if error state is set.
func (s *Sprite) GetBoomerang() bool {
  if s.err != nil { return false }
  return s.anim.boomerang
}


// SetBoomerang sets whether animated exports append the reversed frame sequence to produce a seamless
// forward-backward loop. Operation is skipped if error state is set.
func (s *Sprite) SetBoomerang(set bool) {
  if s.err != nil { return }
  s.anim.boomerang = set
}


// GetQuantizer returns the palette quantizer type used for GIF export. See QUANTIZER_xxx constants.
// Operation is skipped if error state is set.
func (s *Sprite) GetQuantizer() int {
  if s.err != nil { return 0 }
  return s.anim.quantizer
}


// SetQuantizer sets the palette quantizer type used for GIF export. Only QUANTIZER_QUALITY and QUANTIZER_FAST are
// supported. Operation is skipped if error state is set.
func (s *Sprite) SetQuantizer(quantizer int) {
  if s.err != nil { return }
  if quantizer != QUANTIZER_QUALITY && quantizer != QUANTIZER_FAST { s.err = fmt.Errorf("Unsupported quantizer type: %d", quantizer); return }
  s.anim.quantizer = quantizer
}


// GetQuality returns the minimum and maximum quality bounds used to generate the GIF output palette.
// Operation is skipped if error state is set.
func (s *Sprite) GetQuality() (min, max int) {
  if s.err != nil { return }
  min = s.anim.qualityMin
  max = s.anim.qualityMax
  return
}


// SetQuality sets the minimum and maximum bounds of accepted quality used to generate the GIF output palette.
// Values must be in range [0, 100] where 0 is worst quality and 100 is best quality. Operation is skipped if error
// state is set.
func (s *Sprite) SetQuality(min, max int) {
  if s.err != nil { return }
  if min < 0 || min > 100 { s.err = fmt.Errorf("SetQuality: MinQuality out of range (%d)", min); return }
  if max < 0 || max > 100 { s.err = fmt.Errorf("SetQuality: MaxQuality out of range (%d)", max); return }
  if max < min { min, max = max, min }
  s.anim.qualityMin = min
  s.anim.qualityMax = max
}


// GetSpeed returns the accuracy at which the generated palette will be applied to GIF output frames.
// Operation is skipped if error state is set.
func (s *Sprite) GetSpeed() int {
  if s.err != nil { return 0 }
  return s.anim.speed
}


// SetSpeed sets the accuracy at which the generated palette will be applied to GIF output frames.
// Values must be in range [1, 10]. Default: 3. Operation is skipped if error state is set.
func (s *Sprite) SetSpeed(value int) {
  if s.err != nil { return }
  if value < 1 || value > 10 { s.err = fmt.Errorf("SetSpeed: Value out of range (%d)", value); return }
  s.anim.speed = value
}


// GetDither returns the amount of dither to be applied when generating palettized GIF frames.
// Operation is skipped if error state is set.
func (s *Sprite) GetDither() float32 {
  if s.err != nil { return 0.0 }
  return s.anim.dither
}


// SetDither sets the amount of dither to be applied when generating palettized GIF frames. Values must be in range
// [0.0, 1.0] where 0.0 is no dither and 1.0 is strongest dither. Operation is skipped if error state is set.
func (s *Sprite) SetDither(value float32) {
  if s.err != nil { return }
  if value < 0.0 || value > 1.0 { s.err = fmt.Errorf("SetDither: Value out of range (%v)", value); return }
  s.anim.dither = value
}


// GetPaletteSortFlags returns the currently defined type and options for sorting GIF palette entries.
// See the palette package for type and flag constants. Operation is skipped if error state is set.
func (s *Sprite) GetPaletteSortFlags() int {
  if s.err != nil { return 0 }
  return s.anim.sortFlags
}

// SetPaletteSortFlags defines type and options for sorting GIF palette entries. See the palette package for type
// and flag constants. Operation is skipped if error state is set.
func (s *Sprite) SetPaletteSortFlags(flags int) {
  if s.err != nil { return }
  s.anim.sortFlags = flags
}


// ToNRGBA converts the given image into an image of image.NRGBA type. The image is returned unchanged if it is
// already of type image.NRGBA. Returns nil for a nil image.
func ToNRGBA(img image.Image) *image.NRGBA {
  if img == nil { return nil }
  if imgNRGBA, ok := img.(*image.NRGBA); ok { return imgNRGBA }
  imgOut := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
  draw.Draw(imgOut, imgOut.Bounds(), img, img.Bounds().Min, draw.Src)
  return imgOut
}


// NRGBA converts a premultiplied color back to a normalized color with each component in range [0, 255].
func NRGBA(col color.Color) (r, g, b, a byte) {
  if nrgba, ok := col.(color.NRGBA); ok {
    r, g, b, a = nrgba.R, nrgba.G, nrgba.B, nrgba.A
  } else {
    pr, pg, pb, pa := col.RGBA()
    pa >>= 8
    if pa > 0 {
      pr >>= 8
      pr *= 0xff
      pr /= pa
      pg >>= 8
      pg *= 0xff
      pg /= pa
      pb >>= 8
      pb *= 0xff
      pb /= pa
    }
    r = byte(pr)
    g = byte(pg)
    b = byte(pb)
    a = byte(pa)
  }
  return
}
