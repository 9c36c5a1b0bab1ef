/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "image/color"

  "github.com/InfinityTools/go-imagequant"
  "github.com/InfinityTools/go-logging"
  "github.com/ericpauley/go-quantize/quantize"
  "github.com/InfinityTools/spritemaker/palette"
)


// Used internally. Defers paletted frame generation to the selected quantizer.
func (s *Sprite) generatePalette(frames []*image.NRGBA) (imgList []*image.Paletted, pal color.Palette, err error) {
  logging.Logln("Starting palette generation")

  if s.anim.quantizer == QUANTIZER_FAST {
    imgList, pal, err = s.quantizeFramesFast(frames)
  } else {
    imgList, pal, err = s.quantizeFrames(frames)
  }
  if err != nil { return }

  logging.Logln("Finished palette generation")
  return
}


// Used internally. Generates a shared palette and paletted output frames via libimagequant.
// Index 0 of the returned palette is always the fully transparent entry.
func (s *Sprite) quantizeFrames(frames []*image.NRGBA) (imgList []*image.Paletted, pal color.Palette, err error) {
  att := imagequant.CreateAttributes()
  defer att.Release()

  // Initial quantization settings
  err = att.SetMaxColors(256)
  if err != nil { return }
  err = att.SetQuality(s.anim.qualityMin, s.anim.qualityMax)
  if err != nil { return }
  err = att.SetSpeed(s.anim.speed)
  if err != nil { return }

  // Quantization may fail if minimum quality is too high. Retrying with updated quality settings if needed.
  var qimgList []*imagequant.Image = nil
  var res *imagequant.Result = nil
  for {
    // Adding the fixed transparent color entry to the histogram
    hist := att.CreateHistogram()
    att.AddColorsToHistogram(hist, []imagequant.HistogramEntry{ imagequant.HistogramEntry{Color: color.RGBA{0, 0, 0, 0}, Count: 256} }, 0.0)

    // Preparing input frames
    logging.Log("Preparing input frames")
    qimgList = make([]*imagequant.Image, len(frames))
    for i, f := range frames {
      logging.LogProgressDot(i, len(frames), 79-22)  // 22 is length of prefixed string
      qimgList[i] = att.CreateImage(f, 0.0)
      if qimgList[i] == nil { err = fmt.Errorf("Unable to process input frame #%d", i); return }

      // Adding image to histogram
      err = att.AddImageToHistogram(hist, qimgList[i])
      if err != nil { return }
    }
    logging.OverridePrefix(false, false, false).Logln("")

    logging.Logf("Calculating output palette%s\n", logging.ProgressDot(0, 1, 79 - 26))

    res, err = att.QuantizeHistogram(hist)
    if qmin, qmax := att.GetQuality(); err == imagequant.ErrQualityTooLow && qmin > 0 {
      if qspeed := att.GetSpeed(); qspeed > 1 {
        att.SetSpeed(qspeed / 2)
      }
      if qmin >= 5 {
        qmin -= 5
      } else {
        qmin = 0
      }
      att.SetQuality(qmin, qmax)
      logging.Warnf("Quantization failed. Trying again with reduced quality: %d\n", qmin)
    } else {
      break
    }
  }
  if err != nil { return }

  // Making final adjustments
  err = att.SetDitheringLevel(res, s.anim.dither)
  if err != nil { return }

  // Creating paletted output frames
  logging.Log("Generating output frames")
  imgList = make([]*image.Paletted, len(qimgList))
  palSrc := att.GetPalette(res)
  if len(palSrc) == 0 { logging.Logln(""); err = fmt.Errorf("Error generating output palette"); return }

  // Moving the transparent entry to index 0 and sorting the remainder
  pal = normalizedPalette(palSrc)
  pal, _ = palette.Sort(pal, s.anim.sortFlags, 1)

  remap := remapColors(palSrc, pal)
  for i, qimg := range qimgList {
    logging.LogProgressDot(i, len(frames), 79-24)  // 24 is length of prefixed string
    var img image.Image
    img, err = att.WriteRemappedImage(res, qimg)
    if err != nil { logging.Logln(""); return }
    imgList[i] = remappedImage(img, remap)
  }
  logging.OverridePrefix(false, false, false).Logln("")

  return
}


// Used internally. Generates a shared palette and paletted output frames via median cut quantization.
// Produces deterministic results without cgo overhead, at the cost of palette quality.
// Index 0 of the returned palette is always the fully transparent entry.
func (s *Sprite) quantizeFramesFast(frames []*image.NRGBA) (imgList []*image.Paletted, pal color.Palette, err error) {
  // Sampling all frames at once for a shared palette
  q := quantize.MedianCutQuantizer{}
  colors := q.Quantize(make([]color.Color, 0, 255), compositeFrames(frames))

  // Reserving index 0 for the transparent entry
  pal = color.Palette{color.RGBA{0, 0, 0, 0}}
  for _, col := range colors {
    if len(pal) >= 256 { break }
    r, g, b, a := NRGBA(col)
    if a == 0 { continue }
    pal = append(pal, color.RGBA{r, g, b, 255})
  }
  pal, _ = palette.Sort(pal, s.anim.sortFlags, 1)

  logging.Log("Generating output frames")
  imgList = make([]*image.Paletted, len(frames))
  for i, f := range frames {
    logging.LogProgressDot(i, len(frames), 79-24)  // 24 is length of prefixed string
    imgList[i] = toPaletted(f, pal)
  }
  logging.OverridePrefix(false, false, false).Logln("")

  return
}


// Used internally. Draws all frames into a single image to provide a shared sample set for quantization.
func compositeFrames(frames []*image.NRGBA) *image.NRGBA {
  w, h := 0, 0
  for _, f := range frames {
    if f.Bounds().Dx() > w { w = f.Bounds().Dx() }
    h += f.Bounds().Dy()
  }
  out := image.NewNRGBA(image.Rect(0, 0, w, h))
  y := 0
  for _, f := range frames {
    for fy := 0; fy < f.Bounds().Dy(); fy++ {
      copy(out.Pix[(y + fy) * out.Stride:], f.Pix[fy * f.Stride:fy * f.Stride + f.Bounds().Dx() * 4])
    }
    y += f.Bounds().Dy()
  }
  return out
}


// Used internally. Maps frame pixels onto the given palette. Pixels at or below the transparency threshold are
// assigned the reserved transparent entry at index 0. Opaque pixels are matched against color entries only.
func toPaletted(src *image.NRGBA, pal color.Palette) *image.Paletted {
  dst := image.NewPaletted(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()), pal)
  cache := make(map[color.RGBA]byte)
  for y := 0; y < src.Bounds().Dy(); y++ {
    sOfs := y * src.Stride
    dOfs := y * dst.Stride
    for x := 0; x < src.Bounds().Dx(); x++ {
      a := src.Pix[sOfs + 3]
      if a <= gifAlphaThreshold {
        dst.Pix[dOfs] = 0
      } else {
        col := color.RGBA{src.Pix[sOfs], src.Pix[sOfs + 1], src.Pix[sOfs + 2], 255}
        idx, ok := cache[col]
        if !ok {
          idx = byte(1 + color.Palette(pal[1:]).Index(col))
          cache[col] = idx
        }
        dst.Pix[dOfs] = idx
      }
      sOfs += 4
      dOfs++
    }
  }
  return dst
}


// Used internally. Returns a reordered palette where index 0 contains the transparent entry.
func normalizedPalette(pal color.Palette) color.Palette {
  if pal == nil { return pal }
  palOut := make(color.Palette, len(pal))
  copy(palOut, pal)

  // Remapping transparent color entry
  idx := palOut.Index(color.RGBA{0, 0, 0, 0})
  if idx != 0 {
    palOut[0], palOut[idx] = palOut[idx], palOut[0]
  }

  return palOut
}


// Used internally. Returns a structure that remaps color order of palSrc to palDst.
func remapColors(palSrc, palDst color.Palette) palette.ColorMapping {
  if palSrc == nil { return nil }

  remapOut := make(palette.ColorMapping)
  for i := 0; i < len(palSrc); i++ {
    remapOut[i] = i
  }
  if palDst == nil { return remapOut }

  for i := 0; i < len(palSrc); i++ {
    if idx, ok := remapOut[i]; ok {
      newIdx := palDst.Index(palSrc[idx])
      remapOut[i] = newIdx
    }
  }

  return remapOut
}


// Used internally. Applies remap structure to the given palette. Returns the remapped palette.
// The returned palette has the same size as the input palette and never contains nil entries.
func remappedPalette(pal color.Palette, remap palette.ColorMapping) color.Palette {
  if pal == nil { return nil }
  if remap == nil { return pal }

  palOut := make(color.Palette, len(pal))
  for i, col := range pal {
    if idx, ok := remap[i]; ok {
      if idx >= 0 && idx < len(palOut) {
        palOut[idx] = col
      }
    }
  }

  // Slots not covered by the remap structure must still hold valid color entries
  for i, col := range palOut {
    if col == nil { palOut[i] = pal[i] }
  }

  return palOut
}


// Used internally. Applies remap structure to palette and pixels of the given image. Returns the updated image.
func remappedImage(img image.Image, remap palette.ColorMapping) *image.Paletted {
  if imgPal, ok := img.(*image.Paletted); ok {
    imgPal.Palette = remappedPalette(imgPal.Palette, remap)
    x0, x1 := imgPal.Bounds().Min.X, imgPal.Bounds().Max.X
    y0, y1 := imgPal.Bounds().Min.Y, imgPal.Bounds().Max.Y
    for y := y0; y < y1; y++ {
      ofs := y * imgPal.Stride
      for x := x0; x < x1; x++ {
        px := int(imgPal.Pix[ofs+x])
        if idx, ok := remap[px]; ok && idx >= 0 && idx < len(imgPal.Palette) {
          px = idx
        }
        imgPal.Pix[ofs+x] = byte(px)
      }
    }
    return imgPal
  }
  return nil
}
