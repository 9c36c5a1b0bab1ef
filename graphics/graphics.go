/*
Package graphics provides functions for loading various single- or multi-image graphics resources
without having to take care of the details.

Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package graphics

import (
  "bytes"
  "errors"
  "image"
  "image/draw"
  "image/gif"
  "image/jpeg"
  "image/png"
  "io"

  "github.com/InfinityTools/go-logging"
  "golang.org/x/image/bmp"
  "golang.org/x/image/webp"
)

// Can be used to identifiy the imported image format
const (
  TYPE_UNKNOWN = -1
  TYPE_BMP  = iota
  TYPE_GIF
  TYPE_JPG
  TYPE_PNG
  TYPE_WEBP
)

// The main graphics structure. Implements the sprite.FrameSource interface.
type Graphics struct {
  frames  []image.Image   // one or more frames imported from the graphics resource
  format  int             // see TYPE_xxx constants
  err     error
}


// Import imports a graphics resources pointed to by the ReadSeeker interface. The input format is detected
// from the file signature. Animated GIF input provides one frame per animation frame, all other formats
// provide a single frame.
// Use function Error() to check if Import returned successfully.
func Import(rs io.ReadSeeker) *Graphics {
  g := Graphics{frames: make([]image.Image, 0), format: TYPE_UNKNOWN, err: nil}
  if rs == nil { g.err = errors.New("No source specified"); return &g }

  (&g).importImage(rs)

  return &g
}


// Error returns the error state of the most recent operation on the Graphics. Use ClearError() function to clear the
// current error state.
func (g *Graphics) Error() error {
  return g.err
}


// ClearError clears the error state from the last Graphics operation. This function must be called for subsequent
// operations to work correctly.
//
// Use this function with care. Several functions may leave the Graphics object in an incomplete state after
// returning unsuccessfully.
func (g *Graphics) ClearError() {
  g.err = nil
}


// FrameCount returns the number of available images.
func (g *Graphics) FrameCount() int {
  if g.err != nil { return 0 }

  return len(g.frames)
}


// GetImageType returns the format of the imported image. See TYPE_xxx constants.
func (g *Graphics) GetImageType() int {
  if g.err != nil { return TYPE_UNKNOWN }
  return g.format
}


// Frame returns the image at the specified index.
//
// For BMP, JPG, PNG and WEBP only index=0 is valid. GIF may contain multiple images.
// The returned image is guaranteed to be of either Image.Paletted or Image.RGBA format.
func (g *Graphics) Frame(index int) (image.Image, error) {
  if g.err != nil { return nil, g.err }
  if index < 0 || index >= len(g.frames) { return nil, errors.New("Index out of range") }

  var imgOut image.Image = g.frames[index]
  if img, ok := g.frames[index].(*image.Paletted); ok {
    imgOut = img
  } else if _, ok := g.frames[index].(*image.RGBA); !ok {
    rgba := image.NewRGBA(image.Rect(0, 0, g.frames[index].Bounds().Dx(), g.frames[index].Bounds().Dy()))
    draw.Draw(rgba, rgba.Bounds(), g.frames[index], image.ZP, draw.Src)
    imgOut = rgba
  }
  return imgOut, nil
}


// Used internally. Delegates import to more specialized functions.
func (g *Graphics) importImage(rs io.ReadSeeker) {
  hdr := make([]byte, 12)
  _, err := io.ReadFull(rs, hdr)
  if err != nil { g.err = err; return }
  _, err = rs.Seek(0, io.SeekStart)
  if err != nil { g.err = err; return }

  if string(hdr[:2]) == "BM" {
    g.importImageBMP(rs)
  } else if string(hdr[:3]) == "GIF" {
    g.importImageGIF(rs)
  } else if bytes.Equal(hdr[:3], []byte{0xff, 0xd8, 0xff}) {
    g.importImageJPG(rs)
  } else if string(hdr[1:4]) == "PNG" {
    g.importImagePNG(rs)
  } else if string(hdr[:4]) == "RIFF" && string(hdr[8:12]) == "WEBP" {
    g.importImageWEBP(rs)
  } else {
    // unsupported
    g.err = errors.New("Unrecognized input format")
  }
}


// Used internally. Imports a BMP resource.
func (g *Graphics) importImageBMP(r io.Reader) {
  g.frames = make([]image.Image, 1)
  g.frames[0], g.err = bmp.Decode(r)
  if g.err != nil { return }

  g.format = TYPE_BMP
}


// Used internally. Imports a GIF resource. Frames are expanded to the global canvas size, honoring the
// disposal mode of preceding frames.
func (g *Graphics) importImageGIF(r io.Reader) {
  data, err := gif.DecodeAll(r)
  if err != nil { g.err = err; return }

  isAnim := len(data.Image) > 1
  if isAnim { logging.Log("Decoding GIF frames") }
  numFrames := len(data.Image)
  g.frames = make([]image.Image, numFrames)

  // Creating master image with global canvas size for all frames
  imgMain := image.NewRGBA(image.Rect(0, 0, data.Config.Width, data.Config.Height))

  for idx := 0; idx < numFrames; idx++ {
    imgCur := data.Image[idx]
    mode := data.Disposal[idx]

    // Backing up current frame content for later
    var imgBackup *image.RGBA = nil
    if mode == gif.DisposalPrevious {
      imgBackup = image.NewRGBA(imgMain.Bounds())
      draw.Draw(imgBackup, imgBackup.Bounds(), imgMain, image.ZP, draw.Src)
    }

    // Rendering frame
    draw.Draw(imgMain, imgCur.Bounds(), imgCur, imgCur.Bounds().Min, draw.Over)
    img := image.NewRGBA(imgMain.Bounds())
    draw.Draw(img, img.Bounds(), imgMain, image.ZP, draw.Src)
    g.frames[idx] = img

    // Cleaning up frame
    switch mode {
      case gif.DisposalBackground:
        // Restore current frame region to background color
        draw.Draw(imgMain, imgCur.Bounds(), image.Transparent, image.ZP, draw.Src)
      case gif.DisposalPrevious:
        // Restore content of previous frame
        draw.Draw(imgMain, imgMain.Bounds(), imgBackup, image.ZP, draw.Src)
      default:  // Don't clear content from previous frame(s)
    }

    if isAnim { logging.LogProgressDot(idx, numFrames, 79 - 19) }  // 19 is length of prefixed string
  }
  if isAnim { logging.OverridePrefix(false, false, false).Logln("") }

  g.format = TYPE_GIF
}


// Used internally. Imports a JPG resource.
func (g *Graphics) importImageJPG(r io.Reader) {
  g.frames = make([]image.Image, 1)
  g.frames[0], g.err = jpeg.Decode(r)
  if g.err != nil { return }

  g.format = TYPE_JPG
}


// Used internally. Imports a PNG resource.
func (g *Graphics) importImagePNG(r io.Reader) {
  g.frames = make([]image.Image, 1)
  g.frames[0], g.err = png.Decode(r)
  if g.err != nil { return }

  g.format = TYPE_PNG
}


// Used internally. Imports a WEBP resource.
func (g *Graphics) importImageWEBP(r io.Reader) {
  g.frames = make([]image.Image, 1)
  g.frames[0], g.err = webp.Decode(r)
  if g.err != nil { return }

  g.format = TYPE_WEBP
}
