/*
Package video provides functions for extracting frame sequences from video files.

Decoding is delegated to the ffmpeg executable, which must be available in the search path.

Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package video

import (
  "bufio"
  "context"
  "errors"
  "fmt"
  "image"
  _ "image/png"
  "io"
  "strconv"

  "github.com/InfinityTools/go-logging"
  ffmpeg "github.com/u2takey/ffmpeg-go"
)

// The main video structure. Implements the sprite.FrameSource interface.
type Video struct {
  frames  []image.Image   // frames decoded from the video resource
  err     error
}


// Import decodes frames from the video file at the given path and returns a Video structure providing access
// to the decoded frames.
//
// fps specifies the number of frames sampled per second of video. Specify 0 to use the native frame rate.
// maxWidth specifies the width that frames are scaled down to, preserving aspect ratio. Specify 0 to keep the
// native frame size. Use function Error() to check if Import returned successfully.
func Import(ctx context.Context, path string, fps, maxWidth int) *Video {
  v := Video{frames: make([]image.Image, 0), err: nil}
  if len(path) == 0 { v.err = errors.New("No source specified"); return &v }

  (&v).importVideo(ctx, path, fps, maxWidth)

  return &v
}


// Error returns the error state of the most recent operation on the Video. Use ClearError() function to clear
// the current error state.
func (v *Video) Error() error {
  return v.err
}


// ClearError clears the error state from the last Video operation. This function must be called for subsequent
// operations to work correctly.
func (v *Video) ClearError() {
  v.err = nil
}


// FrameCount returns the number of decoded frames.
func (v *Video) FrameCount() int {
  if v.err != nil { return 0 }

  return len(v.frames)
}


// Frame returns the frame image at the specified index.
func (v *Video) Frame(index int) (image.Image, error) {
  if v.err != nil { return nil, v.err }
  if index < 0 || index >= len(v.frames) { return nil, errors.New("Index out of range") }

  return v.frames[index], nil
}


// Used internally. Streams PNG-encoded frames from ffmpeg through a pipe and decodes them sequentially.
func (v *Video) importVideo(ctx context.Context, path string, fps, maxWidth int) {
  args := ffmpeg.KwArgs{ "format": "image2pipe", "vcodec": "png" }
  if fps > 0 { args["r"] = strconv.Itoa(fps) }
  if maxWidth > 0 { args["vf"] = fmt.Sprintf("scale=%d:-1", maxWidth) }

  pr, pw := io.Pipe()
  cmd := ffmpeg.Input(path).
    Output("pipe:1", args).
    WithOutput(pw).
    Silent(true)
  if ctx != nil { cmd.Context = ctx }

  // Decoding runs concurrently with ffmpeg writing into the pipe
  done := make(chan error, 1)
  go func() {
    err := cmd.Run()
    pw.CloseWithError(err)
    done <- err
  }()

  logging.Logf("Decoding video frames from %q\n", path)
  reader := bufio.NewReader(pr)
  for {
    img, _, err := image.Decode(reader)
    if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) { break }
    if err != nil {
      pr.CloseWithError(err)
      <-done
      v.err = fmt.Errorf("Unable to decode frame %d: %v", len(v.frames), err)
      return
    }
    v.frames = append(v.frames, img)
  }

  if err := <-done; err != nil { v.err = err; return }
  if len(v.frames) == 0 { v.err = errors.New("Video contains no frames") }
}
