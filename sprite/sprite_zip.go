/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "archive/zip"
  "fmt"
  "image/png"
  "io"

  "github.com/InfinityTools/go-logging"
)

// ExportArchive writes all frames of the sprite as individual PNG files into a ZIP archive and writes the
// archive to the given Writer. Files are named frame_000.png, frame_001.png and so on, in frame order.
// Operation is skipped if error state is set.
func (s *Sprite) ExportArchive(w io.Writer) {
  if s.err != nil { return }
  if w == nil { s.err = fmt.Errorf("ExportArchive: Writer is undefined"); return }
  if len(s.frames) == 0 { s.err = fmt.Errorf("ExportArchive: No frames available"); return }

  msg := fmt.Sprintf("Archiving %d frame(s)", len(s.frames))
  logging.Log(msg)
  zw := zip.NewWriter(w)
  for idx, frame := range s.frames {
    fw, err := zw.Create(fmt.Sprintf("frame_%03d.png", idx))
    if err != nil { s.err = err; break }
    err = png.Encode(fw, frame)
    if err != nil { s.err = err; break }
    logging.LogProgressDot(idx, len(s.frames), 79 - len(msg))
  }
  logging.OverridePrefix(false, false, false).Logln("")
  if s.err != nil { zw.Close(); return }
  s.err = zw.Close()
}
