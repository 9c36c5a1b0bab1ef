/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package sprite

import (
  "fmt"
  "image"
  "image/draw"

  "github.com/InfinityTools/go-binpack2d"
  "github.com/InfinityTools/go-logging"
)

// AtlasEntry describes the placement of a single frame on a packed atlas sheet.
type AtlasEntry struct {
  Index  int   `json:"index"`
  X      int   `json:"x"`
  Y      int   `json:"y"`
  Width  int   `json:"w"`
  Height int   `json:"h"`
}

// PackSheet arranges all frames of the sprite on a single sheet in a regular grid and returns the sheet image.
// All cells share the dimensions of the largest frame; smaller frames are centered inside their cell.
// columns specifies the number of grid columns. Specify 0 to arrange all frames in a single row. padding
// specifies the number of fully transparent pixels inserted between cells.
// Operation is skipped if error state is set.
func (s *Sprite) PackSheet() *image.NRGBA {
  if s.err != nil { return nil }
  if len(s.frames) == 0 { s.err = fmt.Errorf("PackSheet: No frames available"); return nil }

  columns, padding := s.sheet.columns, s.sheet.padding
  if columns <= 0 || columns > len(s.frames) { columns = len(s.frames) }
  rows := (len(s.frames) + columns - 1) / columns

  cellW, cellH := 0, 0
  for _, frame := range s.frames {
    if frame.Bounds().Dx() > cellW { cellW = frame.Bounds().Dx() }
    if frame.Bounds().Dy() > cellH { cellH = frame.Bounds().Dy() }
  }

  sheetW := columns * cellW + (columns - 1) * padding
  sheetH := rows * cellH + (rows - 1) * padding
  logging.Logf("Packing %d frame(s) onto a %dx%d sheet (%dx%d grid)\n", len(s.frames), sheetW, sheetH, columns, rows)

  sheet := image.NewNRGBA(image.Rect(0, 0, sheetW, sheetH))
  for idx, frame := range s.frames {
    col, row := idx % columns, idx / columns
    x := col * (cellW + padding) + (cellW - frame.Bounds().Dx()) / 2
    y := row * (cellH + padding) + (cellH - frame.Bounds().Dy()) / 2
    r := image.Rect(x, y, x + frame.Bounds().Dx(), y + frame.Bounds().Dy())
    draw.Draw(sheet, r, frame, frame.Bounds().Min, draw.Src)
  }
  return sheet
}


// PackAtlas arranges all frames of the sprite on a single compact sheet using rectangle bin packing and returns
// the sheet image together with the placement of each frame. Unlike PackSheet the resulting layout is irregular,
// so the returned entries are required to locate individual frames. The sheet is shrunk to the smallest bounds
// that hold all frames. Operation is skipped if error state is set.
func (s *Sprite) PackAtlas() (*image.NRGBA, []AtlasEntry) {
  if s.err != nil { return nil, nil }
  if len(s.frames) == 0 { s.err = fmt.Errorf("PackAtlas: No frames available"); return nil, nil }

  const binRule = binpack2d.RULE_BEST_LONG_SIDE_FIT
  padding := s.sheet.padding

  // Starting with a generous estimate. The bin is shrunk to content afterwards.
  area := 0
  maxW := 0
  for _, frame := range s.frames {
    w, h := frame.Bounds().Dx() + padding, frame.Bounds().Dy() + padding
    area += w * h
    if w > maxW { maxW = w }
  }
  binSize := 64
  for binSize * binSize < area * 2 || binSize < maxW { binSize <<= 1 }

  var packer *binpack2d.Packer
  entries := make([]AtlasEntry, len(s.frames))
  for {
    packer = binpack2d.Create(binSize, binSize)
    ok := true
    for idx, frame := range s.frames {
      r, inserted := packer.Insert(frame.Bounds().Dx() + padding, frame.Bounds().Dy() + padding, binRule)
      if !inserted { ok = false; break }
      entries[idx] = AtlasEntry{ Index: idx, X: r.X, Y: r.Y,
                                 Width: frame.Bounds().Dx(), Height: frame.Bounds().Dy() }
    }
    if ok { break }
    binSize <<= 1
    if binSize > 16384 { s.err = fmt.Errorf("PackAtlas: Frames don't fit onto a single sheet"); return nil, nil }
  }

  // Don't waste empty sheet space
  packer.ShrinkBin(true)
  w, h := packer.GetWidth(), packer.GetHeight()
  logging.Logf("Packing %d frame(s) onto a %dx%d atlas\n", len(s.frames), w, h)

  sheet := image.NewNRGBA(image.Rect(0, 0, w, h))
  for idx, frame := range s.frames {
    e := entries[idx]
    r := image.Rect(e.X, e.Y, e.X + e.Width, e.Y + e.Height)
    draw.Draw(sheet, r, frame, frame.Bounds().Min, draw.Src)
  }
  return sheet, entries
}
