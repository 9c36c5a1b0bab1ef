package config
// Parse functionality for XML structures.

import (
  "encoding/xml"
  "fmt"
  "strings"

  "github.com/InfinityTools/go-logging"
)

// Used internally by xml.Unmarshal to store output settings.
type XmlOutput struct {
  Format        string      `xml:"format"`
  Path          string      `xml:"file"`
  Width         string      `xml:"width"`
  Height        string      `xml:"height"`
}

// Used internally by xml.Unmarshal to store input file sequences settings.
type XmlInputSequence struct {
  Path          string      `xml:"path"`
  Prefix        string      `xml:"prefix"`
  SuffixStart   string      `xml:"suffixstart"`
  SuffixEnd     string      `xml:"suffixend"`
  SuffixLength  string      `xml:"suffixlength"`
  Ext           string      `xml:"ext"`
}

// Used internally by xml.Unmarshal to store input settings.
type XmlInput struct {
  Static        string            `xml:"static"`
  Sequence      XmlInputSequence  `xml:"filesequence"`
  Files         []string          `xml:"files>path"`
  Fps           string            `xml:"fps"`
  MaxWidth      string            `xml:"maxwidth"`
}

// Used internally by xml.Unmarshal to store processing settings.
type XmlSettings struct {
  Hsv           string      `xml:"hsv"`
  EdgeSmoothing string      `xml:"edgesmoothing"`
  BleedPasses   string      `xml:"bleedpasses"`
  FrameStride   string      `xml:"framestride"`
  MaxFrames     string      `xml:"maxframes"`
  StartTrim     string      `xml:"starttrim"`
  EndTrim       string      `xml:"endtrim"`
  Duration      string      `xml:"duration"`
  Loop          string      `xml:"loop"`
  Boomerang     string      `xml:"boomerang"`
  Columns       string      `xml:"columns"`
  Padding       string      `xml:"padding"`
  Quantizer     string      `xml:"quantizer"`
  QualityMin    string      `xml:"qualitymin"`
  QualityMax    string      `xml:"qualitymax"`
  Speed         string      `xml:"speed"`
  Dither        string      `xml:"dither"`
  SortBy        string      `xml:"sortby"`
}

// Used internally by xml.Unmarshal to store a single target color definition.
type XmlColor struct {
  Value         string      `xml:"value"`
  Tolerance     string      `xml:"tolerance"`
}

// Used internally by xml.Unmarshal to store configuration data from XML scripts.
type XmlGenerator struct {
  XMLName       xml.Name      `xml:"generator"`
  Output        XmlOutput     `xml:"output"`
  Input         XmlInput      `xml:"input"`
  Settings      XmlSettings   `xml:"settings"`
  Colors        []XmlColor    `xml:"colors>color"`
  Regions       []string      `xml:"regions>region"`
}


// Used internally. Parses XML source into intermediate structures.
func importXml(buffer []byte) (config *SpriteConfig, err error) {
  xmlGenerator := XmlGenerator{}
  err = xml.Unmarshal(buffer, &xmlGenerator)
  if err != nil { return }

  config, err = processConfigXml(&xmlGenerator)
  return
}


// Used internally. Converts parsed XML input into useful data types, taking defaults into account for omitted input.
func processConfigXml(input *XmlGenerator) (config *SpriteConfig, err error) {
  cfg := make(SpriteConfig)
  config = &cfg
  logging.Logln("Processing output settings")
  err = processConfigXmlOutput(input, config)
  if err != nil { return }
  logging.Logln("Processing input settings")
  err = processConfigXmlInput(input, config)
  if err != nil { return }
  logging.Logln("Processing sprite settings")
  err = processConfigXmlSettings(input, config)
  if err != nil { return }
  logging.Logln("Processing color settings")
  err = processConfigXmlColors(input, config)
  if err != nil { return }
  logging.Logln("Processing region settings")
  err = processConfigXmlRegions(input, config)
  return
}

// Used internally. Process "output" section.
func processConfigXmlOutput(input *XmlGenerator, config *SpriteConfig) error {
  (*config)[SECTION_OUTPUT] = make(SpriteMap)

  var textVal string
  textVal = strings.ToLower(strings.TrimSpace(input.Output.Format))
  if len(textVal) == 0 { textVal = "gif" }
  switch textVal {
    case "gif", "apng", "zip", "sheet", "atlas":
    default: return fmt.Errorf("Output>Format: Unsupported output format: %s", textVal)
  }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_FORMAT] = Text{textVal}

  textVal = fixPath(strings.TrimSpace(input.Output.Path))
  if len(textVal) == 0 { textVal = "sprite" }
  for len(textVal) > 1 && textVal[len(textVal)-1:] == "/" { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_PATH] = Text{textVal}

  var intVal int64
  intVal = tryParseInt(input.Output.Width, 0)
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Output>Width not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_WIDTH] = Int{intVal}

  intVal = tryParseInt(input.Output.Height, 0)
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Output>Height not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_HEIGHT] = Int{intVal}

  return nil
}

// Used internally. Process "input" section.
func processConfigXmlInput(input *XmlGenerator, config *SpriteConfig) error {
  (*config)[SECTION_INPUT] = make(SpriteMap)

  var static bool
  static = tryParseBool(input.Input.Static, true)
  (*config)[SECTION_INPUT][KEY_INPUT_STATIC] = Bool{static}

  var size int
  size = len(input.Input.Files)
  textSeq := make([]string, size)
  for i := 0; i < size; i++ {
    textSeq[i] = strings.TrimSpace(input.Input.Files[i])
  }
  (*config)[SECTION_INPUT][KEY_INPUT_FILES] = TextArray{textSeq}

  var textVal string
  textVal = fixPath(strings.TrimSpace(input.Input.Sequence.Path))
  if len(textVal) == 0 { textVal = "." }
  for len(textVal) > 1 && (textVal[len(textVal)-1:] == "/" || textVal[len(textVal)-1:] == "\\") { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_INPUT][KEY_INPUT_PATH] = Text{textVal}

  textVal = strings.TrimSpace(input.Input.Sequence.Prefix)
  (*config)[SECTION_INPUT][KEY_INPUT_PREFIX] = Text{textVal}

  var intVal int64
  intVal = tryParseInt(input.Input.Sequence.SuffixStart, 0)
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_START] = Int{intVal}

  intVal = tryParseInt(input.Input.Sequence.SuffixEnd, 0)
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_END] = Int{intVal}

  intVal = tryParseInt(input.Input.Sequence.SuffixLength, 1)
  if intVal < 1 || intVal > 16 { return fmt.Errorf("Input>FileSequence>SuffixLength not in range [1,16]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_LEN] = Int{intVal}

  textVal = strings.TrimSpace(input.Input.Sequence.Ext)
  for len(textVal) > 0 && textVal[0:1] == "." { textVal = textVal[1:] }
  (*config)[SECTION_INPUT][KEY_INPUT_EXT] = Text{textVal}

  intVal = tryParseInt(input.Input.Fps, 0)
  if intVal < 0 || intVal > 240 { return fmt.Errorf("Input>Fps not in range [0, 240]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_FPS] = Int{intVal}

  intVal = tryParseInt(input.Input.MaxWidth, 0)
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Input>MaxWidth not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_MAX_WIDTH] = Int{intVal}

  return nil
}

// Used internally. Process "settings" section.
func processConfigXmlSettings(input *XmlGenerator, config *SpriteConfig) error {
  (*config)[SECTION_SETTINGS] = make(SpriteMap)

  var boolVal bool
  boolVal = tryParseBool(input.Settings.Hsv, false)
  (*config)[SECTION_SETTINGS][KEY_HSV] = Bool{boolVal}

  var intVal int64
  intVal = tryParseInt(input.Settings.EdgeSmoothing, 0)
  if intVal < 0 || intVal > 64 { return fmt.Errorf("Settings>EdgeSmoothing not in range [0, 64]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_EDGE_SMOOTHING] = Int{intVal}

  intVal = tryParseInt(input.Settings.BleedPasses, 2)
  if intVal < 0 || intVal > 16 { return fmt.Errorf("Settings>BleedPasses not in range [0, 16]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_BLEED_PASSES] = Int{intVal}

  intVal = tryParseInt(input.Settings.FrameStride, 1)
  if intVal < 1 { return fmt.Errorf("Settings>FrameStride must be positive: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_FRAME_STRIDE] = Int{intVal}

  intVal = tryParseInt(input.Settings.MaxFrames, 0)
  if intVal < 0 { return fmt.Errorf("Settings>MaxFrames must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_MAX_FRAMES] = Int{intVal}

  intVal = tryParseInt(input.Settings.StartTrim, 0)
  if intVal < 0 { return fmt.Errorf("Settings>StartTrim must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_START_TRIM] = Int{intVal}

  intVal = tryParseInt(input.Settings.EndTrim, 0)
  if intVal < 0 { return fmt.Errorf("Settings>EndTrim must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_END_TRIM] = Int{intVal}

  intVal = tryParseInt(input.Settings.Duration, 100)
  if intVal < 1 || intVal > 65535 { return fmt.Errorf("Settings>Duration not in range [1, 65535]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_DURATION] = Int{intVal}

  intVal = tryParseInt(input.Settings.Loop, 0)
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Settings>Loop not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_LOOP] = Int{intVal}

  boolVal = tryParseBool(input.Settings.Boomerang, false)
  (*config)[SECTION_SETTINGS][KEY_BOOMERANG] = Bool{boolVal}

  intVal = tryParseInt(input.Settings.Columns, 0)
  if intVal < 0 { return fmt.Errorf("Settings>Columns must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_COLUMNS] = Int{intVal}

  intVal = tryParseInt(input.Settings.Padding, 0)
  if intVal < 0 { return fmt.Errorf("Settings>Padding must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_PADDING] = Int{intVal}

  var textVal string
  textVal = strings.ToLower(strings.TrimSpace(input.Settings.Quantizer))
  if len(textVal) == 0 { textVal = "quality" }
  if textVal != "quality" && textVal != "fast" { return fmt.Errorf("Settings>Quantizer: Unsupported quantizer: %s", textVal) }
  (*config)[SECTION_SETTINGS][KEY_QUANTIZER] = Text{textVal}

  intVal = tryParseInt(input.Settings.QualityMin, 80)
  if intVal < 0 || intVal > 100 { return fmt.Errorf("Settings>QualityMin not in range [0, 100]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_QUALITY_MIN] = Int{intVal}

  intVal = tryParseInt(input.Settings.QualityMax, 100)
  if intVal < 0 || intVal > 100 { return fmt.Errorf("Settings>QualityMax not in range [0, 100]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_QUALITY_MAX] = Int{intVal}

  intVal = tryParseInt(input.Settings.Speed, 3)
  if intVal < 1 || intVal > 10 { return fmt.Errorf("Settings>Speed not in range [1, 10]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_SPEED] = Int{intVal}

  var floatVal float64
  floatVal = tryParseFloat(input.Settings.Dither, 0.0)
  if floatVal < 0.0 || floatVal > 1.0 { return fmt.Errorf("Settings>Dither not in range [0.0, 1.0]: %f", floatVal) }
  (*config)[SECTION_SETTINGS][KEY_DITHER] = Float{floatVal}

  textVal = input.Settings.SortBy
  if len(textVal) == 0 { textVal = "none" }
  (*config)[SECTION_SETTINGS][KEY_SORT_BY] = Text{textVal}

  return nil
}

// Used internally. Process "colors" section. Each entry is stored as a pair of packed 0xAARRGGBB value and
// tolerance.
func processConfigXmlColors(input *XmlGenerator, config *SpriteConfig) error {
  (*config)[SECTION_COLORS] = make(SpriteMap)

  size := len(input.Colors)
  intSeq2 := make([][]int64, size)
  for i := 0; i < size; i++ {
    col := ParseColorValue(strings.TrimSpace(input.Colors[i].Value), 0xff00ff00)
    tol := tryParseInt(input.Colors[i].Tolerance, 0)
    if tol < 0 || tol > 150 { return fmt.Errorf("Colors>Tolerance not in range [0, 150]: %d", tol) }
    intSeq2[i] = []int64{col, tol}
  }
  (*config)[SECTION_COLORS][KEY_COLORS] = IntMultiArray{intSeq2}

  return nil
}

// Used internally. Process "regions" section. Each entry is stored as x, y, width and height values.
func processConfigXmlRegions(input *XmlGenerator, config *SpriteConfig) error {
  (*config)[SECTION_REGIONS] = make(SpriteMap)

  size := len(input.Regions)
  intSeq2 := make([][]int64, size)
  for i := 0; i < size; i++ {
    seq := tryParseIntSeq(input.Regions[i], 0)
    if len(seq) != 4 { return fmt.Errorf("Regions: Entry %d must contain x, y, width, height", i) }
    intSeq2[i] = seq
  }
  (*config)[SECTION_REGIONS][KEY_REGIONS] = IntMultiArray{intSeq2}

  return nil
}
