package config
// Parse functionality for JSON structures.

import (
  "encoding/json"
  "fmt"
  "strings"

  "github.com/InfinityTools/go-logging"
)

// Used internally by json.Unmarshal to store output settings.
type JsonOutput struct {
  Format        string
  File          string
  Width         int64
  Height        int64
}

// Used internally by json.Unmarshal to store file input sequences.
type JsonInputSequence struct {
  Path          string
  Prefix        string
  SuffixStart   int64
  SuffixEnd     int64
  SuffixLength  int64
  Ext           string
}

// Used internally by json.Unmarshal to store input settings.
type JsonInput struct {
  Static        bool
  Files         []string
  FileSequence  JsonInputSequence
  Fps           int64
  MaxWidth      int64
}

// Used internally by json.Unmarshal to store processing settings.
type JsonSettings struct {
  Hsv           bool
  EdgeSmoothing int64
  BleedPasses   *int64
  FrameStride   int64
  MaxFrames     int64
  StartTrim     int64
  EndTrim       int64
  Duration      int64
  Loop          int64
  Boomerang     bool
  Columns       int64
  Padding       int64
  Quantizer     string
  QualityMin    *int64
  QualityMax    *int64
  Speed         int64
  Dither        float64
  SortBy        string
}

// Used internally by json.Unmarshal to store a single target color definition.
type JsonColor struct {
  Value         string
  Tolerance     int64
}

// Used internally by json.Unmarshal to store configuration data from JSON scripts.
type JsonGenerator struct {
  Output        JsonOutput
  Input         JsonInput
  Settings      JsonSettings
  Colors        []JsonColor
  Regions       [][]int64
}

// Used internally. Parses JSON source into intermediate structures.
func importJson(buffer []byte) (config *SpriteConfig, err error) {
  jsonGenerator := JsonGenerator{}
  err = json.Unmarshal(buffer, &jsonGenerator)
  if err != nil { return }

  config, err = processConfigJson(&jsonGenerator)
  return
}


// Used internally. Converts parsed JSON input into useful data types, taking defaults into account for omitted input.
func processConfigJson(input *JsonGenerator) (config *SpriteConfig, err error) {
  cfg := make(SpriteConfig)
  config = &cfg
  logging.Logln("Processing output settings")
  err = processConfigJsonOutput(input, config)
  if err != nil { return }
  logging.Logln("Processing input settings")
  err = processConfigJsonInput(input, config)
  if err != nil { return }
  logging.Logln("Processing sprite settings")
  err = processConfigJsonSettings(input, config)
  if err != nil { return }
  logging.Logln("Processing color settings")
  err = processConfigJsonColors(input, config)
  if err != nil { return }
  logging.Logln("Processing region settings")
  err = processConfigJsonRegions(input, config)
  return
}

// Used internally. Process "output" section.
func processConfigJsonOutput(input *JsonGenerator, config *SpriteConfig) error {
  (*config)[SECTION_OUTPUT] = make(SpriteMap)

  var textVal string
  textVal = strings.ToLower(strings.TrimSpace(input.Output.Format))
  if len(textVal) == 0 { textVal = "gif" }
  switch textVal {
    case "gif", "apng", "zip", "sheet", "atlas":
    default: return fmt.Errorf("Output>Format: Unsupported output format: %s", textVal)
  }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_FORMAT] = Text{textVal}

  textVal = fixPath(strings.TrimSpace(input.Output.File))
  if len(textVal) == 0 { textVal = "sprite" }
  for len(textVal) > 1 && textVal[len(textVal)-1:] == "/" { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_PATH] = Text{textVal}

  var intVal int64
  intVal = input.Output.Width
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Output>Width not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_WIDTH] = Int{intVal}

  intVal = input.Output.Height
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Output>Height not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_HEIGHT] = Int{intVal}

  return nil
}

// Used internally. Process "input" section.
func processConfigJsonInput(input *JsonGenerator, config *SpriteConfig) error {
  (*config)[SECTION_INPUT] = make(SpriteMap)

  static := input.Input.Static
  (*config)[SECTION_INPUT][KEY_INPUT_STATIC] = Bool{static}

  var size int
  size = len(input.Input.Files)
  textSeq := make([]string, size)
  for i := 0; i < size; i++ {
    textSeq[i] = strings.TrimSpace(input.Input.Files[i])
  }
  (*config)[SECTION_INPUT][KEY_INPUT_FILES] = TextArray{textSeq}

  var textVal string
  textVal = fixPath(strings.TrimSpace(input.Input.FileSequence.Path))
  if len(textVal) == 0 { textVal = "." }
  for len(textVal) > 1 && (textVal[len(textVal)-1:] == "/" || textVal[len(textVal)-1:] == "\\") { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_INPUT][KEY_INPUT_PATH] = Text{textVal}

  textVal = strings.TrimSpace(input.Input.FileSequence.Prefix)
  (*config)[SECTION_INPUT][KEY_INPUT_PREFIX] = Text{textVal}

  var intVal int64
  intVal = input.Input.FileSequence.SuffixStart
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_START] = Int{intVal}

  intVal = input.Input.FileSequence.SuffixEnd
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_END] = Int{intVal}

  intVal = input.Input.FileSequence.SuffixLength
  if intVal == 0 { intVal = 1 }
  if intVal < 1 || intVal > 16 { return fmt.Errorf("Input>FileSequence>SuffixLength not in range [1,16]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_LEN] = Int{intVal}

  textVal = strings.TrimSpace(input.Input.FileSequence.Ext)
  for len(textVal) > 0 && textVal[0:1] == "." { textVal = textVal[1:] }
  (*config)[SECTION_INPUT][KEY_INPUT_EXT] = Text{textVal}

  intVal = input.Input.Fps
  if intVal < 0 || intVal > 240 { return fmt.Errorf("Input>Fps not in range [0, 240]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_FPS] = Int{intVal}

  intVal = input.Input.MaxWidth
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Input>MaxWidth not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_MAX_WIDTH] = Int{intVal}

  return nil
}

// Used internally. Process "settings" section.
func processConfigJsonSettings(input *JsonGenerator, config *SpriteConfig) error {
  (*config)[SECTION_SETTINGS] = make(SpriteMap)

  var boolVal bool
  boolVal = input.Settings.Hsv
  (*config)[SECTION_SETTINGS][KEY_HSV] = Bool{boolVal}

  var intVal int64
  intVal = input.Settings.EdgeSmoothing
  if intVal < 0 || intVal > 64 { return fmt.Errorf("Settings>EdgeSmoothing not in range [0, 64]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_EDGE_SMOOTHING] = Int{intVal}

  intVal = 2
  if input.Settings.BleedPasses != nil { intVal = *input.Settings.BleedPasses }
  if intVal < 0 || intVal > 16 { return fmt.Errorf("Settings>BleedPasses not in range [0, 16]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_BLEED_PASSES] = Int{intVal}

  intVal = input.Settings.FrameStride
  if intVal == 0 { intVal = 1 }
  if intVal < 1 { return fmt.Errorf("Settings>FrameStride must be positive: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_FRAME_STRIDE] = Int{intVal}

  intVal = input.Settings.MaxFrames
  if intVal < 0 { return fmt.Errorf("Settings>MaxFrames must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_MAX_FRAMES] = Int{intVal}

  intVal = input.Settings.StartTrim
  if intVal < 0 { return fmt.Errorf("Settings>StartTrim must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_START_TRIM] = Int{intVal}

  intVal = input.Settings.EndTrim
  if intVal < 0 { return fmt.Errorf("Settings>EndTrim must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_END_TRIM] = Int{intVal}

  intVal = input.Settings.Duration
  if intVal == 0 { intVal = 100 }
  if intVal < 1 || intVal > 65535 { return fmt.Errorf("Settings>Duration not in range [1, 65535]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_DURATION] = Int{intVal}

  intVal = input.Settings.Loop
  if intVal < 0 || intVal > 65535 { return fmt.Errorf("Settings>Loop not in range [0, 65535]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_LOOP] = Int{intVal}

  boolVal = input.Settings.Boomerang
  (*config)[SECTION_SETTINGS][KEY_BOOMERANG] = Bool{boolVal}

  intVal = input.Settings.Columns
  if intVal < 0 { return fmt.Errorf("Settings>Columns must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_COLUMNS] = Int{intVal}

  intVal = input.Settings.Padding
  if intVal < 0 { return fmt.Errorf("Settings>Padding must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_PADDING] = Int{intVal}

  var textVal string
  textVal = strings.ToLower(strings.TrimSpace(input.Settings.Quantizer))
  if len(textVal) == 0 { textVal = "quality" }
  if textVal != "quality" && textVal != "fast" { return fmt.Errorf("Settings>Quantizer: Unsupported quantizer: %s", textVal) }
  (*config)[SECTION_SETTINGS][KEY_QUANTIZER] = Text{textVal}

  intVal = 80
  if input.Settings.QualityMin != nil { intVal = *input.Settings.QualityMin }
  if intVal < 0 || intVal > 100 { return fmt.Errorf("Settings>QualityMin not in range [0, 100]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_QUALITY_MIN] = Int{intVal}

  intVal = 100
  if input.Settings.QualityMax != nil { intVal = *input.Settings.QualityMax }
  if intVal < 0 || intVal > 100 { return fmt.Errorf("Settings>QualityMax not in range [0, 100]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_QUALITY_MAX] = Int{intVal}

  intVal = input.Settings.Speed
  if intVal == 0 { intVal = 3 }
  if intVal < 1 || intVal > 10 { return fmt.Errorf("Settings>Speed not in range [1, 10]: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_SPEED] = Int{intVal}

  var floatVal float64
  floatVal = input.Settings.Dither
  if floatVal < 0.0 || floatVal > 1.0 { return fmt.Errorf("Settings>Dither not in range [0.0, 1.0]: %f", floatVal) }
  (*config)[SECTION_SETTINGS][KEY_DITHER] = Float{floatVal}

  textVal = input.Settings.SortBy
  if len(textVal) == 0 { textVal = "none" }
  (*config)[SECTION_SETTINGS][KEY_SORT_BY] = Text{textVal}

  return nil
}

// Used internally. Process "colors" section. Each entry is stored as a pair of packed 0xAARRGGBB value and
// tolerance.
func processConfigJsonColors(input *JsonGenerator, config *SpriteConfig) error {
  (*config)[SECTION_COLORS] = make(SpriteMap)

  size := len(input.Colors)
  intSeq2 := make([][]int64, size)
  for i := 0; i < size; i++ {
    col := ParseColorValue(strings.TrimSpace(input.Colors[i].Value), 0xff00ff00)
    tol := input.Colors[i].Tolerance
    if tol < 0 || tol > 150 { return fmt.Errorf("Colors>Tolerance not in range [0, 150]: %d", tol) }
    intSeq2[i] = []int64{col, tol}
  }
  (*config)[SECTION_COLORS][KEY_COLORS] = IntMultiArray{intSeq2}

  return nil
}

// Used internally. Process "regions" section. Each entry is stored as x, y, width and height values.
func processConfigJsonRegions(input *JsonGenerator, config *SpriteConfig) error {
  (*config)[SECTION_REGIONS] = make(SpriteMap)

  size := len(input.Regions)
  intSeq2 := make([][]int64, size)
  for i := 0; i < size; i++ {
    if len(input.Regions[i]) != 4 { return fmt.Errorf("Regions: Entry %d must contain x, y, width, height", i) }
    intSeq2[i] = input.Regions[i]
  }
  (*config)[SECTION_REGIONS][KEY_REGIONS] = IntMultiArray{intSeq2}

  return nil
}
