/*
Package config translates sprite generation configurations from XML or JSON structures into a preprocessed map
structure for quick access.

Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package config

import (
  "bytes"
  "errors"
  "io"
  "strconv"
  "strings"

  "github.com/InfinityTools/go-logging"
)


// Available sprite configuration section names
const (
  SECTION_OUTPUT    = "output"
  SECTION_INPUT     = "input"
  SECTION_SETTINGS  = "settings"
  SECTION_COLORS    = "colors"
  SECTION_REGIONS   = "regions"
)

// Available sprite configuration key names
const (
  KEY_OUTPUT_FORMAT       = "output_format"
  KEY_OUTPUT_PATH         = "output_path"
  KEY_OUTPUT_WIDTH        = "output_width"
  KEY_OUTPUT_HEIGHT       = "output_height"
  KEY_INPUT_STATIC        = "input_static"
  KEY_INPUT_PATH          = "input_path"
  KEY_INPUT_PREFIX        = "input_prefix"
  KEY_INPUT_SUFFIX_START  = "input_suffix_start"
  KEY_INPUT_SUFFIX_END    = "input_suffix_end"
  KEY_INPUT_SUFFIX_LEN    = "input_suffix_len"
  KEY_INPUT_EXT           = "input_ext"
  KEY_INPUT_FILES         = "input_files"
  KEY_INPUT_FPS           = "input_fps"
  KEY_INPUT_MAX_WIDTH     = "input_max_width"
  KEY_HSV                 = "hsv"
  KEY_EDGE_SMOOTHING      = "edge_smoothing"
  KEY_BLEED_PASSES        = "bleed_passes"
  KEY_FRAME_STRIDE        = "frame_stride"
  KEY_MAX_FRAMES          = "max_frames"
  KEY_START_TRIM          = "start_trim"
  KEY_END_TRIM            = "end_trim"
  KEY_DURATION            = "duration"
  KEY_LOOP                = "loop"
  KEY_BOOMERANG           = "boomerang"
  KEY_COLUMNS             = "columns"
  KEY_PADDING             = "padding"
  KEY_QUANTIZER           = "quantizer"
  KEY_QUALITY_MIN         = "quality_min"
  KEY_QUALITY_MAX         = "quality_max"
  KEY_SPEED               = "speed"
  KEY_DITHER              = "dither"
  KEY_SORT_BY             = "sort_by"
  KEY_COLORS              = "color"
  KEY_REGIONS             = "region"
)

// Internally used to determine assigned value type.
type ID int

// SpriteMap maps key => value associations.
type SpriteMap map[string]Variant

// SpriteConfig maps section => key => value.
type SpriteConfig map[string]SpriteMap


// ImportConfig constructs a SpriteConfig object from configuration data found in the source wrapped by the
// Reader object.
func ImportConfig(r io.Reader) (config *SpriteConfig, err error) {
  // reading configuration data into byte buffer
  logging.Logln("Loading configuration data")
  buffer := make([]byte, 1024)
  totalRead := 0
  for {
    bytesRead, err := r.Read(buffer[totalRead:]);
    if err != nil { break }
    totalRead += bytesRead
    if totalRead == len(buffer) {
      buffer = append(buffer, make([]byte, len(buffer))...)
    }
  }
  if err != nil && err != io.EOF { return }
  if totalRead < len(buffer) {
    buffer = buffer[:totalRead]
  }

  // try to determine input format
  isXml := true
  ofs := 0
  whiteSpace := []byte{0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x20}
  for ofs < len(buffer) {
    if bytes.IndexByte(whiteSpace, buffer[ofs]) < 0 {
      if buffer[ofs] == '<' {
        isXml = true
      } else if buffer[ofs] == '{' {
        isXml = false
      } else {
        err = errors.New("Configuration: Unrecognized format")
      }
      break
    }
    ofs++
  }
  if err != nil { return }

  // parsing source into intermediate structures
  if isXml {
    config, err = importXml(buffer)
  } else {
    config, err = importJson(buffer)
  }
  if err != nil { return }

  logging.Logln("Finished loading configuration data")
  return
}

// GetConfigValueBool returns the boolean value assigned to the specified section => key location. ok returns whether
// the value is available.
func (cfg *SpriteConfig) GetConfigValueBool(section, key string) (retVal bool, ok bool) {
  value, ok := (*cfg)[section][key].(VarBool)
  if !ok { return }
  retVal = value.ToBool()
  return
}

// GetConfigValueInt returns the numeric value assigned to the specified section => key location. ok returns whether
// the value is available.
func (cfg *SpriteConfig) GetConfigValueInt(section, key string) (retVal int64, ok bool) {
  value, ok := (*cfg)[section][key].(VarInt)
  if !ok { return }
  retVal = value.ToInt()
  return
}

// GetConfigValueFloat returns the floating point value assigned to the specified section => key location. ok returns
// whether the value is available.
func (cfg *SpriteConfig) GetConfigValueFloat(section, key string) (retVal float64, ok bool) {
  value, ok := (*cfg)[section][key].(VarFloat)
  if !ok { return }
  retVal = value.ToFloat()
  return
}

// GetConfigValueText returns the string value assigned to the specified section => key location. ok returns whether
// the value is available.
func (cfg *SpriteConfig) GetConfigValueText(section, key string) (retVal string, ok bool) {
  value, ok := (*cfg)[section][key].(Variant)
  if !ok { return }
  retVal = value.ToString()
  return
}

// GetConfigValueIntSeq returns the numeric array assigned to the specified section => key location. ok returns whether
// the value is available.
func (cfg *SpriteConfig) GetConfigValueIntSeq(section, key string) (retVal []int64, ok bool) {
  value, ok := (*cfg)[section][key].(VarIntArray)
  if !ok { return }
  retVal = value.ToIntArray()
  return
}

// GetConfigValueIntSeq2 returns the two-dimensional numeric array assigned to the specified section => key location.
// ok returns whether the value is available.
func (cfg *SpriteConfig) GetConfigValueIntSeq2(section, key string) (retVal [][]int64, ok bool) {
  value, ok := (*cfg)[section][key].(VarIntMultiArray)
  if !ok { return }
  retVal = value.ToIntMultiArray()
  return
}

// GetConfigValueFloatSeq returns the array of floating point values assigned to the specified section => key location.
// ok returns whether the value is available.
func (cfg *SpriteConfig) GetConfigValueFloatSeq(section, key string) (retVal []float64, ok bool) {
  value, ok := (*cfg)[section][key].(VarFloatArray)
  if !ok { return }
  retVal = value.ToFloatArray()
  return
}

// GetConfigValueTextSeq returns the array of strings assigned to the specified section => key location. ok returns
// whether the value is available.
func (cfg *SpriteConfig) GetConfigValueTextSeq(section, key string) (retVal []string, ok bool) {
  value, ok := (*cfg)[section][key].(VarTextArray)
  if !ok { return }
  retVal = value.ToTextArray()
  return
}


// Used internally. Attempts to convert the content of s into a boolean value. Failing that the function will return
// the specified default value. Both numeric (decimal/hexadecimal) and true/false string values are detected.
func tryParseBool(s string, defValue bool) bool {
  // try true/false first
  if strings.ToLower(s) == "true" {
    return true
  } else if strings.ToLower(s) == "false" {
    return false
  }
  // try numeric value second
  def := 0
  if defValue { def = 1 }
  return (tryParseInt(s, def) != 0)
}

// Used internally. Attempts to convert the content of s into a signed numeric value. Failing that the function will
// return the specified default value. Both decimal and hexadecimal (with prefix "0x") are detected.
func tryParseInt(s string, defValue int) int64 {
  s = strings.ToLower(strings.TrimSpace(s))

  var value int64
  var err error
  if len(s) > 2 && s[:2] == "0x" {
    // hex value?
    value, err = strconv.ParseInt(s[2:], 16, 32)
  } else {
    // dec value?
    value, err = strconv.ParseInt(s, 10, 32)
  }
  if err != nil { value = int64(defValue) }

  return value
}

// Used internally. Attempts to convert the content of s into an unsigned numeric value. Failing that the function
// will return the specified default value. Both decimal and hexadecimal (with prefix "0x") are detected.
func tryParseUInt(s string, defValue uint) int64 {
  s = strings.ToLower(strings.TrimSpace(s))

  var value uint64
  var err error
  if len(s) > 2 && s[:2] == "0x" {
    // hex value?
    value, err = strconv.ParseUint(s[2:], 16, 32)
  } else {
    // dec value?
    value, err = strconv.ParseUint(s, 10, 32)
  }
  if err != nil { value = uint64(defValue) }

  return int64(value)
}

// Used internally. Attempts to convert the content of s into a floating point value. Failing that the function will
// return the specified default value.
func tryParseFloat(s string, defValue float64) float64 {
  s = strings.ToLower(strings.TrimSpace(s))

  var value float64
  var err error
  value, err = strconv.ParseFloat(s, 64)
  if err != nil { value = defValue }

  return value
}

// Used internally. Attempts to convert the content of s into a sequence of signed numeric values. Invalid elements
// will be replaced by the provided default value. The returned array may contain zero, one or more items.
func tryParseIntSeq(s string, defValue int) []int64 {
  items := strings.Split(s, ",")
  retVal := make([]int64, len(items))
  for idx, val := range items {
    retVal[idx] = tryParseInt(val, defValue)
  }

  return retVal
}

// Used internally. Attempts to convert the content of s into a sequence of unsigned numeric values. Invalid elements
// will be replaced by the provided default value. The returned array may contain zero, one or more items.
func tryParseUIntSeq(s string, defValue uint) []int64 {
  items := strings.Split(s, ",")
  retVal := make([]int64, len(items))
  for idx, val := range items {
    retVal[idx] = tryParseUInt(val, defValue)
  }

  return retVal
}

// Used internally. Attempts to convert the content of s into a floating point value sequence. Invalid elements
// will be replaced by the provided default value. The returned array may contain zero, one or more items.
func tryParseFloatSeq(s string, defValue float64) []float64 {
  items := strings.Split(s, ",")
  retVal := make([]float64, len(items))
  for idx, val := range items {
    retVal[idx] = tryParseFloat(val, defValue)
  }

  return retVal
}

// Used internally. Attempts to convert the content of s into a sequence of string values. The returned array may
// contain zero, one or more items.
func tryParseTextSeq(s string) []string {
  items := strings.Split(s, ",")
  retVal := make([]string, len(items))
  for idx, val := range items {
    retVal[idx] = strings.TrimSpace(val)
  }

  return retVal
}

// Used internally. Fixes Windows-specific path separater characters.
func fixPath(s string) string {
  if PATH_SEPARATOR == "\\" {
    s = strings.Replace(s, PATH_SEPARATOR, "/", -1)
  }
  return s
}

// ParseColorValue converts a color definition string into a packed 0xAARRGGBB value. Accepts both single
// numeric values and "r,g,b[,a]" sequences.
func ParseColorValue(s string, defValue uint) int64 {
  var intVal int64
  if strings.Index(s, ",") >= 0 {
    // color sequence?
    seq := tryParseUIntSeq(s, 0)
    if len(seq) > 3 { intVal |= seq[3] & 0xff } else { intVal |= 0xff } // assume opaque color
    intVal <<= 8
    if len(seq) > 0 { intVal |= seq[0] & 0xff }
    intVal <<= 8
    if len(seq) > 1 { intVal |= seq[1] & 0xff }
    intVal <<= 8
    if len(seq) > 2 { intVal |= seq[2] & 0xff }
  } else {
    // color value?
    intVal = tryParseUInt(s, defValue)
  }
  return intVal
}
