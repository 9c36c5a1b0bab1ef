/*
Sprite Maker is a command line tool for turning background-keyed image sequences and video clips into
animated GIF/APNG files, sprite sheets and texture atlases.

Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package main

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "image"
  "image/color"
  "image/png"
  "io"
  "os"
  "path/filepath"
  "regexp"
  "sort"
  "strconv"
  "strings"

  "github.com/InfinityTools/spritemaker"
  "github.com/InfinityTools/spritemaker/config"
  "github.com/InfinityTools/spritemaker/graphics"
  "github.com/InfinityTools/spritemaker/palette"
  "github.com/InfinityTools/spritemaker/sprite"
  "github.com/InfinityTools/spritemaker/video"
  "github.com/InfinityTools/go-logging"
  "github.com/maruel/natural"
)


const TOOL_NAME = "Sprite Maker"


func main() {
  err := loadArgs(os.Args)
  if err != nil {
    fmt.Printf("%v\n", err)
    os.Exit(1)
  }

  // Setting global options
  if b, x := argsVerbose(); x {
    if b {
      logging.SetVerbosity(logging.LOG)
    } else {
      logging.SetVerbosity(logging.ERROR)
    }
  }
  logging.SetPrefixCaller(false)
  if b, x := argsLogStyle(); x && b {
    logging.SetPrefixTimestamp(true)
    logging.SetPrefixLevel(true)
  } else {
    logging.SetPrefixTimestamp(false)
    logging.SetPrefixLevel(false)
  }

  if _, x := argsVersion(); x {
    printVersion()
  } else if _, x := argsHelp(); x {
    printHelp()
  } else if argsExtraLength() == 0 {
    printHelp()
  } else {
    logging.Infoln("Starting sprite generation")
    err = convert()
    if err != nil {
      logging.Errorf("%v\n", err)
      os.Exit(1)
    }
    logging.Infoln("Sprite generation finished successfully.")
  }
}


func convert() error {
  length := argsExtraLength()
  for idx := 0; idx < length; idx++ {
    configFile := argsExtra(idx)
    if len(configFile) == 0 { continue }  // should not happen
    if configFile == "-" {
      logging.Infof("Starting job %d: (standard input)\n", idx)
    } else {
      logging.Infof("Starting job %d: %s\n", idx, configFile)
    }
    err := convertJob(configFile)
    if err != nil { return fmt.Errorf("Job %d: %v", idx, err) }
    logging.Infof("Finished job %d\n", idx)
  }

  return nil
}


func convertJob(configFile string) error {
  // consistency checks
  isStdIn := configFile == "-"
  if !isStdIn {
    fi, err := os.Stat(configFile)
    if err != nil { return err }
    if !fi.Mode().IsRegular() { return fmt.Errorf("File not found: %q", configFile) }
  }

  var r io.Reader = nil
  if isStdIn {
    r = os.Stdin
  } else {
    fin, err := os.Open(configFile)
    if err != nil { return fmt.Errorf("Cannot open %q: %v", configFile, err) }
    defer fin.Close()
    r = fin
  }
  cfg, err := config.ImportConfig(r)
  if err != nil { return fmt.Errorf("Error parsing configuration: %v", err) }

  err = generateSprite(cfg)
  if err != nil { return err }

  return nil
}


func generateSprite(cfg *config.SpriteConfig) error {
  if cfg == nil { return errors.New("No configuration data found") }

  logging.Logln("Generating sprite output")
  spr := sprite.CreateNew()

  // setting up general options
  if b, x := argsThreaded(); x { sprite.SetMultiThreaded(b) }

  // setting up background keying and frame extraction options
  if err := spriteSetupKey(cfg, spr); err != nil { return err }
  if err := spriteSetupExtract(cfg, spr); err != nil { return err }
  if err := spriteSetupAnim(cfg, spr); err != nil { return err }

  // setting up output options
  format, _ := cfg.GetConfigValueText(config.SECTION_OUTPUT, config.KEY_OUTPUT_FORMAT)
  if s, x := argsFormat(); x { format = s }
  if len(format) == 0 { format = "gif" }

  outFile, _ := cfg.GetConfigValueText(config.SECTION_OUTPUT, config.KEY_OUTPUT_PATH)
  if s, x := argsOutput(); x { outFile = s }
  if len(outFile) == 0 { outFile = "sprite" }
  outFile = assembleOutputFile(outFile, format)
  if dir := filepath.Dir(outFile); !directoryExists(dir) {
    err := os.MkdirAll(dir, 0755)
    if err != nil { return fmt.Errorf("Cannot create output path %q: %v", dir, err) }
  }

  width, _ := cfg.GetConfigValueInt(config.SECTION_OUTPUT, config.KEY_OUTPUT_WIDTH)
  height, _ := cfg.GetConfigValueInt(config.SECTION_OUTPUT, config.KEY_OUTPUT_HEIGHT)
  spr.SetOutputSize(int(width), int(height))
  if spr.Error() != nil { return spr.Error() }

  // printing a summary of current export options (INFO level)
  var sb strings.Builder
  sb.WriteString("Options: ")
  sb.WriteString(fmt.Sprintf("verbose: %v", logging.GetVerbosity() < logging.INFO))
  sb.WriteString(fmt.Sprintf(", threading: %v", sprite.GetMultiThreaded()))
  sb.WriteString(fmt.Sprintf(", format: %s", format))
  sb.WriteString(fmt.Sprintf(", output: %q", outFile))
  sb.WriteString(fmt.Sprintf(", target colors: %d", spr.GetTargetColorLength()))
  sb.WriteString(fmt.Sprintf(", hsv: %v", spr.GetHSVMatching()))
  sb.WriteString(fmt.Sprintf(", edge smoothing: %d", spr.GetEdgeSmoothing()))
  sb.WriteString(fmt.Sprintf(", bleed passes: %d", spr.GetBleedPasses()))
  sb.WriteString(fmt.Sprintf(", regions: %d", spr.GetRegionLength()))
  if format == "gif" {
    i, j := spr.GetQuality()
    sb.WriteString(fmt.Sprintf(", quality: (%d, %d)", i, j))
    sb.WriteString(fmt.Sprintf(", speed: %d", spr.GetSpeed()))
    sb.WriteString(fmt.Sprintf(", dither: %v", spr.GetDither()))
  }
  if format == "gif" || format == "apng" {
    sb.WriteString(fmt.Sprintf(", duration: %d ms", spr.GetFrameDuration()))
    sb.WriteString(fmt.Sprintf(", loop: %d", spr.GetLoopCount()))
    sb.WriteString(fmt.Sprintf(", boomerang: %v", spr.GetBoomerang()))
  }
  if format == "sheet" || format == "atlas" {
    i, j := spr.GetSheetLayout()
    sb.WriteString(fmt.Sprintf(", columns: %d", i))
    sb.WriteString(fmt.Sprintf(", padding: %d", j))
  }
  logging.Infoln(sb.String())

  // importing input frames
  if err := spriteLoadFrames(cfg, spr); err != nil { return err }

  // removing background and applying postprocessing
  spr.ProcessAll()
  if spr.Error() != nil { return spr.Error() }

  fout, err := os.Create(outFile)
  if err != nil { return fmt.Errorf("Cannot create %q: %v", outFile, err) }
  defer fout.Close()

  switch format {
    case "gif":
      spr.EncodeGif(fout)
    case "apng":
      spr.EncodeApng(fout)
    case "zip":
      spr.ExportArchive(fout)
    case "sheet":
      img := spr.PackSheet()
      if spr.Error() != nil { return spr.Error() }
      if err := png.Encode(fout, img); err != nil { return fmt.Errorf("Cannot encode %q: %v", outFile, err) }
    case "atlas":
      img, entries := spr.PackAtlas()
      if spr.Error() != nil { return spr.Error() }
      if err := png.Encode(fout, img); err != nil { return fmt.Errorf("Cannot encode %q: %v", outFile, err) }
      if err := exportAtlasMap(outFile, entries); err != nil { return err }
    default:
      return fmt.Errorf("Unsupported output format: %q", format)
  }

  logging.Logln("Finished generating sprite output")
  return spr.Error()
}


func spriteSetupKey(cfg *config.SpriteConfig, spr *sprite.Sprite) error {
  // Setting background color matching options
  bVal, _ := cfg.GetConfigValueBool(config.SECTION_SETTINGS, config.KEY_HSV)
  if b, x := argsHSV(); x { bVal = b }
  spr.SetHSVMatching(bVal)

  iVal, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_EDGE_SMOOTHING)
  if i, x := argsEdgeSmoothing(); x { iVal = int64(i) }
  spr.SetEdgeSmoothing(int(iVal))

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_BLEED_PASSES)
  if i, x := argsBleedPasses(); x { iVal = int64(i) }
  spr.SetBleedPasses(int(iVal))

  // target colors from command line take precedence over the configuration
  if options, x := argsColorOptions(); x {
    reg := regexp.MustCompile("^([^:]+)(?::([0-9]+))?$")
    for _, option := range options {
      values := reg.FindStringSubmatch(option)  // should return []string{"full-string", "color", "tolerance"}
      if values == nil || len(values) < 3 { return fmt.Errorf("Invalid color option: %s", option) }
      col := config.ParseColorValue(strings.TrimSpace(values[1]), 0xff00ff00)
      tolerance := 40
      if len(values[2]) > 0 {
        t, err := strconv.Atoi(values[2])
        if err != nil { return fmt.Errorf("Invalid color tolerance: %s", values[2]) }
        tolerance = t
      }
      b, g, r, a := byte(col), byte(col >> 8), byte(col >> 16), byte(col >> 24)
      spr.AddTargetColor(color.NRGBA{r, g, b, a}, tolerance)
    }
  } else if seqVal, ok := cfg.GetConfigValueIntSeq2(config.SECTION_COLORS, config.KEY_COLORS); ok {
    for _, entry := range seqVal {
      if len(entry) < 2 { continue }
      col, tolerance := entry[0], entry[1]
      b, g, r, a := byte(col), byte(col >> 8), byte(col >> 16), byte(col >> 24)
      spr.AddTargetColor(color.NRGBA{r, g, b, a}, int(tolerance))
    }
  }

  // erase regions
  if seqVal, ok := cfg.GetConfigValueIntSeq2(config.SECTION_REGIONS, config.KEY_REGIONS); ok {
    for idx, entry := range seqVal {
      if len(entry) < 4 { return fmt.Errorf("Region %d: Expected 4 values, found %d", idx, len(entry)) }
      spr.AddRegion(sprite.Region{X: int(entry[0]), Y: int(entry[1]), Width: int(entry[2]), Height: int(entry[3])})
    }
  }

  return spr.Error()
}


func spriteSetupExtract(cfg *config.SpriteConfig, spr *sprite.Sprite) error {
  // Setting frame extraction options
  iVal, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_FRAME_STRIDE)
  if i, x := argsFrameStride(); x { iVal = int64(i) }
  if iVal > 0 { spr.SetFrameStride(int(iVal)) }

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_MAX_FRAMES)
  if i, x := argsMaxFrames(); x { iVal = int64(i) }
  spr.SetMaxFrames(int(iVal))

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_START_TRIM)
  if i, x := argsStartTrim(); x { iVal = int64(i) }
  iVal2, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_END_TRIM)
  if i, x := argsEndTrim(); x { iVal2 = int64(i) }
  spr.SetTrim(int(iVal), int(iVal2))

  return spr.Error()
}


func spriteSetupAnim(cfg *config.SpriteConfig, spr *sprite.Sprite) error {
  // Setting animation and quantization options
  iVal, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_DURATION)
  if i, x := argsDuration(); x { iVal = int64(i) }
  if iVal > 0 { spr.SetFrameDuration(int(iVal)) }

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_LOOP)
  if i, x := argsLoop(); x { iVal = int64(i) }
  spr.SetLoopCount(int(iVal))

  bVal, _ := cfg.GetConfigValueBool(config.SECTION_SETTINGS, config.KEY_BOOMERANG)
  if b, x := argsBoomerang(); x { bVal = b }
  spr.SetBoomerang(bVal)

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_COLUMNS)
  iVal2, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_PADDING)
  spr.SetSheetLayout(int(iVal), int(iVal2))

  var sVal string
  sVal, bVal = argsQuantizer()
  if !bVal {
    sVal, _ = cfg.GetConfigValueText(config.SECTION_SETTINGS, config.KEY_QUANTIZER)
  }
  if sVal == "fast" {
    spr.SetQuantizer(sprite.QUANTIZER_FAST)
  } else {
    spr.SetQuantizer(sprite.QUANTIZER_QUALITY)
  }

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_QUALITY_MIN)
  if i, x := argsQualityMin(); x { iVal = int64(i) }
  iVal2, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_QUALITY_MAX)
  if i, x := argsQualityMax(); x { iVal2 = int64(i) }
  spr.SetQuality(int(iVal), int(iVal2))

  iVal, _ = cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_SPEED)
  if i, x := argsSpeed(); x { iVal = int64(i) }
  if iVal > 0 { spr.SetSpeed(int(iVal)) }

  fVal, _ := cfg.GetConfigValueFloat(config.SECTION_SETTINGS, config.KEY_DITHER)
  if f, x := argsDither(); x { fVal = float64(f) }
  spr.SetDither(float32(fVal))

  sVal, bVal = argsSortBy()
  if !bVal {
    sVal, _ = cfg.GetConfigValueText(config.SECTION_SETTINGS, config.KEY_SORT_BY)
  }
  if len(sVal) > 0 {
    sVal = strings.ToLower(sVal)
    bVal = false
    if idx := strings.LastIndex(sVal, "_reversed"); idx == len(sVal) - len("_reversed") {
      bVal = true
      sVal = sVal[:idx]
    }
    stype := 0
    switch sVal {
      case "lightness":
        stype = palette.SORT_BY_LIGHTNESS
      case "saturation":
        stype = palette.SORT_BY_SATURATION
      case "hue":
        stype = palette.SORT_BY_HUE
      case "red":
        stype = palette.SORT_BY_RED
      case "green":
        stype = palette.SORT_BY_GREEN
      case "blue":
        stype = palette.SORT_BY_BLUE
      default:
        if sVal != "none" { logging.Warnf("Unrecognized color sort type: %q. Defaulting to \"none\".\n", sVal) }
        stype = palette.SORT_BY_NONE
    }
    if bVal { stype |= palette.SORT_REVERSED }
    spr.SetPaletteSortFlags(stype)
  }

  return spr.Error()
}


func spriteLoadFrames(cfg *config.SpriteConfig, spr *sprite.Sprite) error {
  useStatic, _ := cfg.GetConfigValueBool(config.SECTION_INPUT, config.KEY_INPUT_STATIC)

  fps, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_FPS)
  maxWidth, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_MAX_WIDTH)

  logging.Logln("Importing input files")
  var sources []sprite.FrameSource
  var err error = nil
  if useStatic {
    sources, err = spriteLoadFramesStatic(cfg, int(fps), int(maxWidth))
  } else {
    sources, err = spriteLoadFramesSequence(cfg)
  }
  if err != nil { return err }
  if len(sources) == 0 { return errors.New("No input files defined") }
  logging.Logln("Finished importing input files")

  spr.Extract(joinSources(sources))
  return spr.Error()
}


// Collects frame sources from a static list of file path entries. Wildcard entries are expanded and sorted
// in natural order.
func spriteLoadFramesStatic(cfg *config.SpriteConfig, fps, maxWidth int) ([]sprite.FrameSource, error) {
  entries, _ := cfg.GetConfigValueTextSeq(config.SECTION_INPUT, config.KEY_INPUT_FILES)
  if len(entries) == 0 { return nil, fmt.Errorf("No input files defined") }

  sources := make([]sprite.FrameSource, 0, len(entries))
  for eidx, entry := range entries {
    fileNames := []string{entry}
    if strings.ContainsAny(entry, "*?[") {
      expanded, err := filepath.Glob(entry)
      if err != nil { return nil, fmt.Errorf("Input entry %d: %v", eidx, err) }
      if len(expanded) == 0 { return nil, fmt.Errorf("Input entry %d does not match any files: %q", eidx, entry) }
      sort.Slice(expanded, func(i, j int) bool { return natural.Less(expanded[i], expanded[j]) })
      fileNames = expanded
    }
    for _, fileName := range fileNames {
      if !fileExists(fileName) { return nil, fmt.Errorf("Input file %d does not exist: %q", eidx, fileName) }
      logging.Logf("Importing %s\n", fileName)
      src, err := loadFrameSource(fileName, fps, maxWidth)
      if err != nil { return nil, err }
      sources = append(sources, src)
    }
  }

  return sources, nil
}


// Collects frame sources from a file sequence generated by parameters.
func spriteLoadFramesSequence(cfg *config.SpriteConfig) ([]sprite.FrameSource, error) {
  path, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_PATH)
  prefix, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_PREFIX)
  ext, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_EXT)
  suffixStart, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_START)
  suffixEnd, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_END)
  suffixLen, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_LEN)

  // sequence may be incremented or decremented
  var inc int64
  if suffixEnd < suffixStart { inc = -1; suffixEnd-- } else { inc = 1; suffixEnd++ }
  sources := make([]sprite.FrameSource, 0)
  for index := suffixStart; index != suffixEnd; index += inc {
    fileName := config.AssembleFilePath(path, prefix, ext, index, suffixLen)
    if !fileExists(fileName) { return nil, fmt.Errorf("Input file does not exist: %q", fileName) }
    logging.Logf("Importing %s\n", fileName)
    g, err := loadGraphics(fileName)
    if err != nil { return nil, err }
    sources = append(sources, g)
  }

  return sources, nil
}


// A frame source covering the concatenated frames of multiple sources.
type multiSource struct {
  sources []sprite.FrameSource
  total   int
}

func (m *multiSource) FrameCount() int {
  return m.total
}

func (m *multiSource) Frame(index int) (image.Image, error) {
  for _, src := range m.sources {
    if index < src.FrameCount() { return src.Frame(index) }
    index -= src.FrameCount()
  }
  return nil, fmt.Errorf("Frame index out of range: %d", index)
}

// Used internally. Combines one or more frame sources into a single source, so that frame trimming and
// stride settings apply to the sequence as a whole.
func joinSources(sources []sprite.FrameSource) sprite.FrameSource {
  if len(sources) == 1 { return sources[0] }
  total := 0
  for _, src := range sources {
    total += src.FrameCount()
  }
  return &multiSource{sources, total}
}


// Loads a single input file, routing video formats to the ffmpeg-based importer.
func loadFrameSource(fileName string, fps, maxWidth int) (sprite.FrameSource, error) {
  if isVideoFile(fileName) {
    v := video.Import(context.Background(), fileName, fps, maxWidth)
    return v, v.Error()
  }
  return loadGraphics(fileName)
}


// Loads a still or animated graphics file.
func loadGraphics(fileName string) (*graphics.Graphics, error) {
  fin, err := os.Open(fileName)
  if err != nil { return nil, fmt.Errorf("Could not open %q: %v", fileName, err) }
  defer fin.Close()

  retVal := graphics.Import(fin)
  return retVal, retVal.Error()
}


// Used internally. Returns whether the file extension indicates a video container format.
func isVideoFile(fileName string) bool {
  switch strings.ToLower(filepath.Ext(fileName)) {
    case ".mp4", ".m4v", ".mov", ".avi", ".mkv", ".webm", ".mpg", ".mpeg":
      return true
  }
  return false
}


// Used internally. Appends a format-specific file extension if the output file doesn't provide one.
func assembleOutputFile(outFile, format string) string {
  if len(filepath.Ext(outFile)) > 0 { return outFile }
  switch format {
    case "sheet", "atlas":
      return outFile + ".png"
    default:
      return outFile + "." + format
  }
}


// Writes the frame placement table of a texture atlas as JSON, next to the atlas image.
func exportAtlasMap(outFile string, entries []sprite.AtlasEntry) error {
  mapFile := strings.TrimSuffix(outFile, filepath.Ext(outFile)) + ".json"
  buf, err := json.MarshalIndent(entries, "", "  ")
  if err != nil { return fmt.Errorf("Cannot encode atlas map: %v", err) }
  err = os.WriteFile(mapFile, buf, 0644)
  if err != nil { return fmt.Errorf("Cannot create %q: %v", mapFile, err) }
  logging.Logf("Atlas map written to %s\n", mapFile)
  return nil
}


func printHelp() {
  fmt.Printf("Usage: %s [options] configfile [configfile2 ...]\n", os.Args[0])
  const helpText = "Allows you to build animated GIF/APNG files, sprite sheets and texture atlases from\n" +
                   "background-keyed image sequences or video clips, based on settings defined in\n" +
                   "configuration files.\n" +
                   "\n" +
                // "...............................................................................\n" +
                   "Options:\n" +
                   "  --verbose                 Show additional log messages during the generation\n" +
                   "                            process.\n" +
                   "  --silent                  Suppress any log messages during the generation\n" +
                   "                            process except for errors.\n" +
                   "  --log-style               Print log messages in log style, complete with\n" +
                   "                            timestamp and log level.\n" +
                   "  --threaded                Enable multithreading for frame processing. May\n" +
                   "                            speed up the generation process on multi-core\n" +
                   "                            systems. Enabled by default if multiple CPU cores\n" +
                   "                            are detected.\n" +
                   "  --no-threaded             Disable multithreading for frame processing.\n" +
                   "  --format type             Set output format. Can be one of gif, apng, zip,\n" +
                   "                            sheet or atlas. Overrides setting in the config\n" +
                   "                            file.\n" +
                   "  --output file             Set output file. Overrides setting in the config\n" +
                   "                            file.\n" +
                   "  --color value[:tol]       Add a background color to remove, as a packed\n" +
                   "                            numeric value or \"r,g,b\" sequence, with optional\n" +
                   "                            tolerance in range [0, 150]. Add multiple --color\n" +
                   "                            instances to remove multiple colors. Replaces the\n" +
                   "                            colors defined in the config file.\n" +
                   "  --hsv                     Match background colors in HSV color space.\n" +
                   "                            Overrides setting in the config file.\n" +
                   "  --no-hsv                  Match background colors per RGB channel. Overrides\n" +
                   "                            setting in the config file.\n" +
                   "  --edge-smoothing radius   Set blur radius for mask edge smoothing. Allowed\n" +
                   "                            range: [0, 64]. Set to 0 to disable. Overrides\n" +
                   "                            setting in the config file.\n" +
                   "  --bleed-passes count      Set number of color bleed suppression passes.\n" +
                   "                            Allowed range: [0, 16]. Overrides setting in the\n" +
                   "                            config file.\n" +
                   "  --frame-stride n          Keep only every n-th extracted frame. Overrides\n" +
                   "                            setting in the config file.\n" +
                   "  --max-frames count        Limit the number of extracted frames. Set to 0 for\n" +
                   "                            no limit. Overrides setting in the config file.\n" +
                   "  --start-trim count        Skip the given number of frames at the start of\n" +
                   "                            the sequence. Overrides setting in the config\n" +
                   "                            file.\n" +
                   "  --end-trim count          Skip the given number of frames at the end of the\n" +
                   "                            sequence. Overrides setting in the config file.\n" +
                   "  --duration ms             Set the frame display duration in milliseconds.\n" +
                   "                            Allowed range: [1, 65535]. Overrides setting in\n" +
                   "                            the config file.\n" +
                   "  --loop count              Set the animation loop count. Set to 0 to loop\n" +
                   "                            forever. Overrides setting in the config file.\n" +
                   "  --boomerang               Append the reversed frame sequence to play the\n" +
                   "                            animation back and forth. Overrides setting in the\n" +
                   "                            config file.\n" +
                   "  --no-boomerang            Play the animation forward only. Overrides setting\n" +
                   "                            in the config file.\n" +
                   "  --quantizer type          Set color quantizer for GIF output. Can be quality\n" +
                   "                            or fast. Overrides setting in the config file.\n" +
                   "  --quality-min qmin        Set minimum quality for GIF color quantization.\n" +
                   "                            Allowed range: [0, 100]. Overrides setting in the\n" +
                   "                            config file.\n" +
                   "  --quality-max qmax        Set maximum quality for GIF color quantization.\n" +
                   "                            Allowed range: [0, 100]. Overrides setting in the\n" +
                   "                            config file.\n" +
                   "  --speed value             Set speed for palette generation. Allowed range:\n" +
                   "                            [1, 10]. Overrides setting in the config file.\n" +
                   "  --dither value            Set dither strength for GIF output. Value must be\n" +
                   "                            in range [0.0, 1.0]. Set to 0 to disable.\n" +
                   "                            Overrides setting in the config file.\n" +
                   "  --sort type               Sort the GIF palette by the specified type. The\n" +
                   "                            following types are recognized: none, lightness,\n" +
                   "                            saturation, hue, red, green, blue. Append\n" +
                   "                            _reversed to reverse the sort order. Overrides\n" +
                   "                            setting in the config file.\n" +
                   "  --help                    Print this help and terminate.\n" +
                   "  --version                 Print version information and terminate.\n" +
                   "\n" +
                   "Note: Use minus sign (-) in place of configfile to read configuration data\n" +
                   "      from standard input."
  fmt.Println(helpText)
}


func printVersion() {
  spritemaker.PrintVersion(TOOL_NAME)
}


// Used internally. Returns whether the specified filename points to a regular existing file.
func fileExists(file string) bool {
  if len(file) == 0 { return false }
  fi, err := os.Stat(file)
  if err != nil { return false }
  return fi.Mode().IsRegular()
}

// Used internally. Returns whether the specified path points to an existing directory.
func directoryExists(dir string) bool {
  if len(dir) == 0 { return true }  // special
  fi, err := os.Stat(dir)
  if err != nil { return false }
  return fi.Mode().IsDir()
}
