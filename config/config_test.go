/*
Sprite Maker is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package config

import (
  "strings"
  "testing"

  "github.com/InfinityTools/go-logging"
)

func init() {
  logging.SetVerbosity(logging.ERROR)
}

const configJson = `{
  "output": { "format": "APNG", "file": "out/anim", "width": 320, "height": 240 },
  "input": {
    "static": true,
    "files": [" first.png ", "second.png"],
    "filesequence": { "path": "frames/", "prefix": "frame", "suffixstart": 0, "suffixend": 9, "suffixlength": 3, "ext": ".png" },
    "fps": 24,
    "maxwidth": 640
  },
  "settings": {
    "hsv": true,
    "edgesmoothing": 3,
    "bleedpasses": 0,
    "framestride": 2,
    "maxframes": 50,
    "starttrim": 1,
    "endtrim": 2,
    "duration": 80,
    "loop": 3,
    "boomerang": true,
    "columns": 4,
    "padding": 2,
    "quantizer": "fast",
    "qualitymin": 60,
    "qualitymax": 90,
    "speed": 5,
    "dither": 0.5,
    "sortby": "lightness"
  },
  "colors": [
    { "value": "0,255,0", "tolerance": 40 },
    { "value": "0xff00ff00", "tolerance": 20 }
  ],
  "regions": [ [10, 10, 20, 20] ]
}`

func TestImportConfigJson(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(configJson))
  if err != nil { t.Fatalf("ImportConfig() error: %v", err) }

  if v, ok := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_FORMAT); !ok || v != "apng" {
    t.Errorf("output format = %q, want %q", v, "apng")
  }
  if v, ok := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_PATH); !ok || v != "out/anim" {
    t.Errorf("output path = %q, want %q", v, "out/anim")
  }
  if v, ok := cfg.GetConfigValueInt(SECTION_OUTPUT, KEY_OUTPUT_WIDTH); !ok || v != 320 {
    t.Errorf("output width = %d, want 320", v)
  }
  if v, ok := cfg.GetConfigValueInt(SECTION_OUTPUT, KEY_OUTPUT_HEIGHT); !ok || v != 240 {
    t.Errorf("output height = %d, want 240", v)
  }

  if v, ok := cfg.GetConfigValueBool(SECTION_INPUT, KEY_INPUT_STATIC); !ok || !v {
    t.Error("input static should be true")
  }
  if v, ok := cfg.GetConfigValueTextSeq(SECTION_INPUT, KEY_INPUT_FILES); !ok || len(v) != 2 || v[0] != "first.png" {
    t.Errorf("input files = %v, want trimmed entries", v)
  }
  if v, _ := cfg.GetConfigValueText(SECTION_INPUT, KEY_INPUT_PATH); v != "frames" {
    t.Errorf("input path = %q, want %q", v, "frames")
  }
  if v, _ := cfg.GetConfigValueText(SECTION_INPUT, KEY_INPUT_PREFIX); v != "frame" {
    t.Errorf("input prefix = %q, want %q", v, "frame")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_INPUT, KEY_INPUT_SUFFIX_LEN); v != 3 {
    t.Errorf("input suffix length = %d, want 3", v)
  }
  if v, _ := cfg.GetConfigValueText(SECTION_INPUT, KEY_INPUT_EXT); v != "png" {
    t.Errorf("input ext = %q, want %q", v, "png")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_INPUT, KEY_INPUT_FPS); v != 24 {
    t.Errorf("input fps = %d, want 24", v)
  }

  if v, _ := cfg.GetConfigValueBool(SECTION_SETTINGS, KEY_HSV); !v { t.Error("hsv should be true") }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_EDGE_SMOOTHING); v != 3 {
    t.Errorf("edge smoothing = %d, want 3", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_BLEED_PASSES); v != 0 {
    t.Errorf("bleed passes = %d, want explicit 0", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_FRAME_STRIDE); v != 2 {
    t.Errorf("frame stride = %d, want 2", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_DURATION); v != 80 {
    t.Errorf("duration = %d, want 80", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_LOOP); v != 3 {
    t.Errorf("loop = %d, want 3", v)
  }
  if v, _ := cfg.GetConfigValueBool(SECTION_SETTINGS, KEY_BOOMERANG); !v { t.Error("boomerang should be true") }
  if v, _ := cfg.GetConfigValueText(SECTION_SETTINGS, KEY_QUANTIZER); v != "fast" {
    t.Errorf("quantizer = %q, want %q", v, "fast")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_QUALITY_MIN); v != 60 {
    t.Errorf("quality min = %d, want 60", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_QUALITY_MAX); v != 90 {
    t.Errorf("quality max = %d, want 90", v)
  }
  if v, _ := cfg.GetConfigValueFloat(SECTION_SETTINGS, KEY_DITHER); v != 0.5 {
    t.Errorf("dither = %f, want 0.5", v)
  }
  if v, _ := cfg.GetConfigValueText(SECTION_SETTINGS, KEY_SORT_BY); v != "lightness" {
    t.Errorf("sort by = %q, want %q", v, "lightness")
  }

  colors, ok := cfg.GetConfigValueIntSeq2(SECTION_COLORS, KEY_COLORS)
  if !ok || len(colors) != 2 { t.Fatalf("colors = %v, want 2 entries", colors) }
  if colors[0][0] != 0xff00ff00 || colors[0][1] != 40 {
    t.Errorf("colors[0] = %v, want [0xff00ff00 40]", colors[0])
  }
  if colors[1][0] != 0xff00ff00 || colors[1][1] != 20 {
    t.Errorf("colors[1] = %v, want [0xff00ff00 20]", colors[1])
  }

  regions, ok := cfg.GetConfigValueIntSeq2(SECTION_REGIONS, KEY_REGIONS)
  if !ok || len(regions) != 1 { t.Fatalf("regions = %v, want 1 entry", regions) }
  if regions[0][0] != 10 || regions[0][2] != 20 {
    t.Errorf("regions[0] = %v, want [10 10 20 20]", regions[0])
  }
}

func TestImportConfigJsonDefaults(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(`{}`))
  if err != nil { t.Fatalf("ImportConfig() error: %v", err) }

  if v, _ := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_FORMAT); v != "gif" {
    t.Errorf("default output format = %q, want %q", v, "gif")
  }
  if v, _ := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_PATH); v != "sprite" {
    t.Errorf("default output path = %q, want %q", v, "sprite")
  }
  if v, _ := cfg.GetConfigValueText(SECTION_INPUT, KEY_INPUT_PATH); v != "." {
    t.Errorf("default input path = %q, want %q", v, ".")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_INPUT, KEY_INPUT_SUFFIX_LEN); v != 1 {
    t.Errorf("default suffix length = %d, want 1", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_BLEED_PASSES); v != 2 {
    t.Errorf("default bleed passes = %d, want 2", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_FRAME_STRIDE); v != 1 {
    t.Errorf("default frame stride = %d, want 1", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_DURATION); v != 100 {
    t.Errorf("default duration = %d, want 100", v)
  }
  if v, _ := cfg.GetConfigValueText(SECTION_SETTINGS, KEY_QUANTIZER); v != "quality" {
    t.Errorf("default quantizer = %q, want %q", v, "quality")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_QUALITY_MIN); v != 80 {
    t.Errorf("default quality min = %d, want 80", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_QUALITY_MAX); v != 100 {
    t.Errorf("default quality max = %d, want 100", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_SPEED); v != 3 {
    t.Errorf("default speed = %d, want 3", v)
  }
  if v, _ := cfg.GetConfigValueText(SECTION_SETTINGS, KEY_SORT_BY); v != "none" {
    t.Errorf("default sort by = %q, want %q", v, "none")
  }
}

const configXml = `
<generator>
  <output>
    <format>sheet</format>
    <file>out/sheet.png</file>
  </output>
  <input>
    <static>false</static>
    <filesequence>
      <path>frames</path>
      <prefix>walk_</prefix>
      <suffixstart>1</suffixstart>
      <suffixend>8</suffixend>
      <suffixlength>2</suffixlength>
      <ext>png</ext>
    </filesequence>
  </input>
  <settings>
    <hsv>true</hsv>
    <edgesmoothing>2</edgesmoothing>
    <columns>4</columns>
    <padding>1</padding>
  </settings>
  <colors>
    <color>
      <value>255,0,255</value>
      <tolerance>30</tolerance>
    </color>
  </colors>
  <regions>
    <region>0,0,8,8</region>
  </regions>
</generator>
`

func TestImportConfigXml(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(configXml))
  if err != nil { t.Fatalf("ImportConfig() error: %v", err) }

  if v, _ := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_FORMAT); v != "sheet" {
    t.Errorf("output format = %q, want %q", v, "sheet")
  }
  if v, ok := cfg.GetConfigValueBool(SECTION_INPUT, KEY_INPUT_STATIC); !ok || v {
    t.Error("input static should be false")
  }
  if v, _ := cfg.GetConfigValueText(SECTION_INPUT, KEY_INPUT_PREFIX); v != "walk_" {
    t.Errorf("input prefix = %q, want %q", v, "walk_")
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_INPUT, KEY_INPUT_SUFFIX_START); v != 1 {
    t.Errorf("suffix start = %d, want 1", v)
  }
  if v, _ := cfg.GetConfigValueInt(SECTION_INPUT, KEY_INPUT_SUFFIX_END); v != 8 {
    t.Errorf("suffix end = %d, want 8", v)
  }
  if v, _ := cfg.GetConfigValueBool(SECTION_SETTINGS, KEY_HSV); !v { t.Error("hsv should be true") }
  if v, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_COLUMNS); v != 4 {
    t.Errorf("columns = %d, want 4", v)
  }

  colors, _ := cfg.GetConfigValueIntSeq2(SECTION_COLORS, KEY_COLORS)
  if len(colors) != 1 { t.Fatalf("colors = %v, want 1 entry", colors) }
  if colors[0][0] != 0xffff00ff || colors[0][1] != 30 {
    t.Errorf("colors[0] = %v, want [0xffff00ff 30]", colors[0])
  }

  regions, _ := cfg.GetConfigValueIntSeq2(SECTION_REGIONS, KEY_REGIONS)
  if len(regions) != 1 || regions[0][2] != 8 {
    t.Errorf("regions = %v, want [[0 0 8 8]]", regions)
  }
}

func TestImportConfigFormatDetection(t *testing.T) {
  // leading whitespace is skipped before sniffing the format
  cfg, err := ImportConfig(strings.NewReader("  \n\t {}"))
  if err != nil { t.Fatalf("ImportConfig() error: %v", err) }
  if cfg == nil { t.Fatal("ImportConfig() returned nil config") }

  if _, err = ImportConfig(strings.NewReader("garbage data")); err == nil {
    t.Error("ImportConfig() should fail on unrecognized content")
  }
}

func TestImportConfigValidation(t *testing.T) {
  tests := []struct {
    name    string
    source  string
  }{
    {"bad format", `{"output": {"format": "bmp"}}`},
    {"width out of range", `{"output": {"width": 70000}}`},
    {"edge smoothing out of range", `{"settings": {"edgesmoothing": 100}}`},
    {"dither out of range", `{"settings": {"dither": 2.0}}`},
    {"speed out of range", `{"settings": {"speed": 11}}`},
    {"bad quantizer", `{"settings": {"quantizer": "best"}}`},
    {"tolerance out of range", `{"colors": [{"value": "0,255,0", "tolerance": 200}]}`},
    {"incomplete region", `{"regions": [[1, 2, 3]]}`},
  }

  for _, test := range tests {
    t.Run(test.name, func(t *testing.T) {
      if _, err := ImportConfig(strings.NewReader(test.source)); err == nil {
        t.Errorf("ImportConfig() should fail: %s", test.name)
      }
    })
  }
}

func TestParseColorValue(t *testing.T) {
  tests := []struct {
    input     string
    expected  int64
  }{
    {"0,255,0", 0xff00ff00},          // rgb, opaque alpha assumed
    {"255,0,255", 0xffff00ff},
    {"255,0,0,128", 0x80ff0000},      // explicit alpha
    {"0xff00ff00", 0xff00ff00},       // packed hex value
    {"4278255360", 0xff00ff00},       // packed decimal value
    {"invalid", 0x11223344},          // falls back to default
  }

  for _, test := range tests {
    if got := ParseColorValue(test.input, 0x11223344); got != test.expected {
      t.Errorf("ParseColorValue(%q) = %#x, want %#x", test.input, got, test.expected)
    }
  }
}

func TestAssembleFilePath(t *testing.T) {
  tests := []struct {
    path        string
    prefix      string
    ext         string
    index       int64
    indexWidth  int64
    expected    string
  }{
    {"dir", "frame", "png", 7, 3, "dir/frame007.png"},
    {"dir/", "frame", ".png", 7, 3, "dir/frame007.png"},
    {"dir", "", "png", 12, 1, "dir/12.png"},
    {"", "frame", "png", 0, 2, "frame00.png"},
    {"dir", "frame", "", 5, 4, "dir/frame0005"},
  }

  for _, test := range tests {
    got := AssembleFilePath(test.path, test.prefix, test.ext, test.index, test.indexWidth)
    if got != test.expected {
      t.Errorf("AssembleFilePath(%q, %q, %q, %d, %d) = %q, want %q",
               test.path, test.prefix, test.ext, test.index, test.indexWidth, got, test.expected)
    }
  }
}
