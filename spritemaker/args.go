package main
// Handles command line arguments for spritemaker.

import (
  "errors"
  "fmt"
  "os"

  "github.com/InfinityTools/go-cmdargs"
  "github.com/InfinityTools/go-logging"
)

const (
  CMDOPT_HELP = "help"
  CMDOPT_VERSION = "version"
  CMDOPT_VERBOSE = "verbose"
  CMDOPT_SILENT = "silent"
  CMDOPT_LOG_STYLE = "log-style"
  CMDOPT_THREADED = "threaded"
  CMDOPT_NO_THREADED = "no-threaded"
  CMDOPT_FORMAT = "format"
  CMDOPT_OUTPUT = "output"
  CMDOPT_HSV = "hsv"
  CMDOPT_NO_HSV = "no-hsv"
  CMDOPT_EDGE_SMOOTHING = "edge-smoothing"
  CMDOPT_BLEED_PASSES = "bleed-passes"
  CMDOPT_FRAME_STRIDE = "frame-stride"
  CMDOPT_MAX_FRAMES = "max-frames"
  CMDOPT_START_TRIM = "start-trim"
  CMDOPT_END_TRIM = "end-trim"
  CMDOPT_DURATION = "duration"
  CMDOPT_LOOP = "loop"
  CMDOPT_BOOMERANG = "boomerang"
  CMDOPT_NO_BOOMERANG = "no-boomerang"
  CMDOPT_QUANTIZER = "quantizer"
  CMDOPT_QUALITY_MIN = "quality-min"
  CMDOPT_QUALITY_MAX = "quality-max"
  CMDOPT_SPEED = "speed"
  CMDOPT_DITHER = "dither"
  CMDOPT_SORT_BY = "sort"
  CMDOPT_COLOR = "color"
)

type OptBool struct { value bool; set bool }
type OptInt struct { value int; set bool }
type OptFloat struct { value float32; set bool }
type OptText struct { value string; set bool }

type CmdOptions struct {
  help                OptBool
  version             OptBool
  verbose             OptBool
  logStyle            OptBool
  threaded            OptBool
  format              OptText
  output              OptText
  hsv                 OptBool
  edgeSmoothing       OptInt
  bleedPasses         OptInt
  frameStride         OptInt
  maxFrames           OptInt
  startTrim           OptInt
  endTrim             OptInt
  duration            OptInt
  loop                OptInt
  boomerang           OptBool
  quantizer           OptText
  qualityMin          OptInt
  qualityMax          OptInt
  speed               OptInt
  dither              OptFloat
  sortBy              OptText
  colorOption         []OptText
  optionsLength       int
  argSelf             string
  argsExtra           []string
}

var cmdOptions  CmdOptions


func loadArgs(args []string) error {
  params := cmdargs.Create()
  params.AddParameter(CMDOPT_HELP, nil, 0)
  params.AddParameter(CMDOPT_VERSION, nil, 0)
  params.AddParameter(CMDOPT_VERBOSE, nil, 0)
  params.AddParameter(CMDOPT_SILENT, nil, 0)
  params.AddParameter(CMDOPT_LOG_STYLE, nil, 0)
  params.AddParameter(CMDOPT_THREADED, nil, 0)
  params.AddParameter(CMDOPT_NO_THREADED, nil, 0)
  params.AddParameter(CMDOPT_FORMAT, nil, 1)
  params.AddParameter(CMDOPT_OUTPUT, nil, 1)
  params.AddParameter(CMDOPT_HSV, nil, 0)
  params.AddParameter(CMDOPT_NO_HSV, nil, 0)
  params.AddParameter(CMDOPT_EDGE_SMOOTHING, nil, 1)
  params.AddParameter(CMDOPT_BLEED_PASSES, nil, 1)
  params.AddParameter(CMDOPT_FRAME_STRIDE, nil, 1)
  params.AddParameter(CMDOPT_MAX_FRAMES, nil, 1)
  params.AddParameter(CMDOPT_START_TRIM, nil, 1)
  params.AddParameter(CMDOPT_END_TRIM, nil, 1)
  params.AddParameter(CMDOPT_DURATION, nil, 1)
  params.AddParameter(CMDOPT_LOOP, nil, 1)
  params.AddParameter(CMDOPT_BOOMERANG, nil, 0)
  params.AddParameter(CMDOPT_NO_BOOMERANG, nil, 0)
  params.AddParameter(CMDOPT_QUANTIZER, nil, 1)
  params.AddParameter(CMDOPT_QUALITY_MIN, nil, 1)
  params.AddParameter(CMDOPT_QUALITY_MAX, nil, 1)
  params.AddParameter(CMDOPT_SPEED, nil, 1)
  params.AddParameter(CMDOPT_DITHER, nil, 1)
  params.AddParameter(CMDOPT_SORT_BY, nil, 1)
  params.AddParameter(CMDOPT_COLOR, nil, 1)

  err := params.Evaluate(args)
  if err != nil { return err }

  // validating extra arguments
  cmdOptions.argSelf = params.GetArgSelf()
  cmdOptions.argsExtra = make([]string, 0)
  for i := 0; i < params.GetArgExtraLength(); i++ {
    s := params.GetArgExtra(i).ToString()
    if s == "-" {
      // Add Stdin as is
      cmdOptions.argsExtra = append(cmdOptions.argsExtra, s)
    } else {
      // Expanding wildcard
      expanded := params.GetExpandedArgExtra(i)
      if len(expanded) == 0 { expanded = []string{s} }  // falling back to check directly
      for _, name := range expanded {
        fi, err := os.Stat(name)
        if err != nil { return fmt.Errorf("Configuration file at %d: %v", len(cmdOptions.argsExtra), err) }
        if !fi.Mode().IsRegular() { return fmt.Errorf("Configuration file does not exist: %q", name) }
        cmdOptions.argsExtra = append(cmdOptions.argsExtra, name)
      }
    }
  }

  // validating options
  cmdOptions.colorOption = make([]OptText, 0)
  cmdOptions.optionsLength = 0
  for idx := 0; idx < params.GetArgLength(); idx++ {
    arg, err := params.GetArgAt(idx)
    if err != nil {
      logging.Warnf("Could not parse command line option at index %d. Skipping...\n", idx)
      continue
    }
    switch arg.Name {
      case CMDOPT_HELP:
        if !cmdOptions.help.set { cmdOptions.optionsLength++ }
        cmdOptions.help = OptBool{true, true}
        return nil
      case CMDOPT_VERSION:
        if !cmdOptions.version.set { cmdOptions.optionsLength++ }
        cmdOptions.version = OptBool{true, true}
        return nil
      case CMDOPT_VERBOSE:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{true, true}
      case CMDOPT_SILENT:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{false, true}
      case CMDOPT_LOG_STYLE:
        if !cmdOptions.logStyle.set { cmdOptions.optionsLength++ }
        cmdOptions.logStyle = OptBool{true, true}
      case CMDOPT_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{true, true}
      case CMDOPT_NO_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{false, true}
      case CMDOPT_FORMAT:
        if !cmdOptions.format.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          switch s {
            case "gif", "apng", "zip", "sheet", "atlas":
              cmdOptions.format = OptText{s, true}
            default:
              return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_OUTPUT:
        if !cmdOptions.output.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          if len(s) == 0 { return fmt.Errorf("Option %q: No output file specified", arg.Name) }
          cmdOptions.output = OptText{s, true}
        }
      case CMDOPT_HSV:
        if !cmdOptions.hsv.set { cmdOptions.optionsLength++ }
        cmdOptions.hsv = OptBool{true, true}
      case CMDOPT_NO_HSV:
        if !cmdOptions.hsv.set { cmdOptions.optionsLength++ }
        cmdOptions.hsv = OptBool{false, true}
      case CMDOPT_EDGE_SMOOTHING:
        if !cmdOptions.edgeSmoothing.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 && i <= 64 {
            cmdOptions.edgeSmoothing = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_BLEED_PASSES:
        if !cmdOptions.bleedPasses.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 && i <= 16 {
            cmdOptions.bleedPasses = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_FRAME_STRIDE:
        if !cmdOptions.frameStride.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 1 {
            cmdOptions.frameStride = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_MAX_FRAMES:
        if !cmdOptions.maxFrames.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 {
            cmdOptions.maxFrames = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_START_TRIM:
        if !cmdOptions.startTrim.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 {
            cmdOptions.startTrim = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_END_TRIM:
        if !cmdOptions.endTrim.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 {
            cmdOptions.endTrim = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_DURATION:
        if !cmdOptions.duration.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 1 && i <= 65535 {
            cmdOptions.duration = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_LOOP:
        if !cmdOptions.loop.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 && i <= 65535 {
            cmdOptions.loop = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_BOOMERANG:
        if !cmdOptions.boomerang.set { cmdOptions.optionsLength++ }
        cmdOptions.boomerang = OptBool{true, true}
      case CMDOPT_NO_BOOMERANG:
        if !cmdOptions.boomerang.set { cmdOptions.optionsLength++ }
        cmdOptions.boomerang = OptBool{false, true}
      case CMDOPT_QUANTIZER:
        if !cmdOptions.quantizer.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          if s != "quality" && s != "fast" { return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0]) }
          cmdOptions.quantizer = OptText{s, true}
        }
      case CMDOPT_QUALITY_MIN:
        if !cmdOptions.qualityMin.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 && i <= 100 {
            cmdOptions.qualityMin = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_QUALITY_MAX:
        if !cmdOptions.qualityMax.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 && i <= 100 {
            cmdOptions.qualityMax = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_SPEED:
        if !cmdOptions.speed.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 1 && i <= 10 {
            cmdOptions.speed = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_DITHER:
        if !cmdOptions.dither.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if f, x := arg.Arguments[0].Float(); x && f >= 0.0 && f <= 1.0 {
            cmdOptions.dither = OptFloat{float32(f), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_SORT_BY:
        if !cmdOptions.sortBy.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          cmdOptions.sortBy = OptText{arg.Arguments[0].ToString(), true}
        }
      case CMDOPT_COLOR:
        if len(arg.Arguments) > 0 {
          cmdOptions.optionsLength++
          cmdOptions.colorOption = append(cmdOptions.colorOption, OptText{arg.Arguments[0].ToString(), true})
        }
      default:
        return fmt.Errorf("Unrecognized option: %q", arg.Name)
    }
  }

  // Invalid combination: Options, but no config files
  if len(cmdOptions.argsExtra) == 0 && cmdOptions.optionsLength > 0 {
    return errors.New("No configuration file specified")
  }

  return nil
}


func argsExtraLength() int {
  if cmdOptions.argsExtra == nil { return 0 }
  return len(cmdOptions.argsExtra)
}

func argsExtra(index int) string {
  if cmdOptions.argsExtra == nil { return "" }
  if index < 0 || index > len(cmdOptions.argsExtra) { return "" }
  return cmdOptions.argsExtra[index]
}

func argsLength() int {
  return cmdOptions.optionsLength
}

func argsHelp() (bool, bool) {
  return cmdOptions.help.value, cmdOptions.help.set
}

func argsVersion() (bool, bool) {
  return cmdOptions.version.value, cmdOptions.version.set
}

func argsVerbose() (bool, bool) {
  return cmdOptions.verbose.value, cmdOptions.verbose.set
}

func argsLogStyle() (bool, bool) {
  return cmdOptions.logStyle.value, cmdOptions.logStyle.set
}

func argsThreaded() (bool, bool) {
  return cmdOptions.threaded.value, cmdOptions.threaded.set
}

func argsFormat() (string, bool) {
  return cmdOptions.format.value, cmdOptions.format.set
}

func argsOutput() (string, bool) {
  return cmdOptions.output.value, cmdOptions.output.set
}

func argsHSV() (bool, bool) {
  return cmdOptions.hsv.value, cmdOptions.hsv.set
}

func argsEdgeSmoothing() (int, bool) {
  return cmdOptions.edgeSmoothing.value, cmdOptions.edgeSmoothing.set
}

func argsBleedPasses() (int, bool) {
  return cmdOptions.bleedPasses.value, cmdOptions.bleedPasses.set
}

func argsFrameStride() (int, bool) {
  return cmdOptions.frameStride.value, cmdOptions.frameStride.set
}

func argsMaxFrames() (int, bool) {
  return cmdOptions.maxFrames.value, cmdOptions.maxFrames.set
}

func argsStartTrim() (int, bool) {
  return cmdOptions.startTrim.value, cmdOptions.startTrim.set
}

func argsEndTrim() (int, bool) {
  return cmdOptions.endTrim.value, cmdOptions.endTrim.set
}

func argsDuration() (int, bool) {
  return cmdOptions.duration.value, cmdOptions.duration.set
}

func argsLoop() (int, bool) {
  return cmdOptions.loop.value, cmdOptions.loop.set
}

func argsBoomerang() (bool, bool) {
  return cmdOptions.boomerang.value, cmdOptions.boomerang.set
}

func argsQuantizer() (string, bool) {
  return cmdOptions.quantizer.value, cmdOptions.quantizer.set
}

func argsQualityMin() (int, bool) {
  return cmdOptions.qualityMin.value, cmdOptions.qualityMin.set
}

func argsQualityMax() (int, bool) {
  return cmdOptions.qualityMax.value, cmdOptions.qualityMax.set
}

func argsSpeed() (int, bool) {
  return cmdOptions.speed.value, cmdOptions.speed.set
}

func argsDither() (float32, bool) {
  return cmdOptions.dither.value, cmdOptions.dither.set
}

func argsSortBy() (string, bool) {
  return cmdOptions.sortBy.value, cmdOptions.sortBy.set
}

func argsColorOptions() ([]string, bool) {
  retVal := make([]string, len(cmdOptions.colorOption))
  for idx, v := range cmdOptions.colorOption {
    retVal[idx] = v.value
  }
  return retVal, len(cmdOptions.colorOption) > 0
}
