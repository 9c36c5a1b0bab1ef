package config

import (
  "fmt"
)

// Generic variant type used to represent various datatypes used in the config package.
type Variant interface { ToString() string }
// Variant of type bool
type VarBool interface { ToBool() bool }
// Variant of type int64
type VarInt interface { ToInt() int64 }
// Variant of type float64
type VarFloat interface { ToFloat() float64 }
// Variant of type []int64
type VarIntArray interface { ToIntArray() []int64 }
// Variant of type []float64
type VarFloatArray interface { ToFloatArray() []float64 }
// Variant of type []string
type VarTextArray interface { ToTextArray() []string }
// Variant of type [][]int64
type VarIntMultiArray interface { ToIntMultiArray() [][]int64 }

type Text struct { Value string }
type Bool struct { Value bool }
type Int struct { Value int64 }
type Float struct { Value float64 }
type IntArray struct { Value []int64 }
type FloatArray struct { Value []float64 }
type TextArray struct { Value []string }
type IntMultiArray struct { Value [][]int64 }


func (t Text) ToString() string { return t.Value }

func (b Bool) ToString() string { return fmt.Sprintf("%v", b.Value) }
func (b Bool) ToBool() bool { return b.Value }

func (i Int) ToString() string { return fmt.Sprintf("%d", i.Value) }
func (i Int) ToInt() int64 { return i.Value }

func (f Float) ToString() string { return fmt.Sprintf("%f", f.Value) }
func (f Float) ToFloat() float64 { return f.Value }

func (ia IntArray) ToString() string { return fmt.Sprintf("%v", ia.Value) }
func (ia IntArray) ToIntArray() []int64 { return ia.Value }

func (fa FloatArray) ToString() string { return fmt.Sprintf("%v", fa.Value) }
func (fa FloatArray) ToFloatArray() []float64 { return fa.Value }

func (ta TextArray) ToString() string { return fmt.Sprintf("%v", ta.Value) }
func (ta TextArray) ToTextArray() []string { return ta.Value }

func (ima IntMultiArray) ToString() string { return fmt.Sprintf("%v", ima.Value) }
func (ima IntMultiArray) ToIntMultiArray() [][]int64 { return ima.Value }
