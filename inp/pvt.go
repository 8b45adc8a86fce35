// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.pvt) YAML or JSON file
package inp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/mdl/oil"
	"github.com/cpmech/gopvt/pvt"
	"github.com/cpmech/gopvt/units"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// environment variables
const (
	EnvDirOut   = "GOPVT_DIROUT"    // overrides output.dirout
	EnvLogLevel = "GOPVT_LOG_LEVEL" // overrides logging.level
)

// Quantity holds a value with units; e.g. {value: 122, unit: F}
type Quantity struct {
	Value float64 `yaml:"value"` // value
	Unit  string  `yaml:"unit"`  // unit token; e.g. F, C, K, R, psi, bar, kPa
}

// FluidData holds the fluid description. Either api or do must be given; either pb or rsb
type FluidData struct {
	API  *float64  `yaml:"api"`         // API gravity
	Do   *float64  `yaml:"do"`          // oil relative density
	Dg   float64   `yaml:"dg"`          // gas relative density
	T    Quantity  `yaml:"temperature"` // reservoir temperature
	Pb   *Quantity `yaml:"pb"`          // bubble-point pressure
	Rsb  float64   `yaml:"rsb"`         // solution GOR at Pb [scf/STB]; used if pb is not given
	Tsep *Quantity `yaml:"tsep"`        // separator temperature
	Psep *Quantity `yaml:"psep"`        // separator pressure
	Yn2  float64   `yaml:"yn2"`         // N2 mole fraction
	Yco2 float64   `yaml:"yco2"`        // CO2 mole fraction
	Yh2s float64   `yaml:"yh2s"`        // H2S mole fraction
}

// SweepData holds the pressure range
type SweepData struct {
	Start float64 `yaml:"start"` // first pressure
	Stop  float64 `yaml:"stop"`  // last pressure
	Step  float64 `yaml:"step"`  // increment
	Unit  string  `yaml:"unit"`  // pressure unit; default = psia
}

// Prm holds a model parameter
type Prm struct {
	N string  `yaml:"n"` // name
	V float64 `yaml:"v"` // value
}

// ModelData holds the name and parameters of a model. It can be given as a single string
// (the name) or as {model: name, prms: [{n: x, v: 1}]}
type ModelData struct {
	Model string `yaml:"model"` // name
	Prms  []Prm  `yaml:"prms"`  // parameters
}

// UnmarshalYAML accepts a scalar name or a mapping
func (o *ModelData) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		o.Prms = nil
		return node.Decode(&o.Model)
	}
	type plain ModelData
	return node.Decode((*plain)(o))
}

// Params converts the parameters to dbf.Params
func (o ModelData) Params() (prms dbf.Params) {
	for _, p := range o.Prms {
		prms = append(prms, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// CorrData holds the names of the correlations
type CorrData struct {
	Rs  string    `yaml:"rs"`  // solution gas-oil ratio
	Pb  string    `yaml:"pb"`  // bubble-point pressure from Rsb
	Bo  string    `yaml:"bo"`  // saturated oil FVF
	Co  string    `yaml:"co"`  // undersaturated oil compressibility
	Uod string    `yaml:"uod"` // dead-oil viscosity
	Uob string    `yaml:"uob"` // live-oil viscosity
	Uo  string    `yaml:"uo"`  // undersaturated oil viscosity
	Z   ModelData `yaml:"z"`   // Z-factor model
	Ug  ModelData `yaml:"ug"`  // gas viscosity model
}

// RunData holds execution options
type RunData struct {
	Parallel bool `yaml:"parallel"` // evaluate points concurrently
	Workers  int  `yaml:"workers"`  // max number of goroutines; 0 means number of CPUs
}

// ParquetData holds options for parquet output
type ParquetData struct {
	Enabled     bool   `yaml:"enabled"`     // write parquet file
	Compression string `yaml:"compression"` // snappy, gzip or none
}

// OutputData holds output options
type OutputData struct {
	DirOut  string      `yaml:"dirout"`  // directory for output; e.g. /tmp/gopvt
	Table   bool        `yaml:"table"`   // write text table
	Plots   bool        `yaml:"plots"`   // save plots
	Parquet ParquetData `yaml:"parquet"` // parquet options
}

// LogData holds logging options
type LogData struct {
	Level  string `yaml:"level"`  // panic, fatal, error, warn, info, debug or trace
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stdout, stderr or file path
	MaxAge int    `yaml:"maxage"` // days to keep rotated log files; 0 means no rotation
}

// Input holds all data read from a .pvt file
type Input struct {

	// file data
	Desc    string     `yaml:"desc"`         // description
	Fluid   FluidData  `yaml:"fluid"`        // fluid
	Sweep   SweepData  `yaml:"sweep"`        // pressures
	Corr    CorrData   `yaml:"correlations"` // correlations
	Run     RunData    `yaml:"run"`          // execution
	Output  OutputData `yaml:"output"`       // output
	Logging LogData    `yaml:"logging"`      // logging

	// derived
	Key string        `yaml:"-"` // filename key; e.g. scenario from scenario.pvt
	Fld fluid.Fluid   `yaml:"-"` // fluid constants
	Swp pvt.Sweep     `yaml:"-"` // sweep [psia]
	Sel pvt.Selection `yaml:"-"` // correlations
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	chain := oil.DefaultChain()
	o.Corr = CorrData{
		Rs:  chain.Rs,
		Pb:  chain.Pb,
		Bo:  chain.Bo,
		Co:  chain.Co,
		Uod: chain.Uod,
		Uob: chain.Uob,
		Uo:  chain.Uo,
		Z:   ModelData{Model: "papay"},
		Ug:  ModelData{Model: "lee"},
	}
	o.Output.Table = true
	o.Output.Parquet.Compression = "snappy"
	o.Logging = LogData{Level: "info", Format: "text", Output: "stdout"}
}

// ReadPvt reads a .pvt file
func ReadPvt(pvtfilepath string) (o *Input, err error) {
	b, err := os.ReadFile(pvtfilepath)
	if err != nil {
		return nil, fmt.Errorf("ReadPvt: cannot read input file %q: %w", pvtfilepath, err)
	}
	return ParsePvt(b, io.FnKey(filepath.Base(pvtfilepath)))
}

// ParsePvt decodes the contents of a .pvt file (YAML or JSON) and computes the derived data
func ParsePvt(b []byte, fnkey string) (o *Input, err error) {

	// decode
	o = new(Input)
	o.SetDefault()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(o); err != nil {
		return nil, fmt.Errorf("ParsePvt: cannot decode input data: %w", err)
	}
	o.Key = fnkey

	// environment
	if env := os.Getenv(EnvDirOut); env != "" {
		o.Output.DirOut = env
	}
	if env := os.Getenv(EnvLogLevel); env != "" {
		o.Logging.Level = env
	}
	if o.Output.DirOut == "" {
		o.Output.DirOut = "/tmp/gopvt/" + fnkey
	}
	o.Output.DirOut = os.ExpandEnv(o.Output.DirOut)

	// derived data
	if err = o.PostProcess(); err != nil {
		return nil, err
	}
	return
}

// PostProcess converts units and builds the fluid, sweep and selection
func (o *Input) PostProcess() (err error) {

	// fluid
	prms, err := o.Fluid.params()
	if err != nil {
		return
	}
	if err = o.Fld.Init(prms); err != nil {
		return
	}

	// sweep
	unit := or(o.Sweep.Unit, "psia")
	var psi [3]float64
	for i, v := range []float64{o.Sweep.Start, o.Sweep.Stop, o.Sweep.Step} {
		if psi[i], err = units.ToPsi(v, unit); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
	}
	o.Swp = pvt.Sweep{Start: psi[0], Stop: psi[1], Step: psi[2]}
	if err = o.Swp.Validate(); err != nil {
		return
	}

	// correlations
	c := o.Corr
	o.Sel = pvt.Selection{
		Oil:    oil.Chain{Rs: low(c.Rs), Pb: low(c.Pb), Bo: low(c.Bo), Co: low(c.Co), Uod: low(c.Uod), Uob: low(c.Uob), Uo: low(c.Uo)},
		Z:      low(c.Z.Model),
		Zprms:  c.Z.Params(),
		Ug:     low(c.Ug.Model),
		Ugprms: c.Ug.Params(),
	}

	// output
	switch low(o.Output.Parquet.Compression) {
	case "", "snappy", "gzip", "none", "uncompressed":
	default:
		return fmt.Errorf("output: parquet compression %q is not available", o.Output.Parquet.Compression)
	}
	return
}

// params converts the fluid data to field units
func (o FluidData) params() (prms dbf.Params, err error) {
	add := func(n string, v float64) { prms = append(prms, &dbf.P{N: n, V: v}) }
	if o.Do != nil {
		add("do", *o.Do)
	} else if o.API != nil {
		add("api", *o.API)
	}
	add("dg", o.Dg)
	tF, err := units.ToFahrenheit(o.T.Value, or(o.T.Unit, "F"))
	if err != nil {
		return nil, fmt.Errorf("fluid: temperature: %w", err)
	}
	add("T", tF)
	if o.Pb != nil {
		pb, e := units.ToPsi(o.Pb.Value, or(o.Pb.Unit, "psia"))
		if e != nil {
			return nil, fmt.Errorf("fluid: pb: %w", e)
		}
		add("pb", pb)
	} else {
		add("rsb", o.Rsb)
	}
	if o.Tsep != nil {
		tsep, e := units.ToFahrenheit(o.Tsep.Value, or(o.Tsep.Unit, "F"))
		if e != nil {
			return nil, fmt.Errorf("fluid: tsep: %w", e)
		}
		add("tsep", tsep)
	}
	if o.Psep != nil {
		psep, e := units.ToPsi(o.Psep.Value, or(o.Psep.Unit, "psia"))
		if e != nil {
			return nil, fmt.Errorf("fluid: psep: %w", e)
		}
		add("psep", psep)
	}
	add("yn2", o.Yn2)
	add("yco2", o.Yco2)
	add("yh2s", o.Yh2s)
	return
}

// low trims and converts to lower case
func low(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// or returns def if s is empty
func or(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
