// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/mdl/oil"
	"github.com/cpmech/gopvt/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadYAML(t *testing.T) {
	t.Setenv(EnvDirOut, "")
	t.Setenv(EnvLogLevel, "")

	in, err := ReadPvt("data/scenario.pvt")
	require.NoError(t, err)
	assert.Equal(t, "scenario", in.Key)
	assert.Contains(t, in.Desc, "Pb = 5000")

	// fluid
	assert.InDelta(t, 0.86, in.Fld.Do, 1e-15)
	assert.InDelta(t, 141.5/0.86-131.5, in.Fld.API, 1e-12)
	assert.InDelta(t, 0.84, in.Fld.Dg, 1e-15)
	assert.InDelta(t, 122.0, in.Fld.TF(), 1e-9)
	assert.InDelta(t, 5000.0, in.Fld.PbPsia(), 1e-9)
	assert.InDelta(t, 80.0, units.Fahrenheit(in.Fld.Tsep), 1e-9)
	assert.InDelta(t, 100.0, units.Psia(in.Fld.Psep), 1e-9)

	// sweep
	assert.Equal(t, 14.0, in.Swp.Start)
	assert.Equal(t, 6914.0, in.Swp.Stop)
	assert.Equal(t, 100.0, in.Swp.Step)

	// correlations; pb is not given and keeps the default
	assert.Equal(t, oil.DefaultChain(), in.Sel.Oil)
	assert.Equal(t, "papay", in.Sel.Z)
	assert.Empty(t, in.Sel.Zprms)
	assert.Equal(t, "lee", in.Sel.Ug)

	// options
	assert.True(t, in.Run.Parallel)
	assert.Equal(t, 4, in.Run.Workers)
	assert.Equal(t, "/tmp/gopvt/scenario", in.Output.DirOut)
	assert.True(t, in.Output.Table)
	assert.False(t, in.Output.Plots)
	assert.True(t, in.Output.Parquet.Enabled)
	assert.Equal(t, "gzip", in.Output.Parquet.Compression)
	assert.Equal(t, LogData{Level: "warn", Format: "json", Output: "stderr"}, in.Logging)
}

func TestReadJSON(t *testing.T) {
	t.Setenv(EnvDirOut, "/tmp/gopvt/env")
	t.Setenv(EnvLogLevel, "debug")

	in, err := ReadPvt("data/rsb.json")
	require.NoError(t, err)
	assert.Equal(t, "rsb", in.Key)

	// units
	assert.InDelta(t, 122.0, in.Fld.TF(), 1e-9)
	assert.InDelta(t, 0.86, in.Fld.Do, 1e-12)
	assert.Equal(t, 0.0, in.Fld.PbPsia())
	assert.InDelta(t, 1694.8267858300344, in.Fld.Rsb, 1e-12)
	assert.InDelta(t, 1e6/units.PaPerPsi, in.Swp.Start, 1e-9)
	assert.InDelta(t, 40e6/units.PaPerPsi, in.Swp.Stop, 1e-9)
	assert.InDelta(t, 1e6/units.PaPerPsi, in.Swp.Step, 1e-9)
	P, err := in.Swp.Pressures()
	require.NoError(t, err)
	assert.Len(t, P, 40)

	// models
	assert.Equal(t, "hall-yarborough", in.Sel.Z)
	require.Len(t, in.Sel.Zprms, 2)
	assert.Equal(t, "maxit", in.Sel.Zprms[0].N)
	assert.Equal(t, 100.0, in.Sel.Zprms[0].V)
	assert.Equal(t, "dempsey", in.Sel.Ug)
	require.Len(t, in.Sel.Ugprms, 1)

	// defaults and environment
	assert.Equal(t, oil.DefaultChain(), in.Sel.Oil)
	assert.Equal(t, "/tmp/gopvt/env", in.Output.DirOut)
	assert.Equal(t, "debug", in.Logging.Level)
	assert.Equal(t, "text", in.Logging.Format)
	assert.Equal(t, "snappy", in.Output.Parquet.Compression)
	assert.False(t, in.Output.Parquet.Enabled)
}

func TestParseDefaults(t *testing.T) {
	t.Setenv(EnvDirOut, "")
	in, err := ParsePvt([]byte(`
fluid: {api: 35, dg: 0.7, temperature: {value: 200}, pb: {value: 2500}}
sweep: {start: 100, stop: 3000, step: 100}
correlations: {rs: " Vasquez-Beggs ", bo: glaso}
`), "defaults")
	require.NoError(t, err)
	assert.InDelta(t, 200.0, in.Fld.TF(), 1e-9)
	assert.InDelta(t, 2500.0, in.Fld.PbPsia(), 1e-9)
	assert.Equal(t, "vasquez-beggs", in.Sel.Oil.Rs)
	assert.Equal(t, "glaso", in.Sel.Oil.Bo)
	assert.Equal(t, "petrosky-farshad", in.Sel.Oil.Co)
	assert.Equal(t, "/tmp/gopvt/defaults", in.Output.DirOut)
	assert.True(t, in.Output.Table)
}

func TestParseErrors(t *testing.T) {
	for name, data := range map[string]string{
		"unknown key":   "fluid: {do: 0.86, dg: 0.84, temperature: {value: 122}, pb: {value: 5000}, colour: red}\nsweep: {start: 14, stop: 100, step: 1}",
		"bad yaml":      "fluid: [",
		"bad unit":      "fluid: {do: 0.86, dg: 0.84, temperature: {value: 122, unit: X}, pb: {value: 5000}}\nsweep: {start: 14, stop: 100, step: 1}",
		"bad sweep":     "fluid: {do: 0.86, dg: 0.84, temperature: {value: 122}, pb: {value: 5000}}\nsweep: {start: 100, stop: 14, step: 1}",
		"no gravity":    "fluid: {dg: 0.84, temperature: {value: 122}, pb: {value: 5000}}\nsweep: {start: 14, stop: 100, step: 1}",
		"no pb nor rsb": "fluid: {do: 0.86, dg: 0.84, temperature: {value: 122}}\nsweep: {start: 14, stop: 100, step: 1}",
		"compression":   "fluid: {do: 0.86, dg: 0.84, temperature: {value: 122}, pb: {value: 5000}}\nsweep: {start: 14, stop: 100, step: 1}\noutput: {parquet: {compression: lzo}}",
	} {
		_, err := ParsePvt([]byte(data), "bad")
		assert.Error(t, err, name)
		switch name {
		case "bad unit":
			assert.True(t, errors.Is(err, units.ErrInvalidUnit), "%v", err)
		case "bad sweep", "no gravity":
			assert.True(t, errors.Is(err, fluid.ErrInvalidPrecondition), "%v", err)
		case "no pb nor rsb":
			assert.True(t, errors.Is(err, fluid.ErrInvalidRegime), "%v", err)
		}
	}

	_, err := ReadPvt("data/missing.pvt")
	assert.Error(t, err)
}
