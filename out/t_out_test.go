// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gopvt/logger"
	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/pvt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSweep runs the example fluid; maxit > 0 selects hall-yarborough with an iteration cap
func runSweep(t *testing.T, maxit float64) *pvt.Driver {
	var fld fluid.Fluid
	require.NoError(t, fld.Init(fld.GetPrms(true)))
	sel := pvt.DefaultSelection()
	if maxit > 0 {
		sel.Z = "hall-yarborough"
		sel.Zprms = dbf.Params{&dbf.P{N: "maxit", V: maxit}}
	}
	drv := &pvt.Driver{Log: logger.Discard()}
	require.NoError(t, drv.Init(&fld, sel))
	P, err := pvt.Sweep{Start: 14, Stop: 6914, Step: 100}.Pressures()
	require.NoError(t, err)
	require.NoError(t, drv.Run(P))
	return drv
}

func TestTable(t *testing.T) {
	drv := runSweep(t, 0)
	tab := NewTable(drv, "example fluid")
	require.Len(t, tab.Rows, 70)
	assert.Empty(t, tab.Failed)
	assert.Equal(t, drv.RunID, tab.RunID)
	assert.InDelta(t, 5000.0, tab.Pb, 1e-9)

	first, last := tab.Rows[0], tab.Rows[69]
	assert.Equal(t, drv.RunID, first.RunID)
	assert.Equal(t, 14.0, first.P)
	assert.Equal(t, "saturated", first.Regime)
	assert.Equal(t, "undersaturated", last.Regime)
	assert.InDelta(t, 4.9342507615, first.Rs, 1e-8)
	assert.InDelta(t, 1.9151837535, last.Bo, 1e-8)

	P, Y, ok := tab.Values("Bo")
	require.True(t, ok)
	assert.Len(t, P, 70)
	assert.Equal(t, last.Bo, Y[69])
	_, _, ok = tab.Values("viscosity")
	assert.False(t, ok)
	assert.Equal(t, []string{"bg", "bo", "cg", "co", "rhog", "rhoo", "rs", "ug", "uo", "z"}, Keys())

	txt := tab.String()
	lines := strings.Split(strings.TrimSpace(txt), "\n")
	assert.Len(t, lines, 3+2+70)
	assert.Equal(t, "# example fluid", lines[0])
	assert.Contains(t, lines[3], "RhoG")
	assert.Contains(t, lines[4], "[scf/STB]")
	assert.Contains(t, lines[5], "saturated")
	assert.NotContains(t, txt, "failed")

	dir := t.TempDir()
	tab.SaveTable(dir, "example")
	b, err := os.ReadFile(filepath.Join(dir, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, txt, string(b))
}

func TestTableFailures(t *testing.T) {
	drv := runSweep(t, 3)
	tab := NewTable(drv, "")
	require.NotEmpty(t, tab.Failed)
	require.NotEmpty(t, tab.Rows)
	assert.Equal(t, 70, len(tab.Rows)+len(tab.Failed))
	txt := tab.String()
	assert.Contains(t, txt, "failed points")
	assert.Contains(t, txt, "hall-yarborough")
	assert.False(t, strings.HasPrefix(txt, "# \n"))
}

func TestParquet(t *testing.T) {
	tab := NewTable(runSweep(t, 0), "example fluid")
	for _, compression := range []string{"snappy", "gzip", "none"} {
		data, err := tab.Parquet(compression)
		require.NoError(t, err, compression)
		assert.Equal(t, "PAR1", string(data[:4]))
		rows, err := ReadParquet(data)
		require.NoError(t, err, compression)
		assert.Equal(t, tab.Rows, rows, compression)
	}

	dir := filepath.Join(t.TempDir(), "results", "parquet")
	fn, err := tab.SaveParquet(dir, "example", "snappy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example.parquet"), fn)
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	rows, err := ReadParquet(b)
	require.NoError(t, err)
	assert.Len(t, rows, 70)

	_, err = tab.Parquet("lzo")
	assert.Error(t, err)
}

func TestPlot(t *testing.T) {
	tab := NewTable(runSweep(t, 0), "")
	assert.Error(t, tab.Plot("/tmp/gopvt", "x", "p"))
	assert.Error(t, tab.Plot("/tmp/gopvt", "x", "viscosity"))
	var empty Table
	assert.Error(t, empty.Plot("/tmp/gopvt", "x", "bo"))
	assert.Error(t, empty.PlotAll("/tmp/gopvt", "x"))
	if chk.Verbose {
		require.NoError(t, tab.Plot("/tmp/gopvt", "t_out", "bo"))
		require.NoError(t, tab.PlotAll("/tmp/gopvt", "t_out"))
	}
}
