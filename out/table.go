// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of PVT tables: text, parquet and plots
package out

import (
	"bytes"
	"sort"
	"strings"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/pvt"
	"github.com/cpmech/gosl/io"
)

// Row holds the values of one line of a PVT table. The tags define the parquet schema
type Row struct {
	RunID  string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	P      float64 `parquet:"name=p_psia, type=DOUBLE"`
	Regime string  `parquet:"name=regime, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rs     float64 `parquet:"name=rs_scf_stb, type=DOUBLE"`
	Bo     float64 `parquet:"name=bo_bbl_stb, type=DOUBLE"`
	Co     float64 `parquet:"name=co_1_psia, type=DOUBLE"`
	Uo     float64 `parquet:"name=uo_cp, type=DOUBLE"`
	RhoO   float64 `parquet:"name=rhoo_lb_ft3, type=DOUBLE"`
	Z      float64 `parquet:"name=z, type=DOUBLE"`
	Ppr    float64 `parquet:"name=ppr, type=DOUBLE"`
	Tpr    float64 `parquet:"name=tpr, type=DOUBLE"`
	Bg     float64 `parquet:"name=bg_ft3_scf, type=DOUBLE"`
	Cg     float64 `parquet:"name=cg_1_psia, type=DOUBLE"`
	Ug     float64 `parquet:"name=ug_cp, type=DOUBLE"`
	RhoG   float64 `parquet:"name=rhog_lb_ft3, type=DOUBLE"`
}

// Failure holds a point that could not be computed
type Failure struct {
	P   float64 // pressure [psia]
	Err string  // message
}

// Table holds the results of a sweep
type Table struct {
	RunID  string    // run identifier
	Desc   string    // description
	Pb     float64   // bubble-point pressure [psia]
	Rsb    float64   // Rs at Pb [scf/STB]
	Bob    float64   // Bo at Pb [bbl/STB]
	Rows   []Row     // successful points in pressure order
	Failed []Failure // failed points
}

// NewTable collects the results of a driver
func NewTable(drv *pvt.Driver, desc string) (o *Table) {
	o = &Table{RunID: drv.RunID, Desc: desc}
	if drv.Oil != nil {
		o.Pb, o.Rsb, o.Bob = drv.Oil.Pb, drv.Oil.Rsb, drv.Oil.Bob
	}
	for _, r := range drv.Res {
		if r.Err != nil {
			o.Failed = append(o.Failed, Failure{P: r.P, Err: r.Err.Error()})
			continue
		}
		o.Rows = append(o.Rows, NewRow(drv.RunID, r.State))
	}
	return
}

// NewRow converts a state into a row
func NewRow(runID string, s *fluid.State) Row {
	return Row{
		RunID:  runID,
		P:      s.Psia(),
		Regime: s.Regime.String(),
		Rs:     s.Rs,
		Bo:     s.Bo,
		Co:     s.Co,
		Uo:     s.Uo,
		RhoO:   s.RhoO,
		Z:      s.Z,
		Ppr:    s.Ppr,
		Tpr:    s.Tpr,
		Bg:     s.Bg,
		Cg:     s.Cg,
		Ug:     s.Ug,
		RhoG:   s.RhoG,
	}
}

// column holds the header and accessor of a table column
type column struct {
	key  string               // key used by Plot
	head string               // header
	unit string               // unit
	tex  string               // label for plots
	get  func(r *Row) float64 // value
}

// columns of the text table
var columns = []column{
	{"p", "P", "psia", "P", func(r *Row) float64 { return r.P }},
	{"rs", "Rs", "scf/STB", "R_s", func(r *Row) float64 { return r.Rs }},
	{"bo", "Bo", "bbl/STB", "B_o", func(r *Row) float64 { return r.Bo }},
	{"co", "Co", "1/psia", "c_o", func(r *Row) float64 { return r.Co }},
	{"uo", "Uo", "cP", "\\mu_o", func(r *Row) float64 { return r.Uo }},
	{"rhoo", "RhoO", "lb/ft3", "\\rho_o", func(r *Row) float64 { return r.RhoO }},
	{"z", "Z", "-", "Z", func(r *Row) float64 { return r.Z }},
	{"bg", "Bg", "ft3/scf", "B_g", func(r *Row) float64 { return r.Bg }},
	{"cg", "Cg", "1/psia", "c_g", func(r *Row) float64 { return r.Cg }},
	{"ug", "Ug", "cP", "\\mu_g", func(r *Row) float64 { return r.Ug }},
	{"rhog", "RhoG", "lb/ft3", "\\rho_g", func(r *Row) float64 { return r.RhoG }},
}

// Keys returns the keys of the properties that can be plotted
func Keys() (keys []string) {
	for _, c := range columns[1:] {
		keys = append(keys, c.key)
	}
	sort.Strings(keys)
	return
}

// findColumn returns the column with the given key
func findColumn(key string) (c column, ok bool) {
	key = strings.ToLower(key)
	for _, c = range columns {
		if c.key == key {
			return c, true
		}
	}
	return
}

// Values returns the pressures and the values of a property
func (o *Table) Values(key string) (P, Y []float64, ok bool) {
	c, ok := findColumn(key)
	if !ok {
		return
	}
	P = make([]float64, len(o.Rows))
	Y = make([]float64, len(o.Rows))
	for i := range o.Rows {
		P[i] = o.Rows[i].P
		Y[i] = c.get(&o.Rows[i])
	}
	return
}

// String returns a fixed-width text table
func (o *Table) String() string {
	var b bytes.Buffer
	if o.Desc != "" {
		io.Ff(&b, "# %s\n", o.Desc)
	}
	io.Ff(&b, "# run = %s\n", o.RunID)
	io.Ff(&b, "# Pb = %g psia, Rsb = %g scf/STB, Bob = %g bbl/STB\n", o.Pb, o.Rsb, o.Bob)
	for _, c := range columns {
		io.Ff(&b, "%14s", c.head)
	}
	io.Ff(&b, "%16s\n", "regime")
	for _, c := range columns {
		io.Ff(&b, "%14s", "["+c.unit+"]")
	}
	io.Ff(&b, "\n")
	for i := range o.Rows {
		for _, c := range columns {
			io.Ff(&b, "%14.6g", c.get(&o.Rows[i]))
		}
		io.Ff(&b, "%16s\n", o.Rows[i].Regime)
	}
	if len(o.Failed) > 0 {
		io.Ff(&b, "# %d failed points\n", len(o.Failed))
		for _, f := range o.Failed {
			io.Ff(&b, "# P = %g psia: %s\n", f.P, f.Err)
		}
	}
	return b.String()
}

// SaveTable writes the text table to dirout/fnkey.txt
func (o *Table) SaveTable(dirout, fnkey string) {
	io.WriteStringToFileD(dirout, fnkey+".txt", o.String())
}
