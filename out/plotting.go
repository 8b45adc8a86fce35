// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// styles of the regimes
var (
	StySat   = &plt.A{C: "b", M: ".", L: "saturated", NoClip: true}      // P <= Pb
	StyUnsat = &plt.A{C: "r", M: ".", L: "undersaturated", NoClip: true} // P > Pb
)

// Plot plots one property versus pressure and saves the figure as dirout/fnkey_key
//  key -- rs, bo, co, uo, rhoo, z, bg, cg, ug or rhog
func (o *Table) Plot(dirout, fnkey, key string) error {
	c, ok := findColumn(key)
	if !ok || c.key == "p" {
		return chk.Err("property %q cannot be plotted. keys = %v", key, Keys())
	}
	if len(o.Rows) == 0 {
		return chk.Err("there are no rows to plot")
	}
	plt.Reset(false, nil)
	o.draw(c)
	plt.Save(dirout, fnkey+"_"+c.key)
	return nil
}

// PlotAll plots all properties in one figure and saves it as dirout/fnkey_all
func (o *Table) PlotAll(dirout, fnkey string) error {
	if len(o.Rows) == 0 {
		return chk.Err("there are no rows to plot")
	}
	keys := Keys()
	nc := 2
	nr := (len(keys) + 1) / nc
	plt.Reset(false, nil)
	for i, key := range keys {
		c, _ := findColumn(key)
		plt.Subplot(nr, nc, i+1)
		o.draw(c)
	}
	plt.Save(dirout, fnkey+"_all")
	return nil
}

// draw plots one column split into saturated and undersaturated points
func (o *Table) draw(c column) {
	var xs, ys, xu, yu []float64
	for i := range o.Rows {
		r := &o.Rows[i]
		if r.Regime == "undersaturated" {
			xu, yu = append(xu, r.P), append(yu, c.get(r))
			continue
		}
		xs, ys = append(xs, r.P), append(ys, c.get(r))
	}
	if len(xs) > 0 {
		plt.Plot(xs, ys, StySat)
	}
	if len(xu) > 0 {
		plt.Plot(xu, yu, StyUnsat)
	}
	plt.Gll(texLabel("P", "psia"), texLabel(c.tex, c.unit), nil)
}

// texLabel returns a TeX label with units
func texLabel(symbol, unit string) string {
	l := "$" + symbol
	if unit != "" && unit != "-" {
		l += "\\;[\\mathrm{" + unit + "}]"
	}
	return l + "$"
}
