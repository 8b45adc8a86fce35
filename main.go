// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/cpmech/gopvt/inp"
	"github.com/cpmech/gopvt/logger"
	"github.com/cpmech/gopvt/out"
	"github.com/cpmech/gopvt/pvt"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/joho/godotenv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".pvt", true)
	verbose := io.ArgToBool(1, true)
	doprof := io.ArgToInt(2, 0)

	// message
	if verbose {
		io.PfWhite("\ngopvt -- Black-oil PVT tables\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		chk.Panic("cannot load .env file:\n%v", err)
	}

	// input data
	in, err := inp.ReadPvt(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	log := logger.New()
	if err = log.Configure(in.Logging.Level, in.Logging.Format, in.Logging.Output, in.Logging.MaxAge); err != nil {
		chk.Panic("cannot configure logger:\n%v", err)
	}
	defer log.Close()
	P, err := in.Swp.Pressures()
	if err != nil {
		chk.Panic("%v", err)
	}

	// run
	start := time.Now()
	drv := pvt.Driver{
		Parallel:   in.Run.Parallel,
		NumWorkers: in.Run.Workers,
		Verbose:    verbose,
		Log:        log.WithComponent("pvt"),
	}
	if err = drv.Init(&in.Fld, in.Sel); err != nil {
		chk.Panic("Init failed:\n%v", err)
	}
	if err = drv.Run(P); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	log.Duration("main", "sweep", start, logger.Fields{"run": drv.RunID, "points": len(P)})

	// output
	tab := out.NewTable(&drv, in.Desc)
	dirout := in.Output.DirOut
	if in.Output.Table {
		tab.SaveTable(dirout, in.Key)
		if verbose {
			io.Pfblue2("file <%s/%s.txt> written\n", dirout, in.Key)
		}
	}
	if in.Output.Parquet.Enabled {
		fn, err := tab.SaveParquet(dirout, in.Key, in.Output.Parquet.Compression)
		if err != nil {
			chk.Panic("%v", err)
		}
		log.WithComponent("out").WithField("file", fn).Info("parquet written")
	}
	if in.Output.Plots {
		if err = tab.PlotAll(dirout, in.Key); err != nil {
			chk.Panic("%v", err)
		}
	}
	if len(tab.Failed) > 0 {
		io.PfRed("%d of %d points failed\n", len(tab.Failed), len(P))
	}
}
