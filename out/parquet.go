// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// memFile implements source.ParquetFile in memory
type memFile struct {
	buf *bytes.Buffer // written data
	rdr *bytes.Reader // reader over data; nil when writing
}

// newMemFile returns a file for writing
func newMemFile() *memFile {
	return &memFile{buf: new(bytes.Buffer)}
}

// openMemFile returns a file for reading
func openMemFile(data []byte) *memFile {
	return &memFile{buf: bytes.NewBuffer(data), rdr: bytes.NewReader(data)}
}

func (o *memFile) Create(name string) (source.ParquetFile, error) { return newMemFile(), nil }

func (o *memFile) Open(name string) (source.ParquetFile, error) {
	return openMemFile(o.buf.Bytes()), nil
}

func (o *memFile) Seek(offset int64, whence int) (int64, error) {
	if o.rdr == nil {
		return 0, nil
	}
	return o.rdr.Seek(offset, whence)
}

func (o *memFile) Read(b []byte) (int, error) {
	if o.rdr == nil {
		return o.buf.Read(b)
	}
	return o.rdr.Read(b)
}

func (o *memFile) Write(b []byte) (int, error) { return o.buf.Write(b) }

func (o *memFile) Close() error { return nil }

func (o *memFile) Bytes() []byte { return o.buf.Bytes() }

// codec returns the parquet compression codec
func codec(compression string) (parquet.CompressionCodec, error) {
	switch strings.ToLower(compression) {
	case "snappy", "":
		return parquet.CompressionCodec_SNAPPY, nil
	case "gzip":
		return parquet.CompressionCodec_GZIP, nil
	case "none", "uncompressed":
		return parquet.CompressionCodec_UNCOMPRESSED, nil
	}
	return 0, fmt.Errorf("parquet compression %q is not available", compression)
}

// Parquet encodes the rows of a table
//  compression -- snappy, gzip or none
func (o *Table) Parquet(compression string) (data []byte, err error) {
	cc, err := codec(compression)
	if err != nil {
		return
	}
	mem := newMemFile()
	pw, err := writer.NewParquetWriter(mem, new(Row), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet writer: %w", err)
	}
	pw.CompressionType = cc
	for i := range o.Rows {
		if err = pw.Write(o.Rows[i]); err != nil {
			pw.WriteStop()
			return nil, fmt.Errorf("failed to write parquet row: %w", err)
		}
	}
	if err = pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("failed to finalise parquet data: %w", err)
	}
	return mem.Bytes(), nil
}

// SaveParquet writes the rows of a table to dirout/fnkey.parquet and returns the file path
//  Note: panics if the file cannot be written
func (o *Table) SaveParquet(dirout, fnkey, compression string) (fn string, err error) {
	data, err := o.Parquet(compression)
	if err != nil {
		return
	}
	io.WriteBytesToFileD(dirout, fnkey+".parquet", data)
	return filepath.Join(dirout, fnkey+".parquet"), nil
}

// ReadParquet decodes rows written by Parquet
func ReadParquet(data []byte) (rows []Row, err error) {
	pr, err := reader.NewParquetReader(openMemFile(data), new(Row), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pr.ReadStop()
	rows = make([]Row, int(pr.GetNumRows()))
	if err = pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}
	return
}
