// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureInvalid(t *testing.T) {
	log := New()
	assert.Error(t, log.Configure("invalid", "text", "stdout", 0))
	assert.Error(t, log.Configure("info", "xml", "stdout", 0))
}

func TestConfigureLevel(t *testing.T) {
	t.Setenv("GOPVT_LOG_LEVEL", "trace")
	log := New()
	require.NoError(t, log.Configure("warn", "text", "stderr", 0))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.False(t, log.ReportCaller)
	require.NoError(t, log.Configure("debug", "text", "stderr", 0))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.True(t, log.ReportCaller)
	require.NoError(t, log.Configure("", "", "", 0))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestJSON(t *testing.T) {
	log := New()
	require.NoError(t, log.Configure("info", "json", "stdout", 0))
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.WithComponent("pvt").WithField("points", 70).Info("sweep started")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "sweep started", rec["message"])
	assert.Equal(t, "pvt", rec["component"])
	assert.Equal(t, 70.0, rec["points"])
	assert.Equal(t, "info", rec["level"])
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	for _, maxAge := range []int{0, 7} {
		fn := filepath.Join(dir, "gopvt.log")
		log := New()
		require.NoError(t, log.Configure("info", "text", fn, maxAge))
		log.Duration("out", "parquet", time.Now(), Fields{"rows": 3})
		require.NoError(t, log.Close())
		assert.NoError(t, log.Close())
		b, err := os.ReadFile(fn)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(b), "operation=parquet"), string(b))
	}
	log := New()
	assert.Error(t, log.Configure("info", "text", filepath.Join(dir, "missing", "x.log"), 0))
}

func TestReconfigureClosesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "first.log")
	log := New()
	require.NoError(t, log.Configure("info", "text", fn, 0))
	first := log.file.(*os.File)
	require.NoError(t, log.Configure("info", "text", "stderr", 0))
	assert.Nil(t, log.file)
	_, err := first.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Info("nothing")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
