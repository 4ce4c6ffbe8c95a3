package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarviz/config"
)

func TestNewLogger_Discard(t *testing.T) {
	log, closeLog, err := newLogger(config.Default())
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, io.Discard, log.Out)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLogger_File(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "astarviz.log")
	cfg.LogLevel = "debug"

	log, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	log.WithField("size", 3).Debug("hello")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "size=3")
}

func TestNewLogger_BadPath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "astarviz.log")
	_, _, err := newLogger(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
