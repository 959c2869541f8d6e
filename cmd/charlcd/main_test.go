package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFormatter(t *testing.T) {
	f := &colorFormatter{}

	out, err := f.Format(&log.Entry{Level: log.WarnLevel, Message: "careful"})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[33mcareful\x1b[0m\n", string(out))

	out, err = f.Format(&log.Entry{Level: log.InfoLevel, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[39mhello\x1b[0m\n", string(out))
}

func TestOpenDisplay_MissingConfig(t *testing.T) {
	_, err := openDisplay(filepath.Join(t.TempDir(), "lcd.yaml"))
	assert.Error(t, err)
}

func TestOpenDisplay_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display: {bus: 5}\n"), 0o600))

	_, err := openDisplay(path)
	assert.Error(t, err)
}
