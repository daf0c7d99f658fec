package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupProduction(t *testing.T) {
	var buf bytes.Buffer
	log, lib := logrus.New(), logrus.New()
	require.NoError(t, Setup(log, Options{Out: &buf}, lib))

	assert.Equal(t, logrus.InfoLevel, lib.GetLevel())
	lib.Debug("hidden")
	lib.WithField("tag", "XYZ").Info("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "XYZ", entry["tag"])
}

func TestSetupDevelopment(t *testing.T) {
	log := logrus.New()
	require.NoError(t, Setup(log, Options{Development: true, Out: &bytes.Buffer{}}))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codeword.log")
	log := logrus.New()
	require.NoError(t, Setup(log, Options{File: path, Out: &bytes.Buffer{}}))

	log.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
