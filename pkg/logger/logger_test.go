package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerDefaultsToInfo(t *testing.T) {
	InitLogger(Options{Level: "not-a-level"})

	require.NotNil(t, Log)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
}

func TestInitLoggerWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "server.log")

	InitLogger(Options{Level: "debug", File: logFile})
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithField("habit_id", "abc").Info("written to file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"habit_id":"abc"`)
	assert.Contains(t, string(data), "written to file")
}

func TestInitLoggerCustomOutput(t *testing.T) {
	var buf bytes.Buffer
	InitLogger(Options{Level: "info", Output: &buf})

	Log.Info("to buffer")
	assert.Contains(t, buf.String(), "to buffer")
}
