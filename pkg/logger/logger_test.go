//go:build unit

package logger_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/nutriflow-landing/pkg/logger"
)

func TestNewLogger_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewLogger(logger.Options{
		ServiceName: "nutriflow-test",
		Level:       "info",
		NoColor:     true,
		Out:         &buf,
	})
	require.NoError(t, err)

	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "nutriflow-test")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewLogger(logger.Options{Level: "warn", NoColor: true, Out: &buf})
	require.NoError(t, err)

	l.Info().Msg("dropped line")
	assert.NotContains(t, buf.String(), "dropped line")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := logger.NewLogger(logger.Options{Level: "loud", Out: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestNewLogger_FileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := logger.NewLogger(logger.Options{FilePath: path, Out: &bytes.Buffer{}})
	require.NoError(t, err)

	l.Info().Msg("to file")
	assert.FileExists(t, path)
}
