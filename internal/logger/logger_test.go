package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/nathoo/witchertrack/internal/config"
)

func TestNew_WritesToFileWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "witcher.log")
	cfg := &config.Config{Environment: "production", LogLevel: zapcore.InfoLevel, LogFile: path}

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("lore loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"msg":"lore loaded"`), line)
	assert.True(t, strings.Contains(line, `"session":"`), line)
}

func TestNew_Level(t *testing.T) {
	cfg := &config.Config{Environment: "development", LogLevel: zapcore.WarnLevel, LogFile: filepath.Join(t.TempDir(), "x.log")}

	log, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, Level(log))
}
