package infra

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerDevelopment(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, "development", "")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "prod", "")

	logger.WithField("user_id", 1).Info("user registered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user registered", entry["msg"])
	assert.Equal(t, float64(1), entry["user_id"])
}

func TestNewLoggerLevelOverride(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, "prod", "warn")
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger = newLogger(&bytes.Buffer{}, "prod", "loud")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
