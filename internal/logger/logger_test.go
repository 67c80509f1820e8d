package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "debug", "json"))

	WithFields(logrus.Fields{"points": 3}).Debug("classified")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "classified", entry["msg"])
	assert.Equal(t, float64(3), entry["points"])
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())
}

func TestSetupLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "warn", "text"))

	Get().Info("hidden")
	assert.Empty(t, buf.String())

	Get().Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, SetupWriter(&buf, "loud", "text"))
	assert.Error(t, SetupWriter(&buf, "info", "xml"))
}
