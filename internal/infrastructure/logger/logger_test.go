package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "local logs debug", env: "local", wantDebug: true, wantInfo: true},
		{name: "dev logs debug", env: "dev", wantDebug: true, wantInfo: true},
		{name: "prod hides debug", env: "prod", wantDebug: false, wantInfo: true},
		{name: "test hides info", env: "test", wantDebug: false, wantInfo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.env, &buf)

			log.Debug("debug message")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))

			log.Info("info message")
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info message")))
		})
	}
}

func TestLogger_WithKeepsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", &buf).With(slog.String("component", "feed"))

	log.Info("page served", slog.Int("posts", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "feed", entry["component"])
	assert.Equal(t, float64(3), entry["posts"])
}
