// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		level      string
		logAt      slog.Level
		wantOutput bool
		wantJSON   bool
	}{
		{"text info", "text", "info", slog.LevelInfo, true, false},
		{"json info", "json", "info", slog.LevelInfo, true, true},
		{"debug logs debug", "text", "debug", slog.LevelDebug, true, false},
		{"info filters debug", "text", "info", slog.LevelDebug, false, false},
		{"warn filters info", "text", "warn", slog.LevelInfo, false, false},
		{"error filters warn", "text", "error", slog.LevelWarn, false, false},
		{"unknown format is text", "banana", "info", slog.LevelInfo, true, false},
		{"unknown level is info", "text", "banana", slog.LevelDebug, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(tt.format, tt.level, &buf).Log(context.Background(), tt.logAt, "hello")

			out := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.wantOutput, out != "", out)
			if tt.wantJSON && out != "" {
				var m map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &m))
				assert.Equal(t, "hello", m["msg"])
			}
		})
	}
}

func TestNew_NilWriter(t *testing.T) {
	require.NotNil(t, New("text", "info", nil))
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
