package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/raintrap/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTerminalHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewTerminalHandler(&buf, slog.LevelInfo, false))

	logger.Debug("hidden")
	logger.Info("computed trapped volume", "bars", 6, "units", 9)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "computed trapped volume")
	assert.Contains(t, out, "bars=6")
	assert.Contains(t, out, "units=9")
	assert.False(t, strings.Contains(out, "\x1b["), "buffers are not terminals, output must be plain")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, logging.IsTerminal(&bytes.Buffer{}))
	assert.False(t, logging.IsTerminal(nil))
}
