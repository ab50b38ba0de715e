package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "", want: slog.LevelInfo},
		{input: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.EqualError(t, err, "unknown log level: verbose")
}

func TestNew_UsesConfiguredLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "marketplace"
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_TagsServiceAndEnv(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "marketplace"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	buf := &bytes.Buffer{}
	logger, err := New(Params{Config: cfg, Output: buf})
	require.NoError(t, err)

	logger.Info("NFT minted", slog.Int64("tokenId", 7))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "marketplace", entry["service"])
	assert.Equal(t, "develop", entry["env"])
	assert.EqualValues(t, 7, entry["tokenId"])
}
