package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestWithComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "omnibox")

	FromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"omnibox"`)
}

func TestFromContextWithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWithFile_WritesJSONToRotatingFile(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Enabled: true, Dir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("port", "8080").Msg("navigated")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"port":"8080"`)
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 1, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// Force rotation with a tiny limit.
	r.maxSize = 16
	for i := 0; i < 3; i++ {
		_, err := r.Write([]byte("0123456789abcdef"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	backups := 0
	for _, e := range entries {
		if e.Name() != logFileName {
			backups++
		}
	}
	assert.LessOrEqual(t, backups, 1)
	assert.FileExists(t, r.Path())
}

func TestRecoverPanicLogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), `"message":"PANIC"`)
}

func TestRecoverPanicNoop(t *testing.T) {
	var buf bytes.Buffer
	assert.NotPanics(t, func() {
		defer RecoverPanic(zerolog.New(&buf))
	})
	assert.Empty(t, buf.String())
}

func TestWithTabIDAndURLAddFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithURL(WithTabID(ctx, "7"), "https://localhost:3000")

	FromContext(ctx).Info().Msg("navigated")
	assert.Contains(t, buf.String(), `"tab_id":"7"`)
	assert.Contains(t, buf.String(), `"url":"https://localhost:3000"`)
}
