package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info json", level: "info", format: "json", expectLevel: logrus.InfoLevel, expectJSON: true},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "upper case format", level: "error", format: "JSON", expectLevel: logrus.ErrorLevel, expectJSON: true},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)
			assert.Equal(t, tt.expectLevel.String(), adapter.Level())

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	existing := logrus.New()
	adapter, ok := NewLogrusAdapterFromLogger(existing).(*LogrusAdapter)
	require.True(t, ok)
	assert.Same(t, existing, adapter.logger)

	adapter, ok = NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("debug", "json", &buf)

	logger.
		WithField(FieldFile, "books/home.gnucash").
		WithFields(F(FieldCount, 12), F(FieldBookID, "b1")).
		WithError(errors.New("boom")).
		Error("load failed")

	output := buf.String()
	assert.Contains(t, output, `"msg":"load failed"`)
	assert.Contains(t, output, `"file_path":"books/home.gnucash"`)
	assert.Contains(t, output, `"count":12`)
	assert.Contains(t, output, `"book_id":"b1"`)
	assert.Contains(t, output, `"error":"boom"`)
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("warn", "text", &buf)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown warning", F(FieldAccount, "Checking"))

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown warning")
	assert.Contains(t, output, "Checking")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{{Key: "a", Value: "x"}, {Key: "b", Value: 42}})
	assert.Len(t, fields, 2)
	assert.Equal(t, "x", fields["a"])
	assert.Equal(t, 42, fields["b"])
	assert.Empty(t, convertFields(nil))
}

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("loading", F(FieldFile, "a.gnucash"))
	mock.WithField(FieldAccount, "Cash").Warn("no splits")
	mock.WithError(errors.New("bad")).Error("failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 3, "derived loggers share entries")
	assert.True(t, mock.HasEntry("WARN", "no splits"))
	assert.Equal(t, []Field{{Key: FieldAccount, Value: "Cash"}}, entries[1].Fields)
	assert.EqualError(t, entries[2].Error, "bad")
	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 1)

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestMockLogger_ZeroValue(t *testing.T) {
	var mock MockLogger
	mock.Fatalf("exit %d", 1)
	assert.True(t, mock.HasEntry("FATAL", "exit 1"))
}

func TestLoggerImplementations(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
