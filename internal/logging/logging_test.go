package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format LogFormat
		json   bool
	}{
		{LogFormatText, false},
		{LogFormatJSON, true},
		{"", false},
		{"yaml", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			logger := NewLogger(tt.format)

			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			require.Equal(t, tt.json, isJSON)
			require.Equal(t, logrus.InfoLevel, logger.GetLevel())
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := NewLogger(LogFormatText)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
