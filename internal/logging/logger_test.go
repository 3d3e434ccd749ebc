package logging

import (
	"testing"

	"github.com/projectdiscovery/gologger/levels"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]levels.Level{
		"debug":   levels.LevelDebug,
		"INFO":    levels.LevelInfo,
		"warn":    levels.LevelWarning,
		"Warning": levels.LevelWarning,
		"error":   levels.LevelError,
		"fatal":   levels.LevelFatal,
	}
	for name, want := range tests {
		level, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, level, name)
	}

	_, ok := ParseLevel("verbose")
	assert.False(t, ok)
}
