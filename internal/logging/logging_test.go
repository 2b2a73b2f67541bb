package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		info  bool
	}{
		{"debug", true, true},
		{" INFO ", false, true},
		{"warn", false, false},
		{"nonsense", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run("Level "+tt.level, func(t *testing.T) {
			log, err := New(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, log.Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.info, log.Core().Enabled(zap.InfoLevel))
		})
	}
}
