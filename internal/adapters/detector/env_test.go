package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/runit/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	for _, ci := range []string{"true", "1"} {
		t.Run("CI="+ci, func(t *testing.T) {
			t.Setenv("CI", ci)
			assert.Equal(t, detector.ModePipe, detector.DetectEnvironment())
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.TerminalMode
		userFlag     string
		expected     detector.TerminalMode
	}{
		{"auto keeps pty", detector.ModePTY, "auto", detector.ModePTY},
		{"auto keeps pipe", detector.ModePipe, "auto", detector.ModePipe},
		{"empty keeps detection", detector.ModePTY, "", detector.ModePTY},
		{"always forces pty", detector.ModePipe, "always", detector.ModePTY},
		{"on is alias for always", detector.ModePipe, "on", detector.ModePTY},
		{"never forces pipe", detector.ModePTY, "never", detector.ModePipe},
		{"off is alias for never", detector.ModePTY, "off", detector.ModePipe},
		{"unknown keeps detection", detector.ModePipe, "sometimes", detector.ModePipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestUseTTY(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.UseTTY("auto"))
	assert.True(t, detector.UseTTY("always"))
	assert.False(t, detector.UseTTY("never"))
}

func TestTerminalMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "always", detector.ModePTY.String())
	assert.Equal(t, "never", detector.ModePipe.String())
}
