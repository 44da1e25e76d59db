package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"freelook", ModeFreeLook},
		{"FreeLook", ModeFreeLook},
		{"free-look", ModeFreeLook},
		{"first_person", ModeFirstPerson},
		{"firstperson", ModeFirstPerson},
		{"ORBIT", ModeOrbit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	_, err := ParseMode("arcball")
	assert.Error(t, err)
}

func TestModeStringRoundTrip(t *testing.T) {
	for m := ModeFreeLook; m < modeCount; m++ {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, ModeFirstPerson, ModeFreeLook.Next())
	assert.Equal(t, ModeOrbit, ModeFirstPerson.Next())
	assert.Equal(t, ModeFreeLook, ModeOrbit.Next())
}
