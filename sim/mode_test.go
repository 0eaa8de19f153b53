package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"off", ModeOff, false},
		{"aoo", ModeAoo, false},
		{"vvt", ModeVvt, false},
		{"VVT", ModeVvt, false},
		{" Aoo ", ModeAoo, false},
		{"ddd", ModeOff, true},
		{"", ModeOff, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: off, aoo, vvt")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_StringRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeOff, ModeAoo, ModeVvt} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.True(t, IsValidMode(m.String()))
	}
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.False(t, IsValidMode("dual"))
}
