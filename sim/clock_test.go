package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClock(t *testing.T) {
	tests := []struct {
		name    string
		tick    time.Duration
		want    Clock
		wantErr bool
	}{
		{ClockBusy, 0, &BusyClock{Iterations: 5000}, false},
		{"", 0, &BusyClock{Iterations: 5000}, false},
		{ClockSleep, time.Millisecond, SleepClock{Tick: time.Millisecond}, false},
		{ClockSleep, 0, nil, true},
		{ClockNone, 0, NoopClock{}, false},
		{"quartz", 0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClock(tt.name, tt.tick)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVirtualClock_CountsAdvances(t *testing.T) {
	c := &VirtualClock{}
	for i := 0; i < 5; i++ {
		c.Advance()
	}
	assert.Equal(t, int64(5), c.Ticks)
}

func TestBusyClock_Advance(t *testing.T) {
	c := &BusyClock{Iterations: 5000}
	c.Advance()
	c.Advance()
	assert.NotZero(t, c.sum)
}
