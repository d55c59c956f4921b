package abort

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeout_FiresAfterDuration(t *testing.T) {
	mock := clock.NewMock()
	c := NewTimeout(mock, 10*time.Second)

	mock.Add(9 * time.Second)
	assert.False(t, c.Triggered())

	mock.Add(time.Second)
	require.Eventually(t, c.Triggered, time.Second, time.Millisecond)
	assert.ErrorIs(t, c.Err(), ErrTimeout)
}

func TestNewTimeout_EarlyAbortStopsTimer(t *testing.T) {
	mock := clock.NewMock()
	c := NewTimeout(mock, time.Second)

	require.True(t, c.Abort(nil))
	mock.Add(2 * time.Second)

	assert.ErrorIs(t, c.Err(), ErrAborted)
}

func TestNewTimeout_RealClock(t *testing.T) {
	c := NewTimeout(nil, 10*time.Millisecond)

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout controller never fired")
	}
	assert.ErrorIs(t, c.Err(), ErrTimeout)
}
