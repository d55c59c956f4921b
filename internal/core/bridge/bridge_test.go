package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-eventiter/internal/core/abort"
	"github.com/dep2p/go-eventiter/internal/core/eventbus"
	"github.com/dep2p/go-eventiter/internal/testutil"
	"github.com/dep2p/go-eventiter/pkg/types"
)

const waitTimeout = 2 * time.Second

func names(ns ...types.EventName) []types.EventName { return ns }

// waitListeners 等待回调注册完成
func waitListeners(t *testing.T, bus *eventbus.Bus, name types.EventName, n int) {
	t.Helper()
	testutil.Eventually(t, waitTimeout, func() bool {
		return bus.ListenerCount(name) == n
	}, "回调数量未达到预期")
}

// ============================================================================
// 创建测试
// ============================================================================

func TestNew_Validation(t *testing.T) {
	bus := eventbus.NewBus()

	_, err := New(nil, names("tick"))
	assert.ErrorIs(t, err, ErrNilSource)

	_, err = New(bus, nil)
	assert.ErrorIs(t, err, ErrNoEventNames)

	_, err = New(bus, names("tick", []int{1}))
	assert.ErrorIs(t, err, ErrInvalidEventName)

	_, err = New(bus, names(nil))
	assert.ErrorIs(t, err, ErrInvalidEventName)
}

func TestNew_DedupesNames(t *testing.T) {
	stop := types.NewSymbol("stop")
	b, err := New(eventbus.NewBus(), names("tick", "tock", "tick", stop, stop))
	require.NoError(t, err)

	assert.Equal(t, names("tick", "tock", stop), b.Names())
	assert.Equal(t, StateIdle, b.State())
	assert.NotEmpty(t, b.ID())
}

func TestNew_DoesNotRegisterBeforePull(t *testing.T) {
	bus := eventbus.NewBus()
	_, err := New(bus, names("tick"))
	require.NoError(t, err)

	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

// ============================================================================
// 交付测试
// ============================================================================

func TestBridge_DeliversInOrder(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick", "tock"))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), nil)
	waitListeners(t, bus, "tick", 1)
	waitListeners(t, bus, "tock", 1)
	assert.Equal(t, StateActive, b.State())

	bus.Emit("tick", 1)
	bus.Emit("other", "ignored")
	bus.Emit("tock", 2)
	bus.Emit("tick", "a", "b")
	bus.Emit("tock")

	assert.Equal(t, types.Event{Name: "tick", Value: 1}, c.Next(t, waitTimeout))
	assert.Equal(t, types.Event{Name: "tock", Value: 2}, c.Next(t, waitTimeout))
	assert.Equal(t, types.Event{Name: "tick", Value: []any{"a", "b"}}, c.Next(t, waitTimeout))
	assert.Equal(t, types.Event{Name: "tock", Value: []any{}}, c.Next(t, waitTimeout))

	b.Stop()
	c.WaitDone(t, waitTimeout)

	assert.Empty(t, c.Drain())
	assert.Equal(t, 0, bus.ListenerCount("tick"))
	assert.Equal(t, 0, bus.ListenerCount("tock"))
	assert.Equal(t, StateClosed, b.State())
}

func TestBridge_SymbolName(t *testing.T) {
	bus := eventbus.NewBus()
	stop := types.NewSymbol("stop")
	b, err := New(bus, names(stop))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), nil)
	waitListeners(t, bus, stop, 1)

	bus.Emit("Symbol(stop)", "string name does not match")
	bus.Emit(stop, true)

	ev := c.Next(t, waitTimeout)
	assert.Same(t, stop, ev.Name)
	assert.Equal(t, true, ev.Value)

	b.Stop()
	c.WaitDone(t, waitTimeout)
}

// ============================================================================
// 停止测试
// ============================================================================

func TestBridge_StopBeforeFirstPull(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick"))
	require.NoError(t, err)

	b.Stop()
	b.Stop()
	assert.Equal(t, StateClosed, b.State())

	n := 0
	for range b.Events() {
		n++
	}
	assert.Zero(t, n)
	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

func TestBridge_StopInsideLoop(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick"))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), func(types.Event) bool {
		b.Stop()
		return true
	})
	waitListeners(t, bus, "tick", 1)

	bus.Emit("tick", 1)
	bus.Emit("tick", 2)
	c.WaitDone(t, waitTimeout)

	got := c.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Value)
	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

func TestBridge_QueuedEventsOnStop(t *testing.T) {
	tests := []struct {
		name  string
		drain bool
		want  []any
	}{
		{name: "Discard", drain: false, want: []any{1}},
		{name: "Drain", drain: true, want: []any{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := eventbus.NewBus()
			b, err := New(bus, names("tick"), WithDrainOnStop(tt.drain))
			require.NoError(t, err)

			hold := make(chan struct{})
			first := true
			c := testutil.Consume(b.Events(), func(types.Event) bool {
				if first {
					first = false
					<-hold
				}
				return true
			})
			waitListeners(t, bus, "tick", 1)

			bus.Emit("tick", 1)
			c.Next(t, waitTimeout)

			bus.Emit("tick", 2)
			bus.Emit("tick", 3)
			assert.Equal(t, 2, b.Pending())

			b.Stop()
			close(hold)
			c.WaitDone(t, waitTimeout)

			got := []any{1}
			for _, ev := range c.Drain() {
				got = append(got, ev.Value)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 0, b.Pending())
			assert.Equal(t, 0, bus.ListenerCount("tick"))
		})
	}
}

// TestBridge_DrainIgnoresEventsAfterStop 停止后触发的事件不再交付
func TestBridge_DrainIgnoresEventsAfterStop(t *testing.T) {
	tests := []struct {
		name   string
		queued int
	}{
		{name: "EmptyQueue", queued: 0},
		{name: "Queued", queued: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := eventbus.NewBus()
			b, err := New(bus, names("tick"), WithDrainOnStop(true))
			require.NoError(t, err)

			c := testutil.Consume(b.Events(), func(ev types.Event) bool {
				if ev.Value == 0 {
					for i := 1; i <= tt.queued; i++ {
						bus.Emit("tick", i)
					}
					b.Stop()
				}
				// 持续触发的生产者
				bus.Emit("tick", 100)
				return true
			})
			waitListeners(t, bus, "tick", 1)

			bus.Emit("tick", 0)
			c.WaitDone(t, waitTimeout)

			var got []any
			for _, ev := range c.Drain() {
				got = append(got, ev.Value)
			}
			want := []any{0}
			for i := 1; i <= tt.queued; i++ {
				want = append(want, i)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, 0, bus.ListenerCount("tick"))
		})
	}
}

func TestBridge_BreakRemovesListeners(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick", "tock"))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), func(types.Event) bool { return false })
	waitListeners(t, bus, "tick", 1)

	bus.Emit("tock", "x")
	c.WaitDone(t, waitTimeout)

	assert.Equal(t, 0, bus.ListenerCount("tick"))
	assert.Equal(t, 0, bus.ListenerCount("tock"))
	assert.Equal(t, StateClosed, b.State())
}

func TestBridge_PanicRemovesListeners(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick"))
	require.NoError(t, err)

	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		for range b.Events() {
			panic("consumer failed")
		}
	}()
	waitListeners(t, bus, "tick", 1)
	bus.Emit("tick")

	select {
	case r := <-done:
		assert.Equal(t, "consumer failed", r)
	case <-time.After(waitTimeout):
		t.Fatal("consumer did not panic")
	}
	assert.Equal(t, 0, bus.ListenerCount("tick"))
	assert.Equal(t, StateClosed, b.State())
}

func TestBridge_SecondIterationEmpty(t *testing.T) {
	bus := eventbus.NewBus()
	b, err := New(bus, names("tick"))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), func(types.Event) bool { return false })
	waitListeners(t, bus, "tick", 1)
	bus.Emit("tick", 1)
	c.WaitDone(t, waitTimeout)

	n := 0
	for range b.Events() {
		n++
	}
	assert.Zero(t, n)
	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

// ============================================================================
// 取消信号测试
// ============================================================================

func TestBridge_SignalStops(t *testing.T) {
	bus := eventbus.NewBus()
	ctl := abort.NewController()
	b, err := New(bus, names("tick"), WithSignal(ctl.Signal()))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), nil)
	waitListeners(t, bus, "tick", 1)

	bus.Emit("tick", 1)
	assert.Equal(t, 1, c.Next(t, waitTimeout).Value)

	ctl.Abort(nil)
	c.WaitDone(t, waitTimeout)
	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

func TestBridge_SignalAlreadyTriggered(t *testing.T) {
	bus := eventbus.NewBus()
	ctl := abort.NewController()
	ctl.Abort(nil)

	b, err := New(bus, names("tick"), WithSignal(ctl))
	require.NoError(t, err)

	n := 0
	for range b.Events() {
		n++
	}
	assert.Zero(t, n)
	assert.Equal(t, StateClosed, b.State())
}

func TestBridge_SignalBeforeFirstPull(t *testing.T) {
	bus := eventbus.NewBus()
	ctl := abort.NewController()
	b, err := New(bus, names("tick"), WithSignal(ctl))
	require.NoError(t, err)

	ctl.Abort(nil)
	testutil.Eventually(t, waitTimeout, func() bool {
		return b.State() == StateClosed
	}, "信号触发后应进入终态")

	n := 0
	for range b.Events() {
		n++
	}
	assert.Zero(t, n)
}

func TestBridge_WithContext(t *testing.T) {
	bus := eventbus.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := New(bus, names("tick"), WithContext(ctx))
	require.NoError(t, err)

	c := testutil.Consume(b.Events(), nil)
	waitListeners(t, bus, "tick", 1)

	cancel()
	c.WaitDone(t, waitTimeout)
	assert.Equal(t, 0, bus.ListenerCount("tick"))
}

func TestBridge_StopDetachesSignal(t *testing.T) {
	bus := eventbus.NewBus()
	ctl := abort.NewController()
	b, err := New(bus, names("tick"), WithSignal(ctl))
	require.NoError(t, err)

	assert.Equal(t, 1, ctl.Pending())
	b.Stop()
	assert.Equal(t, 0, ctl.Pending())
}
