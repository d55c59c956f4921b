package bridge

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/lib/log"
	"github.com/dep2p/go-eventiter/pkg/types"
)

var logger = log.Logger("core/bridge")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNilSource 事件源为空
	ErrNilSource = errors.New("event source is nil")
	// ErrNoEventNames 没有要监听的事件名称
	ErrNoEventNames = errors.New("no event names to watch")
	// ErrInvalidEventName 事件名称不可比较
	ErrInvalidEventName = errors.New("invalid event name")
)

// ============================================================================
// Bridge 实现
// ============================================================================

// Bridge 事件桥接器
//
// 监听事件源上的一组名称，把每次回调转换为 types.Event 放入无界队列，
// 由单个消费者通过 Events() 按先进先出顺序拉取。
//
// Bridge 是一次性的：第一次迭代结束（正常停止、信号触发或消费者提前退出）
// 后回调全部移除，再次迭代不产生任何事件。
type Bridge struct {
	id       string
	source   pkgif.EventSource
	names    []types.EventName
	signal   pkgif.CancelSignal
	recorder pkgif.BridgeRecorder
	drain    bool
	onDone   func(*Bridge)

	// mu 保护以下所有字段；生产者回调、消费循环和停止路径都经由它串行化
	mu       sync.Mutex
	state    State
	alive    bool
	queue    queue
	handles  map[types.EventName]types.ListenerID
	signalID types.ListenerID

	wake     *gate
	stopOnce sync.Once
	doneOnce sync.Once
}

// New 创建桥接器
//
// names 中的重复名称会被合并；顺序按第一次出现保留。
// 信号在创建时已触发的桥接器仍会被创建，但第一次拉取即结束。
func New(source pkgif.EventSource, names []types.EventName, opts ...Option) (*Bridge, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	watched, err := watchSet(names)
	if err != nil {
		return nil, err
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	b := &Bridge{
		id:       uuid.NewString(),
		source:   source,
		names:    watched,
		signal:   s.signal,
		recorder: s.recorder,
		drain:    s.drainOnStop,
		onDone:   s.onDone,
		state:    StateIdle,
		alive:    true,
		handles:  make(map[types.EventName]types.ListenerID, len(watched)),
		wake:     newGate(),
	}

	if b.signal != nil {
		if b.signal.Triggered() {
			b.alive = false
		} else {
			id := b.signal.OnTrigger(b.Stop)
			b.mu.Lock()
			if b.alive {
				b.signalID = id
			}
			b.mu.Unlock()
		}
	}

	return b, nil
}

// ID 返回桥接器标识（用于日志关联）
func (b *Bridge) ID() string {
	return b.id
}

// Names 返回监听的事件名称
func (b *Bridge) Names() []types.EventName {
	return slices.Clone(b.names)
}

// State 返回当前状态
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Pending 返回队列中尚未交付的事件数
func (b *Bridge) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.len()
}

// Events 返回事件序列
//
// 第一次拉取时注册回调；队列为空时阻塞等待，直到有新事件或停止。
// 无论以何种方式退出（停止、信号、break、panic），回调都会被移除。
// 序列只能消费一次，之后的迭代立即结束。
func (b *Bridge) Events() iter.Seq[types.Event] {
	return func(yield func(types.Event) bool) {
		if !b.activate() {
			return
		}
		defer b.teardown()

		for {
			ev, ok := b.next()
			if !ok {
				return
			}
			b.recorder.EventYielded(ev.Name)
			if !yield(ev) {
				return
			}
		}
	}
}

// Stop 停止桥接器
//
// 清除存活标志、唤醒等待中的消费者，并从取消信号上移除本桥接器的处理函数。
// 可重复调用，也可在消费循环体内调用；只有第一次调用生效。
// 默认情况下已排队但未交付的事件会被丢弃。
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.alive = false
		idle := b.state == StateIdle
		switch b.state {
		case StateIdle:
			b.state = StateClosed
		case StateActive:
			b.state = StateDraining
		}
		sigID := b.signalID
		b.signalID = types.NoListener
		b.mu.Unlock()

		if b.signal != nil && !sigID.IsZero() {
			b.signal.RemoveTrigger(sigID)
		}
		b.wake.release()

		logger.Debug("桥接器停止", "id", b.id)
		if idle {
			b.finish()
		}
	})
}

// ============================================================================
// 内部方法
// ============================================================================

// activate 从 Idle 进入 Active 并注册回调
//
// 已迭代过或已停止的桥接器返回 false。
func (b *Bridge) activate() bool {
	b.mu.Lock()
	if b.state != StateIdle {
		st := b.state
		b.mu.Unlock()
		logger.Debug("桥接器不可迭代", "id", b.id, "state", st)
		return false
	}
	if !b.alive || (b.signal != nil && b.signal.Triggered()) {
		b.alive = false
		b.state = StateClosed
		b.mu.Unlock()

		b.Stop()
		b.finish()
		return false
	}
	b.state = StateActive
	b.mu.Unlock()

	b.recorder.BridgeOpened()

	for _, name := range b.names {
		id := b.source.AddListener(name, b.listener(name))
		b.mu.Lock()
		b.handles[name] = id
		b.mu.Unlock()
	}

	logger.Debug("桥接器已激活", "id", b.id, "names", len(b.names))
	return true
}

// listener 为指定名称构造回调
func (b *Bridge) listener(name types.EventName) pkgif.Listener {
	return func(args ...any) {
		ev := types.NewEvent(name, args)

		// 停止后到达的事件不入队，drain 只交付停止时已排队的事件
		b.mu.Lock()
		if !b.alive || b.state == StateClosed {
			b.mu.Unlock()
			b.recorder.EventsDiscarded(1)
			return
		}
		b.queue.push(ev)
		b.mu.Unlock()

		b.recorder.EventEnqueued(name)
		b.wake.release()
	}
}

// next 取出下一个事件，队列为空时等待唤醒
//
// 存活标志清除后返回 false；开启 drain 时先交付完停止时已排队的事件。
func (b *Bridge) next() (types.Event, bool) {
	for {
		b.mu.Lock()
		if b.alive || b.drain {
			if ev, ok := b.queue.pop(); ok {
				b.mu.Unlock()
				return ev, true
			}
		}
		if !b.alive {
			b.mu.Unlock()
			return types.Event{}, false
		}
		b.mu.Unlock()

		b.wake.acquire()
	}
}

// teardown 移除所有回调并进入终态
func (b *Bridge) teardown() {
	b.Stop()

	b.mu.Lock()
	handles := b.handles
	b.handles = make(map[types.EventName]types.ListenerID)
	b.mu.Unlock()

	for _, name := range b.names {
		if id, ok := handles[name]; ok {
			b.source.RemoveListener(name, id)
		}
	}

	b.mu.Lock()
	discarded := b.queue.len()
	b.queue.reset()
	b.state = StateClosed
	b.mu.Unlock()

	if discarded > 0 {
		b.recorder.EventsDiscarded(discarded)
		logger.Debug("丢弃未交付事件", "id", b.id, "count", discarded)
	}
	b.recorder.BridgeClosed()
	logger.Debug("桥接器已关闭", "id", b.id)

	b.finish()
}

// finish 通知进入终态（只执行一次）
func (b *Bridge) finish() {
	b.doneOnce.Do(func() {
		if b.onDone != nil {
			b.onDone(b)
		}
	})
}

// watchSet 校验并去重事件名称
func watchSet(names []types.EventName) ([]types.EventName, error) {
	if len(names) == 0 {
		return nil, ErrNoEventNames
	}

	seen := make(map[types.EventName]struct{}, len(names))
	watched := make([]types.EventName, 0, len(names))
	for _, name := range names {
		if !types.IsValidEventName(name) {
			return nil, fmt.Errorf("%w: %T", ErrInvalidEventName, name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		watched = append(watched, name)
	}
	return watched, nil
}

var _ pkgif.EventIterable = (*Bridge)(nil)
