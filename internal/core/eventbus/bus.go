// Package eventbus 实现进程内命名事件源
package eventbus

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/lib/log"
	"github.com/dep2p/go-eventiter/pkg/types"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 命名事件总线
//
// 按事件名称登记回调，Emit 时在调用方 goroutine 中同步调用。
type Bus struct {
	mu sync.RWMutex

	// nodes 事件名称节点映射
	nodes map[types.EventName]*node

	nextID atomic.Uint64
	closed atomic.Bool
}

// node 事件名称节点
type node struct {
	lk      sync.Mutex
	name    types.EventName
	entries []*entry     // 按注册顺序排列的回调
	panics  atomic.Int64 // 回调 panic 次数
}

// entry 单个回调注册
type entry struct {
	id    types.ListenerID
	fn    pkgif.Listener
	once  bool
	fired atomic.Bool
}

// NewBus 创建新的事件总线
func NewBus() *Bus {
	return &Bus{
		nodes: make(map[types.EventName]*node),
	}
}

// ============================================================================
// EventSource 接口实现
// ============================================================================

// AddListener 为指定名称注册回调
//
// 名称不可比较、回调为 nil 或总线已关闭时返回 types.NoListener。
func (b *Bus) AddListener(name types.EventName, fn pkgif.Listener) types.ListenerID {
	return b.add(name, fn, false)
}

// Once 注册只触发一次的回调
//
// 第一次触发前自动移除，之后的 Emit 不再调用。
func (b *Bus) Once(name types.EventName, fn pkgif.Listener) types.ListenerID {
	return b.add(name, fn, true)
}

// RemoveListener 凭句柄移除回调
func (b *Bus) RemoveListener(name types.EventName, id types.ListenerID) {
	if id.IsZero() || !types.IsValidEventName(name) {
		return
	}

	b.mu.Lock()
	n, ok := b.nodes[name]
	if !ok {
		b.mu.Unlock()
		return
	}

	n.lk.Lock()
	b.mu.Unlock()

	n.entries = slices.DeleteFunc(n.entries, func(e *entry) bool {
		return e.id == id
	})
	empty := len(n.entries) == 0
	n.lk.Unlock()

	if empty {
		b.tryDropNode(name)
	}
}

// Emit 触发事件
//
// 对注册回调的快照依次调用，回调内注册或移除回调不影响本次触发。
// 返回被调用的回调数量。
func (b *Bus) Emit(name types.EventName, args ...any) int {
	if b.closed.Load() || !types.IsValidEventName(name) {
		return 0
	}

	b.mu.RLock()
	n, ok := b.nodes[name]
	b.mu.RUnlock()
	if !ok {
		return 0
	}

	n.lk.Lock()
	snapshot := slices.Clone(n.entries)
	n.lk.Unlock()

	called := 0
	for _, e := range snapshot {
		if e.once {
			if !e.fired.CompareAndSwap(false, true) {
				continue
			}
			b.RemoveListener(name, e.id)
		}
		n.invoke(e, args)
		called++
	}
	return called
}

// ListenerCount 返回指定名称当前注册的回调数量
func (b *Bus) ListenerCount(name types.EventName) int {
	if !types.IsValidEventName(name) {
		return 0
	}

	b.mu.RLock()
	n, ok := b.nodes[name]
	b.mu.RUnlock()
	if !ok {
		return 0
	}

	n.lk.Lock()
	defer n.lk.Unlock()
	return len(n.entries)
}

// EventNames 返回所有有回调的事件名称
func (b *Bus) EventNames() []types.EventName {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]types.EventName, 0, len(b.nodes))
	for name := range b.nodes {
		names = append(names, name)
	}
	return names
}

// Close 关闭总线并丢弃所有回调
//
// 关闭后 AddListener 返回 types.NoListener，Emit 为空操作。
func (b *Bus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	dropped := len(b.nodes)
	b.nodes = make(map[types.EventName]*node)
	b.mu.Unlock()

	logger.Debug("事件总线已关闭", "names", dropped)
	return nil
}

// ============================================================================
// 内部方法
// ============================================================================

func (b *Bus) add(name types.EventName, fn pkgif.Listener, once bool) types.ListenerID {
	if fn == nil || b.closed.Load() {
		return types.NoListener
	}
	if !types.IsValidEventName(name) {
		logger.Warn("忽略不可比较的事件名称", "type", fmt.Sprintf("%T", name))
		return types.NoListener
	}

	e := &entry{
		id:   types.ListenerID(b.nextID.Add(1)),
		fn:   fn,
		once: once,
	}

	b.withNode(name, func(n *node) {
		n.entries = append(n.entries, e)
	})

	return e.id
}

// withNode 在节点上执行操作
func (b *Bus) withNode(name types.EventName, cb func(*node)) {
	b.mu.Lock()

	n, ok := b.nodes[name]
	if !ok {
		n = &node{name: name}
		b.nodes[name] = n
	}

	n.lk.Lock()
	b.mu.Unlock()

	cb(n)
	n.lk.Unlock()
}

// tryDropNode 尝试删除节点（如果没有回调）
func (b *Bus) tryDropNode(name types.EventName) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, ok := b.nodes[name]
	if !ok {
		return
	}

	n.lk.Lock()
	empty := len(n.entries) == 0
	n.lk.Unlock()

	if empty {
		delete(b.nodes, name)
	}
}

// invoke 调用回调，回调 panic 时记录日志并继续
func (n *node) invoke(e *entry, args []any) {
	defer func() {
		if r := recover(); r != nil {
			panics := n.panics.Add(1)
			logger.Warn("事件回调 panic",
				"event", types.FormatEventName(n.name),
				"listener", e.id,
				"panic", r,
				"total", panics)
		}
	}()
	e.fn(args...)
}

var _ pkgif.EventEmitter = (*Bus)(nil)
