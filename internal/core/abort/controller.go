// Package abort 提供一次性取消信号
package abort

import (
	"errors"
	"slices"
	"sync"

	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
	"github.com/dep2p/go-eventiter/pkg/lib/log"
	"github.com/dep2p/go-eventiter/pkg/types"
)

var logger = log.Logger("core/abort")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrAborted 默认中止原因
	ErrAborted = errors.New("aborted")
	// ErrTimeout 超时中止
	ErrTimeout = errors.New("abort timeout")
)

// ============================================================================
// Controller 实现
// ============================================================================

// Controller 中止控制器
//
// 持有一个一次性信号：Abort 第一次调用时触发，已注册的处理函数按注册顺序
// 在锁外各调用一次。Controller 自身实现 pkgif.CancelSignal，
// 也可以通过 Signal() 只暴露只读视图。
type Controller struct {
	mu        sync.Mutex
	triggered bool
	reason    error
	nextID    types.ListenerID
	handlers  []handler
	done      chan struct{}

	// timer 超时控制器的定时器，Abort 时停止
	timer *clock.Timer
}

type handler struct {
	id types.ListenerID
	fn func()
}

// NewController 创建中止控制器
func NewController() *Controller {
	return &Controller{
		done: make(chan struct{}),
	}
}

// Abort 触发信号
//
// reason 为 nil 时使用 ErrAborted。只有第一次调用返回 true。
func (c *Controller) Abort(reason error) bool {
	if reason == nil {
		reason = ErrAborted
	}

	c.mu.Lock()
	if c.triggered {
		c.mu.Unlock()
		return false
	}
	c.triggered = true
	c.reason = reason
	close(c.done)

	handlers := c.handlers
	c.handlers = nil
	timer := c.timer
	c.timer = nil
	c.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}

	logger.Debug("信号已触发", "reason", reason, "handlers", len(handlers))
	for _, h := range handlers {
		h.fn()
	}
	return true
}

// Triggered 检查信号是否已触发
func (c *Controller) Triggered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.triggered
}

// OnTrigger 注册一次性处理函数
//
// 信号已触发时处理函数在新 goroutine 中立即执行，并返回 types.NoListener。
func (c *Controller) OnTrigger(fn func()) types.ListenerID {
	if fn == nil {
		return types.NoListener
	}

	c.mu.Lock()
	if c.triggered {
		c.mu.Unlock()
		go fn()
		return types.NoListener
	}
	c.nextID++
	id := c.nextID
	c.handlers = append(c.handlers, handler{id: id, fn: fn})
	c.mu.Unlock()

	return id
}

// RemoveTrigger 移除处理函数
func (c *Controller) RemoveTrigger(id types.ListenerID) {
	if id.IsZero() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = slices.DeleteFunc(c.handlers, func(h handler) bool {
		return h.id == id
	})
}

// Done 返回信号触发时关闭的通道
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Err 返回中止原因，未触发时为 nil
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

// Signal 返回只读信号视图
func (c *Controller) Signal() pkgif.CancelSignal {
	return signalView{c: c}
}

// Pending 返回尚未触发的处理函数数量
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handlers)
}

// ============================================================================
// 只读视图
// ============================================================================

// signalView 不暴露 Abort 的信号视图
type signalView struct {
	c *Controller
}

func (s signalView) Triggered() bool                      { return s.c.Triggered() }
func (s signalView) OnTrigger(fn func()) types.ListenerID { return s.c.OnTrigger(fn) }
func (s signalView) RemoveTrigger(id types.ListenerID)    { s.c.RemoveTrigger(id) }

var (
	_ pkgif.CancelSignal = (*Controller)(nil)
	_ pkgif.CancelSignal = signalView{}
)
