package eventiter

import (
	"github.com/dep2p/go-eventiter/internal/core/abort"
	"github.com/dep2p/go-eventiter/internal/core/bridge"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 桥接器创建错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNilSource 事件源为空
	ErrNilSource = bridge.ErrNilSource

	// ErrNoEventNames 没有要监听的事件名称
	ErrNoEventNames = bridge.ErrNoEventNames

	// ErrInvalidEventName 事件名称不可比较
	ErrInvalidEventName = bridge.ErrInvalidEventName

	// ErrFactoryClosed 工厂已关闭
	ErrFactoryClosed = bridge.ErrFactoryClosed

	// ────────────────────────────────────────────────────────────────────────
	// 取消信号
	// ────────────────────────────────────────────────────────────────────────

	// ErrAborted 默认中止原因
	ErrAborted = abort.ErrAborted

	// ErrTimeout 超时中止
	ErrTimeout = abort.ErrTimeout
)
