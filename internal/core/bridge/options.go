package bridge

import (
	"context"

	"github.com/dep2p/go-eventiter/internal/core/abort"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// ============================================================================
// 选项
// ============================================================================

// settings 桥接器设置
type settings struct {
	signal      pkgif.CancelSignal
	recorder    pkgif.BridgeRecorder
	drainOnStop bool

	// onDone 进入终态时回调（Factory 用于解除跟踪）
	onDone func(*Bridge)
}

// Option 桥接器选项函数
type Option func(*settings)

func defaultSettings() *settings {
	return &settings{
		recorder: pkgif.NopRecorder{},
	}
}

// WithSignal 设置取消信号
//
// 信号触发等同于调用 Stop。
func WithSignal(sig pkgif.CancelSignal) Option {
	return func(s *settings) {
		s.signal = sig
	}
}

// WithContext 以 context 作为取消信号
func WithContext(ctx context.Context) Option {
	return WithSignal(abort.FromContext(ctx))
}

// WithRecorder 设置指标记录器
func WithRecorder(r pkgif.BridgeRecorder) Option {
	return func(s *settings) {
		if r == nil {
			r = pkgif.NopRecorder{}
		}
		s.recorder = r
	}
}

// WithDrainOnStop 设置停止时是否继续交付已排队事件
//
// 默认 false：停止后立即结束迭代，已排队但未交付的事件被丢弃。
// 设为 true 时，停止后继续交付队列中的事件，直到队列为空。
func WithDrainOnStop(drain bool) Option {
	return func(s *settings) {
		s.drainOnStop = drain
	}
}

func withDoneHook(fn func(*Bridge)) Option {
	return func(s *settings) {
		s.onDone = fn
	}
}
