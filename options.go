package eventiter

import (
	"context"

	"github.com/dep2p/go-eventiter/internal/core/bridge"
	pkgif "github.com/dep2p/go-eventiter/pkg/interfaces"
)

// Option 桥接器选项函数
type Option = bridge.Option

// WithSignal 设置取消信号，信号触发等同于调用 Stop
func WithSignal(sig CancelSignal) Option {
	return bridge.WithSignal(sig)
}

// WithContext 以 context 作为取消信号
func WithContext(ctx context.Context) Option {
	return bridge.WithContext(ctx)
}

// WithRecorder 设置指标记录器
func WithRecorder(r pkgif.BridgeRecorder) Option {
	return bridge.WithRecorder(r)
}

// WithDrainOnStop 设置停止时是否继续交付已排队事件（默认丢弃）
func WithDrainOnStop(drain bool) Option {
	return bridge.WithDrainOnStop(drain)
}
