// Package interfaces 定义 go-eventiter 公共接口
//
// 本文件定义桥接器指标记录接口。
package interfaces

import "github.com/dep2p/go-eventiter/pkg/types"

// BridgeRecorder 桥接器指标记录器
//
// 所有方法都必须并发安全且不阻塞，调用发生在生产者回调和消费循环中。
type BridgeRecorder interface {
	// BridgeOpened 桥接器开始迭代
	BridgeOpened()

	// BridgeClosed 桥接器完成清理
	BridgeClosed()

	// EventEnqueued 事件进入队列
	EventEnqueued(name types.EventName)

	// EventYielded 事件交付给消费者
	EventYielded(name types.EventName)

	// EventsDiscarded 停止时丢弃的排队事件数
	EventsDiscarded(n int)
}

// NopRecorder 空实现
type NopRecorder struct{}

func (NopRecorder) BridgeOpened()                 {}
func (NopRecorder) BridgeClosed()                 {}
func (NopRecorder) EventEnqueued(types.EventName) {}
func (NopRecorder) EventYielded(types.EventName)  {}
func (NopRecorder) EventsDiscarded(int)           {}

var _ BridgeRecorder = NopRecorder{}
