// Package interfaces 定义 go-eventiter 公共接口
//
// 本文件定义事件迭代器接口。
package interfaces

import (
	"iter"

	"github.com/dep2p/go-eventiter/pkg/types"
)

// EventIterable 定义拉取式事件序列
//
// 单次消费：第一次迭代结束后订阅已全部移除，再次迭代不产生任何事件。
type EventIterable interface {
	// Events 返回事件序列
	Events() iter.Seq[types.Event]

	// Stop 通知序列停止，可重复调用
	Stop()
}
