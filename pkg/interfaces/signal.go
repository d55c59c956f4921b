// Package interfaces 定义 go-eventiter 公共接口
//
// 本文件定义取消信号接口。
package interfaces

import "github.com/dep2p/go-eventiter/pkg/types"

// CancelSignal 定义一次性取消信号
//
// 信号最多触发一次；触发后已注册的处理函数各被调用一次。
// 移除后的处理函数不会再被调用。
type CancelSignal interface {
	// Triggered 检查信号是否已触发
	Triggered() bool

	// OnTrigger 注册一次性触发处理函数，返回注册句柄
	OnTrigger(fn func()) types.ListenerID

	// RemoveTrigger 凭句柄移除处理函数
	//
	// 信号已触发或句柄未知时为空操作。
	RemoveTrigger(id types.ListenerID)
}
