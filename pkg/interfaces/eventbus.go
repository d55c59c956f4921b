// Package interfaces 定义 go-eventiter 公共接口
//
// 本文件定义事件源接口：按名称注册回调、凭句柄移除回调。
package interfaces

import "github.com/dep2p/go-eventiter/pkg/types"

// Listener 事件回调
//
// 事件源每次触发时同步调用，参数个数不定（零个或多个）。
type Listener func(args ...any)

// EventSource 定义推送式事件源接口
//
// 事件源在命名事件发生时同步调用已注册的回调，直到回调被移除。
// 回调可能在任意 goroutine 中被调用。
type EventSource interface {
	// AddListener 为指定名称注册回调，返回注册句柄
	AddListener(name types.EventName, fn Listener) types.ListenerID

	// RemoveListener 凭句柄移除回调
	//
	// 未知句柄或重复移除为空操作。
	RemoveListener(name types.EventName, id types.ListenerID)
}

// EventEmitter 定义可发射事件的事件源
//
// 在 EventSource 基础上增加发射能力，供生产者使用。
type EventEmitter interface {
	EventSource

	// Emit 同步触发事件，返回被调用的回调数量
	Emit(name types.EventName, args ...any) int

	// ListenerCount 返回指定名称当前注册的回调数量
	ListenerCount(name types.EventName) int
}
