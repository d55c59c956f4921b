// Package types 定义 go-eventiter 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
//   - ids.go    - EventName, Symbol, ListenerID
//   - events.go - Event（待投递事件）
//
// # 事件名称
//
// 事件名称是可比较的任意值：
//
//	types.Event{Name: "tick", Value: 1}
//
//	stop := types.NewSymbol("stop")
//	types.Event{Name: stop, Value: []any{}}
//
// Symbol 提供独立身份，永远不会与字符串名称冲突。
package types
