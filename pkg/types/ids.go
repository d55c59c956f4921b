// Package types 定义 go-eventiter 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
package types

import (
	"fmt"
	"reflect"
	"strconv"
)

// ============================================================================
//                              EventName - 事件名称
// ============================================================================

// EventName 事件名称
//
// 事件名称只用于等值比较（监听集合的成员判断），因此任何可比较的
// 动态类型都可以作为名称：
//   - string / 命名字符串类型
//   - 整数常量
//   - *Symbol（独立身份，永远不等于任何字符串）
//
// 不可比较的值（切片、map、函数）无法作为 map 键，会被调用方拒绝。
type EventName = any

// IsValidEventName 检查名称能否作为事件名称使用
func IsValidEventName(name EventName) bool {
	if name == nil {
		return false
	}
	return reflect.TypeOf(name).Comparable()
}

// FormatEventName 返回事件名称的可读表示（用于日志和指标标签）
func FormatEventName(name EventName) string {
	switch n := name.(type) {
	case string:
		return n
	case *Symbol:
		return n.String()
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprint(n)
	}
}

// ============================================================================
//                              Symbol - 唯一标识
// ============================================================================

// Symbol 唯一事件标识
//
// 每次调用 NewSymbol 都返回一个新身份，描述相同的两个 Symbol 也不相等。
// 用于需要避免与字符串名称冲突的内部事件。
type Symbol struct {
	desc string
}

// NewSymbol 创建新的 Symbol
func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

// Description 返回 Symbol 的描述
func (s *Symbol) Description() string {
	if s == nil {
		return ""
	}
	return s.desc
}

// String 返回 Symbol 的字符串表示
func (s *Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// ============================================================================
//                              ListenerID - 注册句柄
// ============================================================================

// ListenerID 回调注册句柄
//
// 由事件源或取消信号在注册时分配，移除时凭此精确定位该次注册。
// 零值表示"未注册"。
type ListenerID uint64

// NoListener 未注册的句柄
const NoListener ListenerID = 0

// IsZero 检查句柄是否为零值
func (id ListenerID) IsZero() bool {
	return id == NoListener
}

// String 返回句柄的字符串表示
func (id ListenerID) String() string {
	return "listener-" + strconv.FormatUint(uint64(id), 10)
}
