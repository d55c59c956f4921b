// Package types 定义 go-eventiter 公共类型
//
// 本文件定义待投递事件（Pending Event）。
package types

import "fmt"

// ============================================================================
//                              Event - 待投递事件
// ============================================================================

// Event 待投递事件
//
// 由监听回调构造，按先进先出顺序被消费者读取，且只读取一次。
type Event struct {
	// Name 触发的事件名称（属于监听集合）
	Name EventName

	// Value 事件负载
	//
	// 回调恰好收到一个参数时为该参数本身，
	// 否则为按顺序排列的参数切片 []any（零个参数时为空切片）。
	Value any
}

// NewEvent 根据回调参数构造事件
//
// 参数切片会被复制，调用方之后修改原切片不影响事件内容。
func NewEvent(name EventName, args []any) Event {
	if len(args) == 1 {
		return Event{Name: name, Value: args[0]}
	}
	values := make([]any, len(args))
	copy(values, args)
	return Event{Name: name, Value: values}
}

// Args 以切片形式返回事件参数
//
// 单参数事件返回长度为 1 的切片。
// 注意：单个参数本身就是 []any 时无法与多参数区分，此时原样返回。
func (e Event) Args() []any {
	if values, ok := e.Value.([]any); ok {
		return values
	}
	return []any{e.Value}
}

// String 返回事件的字符串表示
func (e Event) String() string {
	return fmt.Sprintf("{name:%s value:%v}", FormatEventName(e.Name), e.Value)
}
