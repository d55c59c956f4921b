// Package eventiter 把推送式命名事件源转换为可拉取的事件序列
//
// 事件源（EventSource）在事件发生时同步调用回调；很多消费代码更适合按顺序
// 逐个“拉取”事件。eventiter 在两者之间架起桥接器（Bridge）：
//
//   - 在第一次拉取时为一组事件名称注册回调
//   - 每次回调构造一个 Event 放入无界先进先出队列
//   - 消费者通过 range 逐个读取；队列为空时阻塞等待
//   - 停止、取消信号触发或消费者提前退出时移除全部回调
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventiter"
//
//	bus := eventiter.NewBus()
//	ctl := eventiter.NewController()
//
//	b, err := eventiter.Wrap(bus, []eventiter.EventName{"tick", "tock"},
//	    eventiter.WithSignal(ctl),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	go func() {
//	    bus.Emit("tick", time.Now())
//	    ctl.Abort(nil)
//	}()
//
//	for ev := range b.Events() {
//	    fmt.Println(ev.Name, ev.Value)
//	}
//
// # 事件负载
//
// 回调恰好收到一个参数时 Event.Value 为该参数本身；
// 零个或多个参数时为 []any（零个参数时为空切片）。
//
// # 停止与取消
//
//   - Bridge.Stop(): 可重复调用，也可以在 range 循环体内调用
//   - WithSignal / WithContext: 信号触发等同于 Stop
//   - break: 提前退出循环同样会移除全部回调
//
// 默认情况下停止时尚未交付的事件被丢弃；WithDrainOnStop(true) 改为交付完毕再结束。
//
// # 依赖注入
//
// NewApp 按统一配置组装 Fx 应用（事件总线、指标、桥接器工厂），
// 应用停止时关闭所有未结束的桥接器。
package eventiter
