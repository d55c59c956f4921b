// Package abort 提供一次性取消信号
//
// 三种信号来源，全部实现 pkgif.CancelSignal：
//   - Controller：手动 Abort 的中止控制器
//   - NewTimeout：经过指定时长后自动中止（基于 benbjohnson/clock，可注入 mock 时钟）
//   - FromContext：context 结束即触发
//
// # 快速开始
//
//	ctl := abort.NewTimeout(nil, 10*time.Second)
//	b, _ := bridge.New(bus, []types.EventName{"tick", "tock"},
//	    bridge.WithSignal(ctl.Signal()))
//
//	for ev := range b.Events() {
//	    fmt.Println(ev)
//	}
//
// # 语义
//
//   - 信号最多触发一次，处理函数各被调用一次
//   - 触发后注册的处理函数会在新 goroutine 中立即执行
//   - RemoveTrigger 在触发后或句柄未知时为空操作
package abort
