// Package eventbus 实现进程内命名事件源
//
// Bus 按事件名称登记回调，提供：
//   - 凭 ListenerID 精确移除回调
//   - 一次性回调（Once）
//   - 同步触发，回调在 Emit 调用方的 goroutine 中执行
//   - 回调 panic 隔离（记录日志，不影响其他回调）
//   - 并发安全
//
// # 快速开始
//
//	bus := eventbus.NewBus()
//
//	id := bus.AddListener("tick", func(args ...any) {
//	    fmt.Println("tick", args)
//	})
//	defer bus.RemoveListener("tick", id)
//
//	bus.Emit("tick", time.Now())
//
// # Fx 模块
//
//	app := fx.New(
//	    eventbus.Module(),
//	    fx.Invoke(func(src pkgif.EventSource) {
//	        // ...
//	    }),
//	)
//
// # 架构定位
//
// Tier: Core Layer Level 1（无依赖）
//
// 依赖关系：
//   - 依赖：pkg/interfaces, pkg/types
//   - 被依赖：bridge（作为默认事件源）、cmd/eventiter-demo
//
// # 并发安全
//
//   - 注册/移除：RWMutex + 节点锁保护
//   - 触发：对回调列表取快照后在锁外调用，回调内可安全注册或移除回调
//   - 关闭：atomic.Bool 防止重复
package eventbus
