// Package bridge 实现推送式事件源到拉取式事件序列的桥接
//
// # 概述
//
// Bridge 在事件源上为一组名称注册回调，把每次回调转换为 types.Event
// 放入无界先进先出队列。消费者通过 Events() 逐个拉取：
//
//	b, err := bridge.New(bus, []types.EventName{"tick", "tock"},
//	    bridge.WithSignal(ctl))
//	if err != nil {
//	    return err
//	}
//	for ev := range b.Events() {
//	    fmt.Println(ev.Name, ev.Value)
//	}
//
// # 生命周期
//
//	Idle ──第一次拉取──▶ Active ──Stop/信号──▶ Draining ──▶ Closed
//	  │                    │                                 ▲
//	  └──Stop/信号─────────┼─────────────────────────────────┤
//	                       └──break/panic────────────────────┘
//
// 回调在第一次拉取时注册，在迭代结束时（包括消费者提前 break）全部移除。
// 队列为空时消费者在二值唤醒闸门上等待，生产者入队后释放闸门。
//
// # 停止语义
//
// Stop 清除存活标志并唤醒消费者。默认情况下已排队但未交付的事件被丢弃；
// WithDrainOnStop(true) 时消费者继续交付，直到观察到队列为空。
//
// # 并发模型
//
// 队列、存活标志和状态由同一把互斥锁保护。事件源回调可以在任意 goroutine
// 上同步触发；每个桥接器只支持一个消费者。
//
// # Fx 模块
//
// Module() 提供 *Factory，为创建的桥接器附加统一配置和指标记录器，
// 应用停止时关闭全部未结束的桥接器。
package bridge
