package config

import "time"

// DemoConfig 演示程序配置
//
// 控制 eventiter-demo 中 tick/tock 事件源的行为。
type DemoConfig struct {
	// Events 监听的事件名称
	// 默认值: ["tick", "tock"]
	Events []string `json:"events"`

	// MaxInterval 两次事件之间的最大随机间隔
	// 默认值: 1s
	MaxInterval Duration `json:"max_interval"`

	// RunFor 运行时长，超时后通过取消信号停止；0 表示直到收到中断信号
	// 默认值: 10s
	RunFor Duration `json:"run_for"`
}

// DefaultDemoConfig 返回默认的演示配置
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Events:      []string{"tick", "tock"},
		MaxInterval: Duration(time.Second),
		RunFor:      Duration(10 * time.Second),
	}
}

// Validate 验证演示配置的有效性
func (c DemoConfig) Validate() error {
	if len(c.Events) == 0 {
		return errInvalid("demo.events", "at least one event name is required")
	}
	for _, name := range c.Events {
		if name == "" {
			return errInvalid("demo.events", "event name must not be empty")
		}
	}
	if c.MaxInterval <= 0 {
		return errInvalid("demo.max_interval", "must be positive")
	}
	if c.RunFor < 0 {
		return errInvalid("demo.run_for", "must not be negative")
	}
	return nil
}
