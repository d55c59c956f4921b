// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 加载和保存配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Bridge.DrainOnStop = true
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
//
//	// 从文件加载
//	cfg, err := config.LoadFile("eventiter.json")
package config

import (
	"errors"

	"go.uber.org/multierr"
)

// Config 是 go-eventiter 的完整配置结构
//
// 配置按照功能模块组织：
//   - Bridge: 桥接器行为
//   - Metrics: 指标收集
//   - Log: 日志输出
//   - Demo: 演示程序的事件源参数
type Config struct {
	// Bridge 桥接器配置
	Bridge BridgeConfig `json:"bridge"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log"`

	// Demo 演示程序配置
	Demo DemoConfig `json:"demo"`
}

// NewConfig 创建默认配置
//
// 返回的配置使用所有组件的默认值，适用于大多数场景。
func NewConfig() *Config {
	return &Config{
		Bridge:  DefaultBridgeConfig(),
		Metrics: DefaultMetricsConfig(),
		Log:     DefaultLogConfig(),
		Demo:    DefaultDemoConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回合并后的全部错误。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	return multierr.Combine(
		c.Bridge.Validate(),
		c.Metrics.Validate(),
		c.Log.Validate(),
		c.Demo.Validate(),
	)
}
