package config

// BridgeConfig 桥接器配置
type BridgeConfig struct {
	// DrainOnStop 停止后是否继续交付已排队事件
	// 默认值: false（停止时丢弃未交付事件）
	DrainOnStop bool `json:"drain_on_stop"`
}

// DefaultBridgeConfig 返回默认的桥接器配置
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		DrainOnStop: false,
	}
}

// Validate 验证桥接器配置的有效性
func (c BridgeConfig) Validate() error {
	return nil
}

// WithDrainOnStop 设置 DrainOnStop
func (c BridgeConfig) WithDrainOnStop(drain bool) BridgeConfig {
	c.DrainOnStop = drain
	return c
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用 Prometheus 指标
	// 默认值: true
	Enabled bool `json:"enabled"`

	// Namespace 指标名前缀
	// 默认值: "eventiter"
	Namespace string `json:"namespace"`
}

// DefaultMetricsConfig 返回默认的指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "eventiter",
	}
}

// Validate 验证指标配置的有效性
func (c MetricsConfig) Validate() error {
	if c.Enabled && c.Namespace == "" {
		return errInvalid("metrics.namespace", "must not be empty when metrics are enabled")
	}
	return nil
}
